package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/guess-game-bot/internal/app/service"
	"github.com/jose-valero/guess-game-bot/internal/domain"
)

// Messenger habla con la REST API usando una sesión token-only: acá
// NUNCA se abre el gateway, todo sale por HTTP.
type Messenger struct {
	s *discordgo.Session
}

func NewMessenger(token string) (*Messenger, error) {
	auth := strings.TrimSpace(token)
	if !strings.HasPrefix(strings.ToLower(auth), "bot ") {
		auth = "Bot " + auth
	}
	s, err := discordgo.New(auth)
	if err != nil {
		return nil, fmt.Errorf("creando sesión: %w", err)
	}
	return &Messenger{s: s}, nil
}

func (m *Messenger) SendGameMessage(ctx context.Context, channelID string, g *domain.Game) (string, error) {
	embed, comps := RenderGame(g)
	msg, err := m.s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: comps,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("publicando resumen en %s: %w", channelID, err)
	}
	return msg.ID, nil
}

func (m *Messenger) UpdateGameMessage(ctx context.Context, channelID, messageID string, g *domain.Game) error {
	embed, comps := RenderGame(g)
	embeds := []*discordgo.MessageEmbed{embed}
	_, err := m.s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    channelID,
		ID:         messageID,
		Embeds:     &embeds,
		Components: &comps,
	}, discordgo.WithContext(ctx))
	if isUnknownMessage(err) {
		return service.ErrMessageGone
	}
	if err != nil {
		return fmt.Errorf("editando resumen %s/%s: %w", channelID, messageID, err)
	}
	return nil
}

func (m *Messenger) SendDirectMessage(ctx context.Context, userID, content string) error {
	ch, err := m.s.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("abriendo DM con %s: %w", userID, err)
	}
	if _, err := m.s.ChannelMessageSend(ch.ID, content, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("mandando DM a %s: %w", userID, err)
	}
	return nil
}

// 10008 Unknown Message: alguien borró el mensaje espejo a mano.
func isUnknownMessage(err error) bool {
	var re *discordgo.RESTError
	return errors.As(err, &re) && re.Message != nil && re.Message.Code == discordgo.ErrCodeUnknownMessage
}
