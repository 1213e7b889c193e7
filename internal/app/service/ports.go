package service

import (
	"context"
	"errors"

	"github.com/jose-valero/guess-game-bot/internal/domain"
)

// Lo implementa internal/infra/storage.GameRepo
type GameRepo interface {
	Get(ctx context.Context, guildID, gameID string) (*domain.Game, error)
	GetAll(ctx context.Context, guildID string) ([]*domain.Game, error)
	Save(ctx context.Context, g *domain.Game) error
}

// Lo implementa internal/infra/storage.GuildConfigRepo
type GuildConfigRepo interface {
	Get(ctx context.Context, guildID string) (domain.GuildConfig, error)
	Save(ctx context.Context, c domain.GuildConfig) error
}

// ErrMessageGone: el mensaje espejo ya no existe en Discord; el caller
// debe descartar esa referencia (no es un error fatal).
var ErrMessageGone = errors.New("channel message no longer exists")

// Lo implementa internal/adapters/discord.Messenger. El adapter es el
// que sabe renderizar un juego como embed + botones; acá solo pedimos
// "mandá/actualizá el mensaje de ESTE juego".
type Messenger interface {
	SendGameMessage(ctx context.Context, channelID string, g *domain.Game) (messageID string, err error)
	UpdateGameMessage(ctx context.Context, channelID, messageID string, g *domain.Game) error
	SendDirectMessage(ctx context.Context, userID, content string) error
}
