package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/guess-game-bot/internal/app/texts"
	"github.com/jose-valero/guess-game-bot/internal/domain"
)

const (
	colorOpen   = 0x2ecc71
	colorClosed = 0xe74c3c
)

// RenderGame arma el embed espejo y la botonera de un juego. Es la
// MISMA función para publicar y para refrescar: así todos los espejos
// quedan idénticos.
func RenderGame(g *domain.Game) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	desc := ""
	if g.Description != "" {
		desc = g.Description + "\n\n"
	}
	desc += texts.SummaryBody(g)

	color := colorOpen
	if g.Closed {
		color = colorClosed
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🎲 " + g.DisplayTitle(),
		Description: desc,
		Color:       color,
		Footer:      &discordgo.MessageEmbedFooter{Text: texts.SummaryFooter(g)},
	}

	row := discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Adivinar 🎯",
			Style:    discordgo.PrimaryButton,
			CustomID: EncodeGuessButton(g.ID),
			Disabled: g.Closed,
		},
		stateButton(g),
	}}

	return embed, []discordgo.MessageComponent{row}
}

func stateButton(g *domain.Game) discordgo.Button {
	if g.Closed {
		return discordgo.Button{
			Label:    "Reabrir 🔓",
			Style:    discordgo.SecondaryButton,
			CustomID: EncodeReopenButton(g.ID),
		}
	}
	return discordgo.Button{
		Label:    "Cerrar 🔒",
		Style:    discordgo.DangerButton,
		CustomID: EncodeCloseButton(g.ID),
	}
}
