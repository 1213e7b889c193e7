package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/guess-game-bot/internal/app/texts"
	"github.com/jose-valero/guess-game-bot/internal/domain"
)

// los selects de gestión muestran hasta 25 opciones (tope de la
// plataforma); con más guesses que eso, las primeras según el orden
// del resumen
const maxSelectOptions = 25

func (r *Router) handleGuessCommand(ctx context.Context, ev *Event) (*Response, error) {
	gameID, _ := ev.Command.Str("juego")
	value, _ := ev.Command.Str("valor")
	return r.submitGuess(ctx, ev, domain.NormalizeID(gameID), value)
}

func (r *Router) handleGuessButton(ctx context.Context, ev *Event) (*Response, error) {
	gameID, ok := DecodeGuessButton(ev.Component.CustomID)
	if !ok {
		return Ephemeral(texts.InvalidSelection()), nil
	}
	g, err := r.games.Get(ctx, ev.GuildID, gameID)
	if errors.Is(err, domain.ErrGameNotFound) {
		return Ephemeral(texts.GameNotFound(gameID)), nil
	}
	if err != nil {
		return nil, err
	}
	if g.Closed {
		return Ephemeral(texts.GuessOnClosedGame(g)), nil
	}

	placeholder := "Tu guess"
	if g.HasBounds() {
		placeholder = "Un número " + boundsHint(g)
	}
	return Modal(&ModalSpec{
		CustomID: EncodeGuessModal(gameID),
		Title:    "Adivinar — " + g.DisplayTitle(),
		Inputs: []ModalInput{{
			CustomID:    guessInputID,
			Label:       "Tu guess",
			Placeholder: placeholder,
			Required:    true,
		}},
	}), nil
}

func (r *Router) handleGuessModal(ctx context.Context, ev *Event) (*Response, error) {
	gameID, ok := DecodeGuessModal(ev.Modal.CustomID)
	if !ok {
		return Ephemeral(texts.InvalidSelection()), nil
	}
	return r.submitGuess(ctx, ev, gameID, ev.Modal.Fields[guessInputID])
}

// submitGuess es el camino común de /adivinar y del modal del botón.
func (r *Router) submitGuess(ctx context.Context, ev *Event, gameID, value string) (*Response, error) {
	g, err := r.guesses.Submit(ctx, ev.GuildID, gameID, ev.Member.UserID, ev.Member.Nickname, value)

	var be *domain.BoundsError
	switch {
	case errors.Is(err, domain.ErrGameNotFound):
		return Ephemeral(texts.GameNotFound(gameID)), nil
	case errors.Is(err, domain.ErrGameClosed):
		return Ephemeral(texts.GuessOnClosedGame(g)), nil
	case errors.Is(err, domain.ErrDuplicateGuess):
		return Ephemeral(texts.DuplicateGuess(g, g.Guesses[ev.Member.UserID])), nil
	case errors.As(err, &be):
		return Ephemeral(texts.GuessOutOfBounds(be)), nil
	case err != nil:
		return nil, err
	}
	return Ephemeral(texts.GuessAccepted(g, value)), nil
}

// --- gestión de guesses ajenas ---

func (r *Router) handleManageEditCommand(ctx context.Context, ev *Event) (*Response, error) {
	return r.guessPicker(ctx, ev, EncodeEditGuessSelect, "Elegí de quién editar la guess:")
}

func (r *Router) handleManageDeleteCommand(ctx context.Context, ev *Event) (*Response, error) {
	return r.guessPicker(ctx, ev, EncodeDeleteGuessSelect, "Elegí de quién borrar la guess:")
}

// guessPicker arma el select de usuarios con guess para los dos flows
// de gestión; solo cambia el custom id y la consigna.
func (r *Router) guessPicker(ctx context.Context, ev *Event, encode func(string) string, prompt string) (*Response, error) {
	gameID, _ := ev.Command.Str("juego")
	g, err := r.games.Get(ctx, ev.GuildID, domain.NormalizeID(gameID))
	if errors.Is(err, domain.ErrGameNotFound) {
		return Ephemeral(texts.GameNotFound(gameID)), nil
	}
	if err != nil {
		return nil, err
	}
	if len(g.Guesses) == 0 {
		return Ephemeral(texts.NoGuessesToManage(g)), nil
	}

	opts := make([]discordgo.SelectMenuOption, 0, len(g.Guesses))
	for uid, gu := range g.Guesses {
		if len(opts) == maxSelectOptions {
			break
		}
		opts = append(opts, discordgo.SelectMenuOption{
			Label:       gu.Nickname,
			Value:       uid,
			Description: "guess: " + gu.Value,
		})
	}

	resp := Ephemeral(prompt)
	resp.Components = []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				MenuType:    discordgo.StringSelectMenu,
				CustomID:    encode(g.ID),
				Placeholder: "Usuario",
				Options:     opts,
			},
		}},
	}
	return resp, nil
}

func (r *Router) handleEditGuessSelect(ctx context.Context, ev *Event) (*Response, error) {
	gameID, ok := DecodeEditGuessSelect(ev.Component.CustomID)
	if !ok || len(ev.Component.Values) == 0 {
		return Ephemeral(texts.InvalidSelection()), nil
	}
	userID := ev.Component.Values[0]

	g, err := r.games.Get(ctx, ev.GuildID, gameID)
	if errors.Is(err, domain.ErrGameNotFound) {
		return Ephemeral(texts.GameNotFound(gameID)), nil
	}
	if err != nil {
		return nil, err
	}
	gu, ok := g.Guesses[userID]
	if !ok {
		return Ephemeral(texts.GuessNotFound()), nil
	}

	return Modal(&ModalSpec{
		CustomID: EncodeEditGuessModal(gameID, userID),
		Title:    fmt.Sprintf("Editar guess de %s", gu.Nickname),
		Inputs: []ModalInput{{
			CustomID: guessInputID,
			Label:    "Nuevo valor",
			Value:    gu.Value,
			Required: true,
		}},
	}), nil
}

func (r *Router) handleEditGuessModal(ctx context.Context, ev *Event) (*Response, error) {
	gameID, userID, ok := DecodeEditGuessModal(ev.Modal.CustomID)
	if !ok {
		return Ephemeral(texts.InvalidSelection()), nil
	}
	value := ev.Modal.Fields[guessInputID]

	g, gu, err := r.guesses.Edit(ctx, ev.GuildID, gameID, userID, value)
	switch {
	case errors.Is(err, domain.ErrGameNotFound):
		return Ephemeral(texts.GameNotFound(gameID)), nil
	case errors.Is(err, domain.ErrGuessNotFound):
		return Ephemeral(texts.GuessNotFound()), nil
	case err != nil:
		return nil, err
	}
	return Ephemeral(texts.GuessEdited(g, gu.Nickname, value)), nil
}

func (r *Router) handleDeleteGuessSelect(ctx context.Context, ev *Event) (*Response, error) {
	gameID, ok := DecodeDeleteGuessSelect(ev.Component.CustomID)
	if !ok || len(ev.Component.Values) == 0 {
		return Ephemeral(texts.InvalidSelection()), nil
	}
	userID := ev.Component.Values[0]

	g, gu, err := r.guesses.Delete(ctx, ev.GuildID, gameID, userID)
	switch {
	case errors.Is(err, domain.ErrGameNotFound):
		return Ephemeral(texts.GameNotFound(gameID)), nil
	case errors.Is(err, domain.ErrGuessNotFound):
		return Ephemeral(texts.GuessNotFound()), nil
	case err != nil:
		return nil, err
	}
	return Ephemeral(texts.GuessDeleted(g, gu.Nickname)), nil
}

func boundsHint(g *domain.Game) string {
	switch {
	case g.MinGuess != nil && g.MaxGuess != nil:
		return fmt.Sprintf("entre %d y %d", *g.MinGuess, *g.MaxGuess)
	case g.MinGuess != nil:
		return fmt.Sprintf("desde %d", *g.MinGuess)
	default:
		return fmt.Sprintf("hasta %d", *g.MaxGuess)
	}
}
