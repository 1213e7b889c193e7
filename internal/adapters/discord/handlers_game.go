package discord

import (
	"context"
	"errors"

	"github.com/jose-valero/guess-game-bot/internal/app/service"
	"github.com/jose-valero/guess-game-bot/internal/app/texts"
	"github.com/jose-valero/guess-game-bot/internal/domain"
)

func (r *Router) handleGameCreate(ctx context.Context, ev *Event) (*Response, error) {
	in := service.CreateInput{}
	in.ID, _ = ev.Command.Str("id")
	in.Title, _ = ev.Command.Str("titulo")
	in.Description, _ = ev.Command.Str("descripcion")
	if v, ok := ev.Command.Int("min"); ok {
		in.Min = &v
	}
	if v, ok := ev.Command.Int("max"); ok {
		in.Max = &v
	}

	g, err := r.games.Create(ctx, ev.GuildID, ev.Member.UserID, in)
	switch {
	case errors.Is(err, domain.ErrBadBounds):
		return Ephemeral(texts.BadBounds(*in.Min, *in.Max)), nil
	case errors.Is(err, domain.ErrDuplicateGame):
		return Ephemeral(texts.DuplicateGame(domain.NormalizeID(in.ID))), nil
	case err != nil:
		return nil, err
	}
	return Ephemeral(texts.GameCreated(g)), nil
}

func (r *Router) handleGameList(ctx context.Context, ev *Event) (*Response, error) {
	games, err := r.games.List(ctx, ev.GuildID)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return Ephemeral(texts.NoGames()), nil
	}
	return Ephemeral(texts.GameList(games)), nil
}

func (r *Router) handleGamePost(ctx context.Context, ev *Event) (*Response, error) {
	gameID, _ := ev.Command.Str("juego")
	channelID, ok := ev.Command.Channel("canal")
	if !ok {
		channelID = ev.ChannelID
	}

	g, err := r.games.Post(ctx, ev.GuildID, domain.NormalizeID(gameID), channelID)
	if errors.Is(err, domain.ErrGameNotFound) {
		return Ephemeral(texts.GameNotFound(gameID)), nil
	}
	if err != nil {
		return nil, err
	}
	return Ephemeral(texts.GamePosted(g, channelID)), nil
}

func (r *Router) handleGameCloseCommand(ctx context.Context, ev *Event) (*Response, error) {
	gameID, _ := ev.Command.Str("juego")
	return r.closeGame(ctx, ev.GuildID, domain.NormalizeID(gameID))
}

func (r *Router) handleGameReopenCommand(ctx context.Context, ev *Event) (*Response, error) {
	gameID, _ := ev.Command.Str("juego")
	return r.reopenGame(ctx, ev.GuildID, domain.NormalizeID(gameID))
}

func (r *Router) handleCloseButton(ctx context.Context, ev *Event) (*Response, error) {
	gameID, ok := DecodeCloseButton(ev.Component.CustomID)
	if !ok {
		return Ephemeral(texts.InvalidSelection()), nil
	}
	return r.closeGame(ctx, ev.GuildID, gameID)
}

func (r *Router) handleReopenButton(ctx context.Context, ev *Event) (*Response, error) {
	gameID, ok := DecodeReopenButton(ev.Component.CustomID)
	if !ok {
		return Ephemeral(texts.InvalidSelection()), nil
	}
	return r.reopenGame(ctx, ev.GuildID, gameID)
}

// cerrar/reabrir comparten camino desde comando y desde botón
func (r *Router) closeGame(ctx context.Context, guildID, gameID string) (*Response, error) {
	g, err := r.games.Close(ctx, guildID, gameID)
	if errors.Is(err, domain.ErrGameNotFound) {
		return Ephemeral(texts.GameNotFound(gameID)), nil
	}
	if err != nil {
		return nil, err
	}
	return Ephemeral(texts.GameClosed(g)), nil
}

func (r *Router) reopenGame(ctx context.Context, guildID, gameID string) (*Response, error) {
	g, err := r.games.Reopen(ctx, guildID, gameID)
	if errors.Is(err, domain.ErrGameNotFound) {
		return Ephemeral(texts.GameNotFound(gameID)), nil
	}
	if err != nil {
		return nil, err
	}
	return Ephemeral(texts.GameReopened(g)), nil
}
