package service

import (
	"context"
	"log"
	"time"

	"github.com/jose-valero/guess-game-bot/internal/app/texts"
	"github.com/jose-valero/guess-game-bot/internal/domain"
)

type GuessService struct {
	games GameRepo
	msg   Messenger
}

func NewGuessService(games GameRepo, msg Messenger) *GuessService {
	return &GuessService{games: games, msg: msg}
}

// Submit registra la guess de un usuario. Devuelve el juego también en
// los errores de negocio para que el handler pueda armar el mensaje
// (p.ej. "ya tenías `5`").
func (s *GuessService) Submit(ctx context.Context, guildID, gameID, userID, nickname, value string) (*domain.Game, error) {
	g, err := s.games.Get(ctx, guildID, gameID)
	if err != nil {
		return nil, err
	}
	if g.Closed {
		return g, domain.ErrGameClosed
	}
	if _, ok := g.Guesses[userID]; ok {
		// protección idempotente: por esta vía no se pisa
		return g, domain.ErrDuplicateGuess
	}
	if err := g.ValidateGuess(value); err != nil {
		return g, err
	}

	first := len(g.Guesses) == 0
	g.Guesses[userID] = domain.Guess{
		Value:       value,
		Nickname:    nickname,
		SubmittedAt: time.Now().UTC(),
	}
	if err := s.games.Save(ctx, g); err != nil {
		return nil, err
	}

	refreshMirrors(ctx, s.games, s.msg, g)

	if first && g.CreatorID != userID {
		if err := s.msg.SendDirectMessage(ctx, g.CreatorID, texts.FirstGuessDM(g, nickname, value)); err != nil {
			log.Printf("[guess] DM al creador %s falló: %v", g.CreatorID, err)
		}
	}
	return g, nil
}

// Edit cambia el valor de la guess de OTRO usuario (acción de gestión).
func (s *GuessService) Edit(ctx context.Context, guildID, gameID, targetUserID, newValue string) (*domain.Game, domain.Guess, error) {
	g, err := s.games.Get(ctx, guildID, gameID)
	if err != nil {
		return nil, domain.Guess{}, err
	}
	gu, ok := g.Guesses[targetUserID]
	if !ok {
		return g, domain.Guess{}, domain.ErrGuessNotFound
	}

	gu.Value = newValue
	g.Guesses[targetUserID] = gu
	if err := s.games.Save(ctx, g); err != nil {
		return nil, domain.Guess{}, err
	}
	refreshMirrors(ctx, s.games, s.msg, g)
	return g, gu, nil
}

// Delete borra la guess de un usuario (acción de gestión).
func (s *GuessService) Delete(ctx context.Context, guildID, gameID, targetUserID string) (*domain.Game, domain.Guess, error) {
	g, err := s.games.Get(ctx, guildID, gameID)
	if err != nil {
		return nil, domain.Guess{}, err
	}
	gu, ok := g.Guesses[targetUserID]
	if !ok {
		return g, domain.Guess{}, domain.ErrGuessNotFound
	}

	delete(g.Guesses, targetUserID)
	if err := s.games.Save(ctx, g); err != nil {
		return nil, domain.Guess{}, err
	}
	refreshMirrors(ctx, s.games, s.msg, g)
	return g, gu, nil
}
