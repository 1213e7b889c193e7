package service

import (
	"context"
	"errors"
	"time"

	"github.com/jose-valero/guess-game-bot/internal/domain"
)

// cuántas veces probamos un id generado antes de rendirnos
const maxIDAttempts = 10

type GameService struct {
	games GameRepo
	msg   Messenger
}

func NewGameService(games GameRepo, msg Messenger) *GameService {
	return &GameService{games: games, msg: msg}
}

type CreateInput struct {
	ID          string // opcional; si viene se normaliza
	Title       string
	Description string
	Min, Max    *int // independientes: puede venir uno, ambos o ninguno
}

func (s *GameService) Create(ctx context.Context, guildID, creatorID string, in CreateInput) (*domain.Game, error) {
	if in.Min != nil && in.Max != nil && *in.Min > *in.Max {
		return nil, domain.ErrBadBounds
	}

	id := domain.NormalizeID(in.ID)
	if id != "" {
		// id explícito: rechazar si ya existe
		_, err := s.games.Get(ctx, guildID, id)
		if err == nil {
			return nil, domain.ErrDuplicateGame
		}
		if !errors.Is(err, domain.ErrGameNotFound) {
			return nil, err
		}
	} else {
		var err error
		id, err = s.freeID(ctx, guildID)
		if err != nil {
			return nil, err
		}
	}

	g := &domain.Game{
		GuildID:     guildID,
		ID:          id,
		CreatorID:   creatorID,
		Title:       in.Title,
		Description: in.Description,
		MinGuess:    in.Min,
		MaxGuess:    in.Max,
		CreatedAt:   time.Now().UTC(),
		Guesses:     map[string]domain.Guess{},
	}
	if err := s.games.Save(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// freeID prueba ids generados hasta encontrar uno libre (acotado).
func (s *GameService) freeID(ctx context.Context, guildID string) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := domain.RandomID()
		_, err := s.games.Get(ctx, guildID, id)
		if errors.Is(err, domain.ErrGameNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", domain.ErrIDGeneration
}

func (s *GameService) Get(ctx context.Context, guildID, gameID string) (*domain.Game, error) {
	return s.games.Get(ctx, guildID, gameID)
}

func (s *GameService) List(ctx context.Context, guildID string) ([]*domain.Game, error) {
	return s.games.GetAll(ctx, guildID)
}

// Close es idempotente: cerrar un juego ya cerrado no toca el estado
// pero igual es éxito para el que llama.
func (s *GameService) Close(ctx context.Context, guildID, gameID string) (*domain.Game, error) {
	g, err := s.games.Get(ctx, guildID, gameID)
	if err != nil {
		return nil, err
	}
	if !g.Closed {
		now := time.Now().UTC()
		g.Closed = true
		g.ClosedAt = &now
		if err := s.games.Save(ctx, g); err != nil {
			return nil, err
		}
	}
	refreshMirrors(ctx, s.games, s.msg, g)
	return g, nil
}

func (s *GameService) Reopen(ctx context.Context, guildID, gameID string) (*domain.Game, error) {
	g, err := s.games.Get(ctx, guildID, gameID)
	if err != nil {
		return nil, err
	}
	if g.Closed {
		g.Closed = false
		g.ClosedAt = nil
		if err := s.games.Save(ctx, g); err != nil {
			return nil, err
		}
	}
	refreshMirrors(ctx, s.games, s.msg, g)
	return g, nil
}

// Post publica el resumen en un canal y registra el mensaje como espejo.
func (s *GameService) Post(ctx context.Context, guildID, gameID, channelID string) (*domain.Game, error) {
	g, err := s.games.Get(ctx, guildID, gameID)
	if err != nil {
		return nil, err
	}
	msgID, err := s.msg.SendGameMessage(ctx, channelID, g)
	if err != nil {
		return nil, err
	}
	g.AddMirror(channelID, msgID)
	if err := s.games.Save(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}
