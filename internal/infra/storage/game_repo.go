package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jose-valero/guess-game-bot/internal/domain"
)

// GameRepo persiste cada juego como UNA fila-documento: las guesses y
// los mensajes publicados viajan enteros en columnas jsonb. Todo es
// read-modify-write; el último write gana (asumido, volumen bajo).
type GameRepo struct{ db *sql.DB }

func NewGameRepo(db *sql.DB) *GameRepo { return &GameRepo{db: db} }

func (r *GameRepo) Get(ctx context.Context, guildID, gameID string) (*domain.Game, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT guild_id, game_id, creator_id, title, description, min_guess, max_guess,
       closed, created_at, closed_at, guesses, posted_messages
  FROM games
 WHERE guild_id = $1 AND game_id = $2
`, guildID, gameID)
	g, err := scanGame(row)
	if err == sql.ErrNoRows {
		return nil, domain.ErrGameNotFound
	}
	return g, err
}

func (r *GameRepo) GetAll(ctx context.Context, guildID string) ([]*domain.Game, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT guild_id, game_id, creator_id, title, description, min_guess, max_guess,
       closed, created_at, closed_at, guesses, posted_messages
  FROM games
 WHERE guild_id = $1
 ORDER BY created_at ASC
`, guildID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// Save upsertea el documento completo.
func (r *GameRepo) Save(ctx context.Context, g *domain.Game) error {
	guesses, err := json.Marshal(orEmptyGuesses(g.Guesses))
	if err != nil {
		return fmt.Errorf("marshal guesses: %w", err)
	}
	posted, err := json.Marshal(orEmptyMirrors(g.PostedMessages))
	if err != nil {
		return fmt.Errorf("marshal posted_messages: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO games
  (guild_id, game_id, creator_id, title, description, min_guess, max_guess,
   closed, created_at, closed_at, guesses, posted_messages)
VALUES
  ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11::jsonb,$12::jsonb)
ON CONFLICT (guild_id, game_id) DO UPDATE SET
  title           = EXCLUDED.title,
  description     = EXCLUDED.description,
  min_guess       = EXCLUDED.min_guess,
  max_guess       = EXCLUDED.max_guess,
  closed          = EXCLUDED.closed,
  closed_at       = EXCLUDED.closed_at,
  guesses         = EXCLUDED.guesses,
  posted_messages = EXCLUDED.posted_messages
`,
		g.GuildID, g.ID, g.CreatorID, g.Title, g.Description, g.MinGuess, g.MaxGuess,
		g.Closed, g.CreatedAt, g.ClosedAt, guesses, posted,
	)
	return err
}

type rowScanner interface{ Scan(dest ...any) error }

func scanGame(row rowScanner) (*domain.Game, error) {
	var (
		g       domain.Game
		guesses []byte
		posted  []byte
	)
	err := row.Scan(
		&g.GuildID, &g.ID, &g.CreatorID, &g.Title, &g.Description, &g.MinGuess, &g.MaxGuess,
		&g.Closed, &g.CreatedAt, &g.ClosedAt, &guesses, &posted,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(guesses, &g.Guesses); err != nil {
		return nil, fmt.Errorf("unmarshal guesses: %w", err)
	}
	if err := json.Unmarshal(posted, &g.PostedMessages); err != nil {
		return nil, fmt.Errorf("unmarshal posted_messages: %w", err)
	}
	if g.Guesses == nil {
		g.Guesses = map[string]domain.Guess{}
	}
	return &g, nil
}

func orEmptyGuesses(m map[string]domain.Guess) map[string]domain.Guess {
	if m == nil {
		return map[string]domain.Guess{}
	}
	return m
}

func orEmptyMirrors(s []domain.PostedMessage) []domain.PostedMessage {
	if s == nil {
		return []domain.PostedMessage{}
	}
	return s
}
