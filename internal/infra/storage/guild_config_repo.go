package storage

import (
	"context"
	"database/sql"

	pq "github.com/lib/pq"

	"github.com/jose-valero/guess-game-bot/internal/domain"
)

type GuildConfigRepo struct{ db *sql.DB }

func NewGuildConfigRepo(db *sql.DB) *GuildConfigRepo { return &GuildConfigRepo{db: db} }

// Get nunca devuelve "no existe": si no hay fila crea la default vacía
// y relee (mismo patrón que usábamos para las policies).
func (r *GuildConfigRepo) Get(ctx context.Context, guildID string) (domain.GuildConfig, error) {
	var c domain.GuildConfig
	err := r.db.QueryRowContext(ctx, `
SELECT guild_id, management_channels, management_roles, created_at, updated_at
  FROM guild_configs
 WHERE guild_id = $1
`, guildID).Scan(
		&c.GuildID, pq.Array(&c.ManagementChannels), pq.Array(&c.ManagementRoles), &c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		_, err := r.db.ExecContext(ctx, `
INSERT INTO guild_configs (guild_id) VALUES ($1) ON CONFLICT (guild_id) DO NOTHING
`, guildID)
		if err != nil {
			return domain.GuildConfig{}, err
		}
		return r.Get(ctx, guildID)
	}
	return c, err
}

func (r *GuildConfigRepo) Save(ctx context.Context, c domain.GuildConfig) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO guild_configs (guild_id, management_channels, management_roles)
VALUES ($1,$2,$3)
ON CONFLICT (guild_id) DO UPDATE SET
  management_channels = EXCLUDED.management_channels,
  management_roles    = EXCLUDED.management_roles,
  updated_at          = now()
`, c.GuildID, pq.Array(c.ManagementChannels), pq.Array(c.ManagementRoles))
	return err
}
