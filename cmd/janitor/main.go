package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/bwmarrin/discordgo"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jose-valero/guess-game-bot/internal/domain"
)

// El janitor corre por cron: recorre los espejos publicados y tira las
// referencias a mensajes que alguien borró a mano. El webhook también
// lo hace de forma perezosa cuando refresca, esto es la barrida de
// fondo para juegos que nadie toca.

func handler(ctx context.Context) (string, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return "no DATABASE_URL", nil
	}
	token := strings.TrimSpace(os.Getenv("DISCORD_BOT_TOKEN"))
	if token == "" {
		return "no DISCORD_BOT_TOKEN", nil
	}
	if !strings.HasPrefix(strings.ToLower(token), "bot ") {
		token = "Bot " + token
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return fmt.Sprintf("parse: %v", err), nil
	}
	cfg.MaxConns = 2
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return fmt.Sprintf("pool: %v", err), nil
	}
	defer pool.Close()

	s, err := discordgo.New(token)
	if err != nil {
		return fmt.Sprintf("sesión: %v", err), nil
	}

	swept, dropped, err := sweepMirrors(ctx, pool, s)
	if err != nil {
		return fmt.Sprintf("sweep: %v", err), err
	}
	return fmt.Sprintf("ok: %d juegos revisados, %d espejos muertos", swept, dropped), nil
}

func sweepMirrors(ctx context.Context, pool *pgxpool.Pool, s *discordgo.Session) (swept, dropped int, err error) {
	qctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	rows, err := pool.Query(qctx, `
SELECT guild_id, game_id, posted_messages
FROM games
WHERE jsonb_array_length(posted_messages) > 0`)
	if err != nil {
		return 0, 0, err
	}
	defer rows.Close()

	type entry struct {
		guildID, gameID string
		mirrors         []domain.PostedMessage
	}
	var entries []entry
	for rows.Next() {
		var e entry
		var raw []byte
		if err := rows.Scan(&e.guildID, &e.gameID, &raw); err != nil {
			return swept, dropped, err
		}
		if err := json.Unmarshal(raw, &e.mirrors); err != nil {
			log.Printf("[janitor] posted_messages corrupto en %s/%s: %v", e.guildID, e.gameID, err)
			continue
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return swept, dropped, err
	}

	for _, e := range entries {
		swept++
		alive := e.mirrors[:0]
		gone := 0
		for _, pm := range e.mirrors {
			_, err := s.ChannelMessage(pm.ChannelID, pm.MessageID, discordgo.WithContext(ctx))
			if isUnknownMessage(err) {
				gone++
				continue
			}
			if err != nil {
				// error transitorio: conservamos la referencia
				log.Printf("[janitor] probe %s/%s: %v", pm.ChannelID, pm.MessageID, err)
			}
			alive = append(alive, pm)
		}
		if gone == 0 {
			continue
		}

		raw, err := json.Marshal(alive)
		if err != nil {
			return swept, dropped, err
		}
		uctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		_, err = pool.Exec(uctx,
			`UPDATE games SET posted_messages = $3::jsonb WHERE guild_id = $1 AND game_id = $2`,
			e.guildID, e.gameID, raw)
		cancel()
		if err != nil {
			return swept, dropped, err
		}
		dropped += gone
		log.Printf("[janitor] 🧹 %s/%s: %d espejos muertos menos", e.guildID, e.gameID, gone)
	}
	return swept, dropped, nil
}

func isUnknownMessage(err error) bool {
	var re *discordgo.RESTError
	if !errors.As(err, &re) || re.Message == nil {
		return false
	}
	return re.Message.Code == discordgo.ErrCodeUnknownMessage ||
		re.Message.Code == discordgo.ErrCodeUnknownChannel
}

func main() { lambda.Start(handler) }
