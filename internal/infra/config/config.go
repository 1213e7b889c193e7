package config

import (
	"log"
	"os"
)

type Config struct {
	DatabaseURL      string
	DiscordToken     string
	DiscordAppID     string
	DiscordPublicKey string // hex, para verificar firmas del webhook
	DiscordGuild     string // opcional: scope de registro de comandos
}

func Load() Config {
	get := func(k string, req bool) string {
		v := os.Getenv(k)
		if v == "" && req {
			log.Fatalf("faltante env %s", k)
		}
		return v
	}

	return Config{
		DatabaseURL:      get("DATABASE_URL", true),
		DiscordToken:     get("DISCORD_BOT_TOKEN", true),
		DiscordAppID:     get("DISCORD_APP_ID", true),
		DiscordPublicKey: get("DISCORD_PUBLIC_KEY", true),
		DiscordGuild:     get("DISCORD_GUILD_ID", false), // vacío = comandos globales
	}
}
