package main

import (
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"github.com/jose-valero/guess-game-bot/internal/adapters/discord"
	"github.com/jose-valero/guess-game-bot/internal/infra/config"
)

// Registra (sobrescribiendo) los slash commands. Se corre a mano cada
// vez que cambia la definición en discord.Commands().
func main() {
	_ = godotenv.Load() // local; en CI las env ya están

	cfg := config.Load()

	token := strings.TrimSpace(cfg.DiscordToken)
	if !strings.HasPrefix(strings.ToLower(token), "bot ") {
		token = "Bot " + token
	}
	s, err := discordgo.New(token)
	if err != nil {
		log.Fatalf("sesión: %v", err)
	}

	scope := cfg.DiscordGuild
	if scope == "" {
		log.Println("[register] sin DISCORD_GUILD_ID: registrando comandos GLOBALES (tardan en propagar)")
	} else {
		log.Printf("[register] registrando comandos en guild %s", scope)
	}

	cmds, err := s.ApplicationCommandBulkOverwrite(cfg.DiscordAppID, scope, discord.Commands())
	if err != nil {
		log.Fatalf("bulk overwrite: %v", err)
	}
	for _, c := range cmds {
		log.Printf("[register] ✅ /%s (%s)", c.Name, c.ID)
	}
}
