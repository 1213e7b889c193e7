// Package texts concentra TODOS los strings que ve el usuario.
// Funciones puras: estado de dominio adentro, texto afuera. Nada de I/O.
package texts

import (
	"fmt"
	"strings"

	"github.com/jose-valero/guess-game-bot/internal/domain"
)

func PermissionDenied(action string) string {
	return fmt.Sprintf("🔒 No tienes permisos para usar **%s**.", action)
}

// --- juegos ---

func GameCreated(g *domain.Game) string {
	out := fmt.Sprintf("✅ Juego **%s** creado (id: `%s`).", g.DisplayTitle(), g.ID)
	if g.HasBounds() {
		out += " Rango: " + boundsLabel(g.MinGuess, g.MaxGuess) + "."
	}
	return out + " Publicalo con `/juego publicar`."
}

func DuplicateGame(id string) string {
	return fmt.Sprintf("❌ Ya existe un juego con id `%s` en este servidor.", id)
}

func GameNotFound(id string) string {
	if id == "" {
		return "❌ Ese juego no existe."
	}
	return fmt.Sprintf("❌ No encontré el juego `%s`.", id)
}

func BadBounds(min, max int) string {
	return fmt.Sprintf("❌ Rango inválido: min (%d) no puede ser mayor que max (%d).", min, max)
}

func GameClosed(g *domain.Game) string {
	return fmt.Sprintf("🔒 Juego **%s** cerrado. Ya no se aceptan guesses.", g.DisplayTitle())
}

func GameReopened(g *domain.Game) string {
	return fmt.Sprintf("🔓 Juego **%s** reabierto. Se aceptan guesses de nuevo.", g.DisplayTitle())
}

func GamePosted(g *domain.Game, channelID string) string {
	return fmt.Sprintf("✅ Resumen de **%s** publicado en <#%s>.", g.DisplayTitle(), channelID)
}

func NoGames() string {
	return "ℹ️ Todavía no hay juegos en este servidor. Crea uno con `/juego crear`."
}

func GameList(games []*domain.Game) string {
	var b strings.Builder
	b.WriteString("📋 **Juegos del servidor**\n")
	for i, g := range games {
		state := "abierto"
		if g.Closed {
			state = "cerrado 🔒"
		}
		fmt.Fprintf(&b, "%d) `%s` — **%s** (%s, %d guesses)\n", i+1, g.ID, g.DisplayTitle(), state, len(g.Guesses))
	}
	return b.String()
}

// --- guesses ---

func GuessAccepted(g *domain.Game, value string) string {
	return fmt.Sprintf("✅ Guess registrada para **%s**: `%s`. ¡Suerte!", g.DisplayTitle(), value)
}

func DuplicateGuess(g *domain.Game, existing domain.Guess) string {
	return fmt.Sprintf("ℹ️ Ya tenías una guess en **%s**: `%s`. No se puede cambiar por acá.", g.DisplayTitle(), existing.Value)
}

func GuessOnClosedGame(g *domain.Game) string {
	return fmt.Sprintf("🔒 **%s** está cerrado; no se aceptan más guesses.", g.DisplayTitle())
}

func GuessOutOfBounds(e *domain.BoundsError) string {
	return fmt.Sprintf("❌ `%s` no sirve: la guess debe ser un número %s.", e.Value, boundsPhrase(e.Min, e.Max))
}

func GuessNotFound() string {
	return "❌ Ese usuario no tiene guess en este juego."
}

func GuessEdited(g *domain.Game, nickname, value string) string {
	return fmt.Sprintf("✅ Guess de **%s** en **%s** ahora es `%s`.", nickname, g.DisplayTitle(), value)
}

func GuessDeleted(g *domain.Game, nickname string) string {
	return fmt.Sprintf("🗑️ Guess de **%s** eliminada de **%s**.", nickname, g.DisplayTitle())
}

func NoGuessesToManage(g *domain.Game) string {
	return fmt.Sprintf("ℹ️ **%s** todavía no tiene guesses.", g.DisplayTitle())
}

// FirstGuessDM: aviso al creador cuando su juego recibe la primera guess.
func FirstGuessDM(g *domain.Game, nickname, value string) string {
	return fmt.Sprintf("🎉 Tu juego **%s** recibió su primera guess: **%s** dijo `%s`.", g.DisplayTitle(), nickname, value)
}

// --- config del guild ---

func ChannelAdded(channelID string) string {
	return fmt.Sprintf("✅ <#%s> ahora es canal de gestión.", channelID)
}

func ChannelAlready(channelID string) string {
	return fmt.Sprintf("ℹ️ <#%s> ya era canal de gestión.", channelID)
}

func ChannelRemoved(channelID string) string {
	return fmt.Sprintf("✅ <#%s> dejó de ser canal de gestión.", channelID)
}

func ChannelNotManagement(channelID string) string {
	return fmt.Sprintf("ℹ️ <#%s> no es un canal de gestión.", channelID)
}

func RoleAdded(roleID string) string {
	return fmt.Sprintf("✅ <@&%s> ahora es rol de gestión.", roleID)
}

func RoleAlready(roleID string) string {
	return fmt.Sprintf("ℹ️ <@&%s> ya era rol de gestión.", roleID)
}

func RoleRemoved(roleID string) string {
	return fmt.Sprintf("✅ <@&%s> dejó de ser rol de gestión.", roleID)
}

func RoleNotManagement(roleID string) string {
	return fmt.Sprintf("ℹ️ <@&%s> no es un rol de gestión.", roleID)
}

func InvalidSelection() string {
	return "⚠️ Selección inválida."
}

func UnexpectedError() string {
	return "❌ Ocurrió un error inesperado. Contacta con un administrador."
}

// --- resumen (cuerpo del embed espejo) ---

// SummaryBody arma la lista ordenada de guesses del resumen publicado.
func SummaryBody(g *domain.Game) string {
	entries := g.SortedGuesses()
	if len(entries) == 0 {
		return "Nadie adivinó todavía. ¡Sé el primero!"
	}
	var b strings.Builder
	for i, e := range entries {
		fmt.Fprintf(&b, "%d) **%s** — `%s`\n", i+1, e.Nickname, e.Value)
	}
	return b.String()
}

func SummaryFooter(g *domain.Game) string {
	parts := []string{fmt.Sprintf("id: %s", g.ID)}
	if g.HasBounds() {
		parts = append(parts, boundsLabel(g.MinGuess, g.MaxGuess))
	}
	if g.Closed {
		parts = append(parts, "CERRADO 🔒")
	}
	return strings.Join(parts, " · ")
}

func boundsLabel(min, max *int) string {
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("[%d, %d]", *min, *max)
	case min != nil:
		return fmt.Sprintf("min %d", *min)
	default:
		return fmt.Sprintf("max %d", *max)
	}
}

func boundsPhrase(min, max *int) string {
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("entre %d y %d", *min, *max)
	case min != nil:
		return fmt.Sprintf("mayor o igual a %d", *min)
	case max != nil:
		return fmt.Sprintf("menor o igual a %d", *max)
	}
	return "válido"
}
