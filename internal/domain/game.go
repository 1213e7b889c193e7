package domain

import (
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Guess es la apuesta de UN usuario dentro de un juego.
// Guardamos el valor tal cual lo escribió (string); si el juego
// tiene límites numéricos se valida antes de llegar acá.
type Guess struct {
	Value       string    `json:"value"`
	Nickname    string    `json:"nickname"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// PostedMessage referencia un mensaje de canal que "espeja" el estado
// del juego y hay que re-renderizar cuando cambia algo.
type PostedMessage struct {
	ChannelID string `json:"channel_id"`
	MessageID string `json:"message_id"`
}

type Game struct {
	GuildID     string
	ID          string // único dentro del guild, siempre normalizado
	CreatorID   string
	Title       string
	Description string
	MinGuess    *int
	MaxGuess    *int
	Closed      bool
	CreatedAt   time.Time
	ClosedAt    *time.Time

	// discord_user_id -> guess (máximo una por usuario)
	Guesses map[string]Guess

	PostedMessages []PostedMessage
}

// DisplayTitle: título si hay, sino el id.
func (g *Game) DisplayTitle() string {
	if g.Title != "" {
		return g.Title
	}
	return g.ID
}

// HasBounds indica si el juego declara límites numéricos (min, max o ambos).
func (g *Game) HasBounds() bool {
	return g.MinGuess != nil || g.MaxGuess != nil
}

// ValidateGuess chequea el valor contra los límites del juego (si los hay).
func (g *Game) ValidateGuess(value string) error {
	if !g.HasBounds() {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return &BoundsError{Min: g.MinGuess, Max: g.MaxGuess, Value: value}
	}
	if g.MinGuess != nil && n < *g.MinGuess {
		return &BoundsError{Min: g.MinGuess, Max: g.MaxGuess, Value: value}
	}
	if g.MaxGuess != nil && n > *g.MaxGuess {
		return &BoundsError{Min: g.MinGuess, Max: g.MaxGuess, Value: value}
	}
	return nil
}

// AddMirror agrega una referencia de mensaje publicado (sin duplicar).
func (g *Game) AddMirror(channelID, messageID string) {
	for _, pm := range g.PostedMessages {
		if pm.ChannelID == channelID && pm.MessageID == messageID {
			return
		}
	}
	g.PostedMessages = append(g.PostedMessages, PostedMessage{ChannelID: channelID, MessageID: messageID})
}

// RemoveMirror saca una referencia (p.ej. cuando el mensaje ya no existe).
// Devuelve true si algo cambió.
func (g *Game) RemoveMirror(channelID, messageID string) bool {
	for i, pm := range g.PostedMessages {
		if pm.ChannelID == channelID && pm.MessageID == messageID {
			g.PostedMessages = append(g.PostedMessages[:i], g.PostedMessages[i+1:]...)
			return true
		}
	}
	return false
}

// GuessEntry es una fila ordenada para render (guess + quién la hizo).
type GuessEntry struct {
	UserID string
	Guess
}

// SortedGuesses devuelve las guesses listas para mostrar.
// Si TODOS los valores parsean a entero (siempre el caso con límites
// declarados) se ordena numérico; sino, lexicográfico por valor.
// Empates: por timestamp de envío.
func (g *Game) SortedGuesses() []GuessEntry {
	out := make([]GuessEntry, 0, len(g.Guesses))
	numeric := len(g.Guesses) > 0
	nums := make(map[string]int, len(g.Guesses))
	for uid, gu := range g.Guesses {
		out = append(out, GuessEntry{UserID: uid, Guess: gu})
		if n, err := strconv.Atoi(strings.TrimSpace(gu.Value)); err == nil {
			nums[uid] = n
		} else {
			numeric = false
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if numeric {
			a, b := nums[out[i].UserID], nums[out[j].UserID]
			if a != b {
				return a < b
			}
		} else if out[i].Value != out[j].Value {
			return out[i].Value < out[j].Value
		}
		return out[i].SubmittedAt.Before(out[j].SubmittedAt)
	})
	return out
}

var reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeID convierte un id libre ("My Game!!") en un token
// lowercase con guiones ("my-game"). Runs de no-alfanuméricos
// colapsan a UN guion; guiones repetidos también.
func NormalizeID(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = reNonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// palabras para ids generados; cortas y pronunciables
var (
	idAdjectives = []string{"rapido", "astuto", "bravo", "mistico", "dorado", "salvaje", "lunar", "veloz", "sereno", "picaro"}
	idAnimals    = []string{"zorro", "puma", "lobo", "tucan", "condor", "gato", "yacare", "tapir", "mono", "carpincho"}
)

// RandomID genera un id tipo "astuto-puma-42". El caller reintenta
// (acotado) hasta encontrar uno libre en el guild.
func RandomID() string {
	return fmt.Sprintf("%s-%s-%d",
		idAdjectives[rand.Intn(len(idAdjectives))],
		idAnimals[rand.Intn(len(idAnimals))],
		rand.Intn(100),
	)
}
