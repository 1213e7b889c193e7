package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jose-valero/guess-game-bot/internal/app/service"
	"github.com/jose-valero/guess-game-bot/internal/app/texts"
	"github.com/jose-valero/guess-game-bot/internal/domain"
)

// ErrUnknownRoute: interacción bien formada pero sin ruta. El caller
// decide el status (nosotros devolvemos 500 y queda en el log).
var ErrUnknownRoute = errors.New("no route matches the interaction")

type MatchKind int

const (
	MatchCommand MatchKind = iota
	MatchSubcommand
	MatchComponentExact
	MatchComponentPrefix
	MatchModalPrefix
)

// Matcher es el predicado de una ruta. Name es el comando, el custom
// id exacto o el prefijo, según Kind.
type Matcher struct {
	Kind MatchKind
	Name string
	Sub  string // solo MatchSubcommand
}

func (m Matcher) Matches(ev *Event) bool {
	switch m.Kind {
	case MatchCommand:
		return ev.Kind == EventCommand && ev.Command.Name == m.Name && ev.Command.Sub == ""
	case MatchSubcommand:
		return ev.Kind == EventCommand && ev.Command.Name == m.Name && ev.Command.Sub == m.Sub
	case MatchComponentExact:
		return ev.Kind == EventComponent && ev.Component.CustomID == m.Name
	case MatchComponentPrefix:
		return ev.Kind == EventComponent && strings.HasPrefix(ev.Component.CustomID, m.Name)
	case MatchModalPrefix:
		return ev.Kind == EventModal && strings.HasPrefix(ev.Modal.CustomID, m.Name)
	}
	return false
}

type HandlerFunc func(ctx context.Context, ev *Event) (*Response, error)

// Route: un predicado, el tier que exige y el handler. Label aparece
// en el mensaje de denegado y en los logs.
type Route struct {
	Match  Matcher
	Tier   Tier
	Label  string
	Handle HandlerFunc
}

// Router resuelve qué hacer con cada Event. La tabla se recorre en
// orden y gana la primera ruta que matchea.
type Router struct {
	games   *service.GameService
	guesses *service.GuessService
	config  *service.GuildConfigService
	cfgs    service.GuildConfigRepo

	routes []Route
}

func NewRouter(games *service.GameService, guesses *service.GuessService, config *service.GuildConfigService, cfgs service.GuildConfigRepo) *Router {
	r := &Router{games: games, guesses: guesses, config: config, cfgs: cfgs}
	r.routes = []Route{
		// comandos
		{Matcher{MatchSubcommand, "juego", "crear"}, TierManagement, "/juego crear", r.handleGameCreate},
		{Matcher{MatchSubcommand, "juego", "listar"}, TierNone, "/juego listar", r.handleGameList},
		{Matcher{MatchSubcommand, "juego", "publicar"}, TierManagement, "/juego publicar", r.handleGamePost},
		{Matcher{MatchSubcommand, "juego", "cerrar"}, TierManagement, "/juego cerrar", r.handleGameCloseCommand},
		{Matcher{MatchSubcommand, "juego", "reabrir"}, TierManagement, "/juego reabrir", r.handleGameReopenCommand},
		{Matcher{MatchCommand, "adivinar", ""}, TierNone, "/adivinar", r.handleGuessCommand},
		{Matcher{MatchSubcommand, "gestionar", "editar-guess"}, TierManagement, "/gestionar editar-guess", r.handleManageEditCommand},
		{Matcher{MatchSubcommand, "gestionar", "borrar-guess"}, TierManagement, "/gestionar borrar-guess", r.handleManageDeleteCommand},
		{Matcher{MatchSubcommand, "config", "canales"}, TierAdmin, "/config canales", r.handleConfigChannels},
		{Matcher{MatchSubcommand, "config", "roles"}, TierAdmin, "/config roles", r.handleConfigRoles},

		// componentes
		{Matcher{Kind: MatchComponentPrefix, Name: guessButtonPrefix}, TierNone, "botón de adivinar", r.handleGuessButton},
		{Matcher{Kind: MatchComponentPrefix, Name: closeButtonPrefix}, TierManagement, "botón de cerrar", r.handleCloseButton},
		{Matcher{Kind: MatchComponentPrefix, Name: reopenButtonPrefix}, TierManagement, "botón de reabrir", r.handleReopenButton},
		{Matcher{Kind: MatchComponentPrefix, Name: editGuessSelectPrefix}, TierManagement, "/gestionar editar-guess", r.handleEditGuessSelect},
		{Matcher{Kind: MatchComponentPrefix, Name: deleteGuessSelectPrefix}, TierManagement, "/gestionar borrar-guess", r.handleDeleteGuessSelect},
		{Matcher{Kind: MatchComponentExact, Name: addChannelSelectID}, TierAdmin, "/config canales", r.handleAddChannelSelect},
		{Matcher{Kind: MatchComponentExact, Name: removeChannelSelectID}, TierAdmin, "/config canales", r.handleRemoveChannelSelect},
		{Matcher{Kind: MatchComponentExact, Name: addRoleSelectID}, TierAdmin, "/config roles", r.handleAddRoleSelect},
		{Matcher{Kind: MatchComponentExact, Name: removeRoleSelectID}, TierAdmin, "/config roles", r.handleRemoveRoleSelect},

		// modales
		{Matcher{Kind: MatchModalPrefix, Name: guessModalPrefix}, TierNone, "modal de adivinar", r.handleGuessModal},
		{Matcher{Kind: MatchModalPrefix, Name: editGuessModalPrefix}, TierManagement, "/gestionar editar-guess", r.handleEditGuessModal},
	}
	return r
}

// Dispatch rutea el evento: ping corto circuito, después gate de
// permisos, después handler. Los errores de negocio se traducen a
// mensajes efímeros; lo demás sube como error (→ 500).
func (r *Router) Dispatch(ctx context.Context, ev *Event) (*Response, error) {
	if ev.Kind == EventPing {
		return Pong(), nil
	}

	route, ok := r.match(ev)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRoute, describeEvent(ev))
	}

	if route.Tier != TierNone {
		cfg, err := r.cfgs.Get(ctx, ev.GuildID)
		if err != nil {
			return nil, fmt.Errorf("cargando config del guild %s: %w", ev.GuildID, err)
		}
		if !Evaluate(route.Tier, cfg, ev) {
			log.Printf("[dispatch] 🔒 denegado %q user=%s guild=%s", route.Label, ev.Member.UserID, ev.GuildID)
			return Ephemeral(texts.PermissionDenied(route.Label)), nil
		}
	}

	resp, err := route.Handle(ctx, ev)
	if err != nil {
		// red de seguridad: errores de negocio que el handler no mapeó
		if domain.IsBusiness(err) {
			return Ephemeral(businessText(err)), nil
		}
		return nil, fmt.Errorf("ruta %q: %w", route.Label, err)
	}
	return resp, nil
}

func (r *Router) match(ev *Event) (Route, bool) {
	for _, route := range r.routes {
		if route.Match.Matches(ev) {
			return route, true
		}
	}
	return Route{}, false
}

// businessText traduce un error de negocio (domain.IsBusiness) a texto.
// Los que necesitan contexto de juego los mapea el handler; lo que
// llega acá sin mapeo específico cae al genérico.
func businessText(err error) string {
	var be *domain.BoundsError
	switch {
	case errors.As(err, &be):
		return texts.GuessOutOfBounds(be)
	case errors.Is(err, domain.ErrGameNotFound):
		return texts.GameNotFound("")
	case errors.Is(err, domain.ErrGuessNotFound):
		return texts.GuessNotFound()
	}
	return texts.UnexpectedError()
}

func describeEvent(ev *Event) string {
	switch ev.Kind {
	case EventCommand:
		if ev.Command.Sub != "" {
			return fmt.Sprintf("command=%s %s", ev.Command.Name, ev.Command.Sub)
		}
		return "command=" + ev.Command.Name
	case EventComponent:
		return "component=" + ev.Component.CustomID
	case EventModal:
		return "modal=" + ev.Modal.CustomID
	}
	return fmt.Sprintf("kind=%d", ev.Kind)
}
