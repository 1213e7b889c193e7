package discord

import "github.com/jose-valero/guess-game-bot/internal/domain"

// Tier es el nivel de permiso que exige una ruta.
type Tier int

const (
	// TierNone: cualquiera en el guild.
	TierNone Tier = iota
	// TierManagement: admin, canal de gestión o rol de gestión.
	TierManagement
	// TierAdmin: solo admins del guild.
	TierAdmin
)

func (t Tier) String() string {
	switch t {
	case TierManagement:
		return "management"
	case TierAdmin:
		return "admin"
	default:
		return "none"
	}
}

// Evaluate decide si el miembro pasa el gate del tier. Función pura:
// toda la data viene por parámetro, cero llamadas afuera.
func Evaluate(tier Tier, cfg domain.GuildConfig, ev *Event) bool {
	switch tier {
	case TierNone:
		return true
	case TierManagement:
		if ev.Member.IsAdmin {
			return true
		}
		if cfg.HasChannel(ev.ChannelID) {
			return true
		}
		for _, r := range ev.Member.Roles {
			if cfg.HasRole(r) {
				return true
			}
		}
		return false
	case TierAdmin:
		return ev.Member.IsAdmin
	}
	return false
}
