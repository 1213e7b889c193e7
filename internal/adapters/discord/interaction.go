package discord

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// ErrUnrecognizedEvent: el payload no matchea ningún tipo de
// interacción conocido. Fatal para ese request (no hay handling parcial).
var ErrUnrecognizedEvent = errors.New("unrecognized interaction payload")

type EventKind int

const (
	EventPing EventKind = iota
	EventCommand
	EventComponent
	EventModal
)

// Member es quien disparó la interacción, ya masticado: el flag de
// admin sale del bitmask de permisos que manda la plataforma.
type Member struct {
	UserID   string
	Nickname string
	Roles    []string
	IsAdmin  bool
}

type CommandData struct {
	Name string
	Sub  string // "" si el comando no usa subcomandos
	opts map[string]*discordgo.ApplicationCommandInteractionDataOption
}

// Accesores por nombre; las opciones de subcomando ya vienen aplanadas
// un nivel (ver ParseEvent).

func (c *CommandData) Str(name string) (string, bool) {
	if o, ok := c.opts[name]; ok && o.Type == discordgo.ApplicationCommandOptionString {
		return o.StringValue(), true
	}
	return "", false
}

func (c *CommandData) Int(name string) (int, bool) {
	if o, ok := c.opts[name]; ok && o.Type == discordgo.ApplicationCommandOptionInteger {
		return int(o.IntValue()), true
	}
	return 0, false
}

func (c *CommandData) Bool(name string) (bool, bool) {
	if o, ok := c.opts[name]; ok && o.Type == discordgo.ApplicationCommandOptionBoolean {
		return o.BoolValue(), true
	}
	return false, false
}

// Channel devuelve el id del canal elegido en una opción tipo channel.
func (c *CommandData) Channel(name string) (string, bool) {
	if o, ok := c.opts[name]; ok && o.Type == discordgo.ApplicationCommandOptionChannel {
		if id, ok := o.Value.(string); ok {
			return id, true
		}
	}
	return "", false
}

type ComponentData struct {
	CustomID string
	Type     discordgo.ComponentType
	Values   []string // para selects
}

type ModalData struct {
	CustomID string
	// custom_id del input -> valor enviado
	Fields map[string]string
}

// Event es la interacción entrante normalizada: una de cuatro formas,
// siempre con contexto de guild/canal/miembro.
type Event struct {
	Kind      EventKind
	GuildID   string
	ChannelID string
	Member    Member

	Command   *CommandData   // solo EventCommand
	Component *ComponentData // solo EventComponent
	Modal     *ModalData     // solo EventModal
}

// ParseEvent convierte el body crudo del webhook en un Event tipado.
func ParseEvent(body []byte) (*Event, error) {
	var ic discordgo.Interaction
	if err := json.Unmarshal(body, &ic); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnrecognizedEvent, err)
	}

	ev := &Event{
		GuildID:   ic.GuildID,
		ChannelID: ic.ChannelID,
		Member:    newMember(&ic),
	}

	switch ic.Type {
	case discordgo.InteractionPing:
		ev.Kind = EventPing

	case discordgo.InteractionApplicationCommand:
		data := ic.ApplicationCommandData()
		cd := &CommandData{
			Name: data.Name,
			opts: map[string]*discordgo.ApplicationCommandInteractionDataOption{},
		}
		options := data.Options
		// la plataforma anida las opciones dentro del subcomando;
		// aplanamos UN nivel, igual que hacíamos con optStr/optInt
		if len(options) == 1 && options[0].Type == discordgo.ApplicationCommandOptionSubCommand {
			cd.Sub = options[0].Name
			options = options[0].Options
		}
		for _, o := range options {
			cd.opts[o.Name] = o
		}
		ev.Kind = EventCommand
		ev.Command = cd

	case discordgo.InteractionMessageComponent:
		data := ic.MessageComponentData()
		ev.Kind = EventComponent
		ev.Component = &ComponentData{
			CustomID: data.CustomID,
			Type:     data.ComponentType,
			Values:   data.Values,
		}

	case discordgo.InteractionModalSubmit:
		data := ic.ModalSubmitData()
		fields := map[string]string{}
		for _, c := range data.Components {
			row, ok := c.(*discordgo.ActionsRow)
			if !ok {
				continue
			}
			for _, inner := range row.Components {
				if ti, ok := inner.(*discordgo.TextInput); ok {
					fields[ti.CustomID] = ti.Value
				}
			}
		}
		ev.Kind = EventModal
		ev.Modal = &ModalData{CustomID: data.CustomID, Fields: fields}

	default:
		return nil, fmt.Errorf("%w: type=%d", ErrUnrecognizedEvent, ic.Type)
	}

	return ev, nil
}

func newMember(ic *discordgo.Interaction) Member {
	m := Member{}
	if ic.Member != nil {
		m.Roles = ic.Member.Roles
		m.IsAdmin = ic.Member.Permissions&discordgo.PermissionAdministrator != 0
		if ic.Member.User != nil {
			m.UserID = ic.Member.User.ID
			m.Nickname = displayName(ic.Member.Nick, ic.Member.User)
		}
	} else if ic.User != nil {
		// interacción fuera de guild (DM); casi no nos pasa
		m.UserID = ic.User.ID
		m.Nickname = displayName("", ic.User)
	}
	return m
}

func displayName(nick string, u *discordgo.User) string {
	if nick != "" {
		return nick
	}
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}
