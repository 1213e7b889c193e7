package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/guess-game-bot/internal/app/texts"
)

func (r *Router) handleConfigChannels(ctx context.Context, ev *Event) (*Response, error) {
	return configPicker(
		"Canales de gestión: elegí para agregar o quitar.",
		discordgo.ChannelSelectMenu,
		addChannelSelectID, "Agregar canal ➕",
		removeChannelSelectID, "Quitar canal ➖",
	), nil
}

func (r *Router) handleConfigRoles(ctx context.Context, ev *Event) (*Response, error) {
	return configPicker(
		"Roles de gestión: elegí para agregar o quitar.",
		discordgo.RoleSelectMenu,
		addRoleSelectID, "Agregar rol ➕",
		removeRoleSelectID, "Quitar rol ➖",
	), nil
}

// configPicker: dos selects nativos (canal o rol) en filas separadas,
// uno para sumar y otro para sacar.
func configPicker(prompt string, menu discordgo.SelectMenuType, addID, addPlaceholder, removeID, removePlaceholder string) *Response {
	resp := Ephemeral(prompt)
	resp.Components = []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{MenuType: menu, CustomID: addID, Placeholder: addPlaceholder},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{MenuType: menu, CustomID: removeID, Placeholder: removePlaceholder},
		}},
	}
	return resp
}

func (r *Router) handleAddChannelSelect(ctx context.Context, ev *Event) (*Response, error) {
	if len(ev.Component.Values) == 0 {
		return Ephemeral(texts.InvalidSelection()), nil
	}
	channelID := ev.Component.Values[0]
	changed, err := r.config.AddChannel(ctx, ev.GuildID, channelID)
	if err != nil {
		return nil, err
	}
	if !changed {
		return Ephemeral(texts.ChannelAlready(channelID)), nil
	}
	return Ephemeral(texts.ChannelAdded(channelID)), nil
}

func (r *Router) handleRemoveChannelSelect(ctx context.Context, ev *Event) (*Response, error) {
	if len(ev.Component.Values) == 0 {
		return Ephemeral(texts.InvalidSelection()), nil
	}
	channelID := ev.Component.Values[0]
	changed, err := r.config.RemoveChannel(ctx, ev.GuildID, channelID)
	if err != nil {
		return nil, err
	}
	if !changed {
		return Ephemeral(texts.ChannelNotManagement(channelID)), nil
	}
	return Ephemeral(texts.ChannelRemoved(channelID)), nil
}

func (r *Router) handleAddRoleSelect(ctx context.Context, ev *Event) (*Response, error) {
	if len(ev.Component.Values) == 0 {
		return Ephemeral(texts.InvalidSelection()), nil
	}
	roleID := ev.Component.Values[0]
	changed, err := r.config.AddRole(ctx, ev.GuildID, roleID)
	if err != nil {
		return nil, err
	}
	if !changed {
		return Ephemeral(texts.RoleAlready(roleID)), nil
	}
	return Ephemeral(texts.RoleAdded(roleID)), nil
}

func (r *Router) handleRemoveRoleSelect(ctx context.Context, ev *Event) (*Response, error) {
	if len(ev.Component.Values) == 0 {
		return Ephemeral(texts.InvalidSelection()), nil
	}
	roleID := ev.Component.Values[0]
	changed, err := r.config.RemoveRole(ctx, ev.GuildID, roleID)
	if err != nil {
		return nil, err
	}
	if !changed {
		return Ephemeral(texts.RoleNotManagement(roleID)), nil
	}
	return Ephemeral(texts.RoleRemoved(roleID)), nil
}
