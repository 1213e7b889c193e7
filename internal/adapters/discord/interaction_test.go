package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventPing(t *testing.T) {
	ev, err := ParseEvent([]byte(`{"id":"1","application_id":"app","type":1}`))
	require.NoError(t, err)
	assert.Equal(t, EventPing, ev.Kind)
}

func TestParseEventSubcommandFlattensOptions(t *testing.T) {
	body := []byte(`{
		"id": "2", "application_id": "app", "type": 2,
		"guild_id": "g1", "channel_id": "c1",
		"member": {
			"nick": "El Capo",
			"permissions": "8",
			"roles": ["r1", "r2"],
			"user": {"id": "u1", "username": "capo", "global_name": "Capo Global"}
		},
		"data": {
			"id": "cmd", "name": "juego", "type": 1,
			"options": [{
				"name": "crear", "type": 1,
				"options": [
					{"name": "titulo", "type": 3, "value": "Mi Juego"},
					{"name": "min", "type": 4, "value": 1},
					{"name": "max", "type": 4, "value": 10}
				]
			}]
		}
	}`)

	ev, err := ParseEvent(body)
	require.NoError(t, err)
	require.Equal(t, EventCommand, ev.Kind)

	assert.Equal(t, "g1", ev.GuildID)
	assert.Equal(t, "c1", ev.ChannelID)
	assert.Equal(t, "u1", ev.Member.UserID)
	assert.Equal(t, "El Capo", ev.Member.Nickname) // nick pisa global_name
	assert.Equal(t, []string{"r1", "r2"}, ev.Member.Roles)
	assert.True(t, ev.Member.IsAdmin)

	assert.Equal(t, "juego", ev.Command.Name)
	assert.Equal(t, "crear", ev.Command.Sub)

	titulo, ok := ev.Command.Str("titulo")
	require.True(t, ok)
	assert.Equal(t, "Mi Juego", titulo)
	min, ok := ev.Command.Int("min")
	require.True(t, ok)
	assert.Equal(t, 1, min)

	// opción ausente o de otro tipo
	_, ok = ev.Command.Str("descripcion")
	assert.False(t, ok)
	_, ok = ev.Command.Str("min")
	assert.False(t, ok)
}

func TestParseEventTopLevelCommand(t *testing.T) {
	body := []byte(`{
		"id": "3", "application_id": "app", "type": 2,
		"guild_id": "g1", "channel_id": "c1",
		"member": {"permissions": "0", "user": {"id": "u2", "username": "ana"}},
		"data": {
			"id": "cmd", "name": "adivinar", "type": 1,
			"options": [
				{"name": "juego", "type": 3, "value": "pollo-42"},
				{"name": "valor", "type": 3, "value": "7"}
			]
		}
	}`)

	ev, err := ParseEvent(body)
	require.NoError(t, err)
	assert.Equal(t, "adivinar", ev.Command.Name)
	assert.Empty(t, ev.Command.Sub)
	assert.False(t, ev.Member.IsAdmin)
	assert.Equal(t, "ana", ev.Member.Nickname) // sin nick ni global_name cae al username

	v, ok := ev.Command.Str("valor")
	require.True(t, ok)
	assert.Equal(t, "7", v)
}

func TestParseEventComponent(t *testing.T) {
	body := []byte(`{
		"id": "4", "application_id": "app", "type": 3,
		"guild_id": "g1", "channel_id": "c1",
		"member": {"permissions": "0", "user": {"id": "u1", "username": "capo"}},
		"data": {"custom_id": "selector-config-add_channel", "component_type": 8, "values": ["c9"]}
	}`)

	ev, err := ParseEvent(body)
	require.NoError(t, err)
	require.Equal(t, EventComponent, ev.Kind)
	assert.Equal(t, "selector-config-add_channel", ev.Component.CustomID)
	assert.Equal(t, []string{"c9"}, ev.Component.Values)
}

func TestParseEventModal(t *testing.T) {
	body := []byte(`{
		"id": "5", "application_id": "app", "type": 5,
		"guild_id": "g1", "channel_id": "c1",
		"member": {"permissions": "0", "user": {"id": "u1", "username": "capo"}},
		"data": {
			"custom_id": "modal-guess-pollo-42",
			"components": [{
				"type": 1,
				"components": [{"type": 4, "custom_id": "input-guess-value", "value": "7"}]
			}]
		}
	}`)

	ev, err := ParseEvent(body)
	require.NoError(t, err)
	require.Equal(t, EventModal, ev.Kind)
	assert.Equal(t, "modal-guess-pollo-42", ev.Modal.CustomID)
	assert.Equal(t, "7", ev.Modal.Fields["input-guess-value"])
}

func TestParseEventRejectsUnknownTypes(t *testing.T) {
	// autocomplete no está ruteado
	_, err := ParseEvent([]byte(`{"id":"6","application_id":"app","type":4,"data":{"id":"cmd","name":"juego","type":1}}`))
	assert.ErrorIs(t, err, ErrUnrecognizedEvent)

	_, err = ParseEvent([]byte(`{"id":"7","application_id":"app","type":99}`))
	assert.ErrorIs(t, err, ErrUnrecognizedEvent)

	_, err = ParseEvent([]byte(`no es json`))
	assert.ErrorIs(t, err, ErrUnrecognizedEvent)
}
