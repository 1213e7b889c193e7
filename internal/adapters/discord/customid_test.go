package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomIDRoundTrips(t *testing.T) {
	cases := []struct {
		encode func(string) string
		decode func(string) (string, bool)
	}{
		{EncodeGuessButton, DecodeGuessButton},
		{EncodeGuessModal, DecodeGuessModal},
		{EncodeCloseButton, DecodeCloseButton},
		{EncodeReopenButton, DecodeReopenButton},
		{EncodeEditGuessSelect, DecodeEditGuessSelect},
		{EncodeDeleteGuessSelect, DecodeDeleteGuessSelect},
	}
	for _, c := range cases {
		id := c.encode("pollo-misterioso-42")
		got, ok := c.decode(id)
		require.True(t, ok, id)
		assert.Equal(t, "pollo-misterioso-42", got)
	}
}

func TestCustomIDDecodeRejectsForeignIDs(t *testing.T) {
	_, ok := DecodeGuessButton("button-close_game-x")
	assert.False(t, ok)
	_, ok = DecodeGuessButton("button-guess-") // prefijo sin payload
	assert.False(t, ok)
	_, ok = DecodeGuessModal("modal-edit_guess-x-u1")
	assert.False(t, ok)
}

func TestEditGuessModalCarriesGameAndUser(t *testing.T) {
	// el id de juego trae guiones propios; el corte es por el ÚLTIMO
	id := EncodeEditGuessModal("pollo-misterioso-42", "123456789")
	gameID, userID, ok := DecodeEditGuessModal(id)
	require.True(t, ok)
	assert.Equal(t, "pollo-misterioso-42", gameID)
	assert.Equal(t, "123456789", userID)

	_, _, ok = DecodeEditGuessModal("modal-edit_guess-solojuego")
	assert.False(t, ok)
	_, _, ok = DecodeEditGuessModal("modal-guess-pollo-42")
	assert.False(t, ok)
}
