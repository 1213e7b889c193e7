package discord

import "strings"

// Los custom ids viajan en los componentes y modales y son nuestro
// único canal para arrastrar estado (qué juego, qué usuario). Cada
// forma tiene su par Encode/Decode acá y en NINGÚN otro lado.

const (
	guessButtonPrefix  = "button-guess-"
	guessModalPrefix   = "modal-guess-"
	closeButtonPrefix  = "button-close_game-"
	reopenButtonPrefix = "button-reopen_game-"

	editGuessSelectPrefix   = "selector-manage_game-edit_guess-"
	deleteGuessSelectPrefix = "selector-manage_game-delete_guess-"
	editGuessModalPrefix    = "modal-edit_guess-"

	addChannelSelectID    = "selector-config-add_channel"
	removeChannelSelectID = "selector-config-remove_channel"
	addRoleSelectID       = "selector-config-add_role"
	removeRoleSelectID    = "selector-config-remove_role"

	// custom_id del text input dentro de los modales de guess
	guessInputID = "input-guess-value"
)

func EncodeGuessButton(gameID string) string  { return guessButtonPrefix + gameID }
func EncodeGuessModal(gameID string) string   { return guessModalPrefix + gameID }
func EncodeCloseButton(gameID string) string  { return closeButtonPrefix + gameID }
func EncodeReopenButton(gameID string) string { return reopenButtonPrefix + gameID }

func EncodeEditGuessSelect(gameID string) string   { return editGuessSelectPrefix + gameID }
func EncodeDeleteGuessSelect(gameID string) string { return deleteGuessSelectPrefix + gameID }

func DecodeGuessButton(id string) (string, bool)  { return decodeSuffix(id, guessButtonPrefix) }
func DecodeGuessModal(id string) (string, bool)   { return decodeSuffix(id, guessModalPrefix) }
func DecodeCloseButton(id string) (string, bool)  { return decodeSuffix(id, closeButtonPrefix) }
func DecodeReopenButton(id string) (string, bool) { return decodeSuffix(id, reopenButtonPrefix) }

func DecodeEditGuessSelect(id string) (string, bool) {
	return decodeSuffix(id, editGuessSelectPrefix)
}

func DecodeDeleteGuessSelect(id string) (string, bool) {
	return decodeSuffix(id, deleteGuessSelectPrefix)
}

// EncodeEditGuessModal arrastra juego Y usuario. El id de juego puede
// traer guiones, el user id no: al decodificar cortamos por el ÚLTIMO
// guion.
func EncodeEditGuessModal(gameID, userID string) string {
	return editGuessModalPrefix + gameID + "-" + userID
}

func DecodeEditGuessModal(id string) (gameID, userID string, ok bool) {
	rest, ok := decodeSuffix(id, editGuessModalPrefix)
	if !ok {
		return "", "", false
	}
	i := strings.LastIndex(rest, "-")
	if i <= 0 || i == len(rest)-1 {
		return "", "", false
	}
	return rest[:i], rest[i+1:], true
}

func decodeSuffix(id, prefix string) (string, bool) {
	if !strings.HasPrefix(id, prefix) {
		return "", false
	}
	rest := strings.TrimPrefix(id, prefix)
	return rest, rest != ""
}
