package discord

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
)

// ParsePublicKey decodifica la public key hex que da el developer
// portal. Se valida una sola vez en el arranque.
func ParsePublicKey(hexKey string) (ed25519.PublicKey, error) {
	raw, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("public key no es hex válido: %w", err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("public key con largo %d, esperaba %d", len(raw), ed25519.PublicKeySize)
	}
	return ed25519.PublicKey(raw), nil
}

// VerifySignature chequea la firma ed25519 del webhook: la plataforma
// firma timestamp||body y manda la firma en hex. Cualquier cosa rara
// (hex inválido, largo incorrecto) cuenta como firma mala, nunca panic.
func VerifySignature(pub ed25519.PublicKey, signatureHex, timestamp string, body []byte) bool {
	sig, err := hex.DecodeString(signatureHex)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return false
	}
	msg := make([]byte, 0, len(timestamp)+len(body))
	msg = append(msg, timestamp...)
	msg = append(msg, body...)
	return ed25519.Verify(pub, msg, sig)
}
