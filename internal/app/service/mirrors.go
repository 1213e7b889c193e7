package service

import (
	"context"
	"errors"
	"log"

	"github.com/jose-valero/guess-game-bot/internal/domain"
)

// refreshMirrors re-renderiza todos los mensajes espejo del juego.
// Best-effort: un edit que falla se loguea y seguimos; si el mensaje
// ya no existe descartamos la referencia y persistimos la lista
// recortada. Nunca devuelve error al caller.
func refreshMirrors(ctx context.Context, games GameRepo, msg Messenger, g *domain.Game) {
	if len(g.PostedMessages) == 0 {
		return
	}

	var gone []domain.PostedMessage
	for _, pm := range g.PostedMessages {
		err := msg.UpdateGameMessage(ctx, pm.ChannelID, pm.MessageID, g)
		if errors.Is(err, ErrMessageGone) {
			gone = append(gone, pm)
			continue
		}
		if err != nil {
			log.Printf("[mirrors] edit %s/%s juego=%s: %v", pm.ChannelID, pm.MessageID, g.ID, err)
		}
	}

	if len(gone) == 0 {
		return
	}
	for _, pm := range gone {
		g.RemoveMirror(pm.ChannelID, pm.MessageID)
	}
	if err := games.Save(ctx, g); err != nil {
		log.Printf("[mirrors] save tras recorte juego=%s: %v", g.ID, err)
	}
}
