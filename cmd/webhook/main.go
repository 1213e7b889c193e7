package main

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/jose-valero/guess-game-bot/internal/adapters/discord"
	"github.com/jose-valero/guess-game-bot/internal/app/service"
	"github.com/jose-valero/guess-game-bot/internal/infra/config"
	"github.com/jose-valero/guess-game-bot/internal/infra/storage"
)

// app es todo lo que el handler necesita, armado UNA vez por cold
// start en newApp. Nada de estado global suelto.
type app struct {
	pubKey ed25519.PublicKey
	router *discord.Router
}

func newApp(ctx context.Context) (*app, error) {
	cfg := config.Load()

	pubKey, err := discord.ParsePublicKey(cfg.DiscordPublicKey)
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := storage.Migrate(db); err != nil {
		return nil, err
	}

	msg, err := discord.NewMessenger(cfg.DiscordToken)
	if err != nil {
		return nil, err
	}

	games := storage.NewGameRepo(db)
	cfgs := storage.NewGuildConfigRepo(db)

	router := discord.NewRouter(
		service.NewGameService(games, msg),
		service.NewGuessService(games, msg),
		service.NewGuildConfigService(cfgs),
		cfgs,
	)
	return &app{pubKey: pubKey, router: router}, nil
}

func (a *app) handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	log.Printf("[webhook] hit path=%s ip=%s b64=%v",
		req.RawPath, req.RequestContext.HTTP.SourceIP, req.IsBase64Encoded)

	// 1) body crudo (API Gateway suele mandarlo en base64)
	body := []byte(req.Body)
	if req.IsBase64Encoded {
		dec, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			log.Println("[webhook] body base64 inválido")
			return respond(400, `{"error":"invalid body"}`), nil
		}
		body = dec
	}

	// 2) firma ed25519 SOBRE EL BODY CRUDO, antes de parsear nada
	sig := header(req, "x-signature-ed25519")
	ts := header(req, "x-signature-timestamp")
	if !discord.VerifySignature(a.pubKey, sig, ts, body) {
		log.Println("[webhook] 🔒 firma inválida")
		return respond(401, `{"error":"invalid signature"}`), nil
	}

	// 3) normalizar y rutear; un payload irreconocible es fatal
	ev, err := discord.ParseEvent(body)
	if err != nil {
		log.Println("[webhook] evento no reconocido:", err)
		return respond(500, `{"error":"internal"}`), nil
	}

	resp, err := a.router.Dispatch(ctx, ev)
	if err != nil {
		log.Println("[webhook] dispatch:", err)
		return respond(500, `{"error":"internal"}`), nil
	}

	out, err := discord.MarshalResponse(resp)
	if err != nil {
		log.Println("[webhook] marshal:", err)
		return respond(500, `{"error":"internal"}`), nil
	}
	return respond(200, string(out)), nil
}

// API Gateway v2 baja los headers a minúscula, pero no confiamos
func header(req events.APIGatewayV2HTTPRequest, name string) string {
	if v := req.Headers[name]; v != "" {
		return v
	}
	for k, v := range req.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

func respond(status int, body string) events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	a, err := newApp(ctx)
	if err != nil {
		log.Fatalf("arranque del webhook: %v", err)
	}
	lambda.Start(a.handler)
}
