package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jose-valero/guess-game-bot/internal/domain"
)

// fakes en memoria para los tests de servicios

type fakeGameRepo struct {
	mu    sync.Mutex
	games map[string]*domain.Game // key guild|id
	saves int
}

func newFakeGameRepo() *fakeGameRepo {
	return &fakeGameRepo{games: map[string]*domain.Game{}}
}

func key(guildID, gameID string) string { return guildID + "|" + gameID }

// clone evita que el test y el "store" compartan punteros (como una DB real)
func clone(g *domain.Game) *domain.Game {
	b, _ := json.Marshal(g)
	var out domain.Game
	_ = json.Unmarshal(b, &out)
	if out.Guesses == nil {
		out.Guesses = map[string]domain.Guess{}
	}
	return &out
}

func (r *fakeGameRepo) Get(_ context.Context, guildID, gameID string) (*domain.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.games[key(guildID, gameID)]
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	return clone(g), nil
}

func (r *fakeGameRepo) GetAll(_ context.Context, guildID string) ([]*domain.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Game
	for _, g := range r.games {
		if g.GuildID == guildID {
			out = append(out, clone(g))
		}
	}
	return out, nil
}

func (r *fakeGameRepo) Save(_ context.Context, g *domain.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	r.games[key(g.GuildID, g.ID)] = clone(g)
	return nil
}

type fakeConfigRepo struct {
	mu    sync.Mutex
	cfgs  map[string]domain.GuildConfig
	saves int
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{cfgs: map[string]domain.GuildConfig{}}
}

func (r *fakeConfigRepo) Get(_ context.Context, guildID string) (domain.GuildConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.cfgs[guildID]; ok {
		return c, nil
	}
	c := domain.GuildConfig{GuildID: guildID}
	r.cfgs[guildID] = c
	return c, nil
}

func (r *fakeConfigRepo) Save(_ context.Context, c domain.GuildConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	r.cfgs[c.GuildID] = c
	return nil
}

type sentMessage struct {
	ChannelID string
	GameID    string
}

type updatedMessage struct {
	ChannelID string
	MessageID string
	GameID    string
	Closed    bool
	Guesses   int
}

type fakeMessenger struct {
	mu      sync.Mutex
	nextID  int
	sent    []sentMessage
	updated []updatedMessage
	dms     map[string][]string // userID -> contents
	goneIDs map[string]bool     // messageID -> responde ErrMessageGone
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{dms: map[string][]string{}, goneIDs: map[string]bool{}}
}

func (m *fakeMessenger) SendGameMessage(_ context.Context, channelID string, g *domain.Game) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.sent = append(m.sent, sentMessage{ChannelID: channelID, GameID: g.ID})
	return fmt.Sprintf("msg-%d", m.nextID), nil
}

func (m *fakeMessenger) UpdateGameMessage(_ context.Context, channelID, messageID string, g *domain.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.goneIDs[messageID] {
		return ErrMessageGone
	}
	m.updated = append(m.updated, updatedMessage{
		ChannelID: channelID, MessageID: messageID, GameID: g.ID,
		Closed: g.Closed, Guesses: len(g.Guesses),
	})
	return nil
}

func (m *fakeMessenger) SendDirectMessage(_ context.Context, userID, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dms[userID] = append(m.dms[userID], content)
	return nil
}
