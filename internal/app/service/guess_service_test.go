package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/guess-game-bot/internal/domain"
)

func setupGame(t *testing.T, in CreateInput) (*fakeGameRepo, *fakeMessenger, *GuessService, *GameService) {
	t.Helper()
	repo := newFakeGameRepo()
	msg := newFakeMessenger()
	games := NewGameService(repo, msg)
	guesses := NewGuessService(repo, msg)
	_, err := games.Create(context.Background(), "7", "creator", in)
	require.NoError(t, err)
	return repo, msg, guesses, games
}

func TestSubmitHappyPathAndMirrorUpdate(t *testing.T) {
	repo, msg, guesses, games := setupGame(t, CreateInput{ID: "juego"})
	ctx := context.Background()

	// hay un espejo publicado antes de la guess
	_, err := games.Post(ctx, "7", "juego", "chan-1")
	require.NoError(t, err)

	g, err := guesses.Submit(ctx, "7", "juego", "100", "cami", "42")
	require.NoError(t, err)
	assert.Equal(t, "42", g.Guesses["100"].Value)

	stored, err := repo.Get(ctx, "7", "juego")
	require.NoError(t, err)
	require.Contains(t, stored.Guesses, "100")
	assert.Equal(t, "42", stored.Guesses["100"].Value)
	assert.Equal(t, "cami", stored.Guesses["100"].Nickname)
	assert.False(t, stored.Guesses["100"].SubmittedAt.IsZero())

	// el espejo recibió el update con la guess nueva
	require.Len(t, msg.updated, 1)
	assert.Equal(t, 1, msg.updated[0].Guesses)
}

func TestSubmitDuplicateKeepsOriginal(t *testing.T) {
	repo, _, guesses, _ := setupGame(t, CreateInput{ID: "juego"})
	ctx := context.Background()

	_, err := guesses.Submit(ctx, "7", "juego", "U", "ana", "5")
	require.NoError(t, err)

	g, err := guesses.Submit(ctx, "7", "juego", "U", "ana", "9")
	require.ErrorIs(t, err, domain.ErrDuplicateGuess)
	require.NotNil(t, g, "el juego vuelve igual para armar el mensaje")
	assert.Equal(t, "5", g.Guesses["U"].Value)

	stored, _ := repo.Get(ctx, "7", "juego")
	assert.Equal(t, "5", stored.Guesses["U"].Value, "la guess original no se pisa")
}

func TestSubmitClosedGame(t *testing.T) {
	_, _, guesses, games := setupGame(t, CreateInput{ID: "juego"})
	ctx := context.Background()

	_, err := games.Close(ctx, "7", "juego")
	require.NoError(t, err)

	_, err = guesses.Submit(ctx, "7", "juego", "U", "ana", "5")
	require.ErrorIs(t, err, domain.ErrGameClosed)
}

func TestSubmitBounds(t *testing.T) {
	_, _, guesses, _ := setupGame(t, CreateInput{ID: "juego", Min: intp(1), Max: intp(10)})
	ctx := context.Background()

	for _, bad := range []string{"0", "11", "banana"} {
		_, err := guesses.Submit(ctx, "7", "juego", "u-"+bad, "x", bad)
		var be *domain.BoundsError
		require.ErrorAs(t, err, &be, "valor %q", bad)
	}
	for i, good := range []string{"1", "10"} {
		_, err := guesses.Submit(ctx, "7", "juego", string(rune('a'+i)), "x", good)
		require.NoError(t, err, "valor %q", good)
	}
}

func TestSubmitGameNotFound(t *testing.T) {
	_, _, guesses, _ := setupGame(t, CreateInput{ID: "juego"})
	_, err := guesses.Submit(context.Background(), "7", "nope", "U", "ana", "5")
	require.ErrorIs(t, err, domain.ErrGameNotFound)
}

func TestFirstGuessDMsCreator(t *testing.T) {
	_, msg, guesses, _ := setupGame(t, CreateInput{ID: "juego", Title: "El Juego"})
	ctx := context.Background()

	_, err := guesses.Submit(ctx, "7", "juego", "100", "cami", "42")
	require.NoError(t, err)
	require.Len(t, msg.dms["creator"], 1)
	assert.Contains(t, msg.dms["creator"][0], "cami")

	// la segunda guess ya no avisa
	_, err = guesses.Submit(ctx, "7", "juego", "101", "leo", "43")
	require.NoError(t, err)
	assert.Len(t, msg.dms["creator"], 1)
}

func TestEditGuess(t *testing.T) {
	repo, _, guesses, _ := setupGame(t, CreateInput{ID: "juego"})
	ctx := context.Background()

	_, err := guesses.Submit(ctx, "7", "juego", "U", "ana", "5")
	require.NoError(t, err)

	g, gu, err := guesses.Edit(ctx, "7", "juego", "U", "8")
	require.NoError(t, err)
	assert.Equal(t, "8", gu.Value)
	assert.Equal(t, "ana", gu.Nickname, "el nickname se conserva")
	assert.Equal(t, "8", g.Guesses["U"].Value)

	stored, _ := repo.Get(ctx, "7", "juego")
	assert.Equal(t, "8", stored.Guesses["U"].Value)
}

func TestEditGuessNotFoundDoesNotMutate(t *testing.T) {
	repo, _, guesses, _ := setupGame(t, CreateInput{ID: "juego"})
	ctx := context.Background()

	before := repo.saves
	_, _, err := guesses.Edit(ctx, "7", "juego", "ghost", "8")
	require.ErrorIs(t, err, domain.ErrGuessNotFound)
	assert.Equal(t, before, repo.saves, "sin mutación de estado")
}

func TestDeleteGuess(t *testing.T) {
	repo, _, guesses, _ := setupGame(t, CreateInput{ID: "juego"})
	ctx := context.Background()

	_, err := guesses.Submit(ctx, "7", "juego", "U", "ana", "5")
	require.NoError(t, err)

	_, gu, err := guesses.Delete(ctx, "7", "juego", "U")
	require.NoError(t, err)
	assert.Equal(t, "5", gu.Value)

	stored, _ := repo.Get(ctx, "7", "juego")
	assert.NotContains(t, stored.Guesses, "U")

	// segunda vez: not found
	_, _, err = guesses.Delete(ctx, "7", "juego", "U")
	require.ErrorIs(t, err, domain.ErrGuessNotFound)
}

func TestMirrorGoneGetsDropped(t *testing.T) {
	repo, msg, guesses, games := setupGame(t, CreateInput{ID: "juego"})
	ctx := context.Background()

	_, err := games.Post(ctx, "7", "juego", "chan-1") // msg-1
	require.NoError(t, err)
	_, err = games.Post(ctx, "7", "juego", "chan-2") // msg-2
	require.NoError(t, err)

	msg.goneIDs["msg-1"] = true

	_, err = guesses.Submit(ctx, "7", "juego", "U", "ana", "5")
	require.NoError(t, err)

	stored, _ := repo.Get(ctx, "7", "juego")
	require.Len(t, stored.PostedMessages, 1, "la referencia muerta se descarta")
	assert.Equal(t, "msg-2", stored.PostedMessages[0].MessageID)
}
