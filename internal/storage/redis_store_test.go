package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client)
}

func sampleLobby(code string) *LobbyData {
	return &LobbyData{
		Code:             code,
		State:            2,
		CreatedAt:        1700000000,
		CurrentPlayOwner: "alice",
		CurrentPlaySize:  3,
		Players: []PlayerData{
			{Name: "alice", IsHost: true, Points: 4, CardsLeft: 7, Tokens: 0},
			{Name: "bob", Points: -2, CardsLeft: 9, Tokens: 1},
		},
	}
}

func TestRedisStore_SaveAndLoad(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	want := sampleLobby("ABC123")
	require.NoError(t, store.SaveLobby(ctx, "ABC123", want))

	got, err := store.LoadLobby(ctx, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRedisStore_LoadMissing(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	got, err := store.LoadLobby(context.Background(), "NOSUCH")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStore_SaveNil(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	assert.NoError(t, store.SaveLobby(context.Background(), "ABC123", nil))
}

func TestRedisStore_Delete(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveLobby(ctx, "ABC123", sampleLobby("ABC123")))
	require.NoError(t, store.DeleteLobby(ctx, "ABC123"))

	got, err := store.LoadLobby(ctx, "ABC123")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting twice is harmless.
	assert.NoError(t, store.DeleteLobby(ctx, "ABC123"))
}

func TestRedisStore_GetAllLobbyCodes(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	codes, err := store.GetAllLobbyCodes(ctx)
	require.NoError(t, err)
	assert.Empty(t, codes)

	require.NoError(t, store.SaveLobby(ctx, "AAA111", sampleLobby("AAA111")))
	require.NoError(t, store.SaveLobby(ctx, "BBB222", sampleLobby("BBB222")))

	codes, err = store.GetAllLobbyCodes(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"AAA111", "BBB222"}, codes)
}
