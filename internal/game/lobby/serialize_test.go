package lobby

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoutfriends/scout-server/internal/storage"
)

func TestToLobbyData(t *testing.T) {
	t.Parallel()

	l, _ := inProgressLobby()
	l.Players[0].Points = 4
	l.CurrentPlay = handOf(6, 7)
	l.CurrentPlayOwner = "alice"

	data := l.ToLobbyData()

	assert.Equal(t, "TEST01", data.Code)
	assert.Equal(t, int(StateInProgress), data.State)
	assert.Equal(t, l.CreatedAt.Unix(), data.CreatedAt)
	assert.Equal(t, "alice", data.CurrentPlayOwner)
	assert.Equal(t, 2, data.CurrentPlaySize)

	require.Len(t, data.Players, 3)
	assert.Equal(t, storage.PlayerData{
		Name:      "alice",
		IsHost:    true,
		Points:    4,
		CardsLeft: 3,
		Tokens:    1,
	}, data.Players[0])
}
