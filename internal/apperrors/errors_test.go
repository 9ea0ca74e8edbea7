package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoutfriends/scout-server/internal/protocol"
)

func TestNewf(t *testing.T) {
	t.Parallel()

	err := Newf(protocol.ErrCodeNotEnoughPlayers, false, "Need at least %d players to start", 3)
	assert.Equal(t, protocol.ErrCodeNotEnoughPlayers, err.Code)
	assert.Equal(t, "Need at least 3 players to start", err.Error())
	assert.False(t, err.Rule)
}

func TestGameError_UnwrapsThroughWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("handling play: %w", ErrTooLow)

	var gameErr *GameError
	require.True(t, errors.As(wrapped, &gameErr))
	assert.Equal(t, protocol.ErrCodeTooLow, gameErr.Code)
	assert.True(t, gameErr.Rule)
}

func TestPredeclaredErrors_Classification(t *testing.T) {
	t.Parallel()

	structural := []*GameError{
		ErrLobbyNotFound, ErrLobbyFull, ErrNotInLobby, ErrGameInProgress,
		ErrNameTaken, ErrNotHost, ErrNotEnoughPlayers, ErrWrongPhase,
	}
	for _, err := range structural {
		assert.False(t, err.Rule, "%s must not be a rule violation", err.Message)
		assert.NotEmpty(t, err.Message)
	}

	rules := []*GameError{
		ErrNotYourTurn, ErrEmptyPlay, ErrNotAdjacent, ErrInvalidShape,
		ErrTooFewCards, ErrSetBeatsRun, ErrTooLow, ErrBadScoutCard,
		ErrBadInsertIndex, ErrNoCurrentPlay, ErrNotTokenMode, ErrAlreadyKept,
	}
	for _, err := range rules {
		assert.True(t, err.Rule, "%s must be a rule violation", err.Message)
		assert.NotEmpty(t, err.Message)
	}
}
