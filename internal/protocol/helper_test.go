package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageRoundTrip(t *testing.T) {
	t.Parallel()

	msg, err := NewMessage(MsgJoinLobby, JoinLobbyPayload{LobbyCode: "ABC123", Name: "alice"})
	require.NoError(t, err)

	data, err := msg.Encode()
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, MsgJoinLobby, decoded.Type)

	payload, err := ParsePayload[JoinLobbyPayload](decoded)
	require.NoError(t, err)
	assert.Equal(t, "ABC123", payload.LobbyCode)
	assert.Equal(t, "alice", payload.Name)
}

func TestNewMessage_NilPayload(t *testing.T) {
	t.Parallel()

	msg, err := NewMessage(MsgPong, nil)
	require.NoError(t, err)
	assert.Nil(t, msg.Payload)

	data, err := msg.Encode()
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, MsgPong, decoded.Type)
}

func TestDecode_Garbage(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte("not json"))
	assert.Error(t, err)
}

func TestNewErrorMessage(t *testing.T) {
	t.Parallel()

	msg := NewErrorMessage(ErrCodeLobbyNotFound)
	require.Equal(t, MsgError, msg.Type)

	payload, err := ParsePayload[ErrorPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, ErrCodeLobbyNotFound, payload.Code)
	assert.Equal(t, ErrorMessages[ErrCodeLobbyNotFound], payload.Message)
}

func TestNewPlayerErrorMessageWithText(t *testing.T) {
	t.Parallel()

	msg := NewPlayerErrorMessageWithText(ErrCodeTooLow, "custom text")
	require.Equal(t, MsgPlayerError, msg.Type)

	payload, err := ParsePayload[ErrorPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, ErrCodeTooLow, payload.Code)
	assert.Equal(t, "custom text", payload.Message)
}

func TestErrorMessages_CoverAllCodes(t *testing.T) {
	t.Parallel()

	codes := []int{
		ErrCodeUnknown, ErrCodeInvalidMsg,
		ErrCodeLobbyNotFound, ErrCodeLobbyFull, ErrCodeNotInLobby,
		ErrCodeGameInProgress, ErrCodeNameTaken, ErrCodeNotHost,
		ErrCodeNotEnoughPlayers, ErrCodeWrongPhase,
		ErrCodeNotYourTurn, ErrCodeEmptyPlay, ErrCodeNotAdjacent,
		ErrCodeInvalidShape, ErrCodeTooFewCards, ErrCodeSetBeatsRun,
		ErrCodeTooLow, ErrCodeBadScoutCard, ErrCodeBadInsertIndex,
		ErrCodeNoCurrentPlay, ErrCodeNotTokenMode, ErrCodeAlreadyKept,
	}
	for _, code := range codes {
		assert.NotEmpty(t, ErrorMessages[code], "code %d has no default text", code)
	}
}
