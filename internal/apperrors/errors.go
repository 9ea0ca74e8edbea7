package apperrors

import (
	"fmt"

	"github.com/scoutfriends/scout-server/internal/protocol"
)

// GameError carries an error code for the wire. Rule marks violations of
// the game rules, which the client surfaces differently from structural
// failures.
type GameError struct {
	Code    int
	Message string
	Rule    bool
}

func (e *GameError) Error() string {
	return e.Message
}

// Newf builds a one-off GameError with formatted text.
func Newf(code int, rule bool, format string, args ...any) *GameError {
	return &GameError{Code: code, Message: fmt.Sprintf(format, args...), Rule: rule}
}

// Structural errors.
var (
	ErrLobbyNotFound    = &GameError{Code: protocol.ErrCodeLobbyNotFound, Message: protocol.ErrorMessages[protocol.ErrCodeLobbyNotFound]}
	ErrLobbyFull        = &GameError{Code: protocol.ErrCodeLobbyFull, Message: protocol.ErrorMessages[protocol.ErrCodeLobbyFull]}
	ErrNotInLobby       = &GameError{Code: protocol.ErrCodeNotInLobby, Message: protocol.ErrorMessages[protocol.ErrCodeNotInLobby]}
	ErrGameInProgress   = &GameError{Code: protocol.ErrCodeGameInProgress, Message: protocol.ErrorMessages[protocol.ErrCodeGameInProgress]}
	ErrNameTaken        = &GameError{Code: protocol.ErrCodeNameTaken, Message: protocol.ErrorMessages[protocol.ErrCodeNameTaken]}
	ErrNotHost          = &GameError{Code: protocol.ErrCodeNotHost, Message: protocol.ErrorMessages[protocol.ErrCodeNotHost]}
	ErrNotEnoughPlayers = &GameError{Code: protocol.ErrCodeNotEnoughPlayers, Message: protocol.ErrorMessages[protocol.ErrCodeNotEnoughPlayers]}
	ErrWrongPhase       = &GameError{Code: protocol.ErrCodeWrongPhase, Message: protocol.ErrorMessages[protocol.ErrCodeWrongPhase]}
)

// Rule violations.
var (
	ErrNotYourTurn    = &GameError{Code: protocol.ErrCodeNotYourTurn, Message: protocol.ErrorMessages[protocol.ErrCodeNotYourTurn], Rule: true}
	ErrEmptyPlay      = &GameError{Code: protocol.ErrCodeEmptyPlay, Message: protocol.ErrorMessages[protocol.ErrCodeEmptyPlay], Rule: true}
	ErrNotAdjacent    = &GameError{Code: protocol.ErrCodeNotAdjacent, Message: protocol.ErrorMessages[protocol.ErrCodeNotAdjacent], Rule: true}
	ErrInvalidShape   = &GameError{Code: protocol.ErrCodeInvalidShape, Message: protocol.ErrorMessages[protocol.ErrCodeInvalidShape], Rule: true}
	ErrTooFewCards    = &GameError{Code: protocol.ErrCodeTooFewCards, Message: protocol.ErrorMessages[protocol.ErrCodeTooFewCards], Rule: true}
	ErrSetBeatsRun    = &GameError{Code: protocol.ErrCodeSetBeatsRun, Message: protocol.ErrorMessages[protocol.ErrCodeSetBeatsRun], Rule: true}
	ErrTooLow         = &GameError{Code: protocol.ErrCodeTooLow, Message: protocol.ErrorMessages[protocol.ErrCodeTooLow], Rule: true}
	ErrBadScoutCard   = &GameError{Code: protocol.ErrCodeBadScoutCard, Message: protocol.ErrorMessages[protocol.ErrCodeBadScoutCard], Rule: true}
	ErrBadInsertIndex = &GameError{Code: protocol.ErrCodeBadInsertIndex, Message: protocol.ErrorMessages[protocol.ErrCodeBadInsertIndex], Rule: true}
	ErrNoCurrentPlay  = &GameError{Code: protocol.ErrCodeNoCurrentPlay, Message: protocol.ErrorMessages[protocol.ErrCodeNoCurrentPlay], Rule: true}
	ErrNotTokenMode   = &GameError{Code: protocol.ErrCodeNotTokenMode, Message: protocol.ErrorMessages[protocol.ErrCodeNotTokenMode], Rule: true}
	ErrAlreadyKept    = &GameError{Code: protocol.ErrCodeAlreadyKept, Message: protocol.ErrorMessages[protocol.ErrCodeAlreadyKept], Rule: true}
)
