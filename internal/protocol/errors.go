package protocol

// Error codes. 1xxx protocol, 2xxx structural, 3xxx rule violations.
const (
	ErrCodeUnknown    = 1000
	ErrCodeInvalidMsg = 1001

	ErrCodeLobbyNotFound    = 2001
	ErrCodeLobbyFull        = 2002
	ErrCodeNotInLobby       = 2003
	ErrCodeGameInProgress   = 2004
	ErrCodeNameTaken        = 2005
	ErrCodeNotHost          = 2006
	ErrCodeNotEnoughPlayers = 2007
	ErrCodeWrongPhase       = 2008

	ErrCodeNotYourTurn    = 3001
	ErrCodeEmptyPlay      = 3002
	ErrCodeNotAdjacent    = 3003
	ErrCodeInvalidShape   = 3004
	ErrCodeTooFewCards    = 3005
	ErrCodeSetBeatsRun    = 3006
	ErrCodeTooLow         = 3007
	ErrCodeBadScoutCard   = 3008
	ErrCodeBadInsertIndex = 3009
	ErrCodeNoCurrentPlay  = 3010
	ErrCodeNotTokenMode   = 3011
	ErrCodeAlreadyKept    = 3012
)

// ErrorMessages maps error codes to default texts.
var ErrorMessages = map[int]string{
	ErrCodeUnknown:    "Unknown error",
	ErrCodeInvalidMsg: "Invalid message format",

	ErrCodeLobbyNotFound:    "Lobby not found",
	ErrCodeLobbyFull:        "Lobby is full",
	ErrCodeNotInLobby:       "You are not in this lobby",
	ErrCodeGameInProgress:   "Game already in progress",
	ErrCodeNameTaken:        "The player name is already in use for this lobby",
	ErrCodeNotHost:          "Only the host can start the game",
	ErrCodeNotEnoughPlayers: "Not enough players to start",
	ErrCodeWrongPhase:       "That action is not allowed in the current phase",

	ErrCodeNotYourTurn:    "It is not your turn",
	ErrCodeEmptyPlay:      "You can not make a play with no cards",
	ErrCodeNotAdjacent:    "You can not play cards that are not adjacent in your hand",
	ErrCodeInvalidShape:   "Invalid play, you must play a set or a run",
	ErrCodeTooFewCards:    "You can not make a play with fewer cards than the current play",
	ErrCodeSetBeatsRun:    "You can not play a run when the current play is a set",
	ErrCodeTooLow:         "You can not make a play with cards of lower value than the current play",
	ErrCodeBadScoutCard:   "You can only scout the first or last card of the current play",
	ErrCodeBadInsertIndex: "Invalid position to insert the scouted card",
	ErrCodeNoCurrentPlay:  "There is no play on the table to scout from",
	ErrCodeNotTokenMode:   "You can only end your turn after scouting",
	ErrCodeAlreadyKept:    "You have already kept your hand",
}
