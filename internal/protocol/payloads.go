package protocol

// CardInfo is the wire form of a card. Primary is the face-up value.
type CardInfo struct {
	Primary   int `json:"primary"`
	Secondary int `json:"secondary"`
}

// ConnectedPayload is sent once after the websocket upgrade.
type ConnectedPayload struct {
	PlayerID string `json:"player_id"`
}

type CreateLobbyPayload struct {
	Name string `json:"name"`
}

type JoinLobbyPayload struct {
	LobbyCode string `json:"lobby_code"`
	Name      string `json:"name"`
}

// LobbyRefPayload covers commands that only name a lobby
// (start_game, flip_hand, keep_hand, end_turn).
type LobbyRefPayload struct {
	LobbyCode string `json:"lobby_code"`
}

type PlayCardsPayload struct {
	LobbyCode string     `json:"lobby_code"`
	Cards     []CardInfo `json:"cards"`
}

// ScoutCardPayload names an edge card of the current play and where to
// insert it. The client decides the orientation before sending.
type ScoutCardPayload struct {
	LobbyCode   string   `json:"lobby_code"`
	Card        CardInfo `json:"card"`
	InsertIndex int      `json:"insert_index"`
}

type LobbyCreatedPayload struct {
	LobbyCode string `json:"lobby_code"`
	HostName  string `json:"host_name"`
}

type PlayerJoinedPayload struct {
	Name   string `json:"name"`
	IsHost bool   `json:"is_host"`
}

type PlayerLeftPayload struct {
	Name string `json:"name"`
}

type NewHostPayload struct {
	Name string `json:"name"`
}

type GameModePayload struct {
	Mode string `json:"mode"`
}

// PlayerStatePayload is the per-player DTO re-sent in full on every
// state-changing success.
type PlayerStatePayload struct {
	Name        string     `json:"name"`
	IsTurn      bool       `json:"is_turn"`
	Points      int        `json:"points"`
	Cards       []CardInfo `json:"cards"`
	Tokens      int        `json:"tokens"`
	IsTokenMode bool       `json:"is_token_mode"`
}

type GameStatePayload struct {
	Players []PlayerStatePayload `json:"players"`
}

type SetPlayPayload struct {
	Owner string     `json:"owner"`
	Cards []CardInfo `json:"cards"`
}

type GameLogPayload struct {
	Message string `json:"message"`
}

type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
