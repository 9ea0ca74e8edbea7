package protocol

import "encoding/json"

// Message is the wire envelope for every command and event.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType identifies a command or event.
type MessageType string

// Client → server commands.
const (
	MsgPing MessageType = "ping"

	MsgCreateLobby MessageType = "create_lobby"
	MsgJoinLobby   MessageType = "join_lobby"

	MsgStartGame MessageType = "start_game"
	MsgFlipHand  MessageType = "flip_hand"
	MsgKeepHand  MessageType = "keep_hand"
	MsgPlayCards MessageType = "play_cards"
	MsgScoutCard MessageType = "scout_card"
	MsgEndTurn   MessageType = "end_turn"
)

// Server → client events.
const (
	MsgConnected MessageType = "connected"
	MsgPong      MessageType = "pong"

	MsgLobbyCreated MessageType = "lobby_created"
	MsgPlayerJoined MessageType = "player_joined"
	MsgPlayerLeft   MessageType = "player_left"
	MsgNewHost      MessageType = "new_host"

	MsgGameStarted      MessageType = "game_started"
	MsgGameMode         MessageType = "game_mode"
	MsgInitialGameState MessageType = "initial_game_state"
	MsgUpdateGameState  MessageType = "update_game_state"
	MsgFinishGame       MessageType = "finish_game"
	MsgSetPlay          MessageType = "set_play"
	MsgGameLog          MessageType = "game_log"

	// MsgError reports structural failures (unknown lobby, wrong phase, not host).
	// MsgPlayerError reports rule violations the player UI surfaces differently.
	MsgError       MessageType = "error"
	MsgPlayerError MessageType = "player_error"
)
