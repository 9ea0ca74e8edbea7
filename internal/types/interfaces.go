package types

import (
	"github.com/scoutfriends/scout-server/internal/protocol"
)

// ClientInterface abstracts a connected player session for the game core.
// The transport owns the session id; the core stores it as an opaque key.
type ClientInterface interface {
	GetID() string
	GetLobby() string
	SetLobby(code string)
	SendMessage(msg *protocol.Message)
	Close()
}
