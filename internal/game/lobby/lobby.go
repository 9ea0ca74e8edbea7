// Package lobby implements the joinable game rooms and the in-game
// state machine for a round of Scout.
package lobby

import (
	"strings"
	"sync"
	"time"

	"github.com/scoutfriends/scout-server/internal/game/card"
	"github.com/scoutfriends/scout-server/internal/protocol"
	"github.com/scoutfriends/scout-server/internal/protocol/convert"
	"github.com/scoutfriends/scout-server/internal/types"
)

// Player is a member of a lobby. Hand order is significant: adjacency
// decides which multi-card plays are legal.
type Player struct {
	Client      types.ClientInterface
	Name        string
	IsHost      bool
	Hand        []card.Card
	Points      int
	IsTurn      bool
	Keep        bool // Setup phase: hand orientation finalized
	Tokens      int
	IsTokenMode bool // set after a scout until the player acts again
}

// Lobby is a joinable room hosting one round. All reads and mutations
// of its state go through the single mutex; outbound messages are
// collected in an outbox and sent after the lock is released.
type Lobby struct {
	Code             string
	HostID           string
	State            State
	Players          []*Player // order = turn order once the game starts
	CreatedAt        time.Time
	MinPlayers       int
	MaxPlayers       int
	StartingTokens   int
	CurrentPlay      []card.Card
	CurrentPlayOwner string // empty when no play stands

	mu     sync.Mutex
	closed bool // set when the registry dissolves or evicts the lobby
}

func (l *Lobby) findByIDLocked(sessionID string) *Player {
	for _, p := range l.Players {
		if p.Client != nil && p.Client.GetID() == sessionID {
			return p
		}
	}
	return nil
}

func (l *Lobby) findByNameLocked(name string) *Player {
	for _, p := range l.Players {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

func (l *Lobby) currentTurnPlayerLocked() *Player {
	for _, p := range l.Players {
		if p.IsTurn {
			return p
		}
	}
	return nil
}

func (l *Lobby) allKeptLocked() bool {
	for _, p := range l.Players {
		if !p.Keep {
			return false
		}
	}
	return len(l.Players) > 0
}

// clientsLocked snapshots the current member connections.
func (l *Lobby) clientsLocked() []types.ClientInterface {
	clients := make([]types.ClientInterface, 0, len(l.Players))
	for _, p := range l.Players {
		clients = append(clients, p.Client)
	}
	return clients
}

// broadcastLocked enqueues a message for every current member.
func (l *Lobby) broadcastLocked(o *outbox, msg *protocol.Message) {
	o.send(l.clientsLocked(), msg)
}

// gameStateLocked builds the full per-player DTO list.
func (l *Lobby) gameStateLocked() protocol.GameStatePayload {
	players := make([]protocol.PlayerStatePayload, len(l.Players))
	for i, p := range l.Players {
		players[i] = protocol.PlayerStatePayload{
			Name:        p.Name,
			IsTurn:      p.IsTurn,
			Points:      p.Points,
			Cards:       convert.CardsToInfos(p.Hand),
			Tokens:      p.Tokens,
			IsTokenMode: p.IsTokenMode,
		}
	}
	return protocol.GameStatePayload{Players: players}
}

// run executes fn under the lobby lock, then flushes the outbox.
func (l *Lobby) run(fn func(o *outbox) error) error {
	var out outbox
	l.mu.Lock()
	err := fn(&out)
	l.mu.Unlock()
	out.flush()
	return err
}

// PlayerNames returns the member names in order.
func (l *Lobby) PlayerNames() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	names := make([]string, len(l.Players))
	for i, p := range l.Players {
		names[i] = p.Name
	}
	return names
}
