package lobby

import (
	"context"
	"encoding/hex"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/scoutfriends/scout-server/internal/apperrors"
	"github.com/scoutfriends/scout-server/internal/config"
	"github.com/scoutfriends/scout-server/internal/logger"
	"github.com/scoutfriends/scout-server/internal/protocol"
	"github.com/scoutfriends/scout-server/internal/storage"
	"github.com/scoutfriends/scout-server/internal/types"
)

const codeLength = 6

// SnapshotStore persists lobby snapshots for inspection. Writes are
// fire-and-forget; the game never reads from it on the hot path.
type SnapshotStore interface {
	SaveLobby(ctx context.Context, code string, data *storage.LobbyData) error
	DeleteLobby(ctx context.Context, code string) error
}

// Manager is the process-wide lobby registry.
type Manager struct {
	cfg     config.GameConfig
	store   SnapshotStore // nil disables snapshots
	lobbies map[string]*Lobby
	mu      sync.RWMutex
}

// NewManager creates the registry and starts the idle lobby sweeper.
func NewManager(cfg config.GameConfig, store SnapshotStore) *Manager {
	m := &Manager{
		cfg:     cfg,
		store:   store,
		lobbies: make(map[string]*Lobby),
	}
	go m.cleanupLoop()
	return m
}

// Create registers a new lobby with the caller as host and announces it.
func (m *Manager) Create(client types.ClientInterface, hostName string) *Lobby {
	l := &Lobby{
		HostID:         client.GetID(),
		State:          StateWaitingForPlayers,
		CreatedAt:      time.Now(),
		MinPlayers:     m.cfg.MinPlayers,
		MaxPlayers:     m.cfg.MaxPlayers,
		StartingTokens: m.cfg.StartingTokens,
	}
	l.Players = []*Player{{Client: client, Name: hostName, IsHost: true}}

	m.mu.Lock()
	l.Code = m.generateCodeLocked()
	m.lobbies[l.Code] = l
	m.mu.Unlock()

	client.SetLobby(l.Code)
	client.SendMessage(protocol.MustNewMessage(protocol.MsgLobbyCreated, protocol.LobbyCreatedPayload{
		LobbyCode: l.Code,
		HostName:  hostName,
	}))

	m.saveSnapshot(l)
	logger.Log.Info("🏠 lobby created", "lobby", l.Code, "host", hostName)
	return l
}

// Join adds a player to a waiting lobby. The joiner first receives the
// existing roster one member at a time, then the whole group (joiner
// included) hears about the new arrival.
func (m *Manager) Join(client types.ClientInterface, code, name string) (*Lobby, error) {
	l := m.Get(code)
	if l == nil {
		return nil, apperrors.ErrLobbyNotFound
	}

	var out outbox
	l.mu.Lock()
	if l.closed {
		// The code resolved just before the registry dropped the lobby.
		l.mu.Unlock()
		return nil, apperrors.ErrLobbyNotFound
	}
	if l.State != StateWaitingForPlayers {
		l.mu.Unlock()
		return nil, apperrors.ErrGameInProgress
	}
	if len(l.Players) >= l.MaxPlayers {
		l.mu.Unlock()
		return nil, apperrors.ErrLobbyFull
	}
	if l.findByNameLocked(name) != nil {
		l.mu.Unlock()
		return nil, apperrors.ErrNameTaken
	}

	for _, existing := range l.Players {
		out.unicast(client, protocol.MustNewMessage(protocol.MsgPlayerJoined, protocol.PlayerJoinedPayload{
			Name:   existing.Name,
			IsHost: existing.IsHost,
		}))
	}
	l.Players = append(l.Players, &Player{Client: client, Name: name})
	l.broadcastLocked(&out, protocol.MustNewMessage(protocol.MsgPlayerJoined, protocol.PlayerJoinedPayload{
		Name: name,
	}))
	l.mu.Unlock()

	client.SetLobby(l.Code)
	out.flush()

	m.saveSnapshot(l)
	logger.Log.Info("👤 player joined", "lobby", l.Code, "player", name)
	return l, nil
}

// Get returns a lobby by code, nil if unknown. Codes are
// case-insensitive on the wire.
func (m *Manager) Get(code string) *Lobby {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lobbies[strings.ToUpper(code)]
}

// findBySession returns the lobby containing the session, if any.
func (m *Manager) findBySession(sessionID string) *Lobby {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, l := range m.lobbies {
		l.mu.Lock()
		member := l.findByIDLocked(sessionID) != nil
		l.mu.Unlock()
		if member {
			return l
		}
	}
	return nil
}

// HandleDisconnect removes a departing session from its lobby. The
// host role migrates to the next player by order; an orphaned turn is
// handed on so the game never stalls on a vanished player; an empty
// lobby is deleted.
func (m *Manager) HandleDisconnect(client types.ClientInterface) {
	l := m.findBySession(client.GetID())
	if l == nil {
		return
	}

	var out outbox
	l.mu.Lock()
	idx := slices.IndexFunc(l.Players, func(p *Player) bool {
		return p.Client != nil && p.Client.GetID() == client.GetID()
	})
	if idx == -1 {
		l.mu.Unlock()
		return
	}
	leaver := l.Players[idx]
	l.Players = slices.Delete(l.Players, idx, idx+1)
	empty := len(l.Players) == 0
	if empty {
		l.closed = true
	}

	if !empty {
		if leaver.IsHost {
			newHost := l.Players[0]
			newHost.IsHost = true
			l.HostID = newHost.Client.GetID()
			l.broadcastLocked(&out, protocol.MustNewMessage(protocol.MsgNewHost, protocol.NewHostPayload{
				Name: newHost.Name,
			}))
		}
		l.broadcastLocked(&out, protocol.MustNewMessage(protocol.MsgPlayerLeft, protocol.PlayerLeftPayload{
			Name: leaver.Name,
		}))

		switch {
		case l.State == StateInProgress && leaver.IsTurn:
			// Hand the orphaned turn to the player now sitting at the
			// leaver's index.
			l.Players[idx%len(l.Players)].IsTurn = true
			if !l.checkRoundEndLocked(&out) {
				l.broadcastLocked(&out, protocol.MustNewMessage(protocol.MsgUpdateGameState, l.gameStateLocked()))
			}
		case l.State == StateSetup:
			// The first turn must survive a Setup leaver too, or play
			// begins with no turn holder.
			if leaver.IsTurn {
				l.Players[idx%len(l.Players)].IsTurn = true
				l.broadcastLocked(&out, protocol.MustNewMessage(protocol.MsgUpdateGameState, l.gameStateLocked()))
			}
			if l.allKeptLocked() {
				// The leaver was the only player still deciding.
				l.beginPlayLocked(&out)
			}
		}
	}
	l.mu.Unlock()

	client.SetLobby("")
	out.flush()

	if empty {
		m.mu.Lock()
		delete(m.lobbies, l.Code)
		m.mu.Unlock()
		m.deleteSnapshot(l.Code)
		logger.Log.Info("🏠 lobby dissolved", "lobby", l.Code)
		return
	}

	m.saveSnapshot(l)
	logger.Log.Info("👋 player left", "lobby", l.Code, "player", leaver.Name)
}

// Count returns the number of registered lobbies.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.lobbies)
}

// generateCodeLocked derives a unique 6-character upper-case code.
func (m *Manager) generateCodeLocked() string {
	for {
		id := uuid.New()
		code := strings.ToUpper(hex.EncodeToString(id[:]))[:codeLength]
		if _, exists := m.lobbies[code]; !exists {
			return code
		}
	}
}

func (m *Manager) saveSnapshot(l *Lobby) {
	if m.store == nil {
		return
	}
	data := l.ToLobbyData()
	go func() { _ = m.store.SaveLobby(context.Background(), data.Code, data) }()
}

func (m *Manager) deleteSnapshot(code string) {
	if m.store == nil {
		return
	}
	go func() { _ = m.store.DeleteLobby(context.Background(), code) }()
}

// cleanupLoop periodically evicts lobbies that never started.
func (m *Manager) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		m.cleanup()
	}
}

func (m *Manager) cleanup() {
	timeout := m.cfg.LobbyTimeoutDuration()
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for code, l := range m.lobbies {
		var out outbox
		l.mu.Lock()
		expired := l.State == StateWaitingForPlayers && now.Sub(l.CreatedAt) > timeout
		if expired {
			l.closed = true
			l.broadcastLocked(&out, protocol.NewErrorMessageWithText(
				protocol.ErrCodeUnknown, "Lobby timed out and was closed"))
			for _, p := range l.Players {
				if p.Client != nil {
					p.Client.SetLobby("")
				}
			}
		}
		l.mu.Unlock()

		if expired {
			delete(m.lobbies, code)
			out.flush()
			m.deleteSnapshot(code)
			logger.Log.Info("🧹 idle lobby evicted", "lobby", code)
		}
	}
}
