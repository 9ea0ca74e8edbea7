package server

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/scoutfriends/scout-server/internal/logger"
	"github.com/scoutfriends/scout-server/internal/protocol"
)

const (
	writeWait = 10 * time.Second

	pongWait = 60 * time.Second

	// must be shorter than pongWait
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4096
)

// Client is one connected player session. Its ID is the opaque session
// key the game core stores.
type Client struct {
	ID        string
	LobbyCode string

	server *Server
	conn   *websocket.Conn
	send   chan []byte

	mu     sync.RWMutex
	closed bool
}

// NewClient wraps an upgraded connection.
func NewClient(s *Server, conn *websocket.Conn) *Client {
	return &Client{
		ID:     uuid.New().String(),
		server: s,
		conn:   conn,
		send:   make(chan []byte, 256),
	}
}

// ReadPump reads commands off the socket until it closes.
func (c *Client) ReadPump() {
	defer func() {
		c.handleDisconnect()
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Debug("read error", "id", c.ID, "err", err)
			}
			break
		}

		msg, err := protocol.Decode(message)
		if err != nil {
			logger.Log.Debug("malformed message", "id", c.ID, "err", err)
			c.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
			continue
		}

		c.server.handler.Handle(c, msg)
	}
}

// WritePump drains the send channel onto the socket and keeps the
// connection alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleDisconnect() {
	c.server.lobbyManager.HandleDisconnect(c)
	c.server.unregisterClient(c)
	<-c.server.semaphore
	c.Close()
}

// GetID implements types.ClientInterface.
func (c *Client) GetID() string { return c.ID }

// GetLobby returns the code of the lobby the client is in, if any.
func (c *Client) GetLobby() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.LobbyCode
}

// SetLobby records the lobby the client belongs to.
func (c *Client) SetLobby(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LobbyCode = code
}

// SendMessage queues a message for delivery. Drops it if the client's
// buffer is full or the client is closed.
func (c *Client) SendMessage(msg *protocol.Message) {
	data, err := msg.Encode()
	if err != nil {
		logger.Log.Error("encode message", "type", msg.Type, "err", err)
		return
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return
	}

	select {
	case c.send <- data:
	default:
		logger.Log.Warn("send buffer full, dropping message", "id", c.ID, "type", msg.Type)
	}
}

// Close shuts the send channel once.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}
