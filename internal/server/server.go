package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/scoutfriends/scout-server/internal/config"
	"github.com/scoutfriends/scout-server/internal/game/lobby"
	"github.com/scoutfriends/scout-server/internal/logger"
	"github.com/scoutfriends/scout-server/internal/protocol"
	"github.com/scoutfriends/scout-server/internal/server/handler"
	"github.com/scoutfriends/scout-server/internal/storage"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // tighten for production deployments
	},
}

// Server accepts WebSocket connections and routes their commands into
// the lobby registry.
type Server struct {
	config       *config.Config
	redis        *redis.Client
	lobbyManager *lobby.Manager
	handler      *handler.Handler

	clients   map[string]*Client
	clientsMu sync.RWMutex

	// semaphore caps concurrent connections.
	semaphore chan struct{}

	httpServer *http.Server
}

// NewServer wires up the server. Redis is optional: an empty addr runs
// the registry without snapshots.
func NewServer(cfg *config.Config) (*Server, error) {
	s := &Server{
		config:    cfg,
		clients:   make(map[string]*Client),
		semaphore: make(chan struct{}, cfg.Server.MaxConnections),
	}

	var store lobby.SnapshotStore
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis connect: %w", err)
		}
		s.redis = rdb
		store = storage.NewRedisStore(rdb)
	}

	s.lobbyManager = lobby.NewManager(cfg.Game, store)
	s.handler = handler.NewHandler(handler.Deps{
		LobbyManager: s.lobbyManager,
	})

	return s, nil
}

// Start blocks serving HTTP until the listener fails or shuts down.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Log.Info("🚀 listening", "addr", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown closes every client and stops the HTTP listener.
func (s *Server) Shutdown() {
	s.clientsMu.Lock()
	for _, client := range s.clients {
		client.Close()
	}
	s.clientsMu.Unlock()

	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.httpServer.Shutdown(ctx)
	}
	if s.redis != nil {
		_ = s.redis.Close()
	}
}

// handleWebSocket upgrades a connection and starts the client pumps.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	select {
	case s.semaphore <- struct{}{}:
	default:
		logger.Log.Warn("🚫 connection limit reached", "max", s.config.Server.MaxConnections)
		http.Error(w, "Server Full", http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		<-s.semaphore
		logger.Log.Error("websocket upgrade failed", "err", err)
		return
	}

	client := NewClient(s, conn)
	s.registerClient(client)

	client.SendMessage(protocol.MustNewMessage(protocol.MsgConnected, protocol.ConnectedPayload{
		PlayerID: client.ID,
	}))

	logger.Log.Info("✅ client connected", "id", client.ID)

	go client.ReadPump()
	go client.WritePump()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) registerClient(client *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	s.clients[client.ID] = client
}

func (s *Server) unregisterClient(client *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	if _, ok := s.clients[client.ID]; ok {
		delete(s.clients, client.ID)
		logger.Log.Info("❌ client disconnected", "id", client.ID)
	}
}

// OnlineCount returns the number of connected clients.
func (s *Server) OnlineCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}
