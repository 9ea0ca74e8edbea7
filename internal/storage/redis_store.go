// Package storage persists lobby snapshots to Redis so an operator can
// inspect live lobbies, and to leave room for a distributed registry
// later. The game itself never reads these on the hot path.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	lobbyKeyPrefix = "lobby:"

	// Snapshots expire on their own in case a delete is lost.
	lobbyExpiration = 2 * time.Hour
)

// LobbyData is the serializable snapshot of a lobby.
type LobbyData struct {
	Code             string       `json:"code"`
	State            int          `json:"state"`
	Players          []PlayerData `json:"players"`
	CreatedAt        int64        `json:"created_at"`
	CurrentPlayOwner string       `json:"current_play_owner,omitempty"`
	CurrentPlaySize  int          `json:"current_play_size,omitempty"`
}

// PlayerData is the per-player part of a snapshot. Hands are reduced to
// a count; card contents never leave the process.
type PlayerData struct {
	Name      string `json:"name"`
	IsHost    bool   `json:"is_host"`
	Points    int    `json:"points"`
	CardsLeft int    `json:"cards_left"`
	Tokens    int    `json:"tokens"`
}

// RedisStore stores lobby snapshots in Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// SaveLobby writes a lobby snapshot.
func (rs *RedisStore) SaveLobby(ctx context.Context, code string, data *LobbyData) error {
	if data == nil {
		return nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal lobby snapshot: %w", err)
	}

	return rs.client.Set(ctx, lobbyKeyPrefix+code, jsonData, lobbyExpiration).Err()
}

// LoadLobby reads a lobby snapshot; nil without error when absent.
func (rs *RedisStore) LoadLobby(ctx context.Context, code string) (*LobbyData, error) {
	data, err := rs.client.Get(ctx, lobbyKeyPrefix+code).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var lobbyData LobbyData
	if err := json.Unmarshal(data, &lobbyData); err != nil {
		return nil, fmt.Errorf("unmarshal lobby snapshot: %w", err)
	}

	return &lobbyData, nil
}

// DeleteLobby removes a lobby snapshot.
func (rs *RedisStore) DeleteLobby(ctx context.Context, code string) error {
	return rs.client.Del(ctx, lobbyKeyPrefix+code).Err()
}

// GetAllLobbyCodes lists the codes of all stored snapshots.
func (rs *RedisStore) GetAllLobbyCodes(ctx context.Context) ([]string, error) {
	keys, err := rs.client.Keys(ctx, lobbyKeyPrefix+"*").Result()
	if err != nil {
		return nil, err
	}

	codes := make([]string, len(keys))
	for i, key := range keys {
		codes[i] = key[len(lobbyKeyPrefix):]
	}
	return codes, nil
}
