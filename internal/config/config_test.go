package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
server:
  host: "127.0.0.1"
  port: 9090
  max_connections: 50
redis:
  addr: "localhost:6379"
  db: 2
game:
  min_players: 4
  max_players: 4
  starting_tokens: 2
  lobby_timeout: 10
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 50, cfg.Server.MaxConnections)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 4, cfg.Game.MinPlayers)
	assert.Equal(t, 4, cfg.Game.MaxPlayers)
	assert.Equal(t, 2, cfg.Game.StartingTokens)
	assert.Equal(t, 10*time.Minute, cfg.Game.LobbyTimeoutDuration())
}

func TestLoad_DefaultsFillGaps(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
server:
  port: 9090
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Game.MinPlayers)
	assert.Equal(t, 5, cfg.Game.MaxPlayers)
	assert.Equal(t, 1, cfg.Game.StartingTokens)
	assert.Empty(t, cfg.Redis.Addr, "redis stays disabled unless configured")
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "server: [not a mapping")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 1000, cfg.Server.MaxConnections)
	assert.Equal(t, 30*time.Minute, cfg.Game.LobbyTimeoutDuration())
}
