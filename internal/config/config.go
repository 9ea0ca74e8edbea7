package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	Game   GameConfig   `yaml:"game"`
}

// ServerConfig configures the WebSocket listener.
type ServerConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	MaxConnections int    `yaml:"max_connections"`
}

// RedisConfig configures the optional lobby snapshot store.
// An empty Addr disables Redis entirely.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GameConfig holds the game rule knobs.
type GameConfig struct {
	MinPlayers     int `yaml:"min_players"`
	MaxPlayers     int `yaml:"max_players"`
	StartingTokens int `yaml:"starting_tokens"`
	LobbyTimeout   int `yaml:"lobby_timeout"` // idle lobby eviction (minutes)
}

// LobbyTimeoutDuration returns the idle lobby eviction timeout.
func (c *GameConfig) LobbyTimeoutDuration() time.Duration {
	return time.Duration(c.LobbyTimeout) * time.Minute
}

// Load reads and parses a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.MaxConnections == 0 {
		c.Server.MaxConnections = 1000
	}
	if c.Game.MinPlayers == 0 {
		c.Game.MinPlayers = 3
	}
	if c.Game.MaxPlayers == 0 {
		c.Game.MaxPlayers = 5
	}
	if c.Game.StartingTokens == 0 {
		c.Game.StartingTokens = 1
	}
	if c.Game.LobbyTimeout == 0 {
		c.Game.LobbyTimeout = 30
	}
}
