package config

import (
	"os"

	"holdemtable-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the hold'em table server
type Config struct {
	loaded bool

	// Storage selects the table store backend: "postgres" or "memory"
	Storage        string `yaml:"storage" envconfig:"storage"`
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`

	// MaxPlayers is the seat capacity for newly created tables
	MaxPlayers int `yaml:"maxPlayers" envconfig:"max_players"`

	// LockWaitMillis bounds how long a request waits for a table's lease
	LockWaitMillis int `yaml:"lockWaitMs" envconfig:"lock_wait_ms"`

	// HeartbeatSeconds is the keepalive interval for push subscribers
	HeartbeatSeconds int `yaml:"heartbeatSeconds" envconfig:"heartbeat_seconds"`

	// SeatQueueDepth caps concurrent seat requests per table
	SeatQueueDepth int `yaml:"seatQueueDepth" envconfig:"seat_queue_depth"`

	Log struct {
		Level             string `yaml:"level" envconfig:"log_level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is fine; defaults and environment variables apply
func Load() error {
	config = Config{
		Storage:          "postgres",
		PGDSN:            "postgres://postgres@localhost:5432/postgres?sslmode=disable",
		MigrationsPath:   "./sql",
		MaxPlayers:       10,
		LockWaitMillis:   2000,
		HeartbeatSeconds: 15,
		SeatQueueDepth:   4,
	}

	configFile := util.Getenv("HTS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("hts", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
