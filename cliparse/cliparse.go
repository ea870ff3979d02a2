package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	AuthorityID  string
	ActorKeySalt string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("ballotbox", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Election identity and secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AuthorityID, "authority", "", "Initial authority identity")
	fs.StringVar(&cfg.ActorKeySalt, "actor-salt", "", "Actor key salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 4316 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	// The election cannot exist without an owner
	if cfg.AuthorityID == "" {
		cfg.AuthorityID = os.Getenv("AUTHORITY_ID")
	}
	if cfg.AuthorityID == "" {
		return Config{}, errors.New("AUTHORITY_ID required")
	}

	// Secrets - MUST be provided
	if cfg.ActorKeySalt == "" {
		cfg.ActorKeySalt = os.Getenv("ACTOR_KEY_SALT")
	}
	if cfg.ActorKeySalt == "" {
		return Config{}, errors.New("ACTOR_KEY_SALT required")
	}

	return cfg, nil
}
