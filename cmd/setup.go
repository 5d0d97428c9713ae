package main

import (
	"context"
	"fmt"
	"os"

	"github.com/elmi/cine/internal/session"
	"github.com/elmi/cine/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup creates the configuration file if needed and initializes the
// local session database.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	var config *shared.Config
	if _, err := os.Stat(configPath); err == nil {
		if config, err = shared.LoadConfig(configPath); err != nil {
			r.logger.Warn("failed to load config, using defaults", "error", err)
			config = shared.DefaultConfig()
		}
	} else {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
			config = shared.DefaultConfig()
		} else {
			r.logger.Info("config file created", "path", configPath)
			if config, err = shared.LoadConfig(configPath); err != nil {
				r.logger.Warn("failed to load created config, using defaults", "error", err)
				config = shared.DefaultConfig()
			}
		}
	}

	r.logger.Info("initializing session database", "path", config.Session.Path)

	db, err := shared.NewDatabase(config.Session.Path)
	if err != nil {
		return fmt.Errorf("failed to create session database: %w", err)
	}

	store, err := session.NewStore(db)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize session store: %w", err)
	}
	r.store = store
	r.config = config

	r.logger.Infof("setup complete for session database: %v", config.Session.Path)
	return r.writePlain("✓ Setup complete\n")
}
