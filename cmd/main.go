package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/elmi/cine/internal/api"
	"github.com/elmi/cine/internal/session"
	"github.com/elmi/cine/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	httpClient := &http.Client{Timeout: time.Duration(config.API.Timeout) * time.Second}
	client := api.NewClient(config.API.BaseURL, httpClient, config.API.RequestsPerSecond)
	client.SetLogger(logger)

	var store *session.Store
	if db, err := shared.NewDatabase(config.Session.Path); err == nil {
		if store, err = session.NewStore(db); err != nil {
			logger.Warnf("session store unavailable: %v", err)
		}
	} else {
		logger.Warnf("session database unavailable: %v", err)
	}

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Gateway: client,
		Store:   store,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "cine",
		Usage:    "Browse the film catalogue and publish films, cinemas & programmations",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, filmsCommand, cinemasCommand, publishCommand, exportCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}
