package main

import (
	"context"
	"fmt"

	"github.com/elmi/cine/internal/formatter"
	"github.com/elmi/cine/internal/shared"
	"github.com/elmi/cine/internal/workflow"
	"github.com/urfave/cli/v3"
)

// FilmsList prints the catalogue, optionally filtered by city.
func (r *Runner) FilmsList(ctx context.Context, cmd *cli.Command) error {
	ville := cmd.String("ville")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	r.logger.Infof("listing films, ville=%q", ville)

	films, err := r.gateway.ListFilms(ctx, ville)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if useJSON {
		return r.writeJSON(films, pretty)
	}

	if len(films) == 0 {
		if ville != "" {
			return r.writePlain("Aucun film programmé à %s.\n", ville)
		}
		return r.writePlain("Aucun film au catalogue.\n")
	}

	return r.writePlain("%s", formatter.FilmsToText(films))
}

// FilmsShow prints one film with its programmations.
func (r *Runner) FilmsShow(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	id, err := workflow.CoerceID(cmd.StringArg("id"))
	if err != nil {
		return fmt.Errorf("%w: film id: %v", shared.ErrInvalidArgument, err)
	}

	r.logger.Infof("fetching film %d", id)

	film, err := r.gateway.FilmDetails(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if useJSON {
		return r.writeJSON(film, pretty)
	}

	return r.writePlain("%s", formatter.FilmToMarkdown(film))
}
