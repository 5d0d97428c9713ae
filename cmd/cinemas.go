package main

import (
	"context"
	"fmt"

	"github.com/elmi/cine/internal/formatter"
	"github.com/elmi/cine/internal/models"
	"github.com/elmi/cine/internal/shared"
	"github.com/elmi/cine/internal/workflow"
	"github.com/urfave/cli/v3"
)

// CinemasList prints every cinema. With --mine, only the ones owned by
// the signed-in user.
func (r *Runner) CinemasList(ctx context.Context, cmd *cli.Command) error {
	mineOnly := cmd.Bool("mine")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	r.logger.Info("listing cinemas")

	cinemas, err := r.gateway.ListCinemas(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if mineOnly {
		sess := models.Session{}
		if r.store != nil {
			if sess, err = r.store.Read(); err != nil {
				return fmt.Errorf("failed to read session: %w", err)
			}
		}
		if !sess.Authenticated() {
			return fmt.Errorf("%w: sign in to list your cinemas", shared.ErrNotAuthenticated)
		}
		cinemas, _ = workflow.PartitionCinemas(sess, cinemas)
	}

	if useJSON {
		return r.writeJSON(cinemas, pretty)
	}

	if len(cinemas) == 0 {
		return r.writePlain("Aucun cinéma.\n")
	}

	return r.writePlain("%s", formatter.CinemasToText(cinemas))
}

// CinemasShow prints one cinema alongside the film catalogue, fetched
// concurrently the same way the TUI detail view does.
func (r *Runner) CinemasShow(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	id, err := workflow.CoerceID(cmd.StringArg("id"))
	if err != nil {
		return fmt.Errorf("%w: cinema id: %v", shared.ErrInvalidArgument, err)
	}

	r.logger.Infof("fetching cinema %d", id)

	page, err := r.engine.LoadCinemaPage(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if useJSON {
		return r.writeJSON(page, pretty)
	}

	cinema := page.Cinema
	r.writePlain("%s\n%s, %s\n", cinema.Nom, cinema.Adresse, cinema.Ville)

	if len(cinema.Programmations) == 0 {
		r.writePlain("\nAucune programmation disponible.\n")
	} else {
		r.writePlainln("Programmations:")
		for _, prog := range cinema.Programmations {
			r.writePlain("  %s (du %s au %s)\n", prog.FilmTitre, prog.DateDeb, prog.DateFin)
			for _, creneau := range prog.Creneaux {
				r.writePlain("    %s\n", formatter.FormatCreneau(creneau))
			}
		}
	}

	return r.writePlain("\n%d film(s) au catalogue\n", len(page.Films))
}
