package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/elmi/cine/internal/models"
	"github.com/elmi/cine/internal/shared"
	"github.com/elmi/cine/internal/workflow"
	"github.com/urfave/cli/v3"
)

// PublishFilm creates a film owned by the signed-in user.
func (r *Runner) PublishFilm(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession()
	if err != nil {
		return err
	}

	film := models.NewFilm{
		Titre:       cmd.String("titre"),
		Duree:       int(cmd.Int("duree")),
		Langue:      cmd.String("langue"),
		Realisateur: cmd.String("realisateur"),
		AgeMin:      int(cmd.Int("age-min")),
		SousTitre:   cmd.String("sous-titre"),
	}

	r.logger.Infof("publishing film %q", film.Titre)

	id, _, err := r.engine.PublishFilm(ctx, sess, film, "")
	if err != nil {
		return err
	}

	return r.writePlain("✓ Film publié (id %d)\n", id)
}

// PublishCinema creates a cinema owned by the signed-in user.
func (r *Runner) PublishCinema(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession()
	if err != nil {
		return err
	}

	cinema := models.NewCinema{
		Nom:     cmd.String("nom"),
		Adresse: cmd.String("adresse"),
		Ville:   cmd.String("ville"),
	}

	r.logger.Infof("publishing cinema %q", cinema.Nom)

	id, _, err := r.engine.PublishCinema(ctx, sess, cinema)
	if err != nil {
		return err
	}

	return r.writePlain("✓ Cinéma publié (id %d)\n", id)
}

// PublishProgrammation schedules a film in one of the user's cinemas.
//
// The cinema is fetched first so ownership is checked against the live
// record, not a stale local copy.
func (r *Runner) PublishProgrammation(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession()
	if err != nil {
		return err
	}

	cinemaID, err := workflow.CoerceID(cmd.String("cinema"))
	if err != nil {
		return fmt.Errorf("%w: cinema id: %v", shared.ErrInvalidArgument, err)
	}

	cinema, err := r.gateway.CinemaDetails(ctx, cinemaID)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	form := workflow.NewProgrammationForm()
	form.FilmID = cmd.String("film")
	form.CinemaID = cmd.String("cinema")
	form.DateDeb = cmd.String("from")
	form.DateFin = cmd.String("to")

	slots := cmd.StringSlice("slot")
	if len(slots) != workflow.RequiredSlots {
		return fmt.Errorf("%w: exactly %d --slot flags are required, got %d", shared.ErrInvalidInput, workflow.RequiredSlots, len(slots))
	}
	for i, slot := range slots {
		entry, err := parseSlot(slot)
		if err != nil {
			return err
		}
		form.Slots[i] = entry
	}

	r.logger.Infof("publishing programmation for film %s at cinema %d", form.FilmID, cinemaID)

	id, _, err := r.engine.PublishProgrammation(ctx, sess, *cinema, &form)
	if err != nil {
		return err
	}

	return r.writePlain("✓ Programmation publiée (id %d)\n", id)
}

// parseSlot splits a JOUR@HH:MM flag value into a slot entry.
func parseSlot(s string) (workflow.SlotEntry, error) {
	jour, heure, ok := strings.Cut(s, "@")
	if !ok {
		return workflow.SlotEntry{}, fmt.Errorf("%w: slot %q must look like LUN@20:30", shared.ErrInvalidFlag, s)
	}
	return workflow.SlotEntry{Jour: strings.TrimSpace(jour), HeureDebut: strings.TrimSpace(heure)}, nil
}

// requireSession reads the stored session and fails when nobody is signed in.
func (r *Runner) requireSession() (models.Session, error) {
	if r.store == nil {
		return models.Session{}, fmt.Errorf("%w: session store not initialized, run 'cine setup' first", shared.ErrServiceUnavailable)
	}

	sess, err := r.store.Read()
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to read session: %w", err)
	}
	if !sess.Authenticated() {
		return models.Session{}, fmt.Errorf("%w: run 'cine auth login' first", shared.ErrNotAuthenticated)
	}
	return sess, nil
}
