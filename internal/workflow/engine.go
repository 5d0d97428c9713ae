package workflow

import (
	"context"
	"fmt"

	"github.com/elmi/cine/internal/api"
	"github.com/elmi/cine/internal/models"
	"github.com/elmi/cine/internal/shared"
)

// Engine runs the catalogue and publication workflows over a gateway.
type Engine struct {
	gateway api.Gateway
}

// NewEngine creates a workflow engine with the provided gateway.
func NewEngine(gateway api.Gateway) *Engine {
	return &Engine{gateway: gateway}
}

// CinemaPage is everything a cinema detail view renders: the cinema itself
// and the full film list feeding the programmation form's film selector.
type CinemaPage struct {
	Cinema *models.Cinema
	Films  []models.Film
}

// LoadCinemaPage fans out the two reads a cinema detail view needs and
// joins them. If either read fails no partial data is returned.
func (e *Engine) LoadCinemaPage(ctx context.Context, cinemaID int64) (*CinemaPage, error) {
	type cinemaResult struct {
		cinema *models.Cinema
		err    error
	}
	type filmsResult struct {
		films []models.Film
		err   error
	}

	cinemaCh := make(chan cinemaResult, 1)
	filmsCh := make(chan filmsResult, 1)

	go func() {
		cinema, err := e.gateway.CinemaDetails(ctx, cinemaID)
		cinemaCh <- cinemaResult{cinema, err}
	}()
	go func() {
		films, err := e.gateway.ListFilms(ctx, "")
		filmsCh <- filmsResult{films, err}
	}()

	cr := <-cinemaCh
	fr := <-filmsCh

	if cr.err != nil {
		return nil, cr.err
	}
	if fr.err != nil {
		return nil, fr.err
	}

	return &CinemaPage{Cinema: cr.cinema, Films: fr.films}, nil
}

// PublishProgrammation gates, validates and submits a programmation for the
// given cinema, then refetches the cinema page so the new programmation is
// visible.
//
// On success the form is reset to its default shape. On failure the form is
// left untouched for correction and retry.
func (e *Engine) PublishProgrammation(ctx context.Context, sess models.Session, cinema models.Cinema, form *ProgrammationForm) (int64, *CinemaPage, error) {
	if !IsOwner(sess, cinema) {
		return 0, nil, fmt.Errorf("%w: only the cinema owner may publish programmations", shared.ErrNotAuthorized)
	}

	prog, err := form.Build()
	if err != nil {
		return 0, nil, err
	}

	id, err := e.gateway.CreateProgrammation(ctx, prog)
	if err != nil {
		return 0, nil, err
	}

	form.Reset()

	page, err := e.LoadCinemaPage(ctx, cinema.ID)
	if err != nil {
		return id, nil, err
	}
	return id, page, nil
}

// PublishFilm gates and submits a film, then refetches the film list with
// the caller's current city filter.
func (e *Engine) PublishFilm(ctx context.Context, sess models.Session, film models.NewFilm, ville string) (int64, []models.Film, error) {
	if !CanCreateFilm(sess) {
		return 0, nil, fmt.Errorf("%w: the %s role is required to publish films", shared.ErrNotAuthorized, models.RoleFilmOwner)
	}

	if err := film.Validate(); err != nil {
		return 0, nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	id, err := e.gateway.CreateFilm(ctx, sess.UserID, film)
	if err != nil {
		return 0, nil, err
	}

	films, err := e.gateway.ListFilms(ctx, ville)
	if err != nil {
		return id, nil, err
	}
	return id, films, nil
}

// PublishCinema gates and submits a cinema, then refetches the cinema list.
func (e *Engine) PublishCinema(ctx context.Context, sess models.Session, cinema models.NewCinema) (int64, []models.Cinema, error) {
	if !CanCreateCinema(sess) {
		return 0, nil, fmt.Errorf("%w: the %s role is required to publish cinemas", shared.ErrNotAuthorized, models.RoleCinemaOwner)
	}

	if err := cinema.Validate(); err != nil {
		return 0, nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	id, err := e.gateway.CreateCinema(ctx, sess.UserID, cinema)
	if err != nil {
		return 0, nil, err
	}

	cinemas, err := e.gateway.ListCinemas(ctx)
	if err != nil {
		return id, nil, err
	}
	return id, cinemas, nil
}

// PartitionCinemas splits a cinema list into those owned by the session
// user and the rest. Unauthenticated sessions own nothing.
func PartitionCinemas(sess models.Session, cinemas []models.Cinema) (mine, others []models.Cinema) {
	if !sess.Authenticated() {
		return nil, cinemas
	}

	for _, c := range cinemas {
		if c.IDProprietaire == sess.UserID {
			mine = append(mine, c)
		} else {
			others = append(others, c)
		}
	}
	return mine, others
}
