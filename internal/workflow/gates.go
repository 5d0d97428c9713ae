package workflow

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/elmi/cine/internal/models"
)

// IsOwner reports whether the session user owns the given cinema.
//
// Both sides are numeric by the time they reach this comparison; CoerceID
// handles ids that arrive as strings from storage or user input.
func IsOwner(sess models.Session, cinema models.Cinema) bool {
	return sess.Authenticated() && sess.UserID == cinema.IDProprietaire
}

// CanCreateFilm reports whether the session may publish films.
func CanCreateFilm(sess models.Session) bool {
	return sess.Authenticated() && sess.Role == models.RoleFilmOwner
}

// CanCreateCinema reports whether the session may publish cinemas.
func CanCreateCinema(sess models.Session) bool {
	return sess.Authenticated() && sess.Role == models.RoleCinemaOwner
}

// CoerceID converts a string id to a positive integer.
//
// String/number mismatches between storage, forms and the API must never
// flip a gate, so every id that arrives as text goes through here.
func CoerceID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	if id <= 0 {
		return 0, fmt.Errorf("id must be positive, got %d", id)
	}
	return id, nil
}
