package workflow

import (
	"testing"

	"github.com/elmi/cine/internal/models"
)

func TestGates(t *testing.T) {
	t.Run("IsOwner", func(t *testing.T) {
		cinema := models.Cinema{ID: 4, IDProprietaire: 7}

		t.Run("matching ids", func(t *testing.T) {
			sess := models.Session{UserID: 7, Role: models.RoleCinemaOwner}
			if !IsOwner(sess, cinema) {
				t.Error("expected owner")
			}
		})

		t.Run("different user", func(t *testing.T) {
			sess := models.Session{UserID: 8, Role: models.RoleCinemaOwner}
			if IsOwner(sess, cinema) {
				t.Error("expected non-owner")
			}
		})

		t.Run("unauthenticated session never owns", func(t *testing.T) {
			if IsOwner(models.Session{}, models.Cinema{ID: 4}) {
				t.Error("zero user id must not match a zero proprietaire id")
			}
		})
	})

	t.Run("CanCreateFilm", func(t *testing.T) {
		cases := []struct {
			name string
			sess models.Session
			want bool
		}{
			{"film owner", models.Session{UserID: 1, Role: models.RoleFilmOwner}, true},
			{"cinema owner", models.Session{UserID: 1, Role: models.RoleCinemaOwner}, false},
			{"unauthenticated", models.Session{Role: models.RoleFilmOwner}, false},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if got := CanCreateFilm(tc.sess); got != tc.want {
					t.Errorf("expected %v, got %v", tc.want, got)
				}
			})
		}
	})

	t.Run("CanCreateCinema", func(t *testing.T) {
		sess := models.Session{UserID: 1, Role: models.RoleCinemaOwner}
		if !CanCreateCinema(sess) {
			t.Error("expected cinema owner to pass")
		}
		sess.Role = models.RoleFilmOwner
		if CanCreateCinema(sess) {
			t.Error("expected film owner to fail")
		}
	})

	t.Run("CoerceID", func(t *testing.T) {
		t.Run("accepts positive integers with whitespace", func(t *testing.T) {
			id, err := CoerceID(" 42 ")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != 42 {
				t.Errorf("expected 42, got %d", id)
			}
		})

		for _, bad := range []string{"", "abc", "0", "-3", "4.2"} {
			t.Run("rejects "+bad, func(t *testing.T) {
				if _, err := CoerceID(bad); err == nil {
					t.Errorf("expected error for %q", bad)
				}
			})
		}
	})
}
