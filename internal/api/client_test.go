package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elmi/cine/internal/models"
)

func TestClient(t *testing.T) {
	ctx := context.Background()

	t.Run("NewClient", func(t *testing.T) {
		t.Run("with empty base URL uses default", func(t *testing.T) {
			client := NewClient("", nil, 0)
			if client.baseURL != defaultBaseURL {
				t.Errorf("expected %q, got %q", defaultBaseURL, client.baseURL)
			}
		})

		t.Run("trims trailing slash", func(t *testing.T) {
			client := NewClient("http://example.com/api/", nil, 0)
			if client.baseURL != "http://example.com/api" {
				t.Errorf("unexpected base URL %q", client.baseURL)
			}
		})
	})

	t.Run("Login", func(t *testing.T) {
		t.Run("returns session fields on success", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/auth/login" {
					t.Errorf("unexpected path %q", r.URL.Path)
				}
				if r.Method != http.MethodPost {
					t.Errorf("unexpected method %q", r.Method)
				}
				if ct := r.Header.Get("Content-Type"); ct != "application/json" {
					t.Errorf("unexpected content type %q", ct)
				}
				if r.Header.Get("X-Request-Id") == "" {
					t.Error("expected X-Request-Id header")
				}
				w.Write([]byte(`{"userId": 7, "role": "proprio_cinema", "email": "a@b.fr"}`))
			}))
			defer server.Close()

			client := NewClient(server.URL, server.Client(), 100)
			sess, err := client.Login(ctx, "a@b.fr", "secret")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sess.UserID != 7 || sess.Role != models.RoleCinemaOwner || sess.Email != "a@b.fr" {
				t.Errorf("unexpected session %+v", sess)
			}
		})

		t.Run("surfaces the error body verbatim", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte("identifiants invalides"))
			}))
			defer server.Close()

			client := NewClient(server.URL, server.Client(), 100)
			_, err := client.Login(ctx, "a@b.fr", "wrong")

			var terr *TransportError
			if !errors.As(err, &terr) {
				t.Fatalf("expected TransportError, got %T", err)
			}
			if terr.Status != http.StatusUnauthorized {
				t.Errorf("expected status 401, got %d", terr.Status)
			}
			if terr.Error() != "identifiants invalides" {
				t.Errorf("expected body verbatim, got %q", terr.Error())
			}
		})
	})

	t.Run("ListFilms", func(t *testing.T) {
		var gotQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/Catalogue/films" {
				t.Errorf("unexpected path %q", r.URL.Path)
			}
			gotQuery = r.URL.RawQuery
			w.Write([]byte(`[{"id": 1, "titre": "Alien", "duree": 117, "langue": "en"}]`))
		}))
		defer server.Close()

		client := NewClient(server.URL, server.Client(), 100)

		t.Run("without filter omits the query parameter", func(t *testing.T) {
			films, err := client.ListFilms(ctx, "")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotQuery != "" {
				t.Errorf("expected no query, got %q", gotQuery)
			}
			if len(films) != 1 || films[0].Titre != "Alien" {
				t.Errorf("unexpected films %+v", films)
			}
		})

		t.Run("whitespace filter is treated as absent", func(t *testing.T) {
			if _, err := client.ListFilms(ctx, "   "); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotQuery != "" {
				t.Errorf("expected no query, got %q", gotQuery)
			}
		})

		t.Run("city filter is trimmed and escaped", func(t *testing.T) {
			if _, err := client.ListFilms(ctx, "  Le Havre "); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotQuery != "ville=Le+Havre" {
				t.Errorf("unexpected query %q", gotQuery)
			}
		})
	})

	t.Run("FilmDetails", func(t *testing.T) {
		t.Run("not found propagates the status", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			}))
			defer server.Close()

			client := NewClient(server.URL, server.Client(), 100)
			_, err := client.FilmDetails(ctx, 42)

			var terr *TransportError
			if !errors.As(err, &terr) {
				t.Fatalf("expected TransportError, got %T", err)
			}
			if terr.Status != http.StatusNotFound {
				t.Errorf("expected status 404, got %d", terr.Status)
			}
		})
	})

	t.Run("CreateFilm", func(t *testing.T) {
		t.Run("sends the owner id and decodes the new id", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/publication/films" {
					t.Errorf("unexpected path %q", r.URL.Path)
				}
				if got := r.URL.Query().Get("proprietaireId"); got != "9" {
					t.Errorf("unexpected proprietaireId %q", got)
				}
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte("12"))
			}))
			defer server.Close()

			client := NewClient(server.URL, server.Client(), 100)
			id, err := client.CreateFilm(ctx, 9, models.NewFilm{Titre: "Alien", Duree: 117, Langue: "en"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != 12 {
				t.Errorf("expected id 12, got %d", id)
			}
		})

		t.Run("no content yields zero id and no error", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			}))
			defer server.Close()

			client := NewClient(server.URL, server.Client(), 100)
			id, err := client.CreateFilm(ctx, 9, models.NewFilm{Titre: "Alien", Duree: 117, Langue: "en"})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if id != 0 {
				t.Errorf("expected zero id, got %d", id)
			}
		})
	})

	t.Run("network failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // refuse connections

		client := NewClient(server.URL, nil, 100)
		_, err := client.ListCinemas(ctx)

		var terr *TransportError
		if !errors.As(err, &terr) {
			t.Fatalf("expected TransportError, got %T", err)
		}
		if terr.Status != 0 {
			t.Errorf("expected zero status for network failure, got %d", terr.Status)
		}
		if terr.Error() == "" {
			t.Error("expected a message")
		}
	})

	t.Run("TransportError", func(t *testing.T) {
		cases := []struct {
			name string
			err  TransportError
			want string
		}{
			{"message wins", TransportError{Status: 500, Message: "boom"}, "boom"},
			{"status fallback", TransportError{Status: 500}, "HTTP 500"},
			{"zero value", TransportError{}, "request failed"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if got := tc.err.Error(); got != tc.want {
					t.Errorf("expected %q, got %q", tc.want, got)
				}
			})
		}
	})
}
