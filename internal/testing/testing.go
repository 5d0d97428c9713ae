// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/elmi/cine/internal/models"
	"github.com/elmi/cine/internal/session"
	"github.com/elmi/cine/internal/shared"
)

// MockGateway is a test double for the api.Gateway interface.
//
// Responses come from the exported fields; Err, when set, is returned by
// every operation. Calls counts invocations per method name so tests can
// assert on refetch behavior.
type MockGateway struct {
	mu    sync.Mutex
	Calls map[string]int

	Err          error
	Films        []models.Film
	FilmByID     map[int64]*models.Film
	Cinemas      []models.Cinema
	CinemaByID   map[int64]*models.Cinema
	AuthSession  models.Session
	CreatedID    int64
	LastVille    string
	LastOwnerID  int64
	LastProg     models.NewProgrammation
	ListFilmsErr error
}

func (m *MockGateway) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Calls == nil {
		m.Calls = map[string]int{}
	}
	m.Calls[method]++
}

// CallCount returns the number of recorded invocations of method.
func (m *MockGateway) CallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls[method]
}

func (m *MockGateway) Login(ctx context.Context, email, mdp string) (models.Session, error) {
	m.record("Login")
	if m.Err != nil {
		return models.Session{}, m.Err
	}
	return m.AuthSession, nil
}

func (m *MockGateway) Register(ctx context.Context, email, mdp, role string) (models.Session, error) {
	m.record("Register")
	if m.Err != nil {
		return models.Session{}, m.Err
	}
	return m.AuthSession, nil
}

func (m *MockGateway) ListFilms(ctx context.Context, ville string) ([]models.Film, error) {
	m.record("ListFilms")
	m.mu.Lock()
	m.LastVille = ville
	m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if m.ListFilmsErr != nil {
		return nil, m.ListFilmsErr
	}
	return m.Films, nil
}

func (m *MockGateway) FilmDetails(ctx context.Context, filmID int64) (*models.Film, error) {
	m.record("FilmDetails")
	if m.Err != nil {
		return nil, m.Err
	}
	if film, ok := m.FilmByID[filmID]; ok {
		return film, nil
	}
	return nil, shared.ErrFilmNotFound
}

func (m *MockGateway) ListCinemas(ctx context.Context) ([]models.Cinema, error) {
	m.record("ListCinemas")
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Cinemas, nil
}

func (m *MockGateway) CinemaDetails(ctx context.Context, cinemaID int64) (*models.Cinema, error) {
	m.record("CinemaDetails")
	if m.Err != nil {
		return nil, m.Err
	}
	if cinema, ok := m.CinemaByID[cinemaID]; ok {
		return cinema, nil
	}
	return nil, shared.ErrCinemaNotFound
}

func (m *MockGateway) CreateFilm(ctx context.Context, ownerID int64, film models.NewFilm) (int64, error) {
	m.record("CreateFilm")
	m.mu.Lock()
	m.LastOwnerID = ownerID
	m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	return m.CreatedID, nil
}

func (m *MockGateway) CreateCinema(ctx context.Context, ownerID int64, cinema models.NewCinema) (int64, error) {
	m.record("CreateCinema")
	m.mu.Lock()
	m.LastOwnerID = ownerID
	m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	return m.CreatedID, nil
}

func (m *MockGateway) CreateProgrammation(ctx context.Context, prog models.NewProgrammation) (int64, error) {
	m.record("CreateProgrammation")
	m.mu.Lock()
	m.LastProg = prog
	m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	return m.CreatedID, nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// MustOpenStore opens an in-memory session store, failing the test on error.
func MustOpenStore(t *testing.T) *session.Store {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	// In-memory SQLite is per connection; keep the pool at one so every
	// statement sees the same database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	store, err := session.NewStore(db)
	if err != nil {
		t.Fatalf("failed to create session store: %v", err)
	}
	return store
}
