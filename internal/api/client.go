package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/elmi/cine/internal/models"
	"github.com/elmi/cine/internal/shared"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "http://localhost:8080/api"

// TransportError is the single error kind raised at the gateway boundary.
//
// Status is the HTTP status code, or 0 when the network call itself failed.
// Message is the response body text when present.
type TransportError struct {
	Status  int
	Message string
}

func (e *TransportError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Status != 0 {
		return fmt.Sprintf("HTTP %d", e.Status)
	}
	return "request failed"
}

// Gateway defines the remote operations the rest of the application depends on.
type Gateway interface {
	// Login authenticates with email and password, returning the session fields.
	Login(ctx context.Context, email, mdp string) (models.Session, error)

	// Register creates an account with the given role, returning the session fields.
	Register(ctx context.Context, email, mdp, role string) (models.Session, error)

	// ListFilms retrieves the film summaries, optionally filtered by city.
	// An empty or whitespace-only filter lists everything.
	ListFilms(ctx context.Context, ville string) ([]models.Film, error)

	// FilmDetails retrieves one film with its programmations.
	FilmDetails(ctx context.Context, filmID int64) (*models.Film, error)

	// ListCinemas retrieves the cinema summaries.
	ListCinemas(ctx context.Context) ([]models.Cinema, error)

	// CinemaDetails retrieves one cinema with its programmations.
	CinemaDetails(ctx context.Context, cinemaID int64) (*models.Cinema, error)

	// CreateFilm publishes a film owned by ownerID and returns the new id.
	CreateFilm(ctx context.Context, ownerID int64, film models.NewFilm) (int64, error)

	// CreateCinema publishes a cinema owned by ownerID and returns the new id.
	CreateCinema(ctx context.Context, ownerID int64, cinema models.NewCinema) (int64, error)

	// CreateProgrammation publishes a programmation and returns the new id.
	CreateProgrammation(ctx context.Context, prog models.NewProgrammation) (int64, error)
}

// Client implements [Gateway] over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger
}

var _ Gateway = (*Client)(nil)

// NewClient creates a gateway client for the service at baseURL.
//
// The base URL should include the /api prefix. A nil httpClient falls back
// to [http.DefaultClient]; rps caps outbound requests per second and
// defaults to 5 when not positive.
func NewClient(baseURL string, httpClient *http.Client, rps int) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if rps <= 0 {
		rps = 5
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// SetLogger attaches a logger for request tracing. Nil disables tracing.
func (c *Client) SetLogger(l *log.Logger) {
	c.logger = l
}

// do performs one request and decodes a JSON response into result.
//
// A no-content response (204 or an empty body) leaves result untouched and
// returns nil. Every non-2xx response and every network failure comes back
// as a *TransportError.
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := shared.GenerateID()
	req.Header.Set("X-Request-Id", requestID)

	if c.logger != nil {
		c.logger.Debug("api request", "method", method, "path", path, "request_id", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Status: resp.StatusCode, Message: fmt.Sprintf("failed to read response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if c.logger != nil {
			c.logger.Warn("api error", "status", resp.StatusCode, "path", path, "request_id", requestID)
		}
		return &TransportError{Status: resp.StatusCode, Message: strings.TrimSpace(string(data))}
	}

	if resp.StatusCode == http.StatusNoContent || len(data) == 0 || result == nil {
		return nil
	}

	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// authResponse mirrors the service's login and register payloads.
type authResponse struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
	Email  string `json:"email"`
}

// Login authenticates with the service.
func (c *Client) Login(ctx context.Context, email, mdp string) (models.Session, error) {
	payload := map[string]string{"email": email, "mdp": mdp}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", payload, &resp); err != nil {
		return models.Session{}, err
	}

	return models.Session{UserID: resp.UserID, Role: resp.Role, Email: resp.Email}, nil
}

// Register creates an account with the service.
func (c *Client) Register(ctx context.Context, email, mdp, role string) (models.Session, error) {
	payload := map[string]string{"email": email, "mdp": mdp, "role": role}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", payload, &resp); err != nil {
		return models.Session{}, err
	}

	return models.Session{UserID: resp.UserID, Role: resp.Role, Email: resp.Email}, nil
}

// ListFilms retrieves film summaries, optionally filtered by city.
func (c *Client) ListFilms(ctx context.Context, ville string) ([]models.Film, error) {
	path := "/Catalogue/films"
	if trimmed := strings.TrimSpace(ville); trimmed != "" {
		path += "?ville=" + url.QueryEscape(trimmed)
	}

	var films []models.Film
	if err := c.do(ctx, http.MethodGet, path, nil, &films); err != nil {
		return nil, err
	}
	return films, nil
}

// FilmDetails retrieves one film with its programmations.
func (c *Client) FilmDetails(ctx context.Context, filmID int64) (*models.Film, error) {
	var film models.Film
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/Catalogue/films/%d", filmID), nil, &film); err != nil {
		return nil, err
	}
	return &film, nil
}

// ListCinemas retrieves cinema summaries.
func (c *Client) ListCinemas(ctx context.Context) ([]models.Cinema, error) {
	var cinemas []models.Cinema
	if err := c.do(ctx, http.MethodGet, "/Catalogue/cinemas", nil, &cinemas); err != nil {
		return nil, err
	}
	return cinemas, nil
}

// CinemaDetails retrieves one cinema with its programmations.
func (c *Client) CinemaDetails(ctx context.Context, cinemaID int64) (*models.Cinema, error) {
	var cinema models.Cinema
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/Catalogue/cinemas/%d", cinemaID), nil, &cinema); err != nil {
		return nil, err
	}
	return &cinema, nil
}

// CreateFilm publishes a film for the given owner and returns the new id.
func (c *Client) CreateFilm(ctx context.Context, ownerID int64, film models.NewFilm) (int64, error) {
	path := fmt.Sprintf("/publication/films?proprietaireId=%d", ownerID)

	var id int64
	if err := c.do(ctx, http.MethodPost, path, film, &id); err != nil {
		return 0, err
	}
	return id, nil
}

// CreateCinema publishes a cinema for the given owner and returns the new id.
func (c *Client) CreateCinema(ctx context.Context, ownerID int64, cinema models.NewCinema) (int64, error) {
	path := fmt.Sprintf("/publication/cinemas?proprietaireId=%d", ownerID)

	var id int64
	if err := c.do(ctx, http.MethodPost, path, cinema, &id); err != nil {
		return 0, err
	}
	return id, nil
}

// CreateProgrammation publishes a programmation and returns the new id.
func (c *Client) CreateProgrammation(ctx context.Context, prog models.NewProgrammation) (int64, error) {
	var id int64
	if err := c.do(ctx, http.MethodPost, "/publication/programmations", prog, &id); err != nil {
		return 0, err
	}
	return id, nil
}
