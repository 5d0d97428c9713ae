package session

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/elmi/cine/internal/models"
)

// Storage keys, matching the field names the service returns on login.
const (
	keyUserID = "userId"
	keyRole   = "role"
	keyEmail  = "email"
)

const schema = `
CREATE TABLE IF NOT EXISTS session (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// Store persists the session in a SQLite key/value table and notifies
// subscribers of identity changes.
type Store struct {
	db *sql.DB

	mu        sync.Mutex
	nextSub   int
	subs      map[int]func(models.Session)
	lastSeen  models.Session
	seenValid bool
}

// NewStore creates a session store over the given database connection,
// creating the backing table if needed.
func NewStore(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create session table: %w", err)
	}

	return &Store{db: db, subs: map[int]func(models.Session){}}, nil
}

// Save persists the three session fields as strings. Absent optional fields
// are stored as empty strings, not omitted. Subscribers are notified
// synchronously before Save returns.
func (s *Store) Save(userID int64, role, email string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for key, value := range map[string]string{
		keyUserID: strconv.FormatInt(userID, 10),
		keyRole:   role,
		keyEmail:  email,
	} {
		if _, err := tx.Exec(`INSERT OR REPLACE INTO session (key, value) VALUES (?, ?)`, key, value); err != nil {
			return fmt.Errorf("failed to store %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session: %w", err)
	}

	s.notify(models.Session{UserID: userID, Role: role, Email: email})
	return nil
}

// Read returns the stored session. A missing or unparseable userId yields
// the zero session, with role and email treated as absent.
func (s *Store) Read() (models.Session, error) {
	rows, err := s.db.Query(`SELECT key, value FROM session`)
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to query session: %w", err)
	}
	defer rows.Close()

	values := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Session{}, fmt.Errorf("failed to scan session row: %w", err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return models.Session{}, fmt.Errorf("row iteration error: %w", err)
	}

	userID, err := strconv.ParseInt(values[keyUserID], 10, 64)
	if err != nil || userID == 0 {
		return models.Session{}, nil
	}

	return models.Session{UserID: userID, Role: values[keyRole], Email: values[keyEmail]}, nil
}

// Clear removes all session fields. Subscribers are notified synchronously.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.notify(models.Session{})
	return nil
}

// IsAuthenticated reports whether a user id is stored.
func (s *Store) IsAuthenticated() bool {
	sess, err := s.Read()
	return err == nil && sess.Authenticated()
}

// Subscribe registers fn to be called with the new session on every change.
// The returned function cancels the subscription.
func (s *Store) Subscribe(fn func(models.Session)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Watch re-reads the store on the given interval and notifies subscribers
// when the identity changed outside this process. It blocks until ctx is
// done and is meant to run in its own goroutine.
func (s *Store) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sess, err := s.Read()
			if err != nil {
				continue
			}

			s.mu.Lock()
			changed := !s.seenValid || sess != s.lastSeen
			s.mu.Unlock()

			if changed {
				s.notify(sess)
			}
		}
	}
}

func (s *Store) notify(sess models.Session) {
	s.mu.Lock()
	s.lastSeen = sess
	s.seenValid = true
	fns := make([]func(models.Session), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(sess)
	}
}
