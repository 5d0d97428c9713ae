package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/elmi/cine/internal/models"
	"github.com/elmi/cine/internal/shared"
	tu "github.com/elmi/cine/internal/testing"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			gateway := &tu.MockGateway{}
			store := tu.MustOpenStore(t)

			runner := NewRunner(RunnerOpts{
				Config:  config,
				Gateway: gateway,
				Store:   store,
				Logger:  logger,
				Output:  output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.gateway != gateway {
				t.Error("expected gateway to be set")
			}
			if runner.store != store {
				t.Error("expected store to be set")
			}
			if runner.engine == nil {
				t.Error("expected engine to be built")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"key": "value"}, true); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"key": "value"}, false); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got, want := output.String(), `{"key":"value"}`+"\n"; got != want {
				t.Errorf("expected %q, got %q", want, got)
			}
		})

		t.Run("handles marshal error", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

			err := runner.writeJSON(make(chan int), false)
			if err == nil {
				t.Fatal("expected error for non-serializable data")
			}
			if !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writePlain("films: %d\n", 3); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.String() != "films: 3\n" {
			t.Errorf("unexpected output %q", output.String())
		}
	})

	t.Run("requireSession", func(t *testing.T) {
		t.Run("fails without a store", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Gateway: &tu.MockGateway{}})

			_, err := runner.requireSession()
			if !errors.Is(err, shared.ErrServiceUnavailable) {
				t.Errorf("expected ErrServiceUnavailable, got %v", err)
			}
		})

		t.Run("fails when nobody is signed in", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Gateway: &tu.MockGateway{}, Store: tu.MustOpenStore(t)})

			_, err := runner.requireSession()
			if !errors.Is(err, shared.ErrNotAuthenticated) {
				t.Errorf("expected ErrNotAuthenticated, got %v", err)
			}
		})

		t.Run("returns the stored session", func(t *testing.T) {
			store := tu.MustOpenStore(t)
			if err := store.Save(7, models.RoleCinemaOwner, "a@b.fr"); err != nil {
				t.Fatalf("save failed: %v", err)
			}
			runner := NewRunner(RunnerOpts{Gateway: &tu.MockGateway{}, Store: store})

			sess, err := runner.requireSession()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sess.UserID != 7 || sess.Role != models.RoleCinemaOwner {
				t.Errorf("unexpected session %+v", sess)
			}
		})
	})

	t.Run("parseSlot", func(t *testing.T) {
		t.Run("splits day and time", func(t *testing.T) {
			entry, err := parseSlot(" LUN @ 20:30 ")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if entry.Jour != "LUN" || entry.HeureDebut != "20:30" {
				t.Errorf("unexpected entry %+v", entry)
			}
		})

		t.Run("rejects a missing separator", func(t *testing.T) {
			if _, err := parseSlot("LUN 20:30"); !errors.Is(err, shared.ErrInvalidFlag) {
				t.Errorf("expected ErrInvalidFlag, got %v", err)
			}
		})
	})
}
