package workflow

import (
	"errors"
	"strings"
	"testing"

	"github.com/elmi/cine/internal/models"
	"github.com/elmi/cine/internal/shared"
)

func validForm() ProgrammationForm {
	f := NewProgrammationForm()
	f.FilmID = "3"
	f.CinemaID = "4"
	f.DateDeb = "2026-09-01"
	f.DateFin = "2026-09-30"
	f.Slots = []SlotEntry{
		{Jour: "LUN", HeureDebut: "20:30"},
		{Jour: "mercredi", HeureDebut: "18:00"},
		{Jour: "SAM", HeureDebut: "21:15"},
	}
	return f
}

func TestProgrammationForm(t *testing.T) {
	t.Run("NewProgrammationForm starts with three Monday slots", func(t *testing.T) {
		f := NewProgrammationForm()
		if len(f.Slots) != RequiredSlots {
			t.Fatalf("expected %d slots, got %d", RequiredSlots, len(f.Slots))
		}
		for i, slot := range f.Slots {
			if slot.Jour != string(models.Lundi) {
				t.Errorf("slot %d: expected %s, got %q", i, models.Lundi, slot.Jour)
			}
			if slot.HeureDebut != "" {
				t.Errorf("slot %d: expected empty time, got %q", i, slot.HeureDebut)
			}
		}
	})

	t.Run("Build", func(t *testing.T) {
		t.Run("assembles a valid request", func(t *testing.T) {
			prog, err := validForm().Build()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if prog.FilmID != 3 || prog.CinemaID != 4 {
				t.Errorf("unexpected ids %+v", prog)
			}
			if prog.DateDeb != "2026-09-01" || prog.DateFin != "2026-09-30" {
				t.Errorf("unexpected dates %+v", prog)
			}
			if len(prog.Creneaux) != RequiredSlots {
				t.Fatalf("expected %d creneaux, got %d", RequiredSlots, len(prog.Creneaux))
			}
			if prog.Creneaux[1].Jour != models.Mercredi {
				t.Errorf("expected full day name to parse, got %q", prog.Creneaux[1].Jour)
			}
		})

		t.Run("drops incomplete slots and rejects the shortfall", func(t *testing.T) {
			f := validForm()
			f.Slots[2].HeureDebut = ""

			_, err := f.Build()
			if !errors.Is(err, shared.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if !strings.Contains(err.Error(), "got 2") {
				t.Errorf("expected the remaining count in the message, got %q", err.Error())
			}
		})

		t.Run("rejects fewer than three creneaux", func(t *testing.T) {
			for _, keep := range []int{0, 1, 2} {
				f := validForm()
				f.Slots = f.Slots[:keep]
				if _, err := f.Build(); !errors.Is(err, shared.ErrInvalidInput) {
					t.Errorf("with %d slots: expected ErrInvalidInput, got %v", keep, err)
				}
			}
		})

		t.Run("rejects more than three creneaux", func(t *testing.T) {
			f := validForm()
			f.Slots = append(f.Slots, SlotEntry{Jour: "DIM", HeureDebut: "10:00"})
			if _, err := f.Build(); !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})

		t.Run("rejects an unknown day", func(t *testing.T) {
			f := validForm()
			f.Slots[0].Jour = "XYZ"
			if _, err := f.Build(); !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})

		t.Run("rejects a malformed time", func(t *testing.T) {
			f := validForm()
			f.Slots[0].HeureDebut = "25:99"
			if _, err := f.Build(); !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})

		t.Run("rejects a malformed id", func(t *testing.T) {
			f := validForm()
			f.FilmID = "abc"
			if _, err := f.Build(); !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})

		t.Run("rejects an end date before the start date", func(t *testing.T) {
			f := validForm()
			f.DateDeb = "2026-09-30"
			f.DateFin = "2026-09-01"
			if _, err := f.Build(); !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})

		t.Run("accepts equal start and end dates", func(t *testing.T) {
			f := validForm()
			f.DateDeb = "2026-09-01"
			f.DateFin = "2026-09-01"
			if _, err := f.Build(); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})

		t.Run("rejects missing dates", func(t *testing.T) {
			f := validForm()
			f.DateDeb = ""
			if _, err := f.Build(); !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	})

	t.Run("Reset restores the default shape", func(t *testing.T) {
		f := validForm()
		f.Reset()
		if f.FilmID != "" || f.CinemaID != "" || f.DateDeb != "" || f.DateFin != "" {
			t.Errorf("expected cleared fields, got %+v", f)
		}
		if len(f.Slots) != RequiredSlots {
			t.Fatalf("expected %d slots, got %d", RequiredSlots, len(f.Slots))
		}
		for _, slot := range f.Slots {
			if slot.Jour != string(models.Lundi) || slot.HeureDebut != "" {
				t.Errorf("unexpected slot %+v", slot)
			}
		}
	})
}
