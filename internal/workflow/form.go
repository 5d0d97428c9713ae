package workflow

import (
	"fmt"
	"strings"
	"time"

	"github.com/elmi/cine/internal/models"
	"github.com/elmi/cine/internal/shared"
)

// RequiredSlots is the number of complete creneaux a programmation must carry.
const RequiredSlots = 3

const dateLayout = "2006-01-02"

// SlotEntry is one editable creneau row, fields as the user typed them.
type SlotEntry struct {
	Jour       string
	HeureDebut string
}

func (e SlotEntry) complete() bool {
	return strings.TrimSpace(e.Jour) != "" && strings.TrimSpace(e.HeureDebut) != ""
}

// ProgrammationForm holds the in-progress state of a programmation
// submission. Fields are strings as entered; Build performs all coercion
// and validation. The form is preserved on failure so the user can correct
// and retry, and reset to the default three-blank-slot shape on success.
type ProgrammationForm struct {
	FilmID   string
	CinemaID string
	DateDeb  string
	DateFin  string
	Slots    []SlotEntry
}

// NewProgrammationForm returns a form in its default shape: three slots
// preset to Monday with no start time.
func NewProgrammationForm() ProgrammationForm {
	f := ProgrammationForm{}
	f.Reset()
	return f
}

// Reset restores the default three-blank-slot shape.
func (f *ProgrammationForm) Reset() {
	f.FilmID = ""
	f.CinemaID = ""
	f.DateDeb = ""
	f.DateFin = ""
	f.Slots = []SlotEntry{
		{Jour: string(models.Lundi)},
		{Jour: string(models.Lundi)},
		{Jour: string(models.Lundi)},
	}
}

// Build validates the form and assembles the create-request shape.
//
// Slots missing either field are discarded; the remainder must number
// exactly RequiredSlots. No request is sent when Build fails.
func (f ProgrammationForm) Build() (models.NewProgrammation, error) {
	var prog models.NewProgrammation

	filmID, err := CoerceID(f.FilmID)
	if err != nil {
		return prog, fmt.Errorf("%w: film: %v", shared.ErrInvalidInput, err)
	}

	cinemaID, err := CoerceID(f.CinemaID)
	if err != nil {
		return prog, fmt.Errorf("%w: cinema: %v", shared.ErrInvalidInput, err)
	}

	dateDeb, err := parseDate(f.DateDeb)
	if err != nil {
		return prog, fmt.Errorf("%w: start date: %v", shared.ErrInvalidInput, err)
	}

	dateFin, err := parseDate(f.DateFin)
	if err != nil {
		return prog, fmt.Errorf("%w: end date: %v", shared.ErrInvalidInput, err)
	}

	if dateFin.Before(dateDeb) {
		return prog, fmt.Errorf("%w: end date precedes start date", shared.ErrInvalidInput)
	}

	var creneaux []models.Creneau
	for _, entry := range f.Slots {
		if !entry.complete() {
			continue
		}

		jour, err := models.ParseDay(entry.Jour)
		if err != nil {
			return prog, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
		}

		heure, err := parseTime(entry.HeureDebut)
		if err != nil {
			return prog, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
		}

		creneaux = append(creneaux, models.Creneau{Jour: jour, HeureDebut: heure})
	}

	if len(creneaux) != RequiredSlots {
		return prog, fmt.Errorf("%w: exactly %d creneaux required, got %d", shared.ErrInvalidInput, RequiredSlots, len(creneaux))
	}

	return models.NewProgrammation{
		FilmID:   filmID,
		CinemaID: cinemaID,
		DateDeb:  dateDeb.Format(dateLayout),
		DateFin:  dateFin.Format(dateLayout),
		Creneaux: creneaux,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}

	t, err := time.Parse(dateLayout, trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

func parseTime(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if _, err := time.Parse("15:04", trimmed); err != nil {
		return "", fmt.Errorf("invalid time %q (want HH:MM)", s)
	}
	return trimmed, nil
}
