package models

import (
	"fmt"
	"strings"
)

// User roles recognized by the service.
const (
	RoleFilmOwner   = "proprio_film"
	RoleCinemaOwner = "proprio_cinema"
)

// Session is the client-held record of the currently authenticated user.
//
// A zero UserID means unauthenticated; Role and Email are then treated as
// absent regardless of their stored values.
type Session struct {
	UserID int64
	Role   string
	Email  string
}

// Authenticated reports whether the session belongs to a logged-in user.
func (s Session) Authenticated() bool {
	return s.UserID != 0
}

// Day is a day-of-week code as the service spells it.
type Day string

const (
	Lundi    Day = "LUN"
	Mardi    Day = "MAR"
	Mercredi Day = "MER"
	Jeudi    Day = "JEU"
	Vendredi Day = "VEN"
	Samedi   Day = "SAM"
	Dimanche Day = "DIM"
)

// Days lists all day codes in week order.
var Days = []Day{Lundi, Mardi, Mercredi, Jeudi, Vendredi, Samedi, Dimanche}

var dayLabels = map[Day]string{
	Lundi:    "Lundi",
	Mardi:    "Mardi",
	Mercredi: "Mercredi",
	Jeudi:    "Jeudi",
	Vendredi: "Vendredi",
	Samedi:   "Samedi",
	Dimanche: "Dimanche",
}

// Valid reports whether d is one of the seven recognized codes.
func (d Day) Valid() bool {
	_, ok := dayLabels[d]
	return ok
}

// Label returns the French display name for the day, or the raw code if unknown.
func (d Day) Label() string {
	if label, ok := dayLabels[d]; ok {
		return label
	}
	return string(d)
}

// ParseDay converts user input (code or full name, any case) to a Day.
func ParseDay(s string) (Day, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(s))
	if len(trimmed) > 3 {
		trimmed = trimmed[:3]
	}
	d := Day(trimmed)
	if !d.Valid() {
		return "", fmt.Errorf("unknown day %q (want LUN, MAR, MER, JEU, VEN, SAM or DIM)", s)
	}
	return d, nil
}

// Creneau is one weekly recurring time slot belonging to a programmation.
type Creneau struct {
	Jour       Day    `json:"jour"`
	HeureDebut string `json:"heureDebut"`
}

// Complete reports whether both fields are populated.
func (c Creneau) Complete() bool {
	return c.Jour != "" && strings.TrimSpace(c.HeureDebut) != ""
}

// Film is the read shape of a film. Programmations is present only in the
// detail view; the summary shape leaves it nil.
type Film struct {
	ID             int64           `json:"id"`
	Titre          string          `json:"titre"`
	Duree          int             `json:"duree"`
	Langue         string          `json:"langue"`
	Realisateur    string          `json:"realisateur"`
	AgeMin         int             `json:"ageMin,omitempty"`
	SousTitre      string          `json:"sousTitre,omitempty"`
	Programmations []Programmation `json:"programmations,omitempty"`
}

// Cinema is the read shape of a cinema. Programmations is present only in
// the detail view.
type Cinema struct {
	ID             int64           `json:"id"`
	Nom            string          `json:"nom"`
	Adresse        string          `json:"adresse"`
	Ville          string          `json:"ville"`
	IDProprietaire int64           `json:"idProprietaire"`
	Programmations []Programmation `json:"programmations,omitempty"`
}

// Programmation is the read shape of a scheduled run. The display fields
// (film title, cinema name, address, ...) are denormalized by the server;
// the client never recomputes them.
type Programmation struct {
	ID            int64     `json:"id"`
	FilmTitre     string    `json:"filmTitre,omitempty"`
	FilmDuree     int       `json:"filmDuree,omitempty"`
	FilmLangue    string    `json:"filmLangue,omitempty"`
	Realisateur   string    `json:"realisateur,omitempty"`
	CinemaNom     string    `json:"cinemaNom,omitempty"`
	CinemaAdresse string    `json:"cinemaAdresse,omitempty"`
	CinemaVille   string    `json:"cinemaVille,omitempty"`
	DateDeb       string    `json:"dateDeb"`
	DateFin       string    `json:"dateFin"`
	Creneaux      []Creneau `json:"creneaux"`
}

// NewFilm is the create-request shape for a film.
type NewFilm struct {
	Titre       string `json:"titre"`
	Duree       int    `json:"duree"`
	Langue      string `json:"langue"`
	Realisateur string `json:"realisateur"`
	AgeMin      int    `json:"ageMin,omitempty"`
	SousTitre   string `json:"sousTitre,omitempty"`
}

// Validate checks the request against the service's field constraints.
func (f NewFilm) Validate() error {
	if strings.TrimSpace(f.Titre) == "" {
		return fmt.Errorf("titre is required")
	}
	if f.Duree <= 0 {
		return fmt.Errorf("duree must be a positive number of minutes")
	}
	if f.AgeMin < 0 {
		return fmt.Errorf("ageMin must not be negative")
	}
	return nil
}

// NewCinema is the create-request shape for a cinema.
type NewCinema struct {
	Nom     string `json:"nom"`
	Adresse string `json:"adresse"`
	Ville   string `json:"ville"`
}

// Validate checks the request against the service's field constraints.
func (c NewCinema) Validate() error {
	if strings.TrimSpace(c.Nom) == "" {
		return fmt.Errorf("nom is required")
	}
	if strings.TrimSpace(c.Adresse) == "" {
		return fmt.Errorf("adresse is required")
	}
	if strings.TrimSpace(c.Ville) == "" {
		return fmt.Errorf("ville is required")
	}
	return nil
}

// NewProgrammation is the create-request shape for a programmation.
//
// Dates are YYYY-MM-DD strings as the service expects them. A valid request
// carries exactly three complete creneaux; the workflow form enforces that
// before submission.
type NewProgrammation struct {
	FilmID   int64     `json:"filmId"`
	CinemaID int64     `json:"cinemaId"`
	DateDeb  string    `json:"dateDeb"`
	DateFin  string    `json:"dateFin"`
	Creneaux []Creneau `json:"creneaux"`
}
