package models

import (
	"strings"
	"testing"
)

func TestSession(t *testing.T) {
	t.Run("zero user id is unauthenticated", func(t *testing.T) {
		sess := Session{Role: RoleFilmOwner, Email: "a@b.fr"}
		if sess.Authenticated() {
			t.Error("expected unauthenticated session")
		}
	})

	t.Run("non-zero user id is authenticated", func(t *testing.T) {
		if !(Session{UserID: 1}).Authenticated() {
			t.Error("expected authenticated session")
		}
	})
}

func TestDay(t *testing.T) {
	t.Run("ParseDay", func(t *testing.T) {
		cases := []struct {
			input string
			want  Day
		}{
			{"LUN", Lundi},
			{"lun", Lundi},
			{"Lundi", Lundi},
			{"  mercredi ", Mercredi},
			{"DIMANCHE", Dimanche},
			{"sam", Samedi},
		}
		for _, tc := range cases {
			t.Run(tc.input, func(t *testing.T) {
				got, err := ParseDay(tc.input)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tc.want {
					t.Errorf("expected %s, got %s", tc.want, got)
				}
			})
		}

		for _, bad := range []string{"", "XYZ", "lu", "8"} {
			t.Run("rejects "+bad, func(t *testing.T) {
				if _, err := ParseDay(bad); err == nil {
					t.Errorf("expected error for %q", bad)
				}
			})
		}
	})

	t.Run("Label", func(t *testing.T) {
		if Vendredi.Label() != "Vendredi" {
			t.Errorf("unexpected label %q", Vendredi.Label())
		}
		if Day("XYZ").Label() != "XYZ" {
			t.Error("unknown day should fall back to its raw code")
		}
	})

	t.Run("Days covers the whole week", func(t *testing.T) {
		if len(Days) != 7 {
			t.Fatalf("expected 7 days, got %d", len(Days))
		}
		for _, d := range Days {
			if !d.Valid() {
				t.Errorf("day %s should be valid", d)
			}
		}
	})
}

func TestCreneau(t *testing.T) {
	cases := []struct {
		name string
		c    Creneau
		want bool
	}{
		{"both fields", Creneau{Jour: Lundi, HeureDebut: "20:00"}, true},
		{"missing time", Creneau{Jour: Lundi}, false},
		{"whitespace time", Creneau{Jour: Lundi, HeureDebut: "  "}, false},
		{"missing day", Creneau{HeureDebut: "20:00"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.Complete(); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestNewFilmValidate(t *testing.T) {
	valid := NewFilm{Titre: "Alien", Duree: 117, Langue: "en"}

	t.Run("accepts a complete film", func(t *testing.T) {
		if err := valid.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("requires a title", func(t *testing.T) {
		f := valid
		f.Titre = "  "
		if err := f.Validate(); err == nil || !strings.Contains(err.Error(), "titre") {
			t.Errorf("expected titre error, got %v", err)
		}
	})

	t.Run("requires a positive duration", func(t *testing.T) {
		f := valid
		f.Duree = 0
		if err := f.Validate(); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("rejects a negative minimum age", func(t *testing.T) {
		f := valid
		f.AgeMin = -1
		if err := f.Validate(); err == nil {
			t.Error("expected error")
		}
	})
}

func TestNewCinemaValidate(t *testing.T) {
	valid := NewCinema{Nom: "Le Royal", Adresse: "1 rue x", Ville: "Paris"}

	t.Run("accepts a complete cinema", func(t *testing.T) {
		if err := valid.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	for _, tc := range []struct {
		name  string
		blank func(c *NewCinema)
	}{
		{"nom", func(c *NewCinema) { c.Nom = "" }},
		{"adresse", func(c *NewCinema) { c.Adresse = "" }},
		{"ville", func(c *NewCinema) { c.Ville = "" }},
	} {
		t.Run("requires "+tc.name, func(t *testing.T) {
			c := valid
			tc.blank(&c)
			if err := c.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	}
}
