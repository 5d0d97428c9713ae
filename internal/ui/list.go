package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/elmi/cine/internal/models"
)

var (
	_ list.Item = filmItem{}
	_ list.Item = cinemaItem{}
)

// filmItem wraps [models.Film] to implement [list.Item].
type filmItem struct {
	film models.Film
}

func (i filmItem) FilterValue() string { return i.film.Titre }
func (i filmItem) Title() string       { return i.film.Titre }
func (i filmItem) Description() string {
	desc := fmt.Sprintf("%d min • %s", i.film.Duree, i.film.Langue)
	if i.film.Realisateur != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.film.Realisateur)
	}
	return desc
}

// cinemaItem wraps [models.Cinema] to implement [list.Item]. Owned marks
// cinemas belonging to the session user.
type cinemaItem struct {
	cinema models.Cinema
	owned  bool
}

func (i cinemaItem) FilterValue() string { return i.cinema.Nom }
func (i cinemaItem) Title() string {
	if i.owned {
		return "★ " + i.cinema.Nom
	}
	return i.cinema.Nom
}
func (i cinemaItem) Description() string {
	return fmt.Sprintf("%s, %s", i.cinema.Adresse, i.cinema.Ville)
}
