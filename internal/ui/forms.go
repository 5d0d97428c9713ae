package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/elmi/cine/internal/models"
	"github.com/elmi/cine/internal/workflow"
)

// form is a vertical stack of labelled text inputs with a single focus.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(fields ...string) form {
	f := form{labels: fields, inputs: make([]textinput.Model, len(fields))}
	for i := range fields {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.CharLimit = 120
		f.inputs[i] = ti
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f *form) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) atLast() bool {
	return f.focus == len(f.inputs)-1
}

// update forwards a message to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

func (f *form) view(title string) string {
	var b strings.Builder
	b.WriteString(styles.title.Render(title))
	b.WriteString("\n\n")
	for i, input := range f.inputs {
		b.WriteString(fmt.Sprintf("%s\n%s\n\n", f.labels[i], input.View()))
	}
	b.WriteString(styles.help.Render("tab/shift+tab move • enter on last field submits • esc cancels"))
	return b.String()
}

func newLoginForm() form {
	f := newForm("Email", "Mot de passe")
	f.inputs[1].EchoMode = textinput.EchoPassword
	return f
}

func newRegisterForm() form {
	f := newForm("Email", "Mot de passe", fmt.Sprintf("Rôle (%s ou %s)", models.RoleFilmOwner, models.RoleCinemaOwner))
	f.inputs[1].EchoMode = textinput.EchoPassword
	return f
}

func newFilmForm() form {
	f := newForm("Titre", "Durée (minutes)", "Langue", "Réalisateur", "Âge minimum (optionnel)", "Sous-titres (optionnel)")
	f.inputs[1].Placeholder = "120"
	return f
}

func newCinemaForm() form {
	return newForm("Nom", "Adresse", "Ville")
}

// newProgForm lays out the programmation form: film id, both dates, then
// three jour/heure slot pairs. The cinema id comes from the current cinema
// detail view, not from an input.
func newProgForm() form {
	f := newForm(
		"Film (id)",
		"Date de début (YYYY-MM-DD)",
		"Date de fin (YYYY-MM-DD)",
		"Créneau 1 - jour", "Créneau 1 - heure (HH:MM)",
		"Créneau 2 - jour", "Créneau 2 - heure (HH:MM)",
		"Créneau 3 - jour", "Créneau 3 - heure (HH:MM)",
	)
	for _, i := range []int{3, 5, 7} {
		f.inputs[i].Placeholder = string(models.Lundi)
	}
	return f
}

// toProgrammationForm copies the inputs into the workflow form for the
// given cinema. Empty jour fields fall back to the Monday default so a
// row left fully blank counts as one incomplete slot, not two.
func (f *form) toProgrammationForm(cinemaID int64) workflow.ProgrammationForm {
	pf := workflow.NewProgrammationForm()
	pf.FilmID = f.value(0)
	pf.CinemaID = fmt.Sprintf("%d", cinemaID)
	pf.DateDeb = f.value(1)
	pf.DateFin = f.value(2)

	for slot := 0; slot < workflow.RequiredSlots; slot++ {
		jour := f.value(3 + slot*2)
		if jour == "" {
			jour = string(models.Lundi)
		}
		pf.Slots[slot] = workflow.SlotEntry{
			Jour:       jour,
			HeureDebut: f.value(4 + slot*2),
		}
	}
	return pf
}

// toNewFilm assembles a film create request from the film form.
func (f *form) toNewFilm() (models.NewFilm, error) {
	film := models.NewFilm{
		Titre:       f.value(0),
		Langue:      f.value(2),
		Realisateur: f.value(3),
		SousTitre:   f.value(5),
	}

	duree, err := parsePositive(f.value(1), "durée")
	if err != nil {
		return film, err
	}
	film.Duree = duree

	if v := f.value(4); v != "" {
		ageMin, err := parsePositive(v, "âge minimum")
		if err != nil {
			return film, err
		}
		film.AgeMin = ageMin
	}

	return film, film.Validate()
}

// toNewCinema assembles a cinema create request from the cinema form.
func (f *form) toNewCinema() (models.NewCinema, error) {
	cinema := models.NewCinema{
		Nom:     f.value(0),
		Adresse: f.value(1),
		Ville:   f.value(2),
	}
	return cinema, cinema.Validate()
}

func parsePositive(s, field string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive number", field)
	}
	return n, nil
}
