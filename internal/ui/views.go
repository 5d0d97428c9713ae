package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/elmi/cine/internal/formatter"
	"github.com/elmi/cine/internal/workflow"
)

// View renders the UI based on the current view state.
func (m *Model) View() string {
	var body string
	switch m.view {
	case HomeView:
		body = m.renderHome()
	case FilmListView:
		body = m.renderFilmList()
	case FilmDetailView:
		body = m.renderFilmDetail()
	case CinemaListView:
		body = m.renderCinemaList()
	case CinemaDetailView:
		body = m.renderCinemaDetail()
	case LoginView:
		body = m.loginForm.view("Connexion")
	case RegisterView:
		body = m.registerForm.view("Inscription")
	case FilmFormView:
		body = m.filmForm.view("Publier un film")
	case CinemaFormView:
		body = m.cinemaForm.view("Publier un cinéma")
	case ProgFormView:
		body = m.renderProgForm()
	}

	if m.notice != "" {
		style := styles.ok
		if m.noticeErr {
			style = styles.err
		}
		body = fmt.Sprintf("%s\n\n%s", body, style.Render(m.notice))
	}
	return body
}

func (m *Model) renderHome() string {
	title := styles.title.Render("🎬 Cinéphoria")

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")

	if m.sess.Authenticated() {
		b.WriteString(styles.help.Render(fmt.Sprintf("%s (%s)", m.sess.Email, m.sess.Role)))
		b.WriteString("\n\n")
	}

	for i, entry := range m.homeEntries() {
		cursor := "  "
		if i == m.homeCursor {
			cursor = styles.ok.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s\n", cursor, entry.label))
	}

	helpKeys := []key.Binding{m.keys.up, m.keys.down, m.keys.enter, m.keys.quit}
	b.WriteString("\n" + m.help.ShortHelpView(helpKeys))
	return b.String()
}

func (m *Model) renderFilmList() string {
	if m.loading {
		return styles.help.Render("Chargement des films...")
	}
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Erreur: %v\n\nPress esc to go back", m.err))
	}

	if m.searching {
		return fmt.Sprintf("%s\n\n%s", m.searchInput.View(),
			styles.help.Render("enter to search • esc to cancel"))
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.search, m.keys.create, m.keys.export, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.filmList.View(), helpView)
}

func (m *Model) renderFilmDetail() string {
	if m.loading {
		return styles.help.Render("Chargement du film...")
	}
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Erreur: %v\n\nPress esc to go back", m.err))
	}
	if m.film == nil {
		return ""
	}

	film := m.film
	title := styles.title.Render(film.Titre)

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Durée: %d min\nLangue: %s\n", film.Duree, film.Langue))
	if film.Realisateur != "" {
		b.WriteString(fmt.Sprintf("Réalisateur: %s\n", film.Realisateur))
	}
	if film.AgeMin > 0 {
		b.WriteString(fmt.Sprintf("Âge minimum: %d ans\n", film.AgeMin))
	}
	if film.SousTitre != "" {
		b.WriteString(fmt.Sprintf("Sous-titres: %s\n", film.SousTitre))
	}

	b.WriteString("\n" + styles.ok.Render("Programmations") + "\n")
	if len(film.Programmations) == 0 {
		b.WriteString(styles.help.Render("Aucune programmation disponible.") + "\n")
	}
	for _, prog := range film.Programmations {
		b.WriteString(fmt.Sprintf("  %s - %s, %s (du %s au %s)\n",
			prog.CinemaNom, prog.CinemaAdresse, prog.CinemaVille, prog.DateDeb, prog.DateFin))
		for _, creneau := range prog.Creneaux {
			b.WriteString(fmt.Sprintf("    %s\n", formatter.FormatCreneau(creneau)))
		}
	}

	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	b.WriteString("\n" + m.help.ShortHelpView(helpKeys))
	return b.String()
}

func (m *Model) renderCinemaList() string {
	if m.loading {
		return styles.help.Render("Chargement des cinémas...")
	}
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Erreur: %v\n\nPress esc to go back", m.err))
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.create, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.cinemaList.View(), helpView)
}

func (m *Model) renderCinemaDetail() string {
	if m.loading {
		return styles.help.Render("Chargement du cinéma...")
	}
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Erreur: %v\n\nPress esc to go back", m.err))
	}
	if m.page == nil {
		return ""
	}

	cinema := m.page.Cinema
	title := styles.title.Render(cinema.Nom)

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s, %s\n", cinema.Adresse, cinema.Ville))

	owner := workflow.IsOwner(m.sess, *cinema)
	if owner {
		b.WriteString(styles.ok.Render("Vous êtes propriétaire de ce cinéma.") + "\n")
	}

	b.WriteString("\n" + styles.ok.Render("Programmations") + "\n")
	if len(cinema.Programmations) == 0 {
		b.WriteString(styles.help.Render("Aucune programmation disponible.") + "\n")
	}
	for _, prog := range cinema.Programmations {
		b.WriteString(fmt.Sprintf("  %s (du %s au %s)\n", prog.FilmTitre, prog.DateDeb, prog.DateFin))
		for _, creneau := range prog.Creneaux {
			b.WriteString(fmt.Sprintf("    %s\n", formatter.FormatCreneau(creneau)))
		}
	}

	b.WriteString(fmt.Sprintf("\n%d film(s) au catalogue\n", len(m.page.Films)))

	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	if owner {
		helpKeys = append([]key.Binding{m.keys.publish}, helpKeys...)
	}
	b.WriteString("\n" + m.help.ShortHelpView(helpKeys))
	return b.String()
}

func (m *Model) renderProgForm() string {
	header := ""
	if m.page != nil {
		header = styles.help.Render(fmt.Sprintf("Cinéma: %s", m.page.Cinema.Nom)) + "\n\n"
	}
	return header + m.progForm.view("Publier une programmation")
}
