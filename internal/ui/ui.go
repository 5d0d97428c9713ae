package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/elmi/cine/internal/api"
	"github.com/elmi/cine/internal/formatter"
	"github.com/elmi/cine/internal/models"
	"github.com/elmi/cine/internal/session"
	"github.com/elmi/cine/internal/workflow"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	HomeView ViewState = iota
	FilmListView
	FilmDetailView
	CinemaListView
	CinemaDetailView
	LoginView
	RegisterView
	FilmFormView
	CinemaFormView
	ProgFormView
)

// homeEntry is one selectable row of the home menu.
type homeEntry struct {
	label string
	view  ViewState
}

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	gateway api.Gateway
	engine  *workflow.Engine
	store   *session.Store

	sess        models.Session
	sessCh      chan models.Session
	unsubscribe func()

	view   ViewState
	width  int
	height int
	seq    int

	loading   bool
	err       error
	notice    string
	noticeErr bool

	homeCursor int

	ville       string
	searchInput textinput.Model
	searching   bool
	films       []models.Film
	filmList    list.Model

	film *models.Film

	cinemas    []models.Cinema
	cinemaList list.Model

	page *workflow.CinemaPage

	loginForm    form
	registerForm form
	filmForm     form
	cinemaForm   form
	progForm     form

	help help.Model
	keys keyMap
}

type filmsFetchedMsg struct {
	seq   int
	films []models.Film
	err   error
}

type filmFetchedMsg struct {
	seq  int
	film *models.Film
	err  error
}

type cinemasFetchedMsg struct {
	seq     int
	cinemas []models.Cinema
	err     error
}

type cinemaPageFetchedMsg struct {
	seq  int
	page *workflow.CinemaPage
	err  error
}

type authCompletedMsg struct {
	seq  int
	sess models.Session
	err  error
}

type publishCompletedMsg struct {
	seq     int
	what    string
	id      int64
	films   []models.Film
	cinemas []models.Cinema
	page    *workflow.CinemaPage
	err     error
}

type sessionChangedMsg models.Session

type exportDoneMsg struct {
	path string
	err  error
}

// NewModel creates a new TUI model with the provided dependencies.
//
// The session store is subscribed immediately; the subscription is released
// when the model receives its final quit message.
func NewModel(ctx context.Context, gateway api.Gateway, engine *workflow.Engine, store *session.Store) *Model {
	sess, _ := store.Read()

	search := textinput.New()
	search.Prompt = "Ville: "
	search.Placeholder = "toutes les villes"

	m := &Model{
		ctx:          ctx,
		gateway:      gateway,
		engine:       engine,
		store:        store,
		sess:         sess,
		sessCh:       make(chan models.Session, 8),
		view:         HomeView,
		searchInput:  search,
		loginForm:    newLoginForm(),
		registerForm: newRegisterForm(),
		filmForm:     newFilmForm(),
		cinemaForm:   newCinemaForm(),
		progForm:     newProgForm(),
		help:         help.New(),
		keys:         newKeyMap(),
	}

	m.unsubscribe = store.Subscribe(func(s models.Session) {
		select {
		case m.sessCh <- s:
		default:
		}
	})

	return m
}

// Init starts listening for session changes.
func (m *Model) Init() tea.Cmd {
	return m.waitForSession()
}

func (m *Model) waitForSession() tea.Cmd {
	return func() tea.Msg {
		return sessionChangedMsg(<-m.sessCh)
	}
}

// nextSeq advances the request generation. Responses stamped with an older
// generation are discarded in Update.
func (m *Model) nextSeq() int {
	m.seq++
	return m.seq
}

func (m *Model) goTo(view ViewState) {
	m.view = view
	m.err = nil
	m.notice = ""
	m.loading = false
	m.nextSeq()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.filmList.Width() > 0 {
			m.filmList.SetSize(msg.Width-4, msg.Height-8)
		}
		if m.cinemaList.Width() > 0 {
			m.cinemaList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case sessionChangedMsg:
		m.sess = models.Session(msg)
		if len(m.cinemas) > 0 {
			m.setCinemaItems()
		}
		return m, m.waitForSession()

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case filmsFetchedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.films = msg.films
		m.setFilmItems()
		return m, nil

	case filmFetchedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.film = msg.film
		return m, nil

	case cinemasFetchedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.cinemas = msg.cinemas
		m.setCinemaItems()
		return m, nil

	case cinemaPageFetchedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.page = msg.page
		return m, nil

	case authCompletedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			// Form state is preserved so the user can correct and retry.
			m.notice = msg.err.Error()
			m.noticeErr = true
			return m, nil
		}
		m.loginForm.reset()
		m.registerForm.reset()
		m.goTo(HomeView)
		m.notice = fmt.Sprintf("Connecté en tant que %s", msg.sess.Email)
		m.noticeErr = false
		return m, nil

	case publishCompletedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.notice = msg.err.Error()
			m.noticeErr = true
			return m, nil
		}

		switch msg.what {
		case "Programmation":
			if msg.page != nil {
				m.page = msg.page
			}
			m.progForm.reset()
			m.goTo(CinemaDetailView)
		case "Film":
			m.films = msg.films
			m.setFilmItems()
			m.filmForm.reset()
			m.goTo(FilmListView)
		case "Cinéma":
			m.cinemas = msg.cinemas
			m.setCinemaItems()
			m.cinemaForm.reset()
			m.goTo(CinemaListView)
		}
		m.notice = fmt.Sprintf("%s créé (id %d)", msg.what, msg.id)
		m.noticeErr = false
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.notice = msg.err.Error()
			m.noticeErr = true
		} else {
			m.notice = fmt.Sprintf("Exporté vers %s", msg.path)
			m.noticeErr = false
		}
		return m, nil
	}

	return m.updateLists(msg)
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case HomeView:
		return m.handleHomeKeys(msg)
	case FilmListView:
		return m.handleFilmListKeys(msg)
	case FilmDetailView:
		return m.handleFilmDetailKeys(msg)
	case CinemaListView:
		return m.handleCinemaListKeys(msg)
	case CinemaDetailView:
		return m.handleCinemaDetailKeys(msg)
	case LoginView:
		return m.handleFormKeys(msg, &m.loginForm, m.submitLogin)
	case RegisterView:
		return m.handleFormKeys(msg, &m.registerForm, m.submitRegister)
	case FilmFormView:
		return m.handleFormKeys(msg, &m.filmForm, m.submitFilm)
	case CinemaFormView:
		return m.handleFormKeys(msg, &m.cinemaForm, m.submitCinema)
	case ProgFormView:
		return m.handleFormKeys(msg, &m.progForm, m.submitProgrammation)
	}
	return m, nil
}

func (m *Model) homeEntries() []homeEntry {
	entries := []homeEntry{
		{"🎞️  Films", FilmListView},
		{"🏛️  Cinémas", CinemaListView},
	}
	if m.sess.Authenticated() {
		entries = append(entries, homeEntry{"Déconnexion", HomeView})
	} else {
		entries = append(entries,
			homeEntry{"Connexion", LoginView},
			homeEntry{"Inscription", RegisterView},
		)
	}
	return entries
}

func (m *Model) handleHomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.homeEntries()

	switch msg.String() {
	case "q", "ctrl+c":
		return m.quit()
	case "up", "k":
		if m.homeCursor > 0 {
			m.homeCursor--
		}
	case "down", "j":
		if m.homeCursor < len(entries)-1 {
			m.homeCursor++
		}
	case "enter":
		entry := entries[m.homeCursor]
		if entry.label == "Déconnexion" {
			if err := m.store.Clear(); err != nil {
				m.notice = err.Error()
				m.noticeErr = true
				return m, nil
			}
			m.homeCursor = 0
			m.notice = "Déconnecté"
			m.noticeErr = false
			return m, nil
		}

		m.goTo(entry.view)
		switch entry.view {
		case FilmListView:
			m.loading = true
			return m, m.fetchFilms(m.ville)
		case CinemaListView:
			m.loading = true
			return m, m.fetchCinemas()
		}
	}
	return m, nil
}

func (m *Model) handleFilmListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			m.ville = m.searchInput.Value()
			m.loading = true
			m.nextSeq()
			return m, m.fetchFilms(m.ville)
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m.quit()
	case "esc":
		m.goTo(HomeView)
		return m, nil
	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink
	case "n":
		if !workflow.CanCreateFilm(m.sess) {
			m.notice = fmt.Sprintf("le rôle %s est requis pour publier un film", models.RoleFilmOwner)
			m.noticeErr = true
			return m, nil
		}
		m.goTo(FilmFormView)
		return m, textinput.Blink
	case "e":
		return m, m.exportFilms()
	case "enter":
		if selected := m.filmList.SelectedItem(); selected != nil {
			if item, ok := selected.(filmItem); ok {
				m.goTo(FilmDetailView)
				m.loading = true
				return m, m.fetchFilm(item.film.ID)
			}
		}
	}

	var cmd tea.Cmd
	m.filmList, cmd = m.filmList.Update(msg)
	return m, cmd
}

func (m *Model) handleFilmDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m.quit()
	case "esc":
		m.film = nil
		m.goTo(FilmListView)
		return m, nil
	}
	return m, nil
}

func (m *Model) handleCinemaListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m.quit()
	case "esc":
		m.goTo(HomeView)
		return m, nil
	case "n":
		if !workflow.CanCreateCinema(m.sess) {
			m.notice = fmt.Sprintf("le rôle %s est requis pour publier un cinéma", models.RoleCinemaOwner)
			m.noticeErr = true
			return m, nil
		}
		m.goTo(CinemaFormView)
		return m, textinput.Blink
	case "enter":
		if selected := m.cinemaList.SelectedItem(); selected != nil {
			if item, ok := selected.(cinemaItem); ok {
				m.goTo(CinemaDetailView)
				m.loading = true
				return m, m.fetchCinemaPage(item.cinema.ID)
			}
		}
	}

	var cmd tea.Cmd
	m.cinemaList, cmd = m.cinemaList.Update(msg)
	return m, cmd
}

func (m *Model) handleCinemaDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m.quit()
	case "esc":
		m.page = nil
		m.goTo(CinemaListView)
		m.loading = true
		return m, m.fetchCinemas()
	case "p":
		if m.page == nil {
			return m, nil
		}
		if !workflow.IsOwner(m.sess, *m.page.Cinema) {
			// The publish action is not offered to non-owners at all;
			// ignore the key instead of explaining it.
			return m, nil
		}
		m.goTo(ProgFormView)
		return m, textinput.Blink
	}
	return m, nil
}

// handleFormKeys drives any of the text-input forms: tab navigation, enter
// on the last field submits, esc abandons without clearing the inputs.
func (m *Model) handleFormKeys(msg tea.KeyMsg, f *form, submit func() tea.Cmd) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "esc":
		switch m.view {
		case LoginView, RegisterView:
			m.goTo(HomeView)
		case FilmFormView:
			m.goTo(FilmListView)
		case CinemaFormView:
			m.goTo(CinemaListView)
		case ProgFormView:
			m.goTo(CinemaDetailView)
		}
		return m, nil
	case "tab", "down":
		f.focusNext()
		return m, nil
	case "shift+tab", "up":
		f.focusPrev()
		return m, nil
	case "enter":
		if f.atLast() {
			if m.loading {
				return m, nil
			}
			m.loading = true
			return m, submit()
		}
		f.focusNext()
		return m, nil
	}

	return m, f.update(msg)
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case FilmListView:
		if m.searching {
			m.searchInput, cmd = m.searchInput.Update(msg)
		} else {
			m.filmList, cmd = m.filmList.Update(msg)
		}
	case CinemaListView:
		m.cinemaList, cmd = m.cinemaList.Update(msg)
	case LoginView:
		cmd = m.loginForm.update(msg)
	case RegisterView:
		cmd = m.registerForm.update(msg)
	case FilmFormView:
		cmd = m.filmForm.update(msg)
	case CinemaFormView:
		cmd = m.cinemaForm.update(msg)
	case ProgFormView:
		cmd = m.progForm.update(msg)
	}
	return m, cmd
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	return m, tea.Quit
}

func (m *Model) setFilmItems() {
	items := make([]list.Item, len(m.films))
	for i, film := range m.films {
		items[i] = filmItem{film: film}
	}

	title := "Films"
	if strings.TrimSpace(m.ville) != "" {
		title = fmt.Sprintf("Films à %s", strings.TrimSpace(m.ville))
	}

	m.filmList = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.filmList.Title = title
	m.filmList.SetSize(m.width-4, m.height-8)
}

func (m *Model) setCinemaItems() {
	mine, others := workflow.PartitionCinemas(m.sess, m.cinemas)

	items := make([]list.Item, 0, len(m.cinemas))
	for _, cinema := range mine {
		items = append(items, cinemaItem{cinema: cinema, owned: true})
	}
	for _, cinema := range others {
		items = append(items, cinemaItem{cinema: cinema})
	}

	m.cinemaList = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.cinemaList.Title = "Cinémas"
	m.cinemaList.SetSize(m.width-4, m.height-8)
}

func (m *Model) fetchFilms(ville string) tea.Cmd {
	seq := m.seq
	return func() tea.Msg {
		films, err := m.gateway.ListFilms(m.ctx, ville)
		return filmsFetchedMsg{seq: seq, films: films, err: err}
	}
}

func (m *Model) fetchFilm(id int64) tea.Cmd {
	seq := m.seq
	return func() tea.Msg {
		film, err := m.gateway.FilmDetails(m.ctx, id)
		return filmFetchedMsg{seq: seq, film: film, err: err}
	}
}

func (m *Model) fetchCinemas() tea.Cmd {
	seq := m.seq
	return func() tea.Msg {
		cinemas, err := m.gateway.ListCinemas(m.ctx)
		return cinemasFetchedMsg{seq: seq, cinemas: cinemas, err: err}
	}
}

func (m *Model) fetchCinemaPage(id int64) tea.Cmd {
	seq := m.seq
	return func() tea.Msg {
		page, err := m.engine.LoadCinemaPage(m.ctx, id)
		return cinemaPageFetchedMsg{seq: seq, page: page, err: err}
	}
}

func (m *Model) submitLogin() tea.Cmd {
	seq := m.seq
	email, mdp := m.loginForm.value(0), m.loginForm.value(1)
	return func() tea.Msg {
		sess, err := m.gateway.Login(m.ctx, email, mdp)
		if err == nil {
			err = m.store.Save(sess.UserID, sess.Role, sess.Email)
		}
		return authCompletedMsg{seq: seq, sess: sess, err: err}
	}
}

func (m *Model) submitRegister() tea.Cmd {
	seq := m.seq
	email, mdp, role := m.registerForm.value(0), m.registerForm.value(1), m.registerForm.value(2)
	return func() tea.Msg {
		sess, err := m.gateway.Register(m.ctx, email, mdp, role)
		if err == nil {
			err = m.store.Save(sess.UserID, sess.Role, sess.Email)
		}
		return authCompletedMsg{seq: seq, sess: sess, err: err}
	}
}

func (m *Model) submitFilm() tea.Cmd {
	seq := m.seq
	film, err := m.filmForm.toNewFilm()
	if err != nil {
		return func() tea.Msg { return publishCompletedMsg{seq: seq, err: err} }
	}

	sess, ville := m.sess, m.ville
	return func() tea.Msg {
		id, films, err := m.engine.PublishFilm(m.ctx, sess, film, ville)
		return publishCompletedMsg{seq: seq, what: "Film", id: id, films: films, err: err}
	}
}

func (m *Model) submitCinema() tea.Cmd {
	seq := m.seq
	cinema, err := m.cinemaForm.toNewCinema()
	if err != nil {
		return func() tea.Msg { return publishCompletedMsg{seq: seq, err: err} }
	}

	sess := m.sess
	return func() tea.Msg {
		id, cinemas, err := m.engine.PublishCinema(m.ctx, sess, cinema)
		return publishCompletedMsg{seq: seq, what: "Cinéma", id: id, cinemas: cinemas, err: err}
	}
}

func (m *Model) submitProgrammation() tea.Cmd {
	seq := m.seq
	if m.page == nil {
		return func() tea.Msg {
			return publishCompletedMsg{seq: seq, err: fmt.Errorf("no cinema selected")}
		}
	}

	sess, cinema := m.sess, *m.page.Cinema
	pf := m.progForm.toProgrammationForm(cinema.ID)
	return func() tea.Msg {
		id, page, err := m.engine.PublishProgrammation(m.ctx, sess, cinema, &pf)
		return publishCompletedMsg{seq: seq, what: "Programmation", id: id, page: page, err: err}
	}
}

func (m *Model) exportFilms() tea.Cmd {
	films := m.films
	return func() tea.Msg {
		data, err := formatter.FilmsToCSV(films)
		if err == nil {
			err = formatter.WriteExport("films.csv", data)
		}
		return exportDoneMsg{path: "films.csv", err: err}
	}
}
