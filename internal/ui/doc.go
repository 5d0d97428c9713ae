// Package ui implements the interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI is organized into pages:
//  1. [HomeView] : entry menu (films, cinemas, authentication)
//  2. [FilmListView] : browse and search films by city, create films (role-gated)
//  3. [FilmDetailView] : film information with its programmations
//  4. [CinemaListView] : cinemas, the session user's own listed first
//  5. [CinemaDetailView] : cinema information; owners may publish programmations
//  6. [LoginView] / [RegisterView] : authentication forms
//
// The [Model] implements bubbletea's standard Init/Update/View pattern.
// Every asynchronous fetch carries a request generation number; responses
// from a generation the user has already navigated away from are discarded
// instead of being applied to the wrong view. The cinema detail entry is a
// fan-out of two reads (details plus the film list) joined by the workflow
// engine before the view leaves its loading state.
package ui
