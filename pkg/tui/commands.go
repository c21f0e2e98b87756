package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kasuboski/juststreamit/pkg/browse"
)

// Loader fetches the sections the browser shows
type Loader interface {
	Home(ctx context.Context) browse.Page
	SelectGenre(ctx context.Context, genre string) browse.Section
}

// LoadPageCmd loads every section of the home page
func LoadPageCmd(ctx context.Context, l Loader) tea.Cmd {
	return func() tea.Msg {
		return PageLoadedMsg{Page: l.Home(ctx)}
	}
}

// SelectGenreCmd reloads the genre selector grid
func SelectGenreCmd(ctx context.Context, l Loader, genre string) tea.Cmd {
	return func() tea.Msg {
		return GenreLoadedMsg{Genre: browse.GenreValue(genre), Section: l.SelectGenre(ctx, genre)}
	}
}
