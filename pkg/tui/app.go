package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kasuboski/juststreamit/pkg/browse"
	"github.com/kasuboski/juststreamit/pkg/catalog"
	"github.com/kasuboski/juststreamit/pkg/logger"
	"github.com/kasuboski/juststreamit/pkg/render"
	"github.com/kasuboski/juststreamit/pkg/viewport"
	"github.com/kasuboski/juststreamit/pkg/visibility"
)

// Model is the interactive home page. Focus 0 is the best movie, the grids follow in page order.
type Model struct {
	ctx       context.Context
	loader    Loader
	board     *visibility.Board
	keys      KeyMap
	help      help.Model
	cellWidth int

	page   browse.Page
	loaded bool

	cols     int
	width    int
	focus    int
	cursor   int
	genreIdx int
	modal    *catalog.MovieDetail
}

func New(ctx context.Context, loader Loader, board *visibility.Board, cellWidth int) Model {
	return Model{
		ctx:       ctx,
		loader:    loader,
		board:     board,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		cellWidth: cellWidth,
		width:     viewport.DefaultWidth,
	}
}

func (m Model) Init() tea.Cmd {
	return LoadPageCmd(m.ctx, m.loader)
}

// Width is the viewport width in pixels the lists are laid out for
func (m Model) Width() int {
	return m.width
}

func (m Model) Focus() int {
	return m.focus
}

func (m Model) Cursor() int {
	return m.cursor
}

// Modal returns the title whose details are open, if any
func (m Model) Modal() (catalog.MovieDetail, bool) {
	if m.modal == nil {
		return catalog.MovieDetail{}, false
	}
	return *m.modal, true
}

func (m Model) sections() []browse.Section {
	return append([]browse.Section{m.page.Best}, m.page.Lists()...)
}

func (m Model) focused() browse.Section {
	sections := m.sections()
	if m.focus < 0 || m.focus >= len(sections) {
		return browse.Section{}
	}
	return sections[m.focus]
}

// visibleCount is how many movies of the focused section can take the cursor
func (m Model) visibleCount() int {
	s := m.focused()
	if s.Kind == browse.KindBest {
		return len(s.Movies)
	}
	snap, ok := m.board.Get(s.Key)
	if !ok {
		return len(s.Movies)
	}
	return snap.Visible
}

// selectedGenre is the query form of the genre the selector should show
func (m Model) selectedGenre() string {
	if m.genreIdx < 0 || m.genreIdx >= len(m.page.Genres) {
		return ""
	}
	return browse.GenreValue(m.page.Genres[m.genreIdx])
}

func (m *Model) clampCursor() {
	n := m.visibleCount()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.width = viewport.ColumnsToPixels(msg.Width, m.cellWidth)
		m.help.Width = msg.Width
		m.board.Resize(m.width)
		m.clampCursor()
		return m, nil

	case PageLoadedMsg:
		m.page = msg.Page
		m.loaded = true
		// the page comes back with its first genre selected
		m.genreIdx = 0
		m.page.Attach(m.board, m.width)
		m.clampCursor()
		return m, nil

	case GenreLoadedMsg:
		if msg.Genre != m.selectedGenre() {
			// an older selection finished after a newer one was requested
			return m, nil
		}
		m.page.Selector = msg.Section
		if msg.Section.Failed() {
			m.board.Remove(msg.Section.Key)
		} else {
			m.board.Replace(msg.Section.Key, len(msg.Section.Movies), m.width)
		}
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.modal != nil {
		if key.Matches(msg, m.keys.Close) {
			m.modal = nil
		}
		return m, nil
	}

	if !m.loaded {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % len(m.sections())
		m.cursor = 0
	case key.Matches(msg, m.keys.Prev):
		n := len(m.sections())
		m.focus = (m.focus - 1 + n) % n
		m.cursor = 0
	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clampCursor()
	case key.Matches(msg, m.keys.Up):
		m.cursor--
		m.clampCursor()
	case key.Matches(msg, m.keys.Toggle):
		s := m.focused()
		if s.Kind == browse.KindBest {
			return m, nil
		}
		if _, err := m.board.Toggle(s.Key); err != nil && !errors.Is(err, visibility.ErrNoControl) {
			logger.FromCtx(m.ctx).Warnw("toggle failed", "section", s.Key, "error", err)
		}
		m.clampCursor()
	case key.Matches(msg, m.keys.Open):
		s := m.focused()
		if m.cursor < len(s.Movies) {
			d := s.Movies[m.cursor]
			m.modal = &d
		}
	case key.Matches(msg, m.keys.Genre):
		if len(m.page.Genres) == 0 {
			return m, nil
		}
		m.genreIdx = (m.genreIdx + 1) % len(m.page.Genres)
		return m, SelectGenreCmd(m.ctx, m.loader, m.page.Genres[m.genreIdx])
	case key.Matches(msg, m.keys.Reload):
		return m, LoadPageCmd(m.ctx, m.loader)
	}

	return m, nil
}

func (m Model) View() string {
	if !m.loaded {
		return "Chargement…"
	}

	if m.modal != nil {
		return render.Modal(*m.modal, m.cols) + "\n" + render.DimStyle.Render("esc pour fermer")
	}

	blocks := make([]string, 0, len(m.sections())+1)
	for i, s := range m.sections() {
		cursor := -1
		if i == m.focus {
			cursor = m.cursor
		}
		if s.Kind == browse.KindBest {
			blocks = append(blocks, render.Best(s, i == m.focus))
			continue
		}
		snap, _ := m.board.Get(s.Key)
		blocks = append(blocks, render.Section(s, snap, cursor))
	}
	blocks = append(blocks, m.help.ShortHelpView(m.keys.ShortHelp()))

	return strings.TrimRight(lipgloss.JoinVertical(lipgloss.Left, blocks...), "\n")
}
