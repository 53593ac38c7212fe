// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-flix/internal/catalog"
	"github.com/MKhiriev/go-flix/internal/service"
	"github.com/MKhiriev/go-flix/models"
)

type homeState int

const (
	homeChecking homeState = iota
	homeLoading
	homeReady
	homeFailed
)

const (
	rowWindow       = 4
	overviewWidth   = 70
	statusClearTime = 3 * time.Second
)

// HomeModel is the protected home page. Every time it is opened it asks the
// route guard first and renders the catalog only after the check passes.
// A failed check sends the user back to the menu.
type HomeModel struct {
	rootCtx context.Context
	ctx     context.Context
	cancel  context.CancelFunc
	seq     int

	guard   service.RouteGuard
	auth    service.ClientAuthService
	catalog service.ClientCatalogService
	images  catalog.Images

	writeClipboard func(string) error

	state   homeState
	spinner spinner.Model
	claims  models.Claims
	page    models.HomePage
	errMsg  string
	status  string

	heroIdx int
	row     int
	col     int

	details        *models.MovieDetails
	loadingDetails bool
}

func NewHomeModel(
	ctx context.Context,
	guard service.RouteGuard,
	auth service.ClientAuthService,
	catalogService service.ClientCatalogService,
	images catalog.Images,
) *HomeModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = titleStyle

	return &HomeModel{
		rootCtx:        ctx,
		guard:          guard,
		auth:           auth,
		catalog:        catalogService,
		images:         images,
		writeClipboard: clipboard.WriteAll,
		spinner:        s,
	}
}

// Init starts a new guard check. A check still running from an earlier
// visit is cancelled and its result is dropped.
func (m *HomeModel) Init() tea.Cmd {
	m.leave()

	m.ctx, m.cancel = context.WithCancel(m.rootCtx)
	m.seq++
	m.state = homeChecking
	m.errMsg = ""
	m.status = ""
	m.details = nil
	m.loadingDetails = false

	return tea.Batch(m.spinner.Tick, m.cmdCheck(m.ctx, m.seq))
}

func (m *HomeModel) leave() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.state != homeChecking && m.state != homeLoading && !m.loadingDetails {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case guardCheckedMsg:
		if msg.seq != m.seq || errors.Is(msg.err, context.Canceled) {
			return m, nil
		}
		if msg.err != nil {
			m.leave()
			return m, navigateWith(pageMenu, SignedOutNotice{Reason: humanizeError(msg.err)})
		}
		m.claims = msg.claims
		m.state = homeLoading
		return m, m.cmdLoad(m.ctx, m.seq)

	case homeLoadedMsg:
		if msg.seq != m.seq || errors.Is(msg.err, context.Canceled) {
			return m, nil
		}
		if msg.err != nil {
			m.state = homeFailed
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.page = msg.page
		m.state = homeReady
		m.heroIdx = 0
		m.clampSelection()
		return m, nil

	case detailsLoadedMsg:
		if msg.seq != m.seq || errors.Is(msg.err, context.Canceled) {
			return m, nil
		}
		m.loadingDetails = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		details := msg.details
		m.details = &details
		return m, nil

	case loggedOutMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.leave()
		return m, navigateWith(pageMenu, SignedOutNotice{Reason: "You have been signed out."})

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Could not copy to clipboard: " + msg.err.Error()
			return m, nil
		}
		m.status = "Copied " + msg.text
		return m, tea.Tick(statusClearTime, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *HomeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.logout) {
		// drop whatever is still in flight for this visit
		m.leave()
		m.seq++
		return m, m.cmdLogout()
	}
	if m.state == homeChecking {
		return m, nil
	}
	if key.Matches(msg, keys.refresh) {
		return m, m.Init()
	}

	if m.state != homeReady {
		return m, nil
	}

	if m.details != nil {
		switch {
		case key.Matches(msg, keys.esc), key.Matches(msg, keys.enter):
			m.details = nil
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopyPoster(m.details.PosterPath)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.row > 0 {
			m.row--
		}
		m.clampSelection()
	case key.Matches(msg, keys.down):
		if m.row < len(models.MovieCategories)-1 {
			m.row++
		}
		m.clampSelection()
	case key.Matches(msg, keys.left):
		if m.col > 0 {
			m.col--
		}
	case key.Matches(msg, keys.right):
		if m.col < len(m.currentRow())-1 {
			m.col++
		}
	case key.Matches(msg, keys.hero):
		if n := len(m.page.Hero); n > 0 {
			m.heroIdx = (m.heroIdx + 1) % n
		}
	case key.Matches(msg, keys.copy):
		if movie, ok := m.selected(); ok {
			return m, m.cmdCopyPoster(movie.PosterPath)
		}
	case key.Matches(msg, keys.enter):
		if movie, ok := m.selected(); ok && !m.loadingDetails {
			m.loadingDetails = true
			m.errMsg = ""
			return m, tea.Batch(m.spinner.Tick, m.cmdDetails(m.ctx, m.seq, movie.ID))
		}
	}

	return m, nil
}

func (m *HomeModel) View() string {
	switch m.state {
	case homeChecking:
		return renderPage("GO-FLIX", m.spinner.View()+" Checking your session...", "L: sign out")
	case homeLoading:
		return renderPage("GO-FLIX", m.spinner.View()+" Loading movies...", "L: sign out")
	case homeFailed:
		return renderPage("GO-FLIX", errorStyle.Render(m.errMsg), "r: retry │ L: sign out")
	}

	if m.details != nil {
		return renderPage("GO-FLIX", overlayBoxStyle.Render(m.renderDetails(*m.details)), "esc: back │ c: copy poster URL")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Welcome, %s\n\n", valueOrDash(m.claims.UserName)))

	if len(m.page.Hero) > 0 {
		b.WriteString(heroStyle.Render(renderHero(m.page.Hero[m.heroIdx%len(m.page.Hero)])))
		b.WriteString("\n\n")
	}

	for i, category := range models.MovieCategories {
		b.WriteString(titleStyle.Render(category.Title()))
		b.WriteString("\n")
		b.WriteString(m.renderRow(i, m.page.Rows[category]))
		b.WriteString("\n")
	}

	if m.loadingDetails {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading details...")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	return renderPage("GO-FLIX", strings.TrimRight(b.String(), "\n"),
		"←/→/↑/↓: browse │ enter: details │ n: next hero │ c: copy poster URL │ r: refresh │ L: sign out")
}

func (m *HomeModel) renderRow(rowIdx int, movies []models.Movie) string {
	if len(movies) == 0 {
		return "  -"
	}

	start := 0
	if rowIdx == m.row && m.col >= rowWindow {
		start = m.col - rowWindow + 1
	}
	end := min(start+rowWindow, len(movies))

	cells := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cell := fmt.Sprintf(" %-22s %s ", fitText(movies[i].Title, 22), matchLabel(movies[i]))
		if rowIdx == m.row && i == m.col {
			cell = selectedStyle.Render(cell)
		}
		cells = append(cells, cell)
	}

	line := strings.Join(cells, "│")
	if end < len(movies) {
		line += " ›"
	}
	return line
}

func renderHero(movie models.Movie) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(movie.Title))
	b.WriteString("\n")
	b.WriteString(matchLabel(movie))
	if year := movie.ReleaseYear(); year > 0 {
		b.WriteString(fmt.Sprintf("  %d", year))
	}
	b.WriteString("\n")
	b.WriteString(fitText(movie.Overview, overviewWidth))
	return b.String()
}

func (m *HomeModel) renderDetails(d models.MovieDetails) string {
	genres := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		genres = append(genres, g.Name)
	}

	runtime := "-"
	if d.Runtime > 0 {
		runtime = fmt.Sprintf("%dh %02dm", d.Runtime/60, d.Runtime%60)
	}

	poster, ok := m.images.URL(d.PosterPath, catalog.SizePoster)
	if !ok {
		poster = "-"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(d.Title))
	b.WriteString("\n")
	if d.Tagline != "" {
		b.WriteString(helpStyle.Render(d.Tagline))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s  %s\n", matchLabel(d.Movie), valueOrDash(d.ReleaseDate), runtime))
	b.WriteString(fmt.Sprintf("Genres  │ %s\n", valueOrDash(strings.Join(genres, ", "))))
	b.WriteString(fmt.Sprintf("Status  │ %s\n", valueOrDash(d.Status)))
	b.WriteString(fmt.Sprintf("Poster  │ %s\n", poster))
	b.WriteString("\n")
	b.WriteString(valueOrDash(d.Overview))
	return b.String()
}

func matchLabel(movie models.Movie) string {
	return matchStyle.Render(fmt.Sprintf("%d%% Match", movie.MatchPercent()))
}

func (m *HomeModel) currentRow() []models.Movie {
	return m.page.Rows[models.MovieCategories[m.row]]
}

func (m *HomeModel) selected() (models.Movie, bool) {
	row := m.currentRow()
	if m.col < 0 || m.col >= len(row) {
		return models.Movie{}, false
	}
	return row[m.col], true
}

func (m *HomeModel) clampSelection() {
	if n := len(m.currentRow()); m.col >= n {
		m.col = max(n-1, 0)
	}
}

func (m *HomeModel) cmdCheck(ctx context.Context, seq int) tea.Cmd {
	guard := m.guard
	return func() tea.Msg {
		claims, err := guard.Check(ctx)
		return guardCheckedMsg{seq: seq, claims: claims, err: err}
	}
}

func (m *HomeModel) cmdLoad(ctx context.Context, seq int) tea.Cmd {
	catalogService := m.catalog
	return func() tea.Msg {
		page, err := catalogService.Home(ctx)
		return homeLoadedMsg{seq: seq, page: page, err: err}
	}
}

func (m *HomeModel) cmdDetails(ctx context.Context, seq int, movieID int64) tea.Cmd {
	catalogService := m.catalog
	return func() tea.Msg {
		details, err := catalogService.Details(ctx, movieID)
		return detailsLoadedMsg{seq: seq, details: details, err: err}
	}
}

func (m *HomeModel) cmdLogout() tea.Cmd {
	ctx := m.rootCtx
	auth := m.auth
	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}

func (m *HomeModel) cmdCopyPoster(path string) tea.Cmd {
	url, ok := m.images.URL(path, catalog.SizePoster)
	if !ok {
		m.errMsg = "This title has no poster"
		return nil
	}

	write := m.writeClipboard
	return func() tea.Msg {
		return copiedMsg{text: url, err: write(url)}
	}
}
