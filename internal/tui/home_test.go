package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-flix/internal/adapter"
	"github.com/MKhiriev/go-flix/internal/catalog"
	"github.com/MKhiriev/go-flix/internal/mock"
	"github.com/MKhiriev/go-flix/internal/service"
	"github.com/MKhiriev/go-flix/models"
)

type homeMocks struct {
	guard   *mock.MockRouteGuard
	auth    *mock.MockClientAuthService
	catalog *mock.MockClientCatalogService
}

func newTestHome(t *testing.T) (*HomeModel, homeMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mocks := homeMocks{
		guard:   mock.NewMockRouteGuard(ctrl),
		auth:    mock.NewMockClientAuthService(ctrl),
		catalog: mock.NewMockClientCatalogService(ctrl),
	}
	m := NewHomeModel(context.Background(), mocks.guard, mocks.auth, mocks.catalog, catalog.Images{BaseURL: "http://img.local/t/p"})
	return m, mocks
}

func testHomePage() models.HomePage {
	dune := models.Movie{ID: 1, Title: "Dune", PosterPath: "/dune.jpg", VoteAverage: 8.4, ReleaseDate: "2021-09-15"}
	heat := models.Movie{ID: 2, Title: "Heat", PosterPath: "/heat.jpg", VoteAverage: 7.9, ReleaseDate: "1995-12-15"}
	return models.HomePage{
		Hero: []models.Movie{dune, heat},
		Rows: map[models.MovieCategory][]models.Movie{
			models.Trending: {dune, heat},
			models.Popular:  {heat},
			models.TopRated: {dune},
			models.Upcoming: {},
		},
	}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// openHome drives the model through a passing guard check and a catalog load.
func openHome(t *testing.T, m *HomeModel, mocks homeMocks) {
	t.Helper()
	mocks.guard.EXPECT().Check(gomock.Any()).Return(models.Claims{UserID: 7, UserName: "alice"}, nil)
	mocks.catalog.EXPECT().Home(gomock.Any()).Return(testHomePage(), nil)

	m.Init()
	_, cmd := m.Update(m.cmdCheck(m.ctx, m.seq)())
	require.NotNil(t, cmd)
	_, cmd = m.Update(cmd())
	assert.Nil(t, cmd)
	require.Equal(t, homeReady, m.state)
}

func TestHomeModel_RejectedGuardRedirectsToMenu(t *testing.T) {
	m, mocks := newTestHome(t)
	mocks.guard.EXPECT().Check(gomock.Any()).Return(models.Claims{}, service.ErrUnauthenticated)

	m.Init()
	_, cmd := m.Update(m.cmdCheck(m.ctx, m.seq)())
	require.NotNil(t, cmd)

	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageMenu, nav.Page)
	assert.Equal(t, SignedOutNotice{Reason: "Please sign in to continue."}, nav.Payload)
}

func TestHomeModel_NetworkFailureRedirectsWithNetworkMessage(t *testing.T) {
	m, mocks := newTestHome(t)
	mocks.guard.EXPECT().Check(gomock.Any()).
		Return(models.Claims{}, errors.Join(service.ErrUnauthenticated, adapter.ErrNetwork))

	m.Init()
	_, cmd := m.Update(m.cmdCheck(m.ctx, m.seq)())
	require.NotNil(t, cmd)

	nav := cmd().(NavigateTo)
	assert.Equal(t, SignedOutNotice{Reason: adapter.UserMessage(adapter.ErrNetwork)}, nav.Payload)
}

func TestHomeModel_RendersCatalogAfterGuardPasses(t *testing.T) {
	m, mocks := newTestHome(t)
	openHome(t, m, mocks)

	view := m.View()
	assert.Contains(t, view, "Welcome, alice")
	assert.Contains(t, view, "Trending Now")
	assert.Contains(t, view, "84% Match")
	assert.Contains(t, view, "2021")
}

func TestHomeModel_StaleGuardResultIsDropped(t *testing.T) {
	m, _ := newTestHome(t)

	m.Init()
	firstCtx, firstSeq := m.ctx, m.seq
	m.Init()

	assert.ErrorIs(t, firstCtx.Err(), context.Canceled)

	_, cmd := m.Update(guardCheckedMsg{seq: firstSeq, err: service.ErrUnauthenticated})
	assert.Nil(t, cmd)
	assert.Equal(t, homeChecking, m.state)
}

func TestHomeModel_LeaveCancelsPendingCheck(t *testing.T) {
	m, mocks := newTestHome(t)
	mocks.guard.EXPECT().Check(gomock.Any()).DoAndReturn(func(ctx context.Context) (models.Claims, error) {
		<-ctx.Done()
		return models.Claims{}, ctx.Err()
	})

	m.Init()
	check := m.cmdCheck(m.ctx, m.seq)
	m.leave()

	msg := check()
	_, cmd := m.Update(msg)
	assert.Nil(t, cmd)
}

func TestHomeModel_LoadFailureShowsError(t *testing.T) {
	m, mocks := newTestHome(t)
	mocks.guard.EXPECT().Check(gomock.Any()).Return(models.Claims{UserName: "alice"}, nil)
	mocks.catalog.EXPECT().Home(gomock.Any()).
		Return(models.HomePage{}, &adapter.APIError{StatusCode: 502, Message: "Movie catalog is unavailable"})

	m.Init()
	_, cmd := m.Update(m.cmdCheck(m.ctx, m.seq)())
	m.Update(cmd())

	assert.Equal(t, homeFailed, m.state)
	assert.Contains(t, m.View(), "Movie catalog is unavailable")
}

func TestHomeModel_Navigation(t *testing.T) {
	m, mocks := newTestHome(t)
	openHome(t, m, mocks)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	movie, ok := m.selected()
	require.True(t, ok)
	assert.Equal(t, "Heat", movie.Title)

	// the popular row is shorter, the column follows
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.col)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, ok = m.selected()
	assert.False(t, ok)

	m.Update(runeKey("n"))
	assert.Equal(t, 1, m.heroIdx)
	m.Update(runeKey("n"))
	assert.Equal(t, 0, m.heroIdx)
}

func TestHomeModel_Details(t *testing.T) {
	m, mocks := newTestHome(t)
	openHome(t, m, mocks)

	mocks.catalog.EXPECT().Details(gomock.Any(), int64(1)).Return(models.MovieDetails{
		Movie:   testHomePage().Hero[0],
		Runtime: 155,
		Tagline: "Beyond fear, destiny awaits.",
		Genres:  []models.Genre{{ID: 878, Name: "Science Fiction"}},
	}, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.loadingDetails)

	m.Update(m.cmdDetails(m.ctx, m.seq, 1)())

	require.NotNil(t, m.details)
	view := m.View()
	assert.Contains(t, view, "Beyond fear, destiny awaits.")
	assert.Contains(t, view, "2h 35m")
	assert.Contains(t, view, "Science Fiction")
	assert.Contains(t, view, "http://img.local/t/p/w500/dune.jpg")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.details)
}

func TestHomeModel_CopyPosterURL(t *testing.T) {
	m, mocks := newTestHome(t)
	openHome(t, m, mocks)

	var copied string
	m.writeClipboard = func(s string) error {
		copied = s
		return nil
	}

	_, cmd := m.Update(runeKey("c"))
	require.NotNil(t, cmd)
	_, cmd = m.Update(cmd())

	assert.Equal(t, "http://img.local/t/p/w500/dune.jpg", copied)
	assert.Contains(t, m.View(), "Copied http://img.local/t/p/w500/dune.jpg")
	assert.NotNil(t, cmd)

	m.Update(clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestHomeModel_CopyWithoutPoster(t *testing.T) {
	m, mocks := newTestHome(t)
	openHome(t, m, mocks)
	m.page.Rows[models.Trending][0].PosterPath = ""

	_, cmd := m.Update(runeKey("c"))

	assert.Nil(t, cmd)
	assert.Equal(t, "This title has no poster", m.errMsg)
}

func TestHomeModel_Logout(t *testing.T) {
	m, mocks := newTestHome(t)
	openHome(t, m, mocks)
	mocks.auth.EXPECT().Logout(gomock.Any()).Return(nil)

	_, cmd := m.Update(runeKey("L"))
	require.NotNil(t, cmd)
	_, cmd = m.Update(cmd())
	require.NotNil(t, cmd)

	nav := cmd().(NavigateTo)
	assert.Equal(t, pageMenu, nav.Page)
	assert.Equal(t, SignedOutNotice{Reason: "You have been signed out."}, nav.Payload)
}

func TestHomeModel_RefreshRunsGuardAgain(t *testing.T) {
	m, mocks := newTestHome(t)
	openHome(t, m, mocks)
	seq := m.seq

	_, cmd := m.Update(runeKey("r"))

	assert.NotNil(t, cmd)
	assert.Equal(t, seq+1, m.seq)
	assert.Equal(t, homeChecking, m.state)
}
