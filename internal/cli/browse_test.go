package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/TPSE31/career-roadmap/internal/contract"
	"github.com/TPSE31/career-roadmap/internal/service"
	"github.com/TPSE31/career-roadmap/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBrowseDriver(t *testing.T, app *App) (*teatest.Driver, *browseModel) {
	t.Helper()
	m := newBrowseModel(context.Background(), app.Engine)
	d := teatest.New(t, m, teatest.WithSize(100, 30))
	d.DrainInit()
	return d, m
}

func TestBrowse_NoCareer(t *testing.T) {
	app := testApp(t)
	d, _ := newBrowseDriver(t, app)

	assert.Contains(t, d.View(), "No career selected")
}

func TestBrowse_ListsCareerModules(t *testing.T) {
	app := testApp(t)
	_, err := app.Profiles.SetCareer(context.Background(), "security_engineer")
	require.NoError(t, err)

	d, m := newBrowseDriver(t, app)
	view := d.View()
	assert.Contains(t, view, "IT SECURITY ENGINEER")
	assert.Contains(t, view, "0/6 completed")
	assert.Contains(t, view, "20-00-3007")
	require.Len(t, m.rows, 6)
}

func TestBrowse_SpaceTogglesCompletion(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	_, err := app.Profiles.SetCareer(ctx, "security_engineer")
	require.NoError(t, err)

	d, m := newBrowseDriver(t, app)
	d.PressDown()
	assert.Equal(t, 1, m.cursor)
	second := m.rows[1].Code

	d.PressSpace()
	assert.True(t, m.rows[1].Completed)
	assert.Contains(t, d.View(), "1/6 completed")
	assert.Contains(t, d.View(), "Completed "+second)

	resp, err := app.Engine.GetScoredModules(ctx, "")
	require.NoError(t, err)
	assert.True(t, resp.Modules[1].Completed, "toggle is persisted through the engine")

	d.PressSpace()
	assert.False(t, m.rows[1].Completed)
	assert.Contains(t, d.View(), "0/6 completed")
}

func TestBrowse_CursorStaysInRange(t *testing.T) {
	app := testApp(t)
	_, err := app.Profiles.SetCareer(context.Background(), "security_engineer")
	require.NoError(t, err)

	d, m := newBrowseDriver(t, app)
	d.PressUp()
	assert.Equal(t, 0, m.cursor)
	for i := 0; i < 10; i++ {
		d.PressKey('j')
	}
	assert.Equal(t, 5, m.cursor)
}

func TestBrowse_Quit(t *testing.T) {
	app := testApp(t)
	d, _ := newBrowseDriver(t, app)

	d.PressKey('q')
	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}

// failingToggleEngine fails every toggle.
type failingToggleEngine struct {
	service.Engine
}

func (failingToggleEngine) ToggleModule(context.Context, string) (*contract.ToggleResponse, error) {
	return nil, errors.New("disk full")
}

func TestBrowse_ToggleErrorShownInStatus(t *testing.T) {
	app := testApp(t)
	_, err := app.Profiles.SetCareer(context.Background(), "security_engineer")
	require.NoError(t, err)

	m := newBrowseModel(context.Background(), failingToggleEngine{Engine: app.Engine})
	d := teatest.New(t, m, teatest.WithSize(100, 30))
	d.DrainInit()

	d.PressSpace()
	assert.False(t, m.rows[0].Completed)
	assert.Contains(t, d.View(), "Error: disk full")
}
