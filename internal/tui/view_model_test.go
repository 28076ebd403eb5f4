package tui

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/go-docs-sync/internal/adapter"
	"github.com/MKhiriev/go-docs-sync/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient is a minimal service.ViewSyncClient for driving the model.
type stubClient struct {
	state      models.SyncState
	updates    chan models.SyncState
	refreshErr error
	refreshes  int
	connects   []string
}

func newStubClient() *stubClient {
	return &stubClient{updates: make(chan models.SyncState, 1)}
}

func (s *stubClient) Connect(_ context.Context, org, viewID string) error {
	s.connects = append(s.connects, org+"/"+viewID)
	return nil
}
func (s *stubClient) Refresh() error                   { s.refreshes++; return s.refreshErr }
func (s *stubClient) Teardown()                        {}
func (s *stubClient) State() models.SyncState          { return s.state }
func (s *stubClient) Updates() <-chan models.SyncState { return s.updates }
func (s *stubClient) OnSubscribed(func(org string))    {}
func (s *stubClient) Close()                           {}

func sampleView() *models.ViewData {
	return &models.ViewData{
		Org:         "acme",
		ViewID:      "index",
		Title:       "Docs",
		Data:        []json.RawMessage{json.RawMessage(`{ "path": "a" }`), json.RawMessage(`{"path":"b"}`)},
		GeneratedAt: "2024-01-01T00:00:00Z",
		RowCount:    2,
	}
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m viewModel, msg tea.Msg) (viewModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	vm, ok := next.(viewModel)
	require.True(t, ok)
	return vm, cmd
}

func TestViewModel_StateMsg_RendersView(t *testing.T) {
	client := newStubClient()
	m := newViewModel(context.Background(), client, "acme", "index", models.AppBuildInfo{})

	m, cmd := update(t, m, stateMsg{state: models.SyncState{Data: sampleView()}})
	assert.NotNil(t, cmd, "keeps waiting for the next snapshot")

	out := m.View()
	assert.Contains(t, out, "Docs")
	assert.Contains(t, out, "rows: 2")
	assert.Contains(t, out, `{"path":"a"}`)
	assert.NotContains(t, out, "Loading")
}

func TestViewModel_View_LoadingAndError(t *testing.T) {
	client := newStubClient()
	m := newViewModel(context.Background(), client, "acme", "coverage", models.AppBuildInfo{})

	m, _ = update(t, m, stateMsg{state: models.SyncState{Loading: true}})
	out := m.View()
	assert.Contains(t, out, "Loading")
	assert.Contains(t, out, "Coverage Report", "falls back to the catalog title")

	m, _ = update(t, m, stateMsg{state: models.SyncState{Error: "org not found"}})
	out = m.View()
	assert.Contains(t, out, "org not found")
	assert.Contains(t, out, "No data")
}

func TestViewModel_Refresh_RunsInCommand(t *testing.T) {
	client := newStubClient()
	m := newViewModel(context.Background(), client, "acme", "index", models.AppBuildInfo{})

	_, cmd := update(t, m, keyPress('r'))
	require.NotNil(t, cmd)
	assert.Zero(t, client.refreshes, "refresh must not run inside Update")

	msg := cmd()
	assert.Equal(t, refreshDoneMsg{}, msg)
	assert.Equal(t, 1, client.refreshes)
}

func TestViewModel_Refresh_ReconnectsAfterConnectionError(t *testing.T) {
	for _, errMsg := range []string{adapter.ErrConnection.Error(), adapter.ErrNotConnected.Error()} {
		t.Run(errMsg, func(t *testing.T) {
			client := newStubClient()
			client.state = models.SyncState{Data: sampleView(), Error: errMsg}
			m := newViewModel(context.Background(), client, "acme", "index", models.AppBuildInfo{})
			assert.Contains(t, m.View(), "r: reconnect")

			_, cmd := update(t, m, keyPress('r'))
			require.NotNil(t, cmd)

			msg := cmd()
			assert.Equal(t, connectDoneMsg{}, msg)
			assert.Equal(t, []string{"acme/index"}, client.connects)
			assert.Zero(t, client.refreshes)
		})
	}
}

func TestViewModel_Refresh_ServerErrorStillRefreshes(t *testing.T) {
	client := newStubClient()
	client.state = models.SyncState{Error: "org not found"}
	m := newViewModel(context.Background(), client, "acme", "index", models.AppBuildInfo{})

	_, cmd := update(t, m, keyPress('r'))
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, 1, client.refreshes)
	assert.Empty(t, client.connects)
}

func TestViewModel_Copy(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error { copied = text; return nil }
	t.Cleanup(func() { writeClipboard = orig })

	client := newStubClient()
	m := newViewModel(context.Background(), client, "acme", "index", models.AppBuildInfo{})

	t.Run("without data", func(t *testing.T) {
		next, _ := update(t, m, keyPress('c'))
		assert.Equal(t, "Nothing to copy yet", next.status)
		assert.Empty(t, copied)
	})

	t.Run("with data", func(t *testing.T) {
		loaded, _ := update(t, m, stateMsg{state: models.SyncState{Data: sampleView()}})
		_, cmd := update(t, loaded, keyPress('c'))
		require.NotNil(t, cmd)

		msg := cmd()
		assert.Equal(t, copiedMsg{rows: 2}, msg)
		assert.JSONEq(t, `[{"path":"a"},{"path":"b"}]`, copied)

		done, _ := update(t, loaded, msg)
		assert.Equal(t, "Copied 2 rows", done.status)
	})

	t.Run("clipboard failure", func(t *testing.T) {
		writeClipboard = func(string) error { return errors.New("no clipboard") }
		msg := cmdCopyToClipboard(sampleView())()
		failed, ok := msg.(copyFailedMsg)
		require.True(t, ok)
		assert.Contains(t, failed.err.Error(), "no clipboard")
	})
}

func TestViewModel_Quit(t *testing.T) {
	m := newViewModel(context.Background(), newStubClient(), "acme", "index", models.AppBuildInfo{})

	next, cmd := update(t, m, keyPress('q'))
	require.NotNil(t, cmd)
	assert.True(t, next.quitByUser)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewModel_BuildInfoOverlay(t *testing.T) {
	info := models.NewAppBuildInfo("v1.2.3", "", "abc123")
	m := newViewModel(context.Background(), newStubClient(), "acme", "index", info)

	m, _ = update(t, m, keyPress('v'))
	out := m.View()
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "N/A")

	// refresh is disabled while the overlay is open
	_, cmd := update(t, m, keyPress('r'))
	assert.Nil(t, cmd)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showBuildInfo)
}

func TestViewModel_SubscribedMarksLive(t *testing.T) {
	m := newViewModel(context.Background(), newStubClient(), "acme", "index", models.AppBuildInfo{})

	m, _ = update(t, m, subscribedMsg{org: "acme"})
	assert.Contains(t, m.View(), "live")
}

func TestRenderHelpers(t *testing.T) {
	assert.Equal(t, "abcdefg", fitText("abcdefg", 10))
	assert.Equal(t, "abc...", fitText("abcdefg", 6))
	assert.Equal(t, "ab", fitText("abcdefg", 2))
	assert.Equal(t, "-", valueOrDash(" "))
	assert.Equal(t, "(empty view)", renderRows(&models.ViewData{}, 80))
	assert.Empty(t, renderRows(nil, 80))

	assert.Equal(t,
		"websocket not connected (docs view service unavailable, press r to reconnect)",
		humanizeConnectionError("websocket not connected"),
	)
	assert.Equal(t, "org not found", humanizeConnectionError("org not found"), "server errors are shown as is")
}
