package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-docs-sync/internal/service"
	"github.com/MKhiriev/go-docs-sync/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	// lines taken by the title, meta, status, error, help and padding
	chromeHeight = 10
)

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

type viewModel struct {
	ctx       context.Context
	client    service.ViewSyncClient
	org       string
	viewID    string
	buildInfo models.AppBuildInfo

	state    models.SyncState
	spinner  spinner.Model
	viewport viewport.Model
	width    int

	live          bool
	status        string
	showBuildInfo bool
	quitByUser    bool
}

func newViewModel(ctx context.Context, client service.ViewSyncClient, org, viewID string, info models.AppBuildInfo) viewModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := viewModel{
		ctx:       ctx,
		client:    client,
		org:       org,
		viewID:    viewID,
		buildInfo: info,
		state:     client.State(),
		spinner:   s,
		viewport:  viewport.New(defaultWidth, defaultHeight-chromeHeight),
		width:     defaultWidth,
	}
	m.viewport.SetContent(renderRows(m.state.Data, m.width))
	return m
}

func (m viewModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdConnect(), waitForState(m.client.Updates()))
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.viewport.SetContent(renderRows(m.state.Data, m.width))
		return m, nil
	case stateMsg:
		m.state = msg.state
		m.viewport.SetContent(renderRows(m.state.Data, m.width))
		return m, waitForState(m.client.Updates())
	case updatesClosedMsg:
		return m, nil
	case subscribedMsg:
		m.live = msg.org == m.org
		return m, nil
	case connectDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("connect failed: %v", msg.err)
		}
		return m, nil
	case refreshDoneMsg:
		// the failure is already reflected in the client state
		return m, nil
	case copiedMsg:
		m.status = fmt.Sprintf("Copied %d rows", msg.rows)
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.status = msg.err.Error()
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m viewModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.refresh):
		// a dead transport cannot serve a refresh, so dial again
		if isConnectivityError(m.state.Error) {
			return m, m.cmdConnect()
		}
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.copy):
		if !m.state.HasData() {
			m.status = "Nothing to copy yet"
			return m, cmdClearStatus()
		}
		return m, cmdCopyToClipboard(m.state.Data)
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.up), key.Matches(msg, keys.down),
		key.Matches(msg, keys.pageUp), key.Matches(msg, keys.pageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m viewModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(viewTitle(m.state, m.viewID)))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render(renderMeta(m.state, m.org, m.viewID, m.live)))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if m.state.Loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	}
	if m.state.HasError() {
		b.WriteString(errorStyle.Render("Error: " + humanizeConnectionError(m.state.Error)))
		b.WriteString("\n")
	}

	switch {
	case m.state.HasData():
		b.WriteString(m.viewport.View())
	case !m.state.Loading:
		b.WriteString("No data")
	}
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	refreshHelp := "r: refresh"
	if isConnectivityError(m.state.Error) {
		refreshHelp = "r: reconnect"
	}
	b.WriteString(helpStyle.Render("↑/↓: scroll · " + refreshHelp + " · c: copy JSON · v: about · q: quit"))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return appStyle.Render(b.String())
}

func (m viewModel) cmdConnect() tea.Cmd {
	ctx := m.ctx
	client := m.client
	org, viewID := m.org, m.viewID
	return func() tea.Msg {
		return connectDoneMsg{err: client.Connect(ctx, org, viewID)}
	}
}

func (m viewModel) cmdRefresh() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return refreshDoneMsg{err: client.Refresh()}
	}
}

func waitForState(updates <-chan models.SyncState) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-updates
		if !ok {
			return updatesClosedMsg{}
		}
		return stateMsg{state: state}
	}
}

func cmdCopyToClipboard(data *models.ViewData) tea.Cmd {
	return func() tea.Msg {
		text, err := rowsJSON(data)
		if err != nil {
			return copyFailedMsg{err: err}
		}
		if err = writeClipboard(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{rows: len(data.Data)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
