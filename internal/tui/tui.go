package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-docs-sync/internal/config"
	"github.com/MKhiriev/go-docs-sync/internal/logger"
	"github.com/MKhiriev/go-docs-sync/internal/service"
	"github.com/MKhiriev/go-docs-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI renders one live docs view in the terminal.
type TUI struct {
	services  *service.ClientServices
	org       string
	viewID    string
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, syncCfg config.ClientSync, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil || services.ViewSync == nil {
		return nil, errors.New("view sync service is required")
	}

	return &TUI{
		services:  services,
		org:       syncCfg.Org,
		viewID:    syncCfg.ViewID,
		buildInfo: buildInfo,
		logger:    log.GetChildLogger(),
	}, nil
}

// Run blocks until the user quits or ctx is done. A user quit returns
// [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	model := newViewModel(ctx, t.services.ViewSync, t.org, t.viewID, t.buildInfo)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.services.ViewSync.OnSubscribed(func(org string) {
		p.Send(subscribedMsg{org: org})
	})

	t.logger.Info().Str("org", t.org).Str("view_id", t.viewID).Msg("starting terminal ui")

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(viewModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
