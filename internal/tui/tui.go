package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"dogfetch/internal/logger"
	"dogfetch/internal/service"
)

// ErrUserQuit signals that the user left the program from the login screen.
var ErrUserQuit = errors.New("user quit")

// TUI runs the terminal interface: a single bubbletea program covering the
// login screen, the browse/filter screens, favorites, and the match screen.
type TUI struct {
	services *service.ClientServices
	pageSize int
	log      *logger.Logger
}

func New(services *service.ClientServices, pageSize int, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: nil services")
	}
	return &TUI{services: services, pageSize: pageSize, log: log}, nil
}

// Run blocks until the user quits or the program fails. Logging out drops
// back to the login screen inside the same program run.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.pageSize)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	return result.err
}
