package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kelsos/sui-wallet/internal/logger"
	"github.com/kelsos/sui-wallet/internal/transfer"
)

type App struct {
	deps    Deps
	program *tea.Program
}

func NewApp(deps Deps) *App {
	return &App{deps: deps}
}

func (a *App) Start() error {
	if a.deps.Transfer == nil || a.deps.Address == nil || a.deps.Object == nil || a.deps.Account == nil {
		return fmt.Errorf("tui: missing services")
	}

	a.program = tea.NewProgram(NewModel(a.deps), tea.WithAltScreen())
	a.deps.Transfer.Observe(a.UpdateTransferState)
	return nil
}

func (a *App) Stop() {
	if a.program != nil {
		a.program.Quit()
	}
}

// UpdateTransferState forwards transfer state changes to the running program
func (a *App) UpdateTransferState(state transfer.State) {
	if a.program != nil {
		a.program.Send(TransferStateMsg{State: state})
	}
}

func (a *App) Run() error {
	logger.Info("Starting wallet UI")

	// Run the TUI (blocks until quit)
	if _, err := a.program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	a.deps.Transfer.Observe(nil)
	return nil
}
