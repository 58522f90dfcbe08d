package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/openabit/advisor/internal/advisor"
)

// Run starts the interactive chat session and blocks until the user
// exits or the context is canceled.
func Run(ctx context.Context, engine *advisor.Advisor) error {
	p := tea.NewProgram(NewModel(engine), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat session failed: %w", err)
	}
	return nil
}
