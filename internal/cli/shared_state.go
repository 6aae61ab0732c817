package cli

import (
	"context"

	"github.com/alexanderramin/yeardots/internal/domain"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Ctx is cancelled when the program exits; wallet calls run under it.
	Ctx context.Context

	// Snapshot is replaced wholesale on every tick.
	Snapshot domain.CalendarSnapshot

	// Terminal dimensions
	Width  int
	Height int
}

// Refresh rederives the snapshot from the app clock.
func (s *SharedState) Refresh() {
	s.Snapshot = domain.DeriveSnapshot(s.App.now())
}

// ContentHeight returns the height left for the active view after the
// header (2 lines) and status bar (2 lines).
func (s *SharedState) ContentHeight() int {
	return max(s.Height-4, 1)
}
