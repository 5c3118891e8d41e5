package ports

import (
	"context"

	"go.trai.ch/prj/internal/core/domain"
)

// Workspace opens folders in the editor.
//
//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// OpenFolder opens req.Path in the same or a new window.
	OpenFolder(ctx context.Context, req domain.OpenRequest) error
}

// StatusIndicator is the low-profile label naming the current project.
type StatusIndicator interface {
	// Show renders text. Activating the indicator runs command.
	Show(text, tooltip, command string)
	// Hide removes the indicator.
	Hide()
}
