package ports

import "context"

// PickItem is one entry of a selectable list.
type PickItem struct {
	Label       string
	Description string
}

// Validator checks free-text input while it is typed.
// It returns an empty string when the input is acceptable, otherwise the message to show.
type Validator func(input string) string

// Prompter is the interactive user surface.
//
//go:generate mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// Pick shows items and returns the index of the chosen one.
	// ok is false when the user dismissed the list.
	Pick(ctx context.Context, placeholder string, items []PickItem) (index int, ok bool, err error)

	// Input asks for free text. The user cannot submit input the validator rejects.
	// ok is false when the user dismissed the prompt.
	Input(ctx context.Context, prompt string, validate Validator) (value string, ok bool, err error)

	// Info shows an informational message.
	Info(msg string)

	// Error shows an error message.
	Error(msg string)
}
