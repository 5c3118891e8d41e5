package linear_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prj/internal/adapters/linear"
	"go.trai.ch/prj/internal/core/ports"
)

var items = []ports.PickItem{
	{Label: "api", Description: "/src/api"},
	{Label: "web", Description: "/src/web"},
	{Label: "$reload", Description: "Reload the list of items"},
}

func newPrompter(t *testing.T, input string) (*linear.Prompter, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	out := &bytes.Buffer{}
	return linear.NewPrompter(strings.NewReader(input), out), out
}

func TestPrompter_Pick(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantIdx int
		wantOK  bool
	}{
		{name: "by number", input: "2\n", wantIdx: 1, wantOK: true},
		{name: "by label", input: "$reload\n", wantIdx: 2, wantOK: true},
		{name: "retry after invalid", input: "9\nweb\n", wantIdx: 1, wantOK: true},
		{name: "empty line cancels", input: "\n", wantOK: false},
		{name: "eof cancels", input: "", wantOK: false},
		{name: "answer without newline", input: "1", wantIdx: 0, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newPrompter(t, tt.input)

			idx, ok, err := p.Pick(t.Context(), "Select a project", items)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantIdx, idx)
			}
		})
	}
}

func TestPrompter_Pick_Output(t *testing.T) {
	p, out := newPrompter(t, "x\n1\n")

	_, _, err := p.Pick(t.Context(), "Select a project", items)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "pick", out.Bytes())
}

func TestPrompter_Input(t *testing.T) {
	validate := func(s string) string {
		switch s {
		case "":
			return "Project name cannot be empty"
		case "api":
			return "The project already exists"
		}
		return ""
	}

	t.Run("valid", func(t *testing.T) {
		p, _ := newPrompter(t, "  new-app  \n")
		value, ok, err := p.Input(t.Context(), "Project name", validate)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "new-app", value)
	})

	t.Run("rejected then valid", func(t *testing.T) {
		p, out := newPrompter(t, "api\nweb2\n")
		value, ok, err := p.Input(t.Context(), "Project name", validate)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "web2", value)
		assert.Contains(t, out.String(), "✗ The project already exists")
	})

	t.Run("blank answer is validated", func(t *testing.T) {
		p, out := newPrompter(t, "   \nweb2\n")
		value, ok, err := p.Input(t.Context(), "Project name", validate)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "web2", value)
		assert.Contains(t, out.String(), "✗ Project name cannot be empty")
	})

	t.Run("eof cancels", func(t *testing.T) {
		p, _ := newPrompter(t, "")
		_, ok, err := p.Input(t.Context(), "Project name", validate)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("answer without newline", func(t *testing.T) {
		p, _ := newPrompter(t, "web2")
		value, ok, err := p.Input(t.Context(), "Project name", validate)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "web2", value)
	})
}

func TestPrompter_CancelledContext(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	r, w := io.Pipe()
	t.Cleanup(func() {
		_ = w.Close()
	})
	p := linear.NewPrompter(r, &bytes.Buffer{})

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, ok, err := p.Pick(ctx, "Select a project", items)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
}

func TestPrompter_ReadOutlivesCancelledPrompt(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	r, w := io.Pipe()
	t.Cleanup(func() {
		_ = w.Close()
	})
	p := linear.NewPrompter(r, &bytes.Buffer{})

	ctx, cancel := context.WithCancel(t.Context())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	_, _, err := p.Pick(ctx, "Select a project", items)
	require.ErrorIs(t, err, context.Canceled)

	// The abandoned read is still waiting; the next prompt receives its line.
	go func() {
		_, _ = w.Write([]byte("2\n"))
	}()
	idx, ok, err := p.Pick(t.Context(), "Select a project", items)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestPrompter_Messages(t *testing.T) {
	p, out := newPrompter(t, "")

	p.Info("Project directory open failed: exit status 1")
	p.Error("Failed to create project: permission denied")

	assert.Equal(t,
		"Project directory open failed: exit status 1\n✗ Failed to create project: permission denied\n",
		out.String())
}
