package detector_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prj/internal/adapters/detector"
	"go.trai.ch/prj/internal/core/domain"
)

func TestDetectEnvironment_NonTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = r.Close()
		_ = w.Close()
	})

	t.Setenv("CI", "")
	assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment(r, w))
	assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment(nil, nil))
}

func TestDetectEnvironment_CI(t *testing.T) {
	for _, ci := range []string{"true", "1"} {
		t.Run("CI="+ci, func(t *testing.T) {
			t.Setenv("CI", ci)
			assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment(os.Stdin, os.Stdout))
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		flag     string
		expected detector.OutputMode
		wantErr  bool
	}{
		{flag: "", expected: detector.ModeAuto},
		{flag: "auto", expected: detector.ModeAuto},
		{flag: "tui", expected: detector.ModeTUI},
		{flag: "linear", expected: detector.ModeLinear},
		{flag: "ci", expected: detector.ModeLinear},
		{flag: "fancy", expected: detector.ModeAuto, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			got, err := detector.ParseMode(tt.flag)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidOutputMode)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name         string
		autoDetected detector.OutputMode
		userFlag     string
		expected     detector.OutputMode
	}{
		{"auto keeps TUI", detector.ModeTUI, "auto", detector.ModeTUI},
		{"auto keeps linear", detector.ModeLinear, "auto", detector.ModeLinear},
		{"empty keeps TUI", detector.ModeTUI, "", detector.ModeTUI},
		{"tui overrides", detector.ModeLinear, "tui", detector.ModeTUI},
		{"linear overrides", detector.ModeTUI, "linear", detector.ModeLinear},
		{"ci is alias for linear", detector.ModeTUI, "ci", detector.ModeLinear},
		{"unknown falls back", detector.ModeLinear, "unknown", detector.ModeLinear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.ResolveMode(tt.autoDetected, tt.userFlag))
		})
	}
}

func TestOutputMode_String(t *testing.T) {
	assert.Equal(t, "auto", detector.ModeAuto.String())
	assert.Equal(t, "tui", detector.ModeTUI.String())
	assert.Equal(t, "linear", detector.ModeLinear.String())
}
