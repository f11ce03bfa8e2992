package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/swatchkit/swatch/internal/errors"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	base := []string{
		"--env", "test",
		"--log-level", "error",
		"--no-color",
		"--env-file", filepath.Join(t.TempDir(), "missing.env"),
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, base...))

	err := cmd.Execute()
	return out.String(), err
}

func TestGenerate_Table(t *testing.T) {
	out, err := run(t, "generate", "#D2691E", "--format", "table")
	require.NoError(t, err)

	assert.Contains(t, out, "Chocolate (#D2691E)")
	assert.Contains(t, out, "#0e6caf")
	assert.Contains(t, out, "Accessibility: Fail")
}

func TestGenerate_JSONFromText(t *testing.T) {
	out, err := run(t, "generate", "--from", "bob", "--format", "json")
	require.NoError(t, err)

	var decoded struct {
		Seed    string         `json:"seed"`
		Palette map[string]any `json:"palette"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "#82c9ae", decoded.Seed)
	assert.Len(t, decoded.Palette, 12)
}

func TestGenerate_FromTextIsNormalized(t *testing.T) {
	a, err := run(t, "generate", "--from", "Project Atlas", "--format", "json")
	require.NoError(t, err)
	b, err := run(t, "generate", "--from", "project_atlas", "--format", "json")
	require.NoError(t, err)

	assert.JSONEq(t, a, b)
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code domainerrors.Code
	}{
		{"no seed", []string{"generate"}, domainerrors.CodeValidation},
		{"seed and from", []string{"generate", "#D2691E", "--from", "bob"}, domainerrors.CodeValidation},
		{"bad seed", []string{"generate", "chocolate"}, domainerrors.CodeInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)

			var domainErr *domainerrors.Error
			require.True(t, domainerrors.As(err, &domainErr))
			assert.Equal(t, tt.code, domainErr.Code)
			assert.Equal(t, 2, domainerrors.ExitCode(err))
		})
	}
}

func TestContrast_Table(t *testing.T) {
	out, err := run(t, "contrast", "#767676", "#FFFFFF", "--format", "table")
	require.NoError(t, err)

	assert.Contains(t, out, "Ratio: 4.54:1")
	assert.Contains(t, out, "AA:    pass")
	assert.Contains(t, out, "AAA:   fail")
}

func TestContrast_JSONWithLevel(t *testing.T) {
	out, err := run(t, "contrast", "#595959", "#FFFFFF", "--format", "json", "--level", "AAA")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "AAA", decoded["level"])
	assert.Equal(t, true, decoded["passes"])
}

func TestRoot_InvalidConfig(t *testing.T) {
	_, err := run(t, "contrast", "#595959", "#FFFFFF", "--format", "yaml")
	require.Error(t, err)
	assert.Equal(t, 1, domainerrors.ExitCode(err))
}
