package pipeline

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-doc-collective/doctag/internal/config"
)

func TestNewWithConfig_BuildsWorkingEngine(t *testing.T) {
	cfg := &config.Config{
		Format: "markdown",
		Abbreviations: []config.Abbreviation{
			{Name: "TBD", Text: "To Be Decided"},
		},
	}

	var stderr bytes.Buffer
	engine, diags, err := NewWithConfig(cfg, Options{NoColor: true}, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "`To Be Decided`", engine.Execute("@code(TBD)"))
	assert.Equal(t, 0, diags.Warnings)
}

func TestNewWithConfig_FlagFormatWinsOverConfig(t *testing.T) {
	cfg := &config.Config{Format: "plain"}

	var stderr bytes.Buffer
	engine, _, err := NewWithConfig(cfg, Options{Format: "html", NoColor: true}, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "a &amp; b", engine.Execute("a & b"))
}

func TestNewWithConfig_DiagnosticsCountWarnings(t *testing.T) {
	var stderr bytes.Buffer
	engine, diags, err := NewWithConfig(&config.Config{}, Options{NoColor: true}, &stderr)
	require.NoError(t, err)

	engine.Execute("@missing")
	assert.Equal(t, 1, diags.Warnings)
	assert.Contains(t, stderr.String(), "unknown tag name @missing")
}

func TestNewWithConfig_InvalidConfig(t *testing.T) {
	var stderr bytes.Buffer
	_, _, err := NewWithConfig(&config.Config{MaxDepth: -1}, Options{}, &stderr)
	assert.Error(t, err)
}

func TestNewWithConfig_UnknownFormat(t *testing.T) {
	var stderr bytes.Buffer
	_, _, err := NewWithConfig(&config.Config{}, Options{Format: "latex"}, &stderr)
	assert.Error(t, err)
}
