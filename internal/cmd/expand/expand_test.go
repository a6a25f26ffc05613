package expand

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-doc-collective/doctag/internal/config"
)

// isolateConfig points the config lookup at an empty temp directory so the
// developer's real config cannot leak into tests.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("DTAG_FORMAT", "")
	t.Setenv("DTAG_MAX_DEPTH", "")
	return dir
}

func TestRunExpand_MarkdownFromStdin(t *testing.T) {
	isolateConfig(t)

	var stdout, stderr bytes.Buffer
	opts := &expandOptions{formatName: "markdown", noColor: true}

	err := runExpand("", opts, strings.NewReader("Use @code(Execute) here."), &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "Use `Execute` here.", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunExpand_HTMLEscapesText(t *testing.T) {
	isolateConfig(t)

	var stdout, stderr bytes.Buffer
	opts := &expandOptions{formatName: "html", noColor: true}

	err := runExpand("", opts, strings.NewReader("a < b & c"), &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "a &lt; b &amp; c", stdout.String())
}

func TestRunExpand_FromFileToFile(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()

	in := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(in, []byte("@b(bold)"), 0644))
	out := filepath.Join(dir, "doc.md")

	var stdout, stderr bytes.Buffer
	opts := &expandOptions{formatName: "markdown", out: out, noColor: true}

	require.NoError(t, runExpand(in, opts, nil, &stdout, &stderr))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "**bold**", string(data))
	assert.Empty(t, stdout.String())
}

func TestRunExpand_WarningsGoToStderr(t *testing.T) {
	isolateConfig(t)

	var stdout, stderr bytes.Buffer
	opts := &expandOptions{formatName: "plain", noColor: true}

	err := runExpand("", opts, strings.NewReader("@nosuchtag"), &stdout, &stderr)
	require.NoError(t, err, "warnings are not fatal without --strict")

	assert.Equal(t, "@nosuchtag", stdout.String())
	assert.Contains(t, stderr.String(), "unknown tag name @nosuchtag")
}

func TestRunExpand_StrictFailsOnWarnings(t *testing.T) {
	isolateConfig(t)

	var stdout, stderr bytes.Buffer
	opts := &expandOptions{formatName: "plain", strict: true, noColor: true}

	err := runExpand("", opts, strings.NewReader("@nosuchtag"), &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "warning")
}

func TestRunExpand_AbbreviationsFromConfig(t *testing.T) {
	dir := isolateConfig(t)

	cfg := &config.Config{
		Format: "plain",
		Abbreviations: []config.Abbreviation{
			{Name: "TBD", Text: "To Be Decided"},
		},
	}
	require.NoError(t, cfg.Save(filepath.Join(dir, "dtag", "config.yml")))

	var stdout, stderr bytes.Buffer
	opts := &expandOptions{noColor: true}

	err := runExpand("", opts, strings.NewReader("@code(TBD)"), &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "`To Be Decided`", stdout.String())
}

func TestRunExpand_UnknownFormat(t *testing.T) {
	isolateConfig(t)

	var stdout, stderr bytes.Buffer
	opts := &expandOptions{formatName: "latex", noColor: true}

	err := runExpand("", opts, strings.NewReader("x"), &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestRunExpand_MissingInputFile(t *testing.T) {
	isolateConfig(t)

	var stdout, stderr bytes.Buffer
	opts := &expandOptions{formatName: "plain", noColor: true}

	err := runExpand(filepath.Join(t.TempDir(), "nope.txt"), opts, nil, &stdout, &stderr)
	assert.Error(t, err)
}
