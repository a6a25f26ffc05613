package tags

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-doc-collective/doctag/internal/config"
)

func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("DTAG_FORMAT", "")
	t.Setenv("DTAG_MAX_DEPTH", "")
	return dir
}

func TestRunTags_ListsBuiltins(t *testing.T) {
	isolateConfig(t)

	var buf bytes.Buffer
	err := runTags(&listOptions{output: "plain", noColor: true}, &buf)
	require.NoError(t, err)

	out := buf.String()
	for _, name := range []string{"@code", "@link", "@br", "@ref"} {
		assert.Contains(t, out, name)
	}
}

func TestRunTags_IncludesConfiguredAbbreviations(t *testing.T) {
	dir := isolateConfig(t)

	cfg := &config.Config{Abbreviations: []config.Abbreviation{
		{Name: "TBD", Text: "To Be Decided"},
	}}
	require.NoError(t, cfg.Save(filepath.Join(dir, "dtag", "config.yml")))

	var buf bytes.Buffer
	err := runTags(&listOptions{output: "table", noColor: true}, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "TBD")
	assert.Contains(t, out, "To Be Decided")
}

func TestRunTags_InvalidOutputFormat(t *testing.T) {
	isolateConfig(t)

	err := runTags(&listOptions{output: "xml", noColor: true}, nil)
	assert.Error(t, err)
}
