package source

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))

	got, err := Read(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "content", got)
}

func TestRead_FromStdin(t *testing.T) {
	for _, path := range []string{"", "-"} {
		got, err := Read(path, strings.NewReader("piped"))
		require.NoError(t, err)
		assert.Equal(t, "piped", got)
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.md"), nil)
	assert.Error(t, err)
}

func TestWrite_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	require.NoError(t, Write(path, nil, "result"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "result", string(data))
}

func TestWrite_ToStdout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write("", &buf, "result"))
	assert.Equal(t, "result", buf.String())
}
