package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = `
root:
  kind: group
  style: "-fx-font: 18 Amble"
  children:
    - kind: rectangle
      id: rect
      set:
        -fx-cursor: wait
    - kind: text
      classes: [ label ]
`

const testUA = `#rect { -fx-opacity: .76; -fx-cursor: hand; }`

const testAuthor = `.label { -fx-stroke-width: 1em; }`

func writeFiles(t *testing.T) string {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"scene.yaml": testScene,
		"ua.css":     testUA,
		"author.css": testAuthor,
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestStyleDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scenecss.cascade")
	defer teardown()
	//
	dir := writeFiles(t)
	var out bytes.Buffer
	err := run([]string{
		"--ua", filepath.Join(dir, "ua.css"),
		"--css", filepath.Join(dir, "author.css"),
		filepath.Join(dir, "scene.yaml"),
	}, &out)
	require.NoError(t, err)
	dump := out.String()
	t.Logf("\n%s", dump)
	assert.Contains(t, dump, "-fx-opacity = 0.76")
	assert.Contains(t, dump, "-fx-cursor = wait")
	assert.Contains(t, dump, "-fx-stroke-width = 18pt")
}

func TestStyleDumpErrors(t *testing.T) {
	dir := writeFiles(t)
	var out bytes.Buffer
	assert.Error(t, run(nil, &out))
	assert.Error(t, run([]string{"--trace", "loud", filepath.Join(dir, "scene.yaml")}, &out))
	assert.Error(t, run([]string{"--css", filepath.Join(dir, "missing.css"),
		filepath.Join(dir, "scene.yaml")}, &out))
}

func TestParseScene(t *testing.T) {
	desc, err := parseScene([]byte(testScene))
	require.NoError(t, err)
	assert.Equal(t, "group", desc.Root.Kind)
	require.Len(t, desc.Root.Children, 2)
	assert.Equal(t, "wait", desc.Root.Children[0].Set["-fx-cursor"])
	_, err = nodeDesc{Kind: "circle"}.build()
	assert.Error(t, err)
	_, err = parseScene([]byte("root: [ 1, 2"))
	assert.Error(t, err)
}
