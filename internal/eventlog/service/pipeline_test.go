package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeLog(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "run.json")
	require.NoError(t, os.WriteFile(logPath, []byte(sampleLog), 0644))

	outDir := filepath.Join(dir, "out")
	res, err := AnalyzeLog(logPath, outDir, "nav run", "")
	require.NoError(t, err)

	assert.Equal(t, "nav run", res.Title)
	assert.Equal(t, 3, res.Summary.TotalEvents)
	assert.Equal(t, []string{"/robot/diag", "/robot/nav"}, res.Topics)
	assert.Equal(t, 1.5, res.TimeRange.Min)
	assert.Len(t, res.Graph.Nodes, 3)
	assert.Len(t, res.Graph.Edges, 2)
	assert.Empty(t, res.SVGPath, "no graphviz binary configured")

	assert.FileExists(t, res.JSONPath)
	assert.FileExists(t, res.DOTPath)

	dot, err := os.ReadFile(res.DOTPath)
	require.NoError(t, err)
	assert.Contains(t, string(dot), "digraph G {")
}

func TestAnalyzeLog_MissingFile(t *testing.T) {
	_, err := AnalyzeLog(filepath.Join(t.TempDir(), "nope.json"), "", "t", "")
	assert.Error(t, err)
}

func TestAnalyzeLogBytes(t *testing.T) {
	base := t.TempDir()

	res, err := AnalyzeLogBytes([]byte(sampleLog), base, "nav run", "")
	require.NoError(t, err)

	assert.Contains(t, res.JSONPath, filepath.Join(base, "runs"))
	assert.FileExists(t, res.JSONPath)
	assert.FileExists(t, res.DOTPath)

	again, err := AnalyzeLogBytes([]byte(sampleLog), base, "nav run", "")
	require.NoError(t, err)
	assert.NotEqual(t, res.JSONPath, again.JSONPath, "each run gets its own folder")
}

func TestAnalyzeLogBytes_InvalidJSON(t *testing.T) {
	_, err := AnalyzeLogBytes([]byte("not json"), t.TempDir(), "t", "")
	assert.Error(t, err)
}
