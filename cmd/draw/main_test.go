package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	charts "github.com/midbel/tabchart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fruits = "fruit,count\napple, 4\npear,n/a\nplum,\"$1,200\"\n"

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := newRoot()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute(), out.String())
	return out.String()
}

func writeInput(t *testing.T) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "fruits.csv")
	require.NoError(t, os.WriteFile(file, []byte(fruits), 0o644))
	return file
}

func TestRecommendCommand(t *testing.T) {
	input := writeInput(t)

	out := execute(t, "recommend", input, "--format", "json")
	var res struct {
		Input   string   `json:"input"`
		Y       string   `json:"y"`
		Kind    string   `json:"kind"`
		Reasons []string `json:"reasons"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, input, res.Input)
	assert.Equal(t, "count", res.Y)
	assert.Equal(t, "pie", res.Kind)
	assert.NotEmpty(t, res.Reasons)

	out = execute(t, "recommend", input, "--format", "text")
	assert.True(t, strings.HasPrefix(out, "pie: "), out)
}

func TestCleanCommand(t *testing.T) {
	input := writeInput(t)
	output := filepath.Join(t.TempDir(), "clean.csv")

	out := execute(t, "clean", input, "--format", "text")
	assert.Contains(t, out, "number")
	assert.Contains(t, out, `"$1,200"`)

	execute(t, "clean", input, "--apply", "-o", output)
	b, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "fruit,count\napple,4\npear,\nplum,1200\n", string(b))
}

func TestWriteCSVReportsFailures(t *testing.T) {
	tab := charts.NewTable([]string{"fruit", "count"}, [][]string{{"apple", "4"}})

	file := filepath.Join(t.TempDir(), "fruits.csv")
	require.NoError(t, writeCSV(file, tab))
	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "fruit,count\napple,4\n", string(b))

	assert.Error(t, writeCSV(t.TempDir(), tab))
	if _, err := os.Stat("/dev/full"); err == nil {
		assert.Error(t, writeCSV("/dev/full", tab))
	}
}

func TestDrawCommand(t *testing.T) {
	var (
		input  = writeInput(t)
		output = filepath.Join(t.TempDir(), "fruits.svg")
	)
	execute(t, input, "--kind", "bar", "--title", "fruits", "-o", output)

	b, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(b), "fruits")
}

func TestGalleryCommand(t *testing.T) {
	var (
		input = writeInput(t)
		dir   = t.TempDir()
	)
	out := execute(t, "gallery", input, "--dir", dir)
	assert.Len(t, strings.Fields(out), 4)
}

func TestColumnsCommand(t *testing.T) {
	out := execute(t, "columns", writeInput(t))
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "fruit")
	assert.Contains(t, lines[2], "count")
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger("debug", "json")
	assert.NoError(t, err)
	_, err = newLogger("loud", "json")
	assert.Error(t, err)
	_, err = newLogger("info", "xml")
	assert.Error(t, err)
}
