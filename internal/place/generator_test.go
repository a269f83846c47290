package place

import (
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestGenerateAll_CountContract(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(42)

	written, err := g.GenerateAll(dir, 25)
	require.NoError(t, err)
	assert.Equal(t, 25, written)

	names := dirNames(t, dir)
	assert.Len(t, names, 25)
	for _, name := range names {
		assert.True(t, strings.HasSuffix(name, ".md"), "file %q is not markdown", name)
	}
}

func TestGenerateAll_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "generated_places")
	g := NewGenerator(42)

	written, err := g.GenerateAll(dir, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, written)
	assert.Len(t, dirNames(t, dir), 3)
}

func TestGenerateAll_Deterministic(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	_, err := NewGenerator(777).GenerateAll(dirA, 50)
	require.NoError(t, err)
	_, err = NewGenerator(777).GenerateAll(dirB, 50)
	require.NoError(t, err)

	assert.Equal(t, dirNames(t, dirA), dirNames(t, dirB))
}

var documentPattern = regexp.MustCompile(
	`^---\ncategory: "\[\[Places\]\]"\ntype: "\[\[([A-Za-z ]+)\]\]"\ncoordinates:\n  - "(-?\d+\.\d{14})"\n  - "(-?\d+\.\d{7})"\n---\n$`)

func TestGenerateAll_SingleSeededRun(t *testing.T) {
	dir := t.TempDir()

	written, err := NewGenerator(1).GenerateAll(dir, 1)
	require.NoError(t, err)
	require.Equal(t, 1, written)

	names := dirNames(t, dir)
	require.Len(t, names, 1)

	displayName := strings.TrimSuffix(names[0], ".md")
	assert.True(t, matchesKnownPattern(displayName), "name %q matches no documented pattern", displayName)

	data, err := os.ReadFile(filepath.Join(dir, names[0]))
	require.NoError(t, err)

	m := documentPattern.FindStringSubmatch(string(data))
	require.NotNil(t, m, "document does not match fixture layout:\n%s", data)
	assert.True(t, slices.Contains(linkTypes, m[1]), "type label %q not in table", m[1])
}

func TestGenerateAll_UnwritableDir(t *testing.T) {
	// A regular file in the path makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	written, err := NewGenerator(1).GenerateAll(filepath.Join(blocker, "out"), 5)
	assert.Error(t, err)
	assert.Zero(t, written)
}

func TestNewGenerator_ZeroSeed(t *testing.T) {
	g := NewGenerator(0)
	require.NotNil(t, g)
	assert.NotEmpty(t, g.Name())
}
