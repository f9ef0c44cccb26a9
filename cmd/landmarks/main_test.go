package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_PauseAndResume(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "landmarks.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
chunk_size: 20
operation_budget: 40
max_exclusion_radius: 4
world:
  seed: 5
  chunks: [E0S0, E1S0]
`), 0o644))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()
	o := options{configPath: cfgPath, dbPath: filepath.Join(dir, "builds.db"), steps: 1}

	var out bytes.Buffer
	require.NoError(t, run(ctx, o, &out, logger))
	m := regexp.MustCompile(`resume with -build (\S+)`).FindStringSubmatch(out.String())
	require.Len(t, m, 2, out.String())

	o.buildID = m[1]
	o.steps = 0
	out.Reset()
	require.NoError(t, run(ctx, o, &out, logger))
	assert.Contains(t, out.String(), "build "+m[1]+":")
	assert.Contains(t, out.String(), "LANDMARK")

	out.Reset()
	require.NoError(t, run(ctx, options{dbPath: o.dbPath, list: true}, &out, logger))
	assert.Contains(t, out.String(), m[1])
	assert.Contains(t, out.String(), "done")
}

func TestRun_MapFileWithoutDB(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "c.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("chunk_size: 5\n"), 0o644))
	mapPath := filepath.Join(dir, "room.txt")
	require.NoError(t, os.WriteFile(mapPath, []byte("[E0S0]\n#####\n#...#\n#...#\n#...#\n#####\n"), 0o644))

	var out bytes.Buffer
	err := run(context.Background(), options{configPath: cfgPath, mapPath: mapPath}, &out, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "1 landmarks, 0 edges")
	assert.Contains(t, out.String(), "E0S0-2-2")
}

// TestRun_MapBuildResumesFromStoredWorld pauses a build made from a map file
// and resumes it after the file is gone.
func TestRun_MapBuildResumesFromStoredWorld(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "c.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("chunk_size: 5\noperation_budget: 1\n"), 0o644))
	room := "[E0S0]\n#####\n#...#\n#...#\n#...#\n#####\n"
	mapPath := filepath.Join(dir, "room.txt")
	require.NoError(t, os.WriteFile(mapPath, []byte(room), 0o644))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()
	dbPath := filepath.Join(dir, "builds.db")

	var out bytes.Buffer
	require.NoError(t, run(ctx, options{configPath: cfgPath, mapPath: mapPath, dbPath: dbPath, steps: 1}, &out, logger))
	m := regexp.MustCompile(`resume with -build (\S+)`).FindStringSubmatch(out.String())
	require.Len(t, m, 2, out.String())
	id := m[1]

	other := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(other, []byte("[E0S0]\n#####\n#.#.#\n#...#\n#...#\n#####\n"), 0o644))
	err := run(ctx, options{dbPath: dbPath, buildID: id, mapPath: other}, &out, logger)
	assert.True(t, errors.Is(err, errWorldMismatch), "got %v", err)

	require.NoError(t, os.Remove(mapPath))
	out.Reset()
	require.NoError(t, run(ctx, options{dbPath: dbPath, buildID: id}, &out, logger))
	assert.Contains(t, out.String(), "build "+id+": 1 landmarks, 0 edges")
	assert.Contains(t, out.String(), "E0S0-2-2")
}

func TestRun_GeneratedBuildRejectsMap(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "c.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("chunk_size: 10\noperation_budget: 1\nworld:\n  chunks: [E0S0]\n"), 0o644))
	mapPath := filepath.Join(dir, "room.txt")
	rows := "[E0S0]\n" + strings.Repeat("#", 10) + "\n" + strings.Repeat("#........#\n", 8) + strings.Repeat("#", 10) + "\n"
	require.NoError(t, os.WriteFile(mapPath, []byte(rows), 0o644))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()
	dbPath := filepath.Join(dir, "builds.db")

	var out bytes.Buffer
	require.NoError(t, run(ctx, options{configPath: cfgPath, dbPath: dbPath, steps: 1}, &out, logger))
	m := regexp.MustCompile(`resume with -build (\S+)`).FindStringSubmatch(out.String())
	require.Len(t, m, 2, out.String())

	err := run(ctx, options{dbPath: dbPath, buildID: m[1], mapPath: mapPath}, &out, logger)
	assert.True(t, errors.Is(err, errWorldMismatch), "got %v", err)
}
