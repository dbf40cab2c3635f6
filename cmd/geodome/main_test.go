package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geodome/dome"
)

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	log, hook := logtest.NewNullLogger()

	err := run(context.Background(), []string{"-r", "3", "-f", "2", "-out", dir, "-gltf", "dome.glb"}, &bytes.Buffer{}, log)
	require.NoError(t, err)

	for _, name := range []string{"Nodes.txt", "Edges.txt", "Triangles.txt", "dome.glb"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
	nodes, err := os.ReadFile(filepath.Join(dir, "Nodes.txt"))
	require.NoError(t, err)
	assert.Len(t, strings.Split(string(nodes), "\n"), 42)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "5:12 6:30", entry.Data["valence"])
}

func TestRun_ConfigFileAndOverride(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := filepath.Join(dir, "dome.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("frequency: 3\nradius: 5\n"), 0o644))

	var out bytes.Buffer
	log, _ := logtest.NewNullLogger()
	require.NoError(t, run(context.Background(), []string{"-config", cfg, "-f", "1", "-dump-config"}, &out, log))

	assert.Contains(t, out.String(), "frequency: 1")
	assert.Contains(t, out.String(), "radius: 5")
}

func TestRun_InvalidConfiguration(t *testing.T) {
	t.Parallel()

	log, _ := logtest.NewNullLogger()
	err := run(context.Background(), []string{"-f", "0"}, &bytes.Buffer{}, log)
	assert.ErrorIs(t, err, dome.ErrConfiguration)
}

func TestValence(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "5:12 6:30", valence(map[int]int{6: 30, 5: 12}))
	assert.Empty(t, valence(nil))
}
