package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/waveguide"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")
	defer SetVersion("", "", "")

	assert.Equal(t, "1.0.0", version)
	assert.Equal(t, "abc123", commit)
	assert.Equal(t, "2024-01-01", date)
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := NewRootCommand()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"run", "export", "mesh"})
}

func TestParseBoundaries(t *testing.T) {
	b, err := parseBoundaries("0, 20,50 ,70")
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 20, 50, 70}, b)

	_, err = parseBoundaries("0,x,70")
	assert.Error(t, err)

	_, err = parseBoundaries("70")
	assert.ErrorIs(t, err, waveguide.ErrBoundaryCount)
}

func TestResolveConfig(t *testing.T) {
	cfg, err := resolveConfig(&sceneOpts{})
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Layers)

	cfg, err = resolveConfig(&sceneOpts{layers: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Layers)
	assert.Empty(t, cfg.Boundaries)

	cfg, err = resolveConfig(&sceneOpts{layers: 4, boundaries: "0,20,50,70"})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Layers, "boundaries win over --layers")

	_, err = resolveConfig(&sceneOpts{boundaries: "0,50,20,70"})
	assert.ErrorIs(t, err, waveguide.ErrBoundaryOrder)

	_, err = resolveConfig(&sceneOpts{layers: -2})
	assert.ErrorIs(t, err, waveguide.ErrLayerCount)
}

func TestResolveConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layers: 2\ngeometry:\n  height: 4\n"), 0o644))

	cfg, err := resolveConfig(&sceneOpts{configPath: path})
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Layers)
	assert.Equal(t, float32(4), cfg.Geometry.Height)

	cfg, err = resolveConfig(&sceneOpts{configPath: path, layers: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Layers, "flags override the file")

	_, err = resolveConfig(&sceneOpts{configPath: filepath.Join(t.TempDir(), "wg.json")})
	assert.Error(t, err)
}
