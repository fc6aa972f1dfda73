package cli

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportOpts_Normalize(t *testing.T) {
	tests := []struct {
		name       string
		opts       exportOpts
		wantFormat string
		wantOutput string
		wantErr    bool
	}{
		{"schematic default", exportOpts{view: viewSchematic, width: 10, height: 10}, formatSVG, "schematic.svg", false},
		{"wave default", exportOpts{view: viewWave, width: 10, height: 10}, formatPNG, "wave.png", false},
		{"format from output", exportOpts{view: viewSchematic, output: "out/x.PNG", width: 10, height: 10}, formatPNG, "out/x.PNG", false},
		{"wave svg", exportOpts{view: viewWave, format: formatSVG, width: 10, height: 10}, "", "", true},
		{"unknown view", exportOpts{view: "3d", width: 10, height: 10}, "", "", true},
		{"unknown format", exportOpts{view: viewSchematic, format: "pdf", width: 10, height: 10}, "", "", true},
		{"zero size", exportOpts{view: viewSchematic, width: 0, height: 10}, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			err := opts.normalize()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFormat, opts.format)
			assert.Equal(t, tt.wantOutput, opts.output)
		})
	}
}

func TestExportCommand_SVG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "wg.svg")
	stdout, err := execute(t, "export", "-b", "0,20,50,70", "-o", out, "--width", "400", "--height", "100")
	require.NoError(t, err)
	assert.Contains(t, stdout, out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	svg := string(data)
	assert.True(t, strings.HasPrefix(svg, "<svg "))
	assert.Equal(t, 3+4, strings.Count(svg, "<rect "))
	assert.Equal(t, 4+2, strings.Count(svg, "<circle "))
}

func TestExportCommand_WavePNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "wave.png")
	_, err := execute(t, "export", "--view", "wave", "-n", "2", "-o", out, "--width", "64", "--height", "32", "--phase", "1.5")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())
}

func TestExportCommand_InvalidBoundaries(t *testing.T) {
	_, err := execute(t, "export", "-b", "0,80,70", "-o", filepath.Join(t.TempDir(), "x.svg"))
	assert.Error(t, err)
}
