package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/waveguide"
)

func newMeshCmd(scene *sceneOpts) *cobra.Command {
	var centered bool

	cmd := &cobra.Command{
		Use:   "mesh",
		Short: "Print the realtime view mesh",
		Long:  `Print the triangle vertices the realtime view uploads each frame: x, y and the offset from the start of the vertex's layer.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(scene)
			if err != nil {
				return err
			}
			model, err := cfg.BoundaryModel()
			if err != nil {
				return err
			}
			boundaries := model.Boundaries()
			if centered {
				boundaries = model.Centered()
			}
			loggerFromContext(cmd.Context()).Debug("building mesh", "layers", model.Layers(), "centered", centered)
			printMesh(cmd.OutOrStdout(), boundaries, cfg.Geometry.Height)
			return nil
		},
	}

	cmd.Flags().BoolVar(&centered, "centered", false, "shift boundaries so the waveguide is centered on the origin")

	return cmd
}

// printMesh renders the mesh of boundaries as a table, one row per vertex.
func printMesh(w io.Writer, boundaries []float32, layerHeight float32) {
	mesh := waveguide.BuildMesh(boundaries, layerHeight)

	rows := make([][]string, 0, len(mesh))
	for i, v := range mesh {
		rows = append(rows, []string{
			strconv.Itoa(i),
			strconv.Itoa(i / waveguide.VerticesPerLayer),
			formatFloat(v.X),
			formatFloat(v.Y),
			formatFloat(v.Offset),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Layer", "X", "Y", "Offset").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col == 4 {
				return StyleNumber
			}
			return lipgloss.NewStyle()
		})

	fmt.Fprintln(w, StyleTitle.Render("Mesh"))
	printKeyValue(w, "layers", strconv.Itoa(len(mesh)/waveguide.VerticesPerLayer))
	printKeyValue(w, "vertices", strconv.Itoa(len(mesh)))
	fmt.Fprintln(w, t.Render())
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
