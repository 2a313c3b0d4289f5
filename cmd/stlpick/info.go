package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/stlpick/pkg/analysis"
	"github.com/philipparndt/stlpick/pkg/loader"
	"github.com/philipparndt/stlpick/pkg/mesh"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display information about an STL or 3MF file",
	Long:  "Load and normalize a model file the way the viewer does and print its statistics.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInfo(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(w io.Writer, filename string) error {
	model, err := loader.Load(filename)
	if err != nil {
		return err
	}

	geometries := 1
	if scene, ok := model.(*mesh.Scene); ok {
		geometries = scene.Len()
	}

	poly, err := mesh.Prepare(model)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	result := analysis.Analyze(poly)

	fmt.Fprintln(w, "Model Information")
	fmt.Fprintln(w, "=================")
	fmt.Fprintf(w, "File: %s\n", filename)
	fmt.Fprintf(w, "Geometries: %d\n\n", geometries)

	fmt.Fprintln(w, "Mesh:")
	fmt.Fprintf(w, "  Vertices: %d\n", result.VertexCount)
	fmt.Fprintf(w, "  Triangles: %d\n", result.TriangleCount)
	fmt.Fprintf(w, "  Face array length: %d\n", result.FaceLength)
	fmt.Fprintf(w, "  Edges: %d\n", result.EdgeCount)
	fmt.Fprintf(w, "  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	fmt.Fprintln(w, "Bounding Box:")
	fmt.Fprintf(w, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Fprintf(w, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Fprintf(w, "  Size: %s\n\n", analysis.FormatVector(result.Dimensions))

	fmt.Fprintln(w, "Edge Lengths:")
	fmt.Fprintf(w, "  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Fprintf(w, "  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Fprintf(w, "  Average: %.6f units\n", result.AvgEdgeLength)
	return nil
}
