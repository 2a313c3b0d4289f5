package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/philipparndt/stlpick/pkg/analysis"
	"github.com/philipparndt/stlpick/pkg/loader"
	"github.com/philipparndt/stlpick/pkg/mesh"
	"github.com/spf13/cobra"
)

var (
	faceCount    int
	faceLargest  bool
	faceSmallest bool
)

var facesCmd = &cobra.Command{
	Use:   "faces [file]",
	Short: "List the faces of a model",
	Long: `List faces with area, normal and centre. Face numbers match the
"Face #n" shown by the viewer when a face is picked.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFaces(cmd.OutOrStdout(), args[0], faceCount, faceOrder())
	},
}

func init() {
	rootCmd.AddCommand(facesCmd)

	facesCmd.Flags().IntVarP(&faceCount, "count", "n", 10, "Number of faces to display")
	facesCmd.Flags().BoolVarP(&faceLargest, "largest", "l", false, "Show largest faces by area")
	facesCmd.Flags().BoolVarP(&faceSmallest, "smallest", "s", false, "Show smallest faces by area")
	facesCmd.MarkFlagsMutuallyExclusive("largest", "smallest")
}

type order int

const (
	byIndex order = iota
	byLargest
	bySmallest
)

func faceOrder() order {
	switch {
	case faceLargest:
		return byLargest
	case faceSmallest:
		return bySmallest
	default:
		return byIndex
	}
}

func runFaces(w io.Writer, filename string, count int, o order) error {
	model, err := loader.Load(filename)
	if err != nil {
		return err
	}
	poly, err := mesh.Prepare(model)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	faces := make([]analysis.FaceInfo, poly.NumCells())
	for i := range faces {
		faces[i] = analysis.Face(poly, i)
	}

	title := "Faces"
	switch o {
	case byLargest:
		sort.SliceStable(faces, func(i, j int) bool { return faces[i].Area > faces[j].Area })
		title = "Largest Faces"
	case bySmallest:
		sort.SliceStable(faces, func(i, j int) bool { return faces[i].Area < faces[j].Area })
		title = "Smallest Faces"
	}

	if count <= 0 || count > len(faces) {
		count = len(faces)
	}

	fmt.Fprintf(w, "%s (%d of %d)\n\n", title, count, len(faces))
	for _, f := range faces[:count] {
		fmt.Fprintf(w, "Face #%d\n", f.Cell)
		fmt.Fprintf(w, "  Area: %.6f square units\n", f.Area)
		fmt.Fprintf(w, "  Normal: %s\n", analysis.FormatVector(f.Normal))
		fmt.Fprintf(w, "  Center: %s\n", analysis.FormatVector(f.Center))
	}
	return nil
}
