package selection

import "image/color"

// Style holds the colors and decorations used for the displayed model
type Style struct {
	Background    color.Color
	Neutral       color.Color
	Highlight     color.Color
	FaceHighlight color.Color
	ShowEdges     bool
	ShowAxes      bool
}

// DefaultStyle returns a light blue model on a white background, an orange
// model highlight and a red face highlight.
func DefaultStyle() Style {
	return Style{
		Background:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Neutral:       color.NRGBA{R: 173, G: 216, B: 230, A: 255},
		Highlight:     color.NRGBA{R: 255, G: 140, B: 0, A: 255},
		FaceHighlight: color.NRGBA{R: 224, G: 30, B: 30, A: 255},
		ShowEdges:     true,
		ShowAxes:      true,
	}
}
