package theme

import (
	"image/color"
)

// Theme defines the colors and stroke metrics used by the canvas compositor
// and the command bar.
type Theme struct {
	Name string

	// Canvas
	Stroke       color.RGBA // quadrilateral outline
	Handle       color.RGBA // filled corner handles
	CanvasFill   color.RGBA // shown before the background image arrives
	LoadingText  color.RGBA
	StrokeWidth  int // outline width in pixels
	HandleRadius int // handle radius in pixels

	// Command bar
	BarBackground      color.RGBA
	ButtonBackground   color.RGBA
	ButtonHover        color.RGBA
	ButtonPress        color.RGBA
	ButtonDisabled     color.RGBA
	ButtonText         color.RGBA
	ButtonTextDisabled color.RGBA
	ButtonBorder       color.RGBA
}

// Default returns the hardcoded light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:               "Default",
		Stroke:             color.RGBA{200, 30, 30, 255},
		Handle:             color.RGBA{30, 100, 200, 255},
		CanvasFill:         color.RGBA{245, 245, 245, 255},
		LoadingText:        color.RGBA{90, 90, 90, 255},
		StrokeWidth:        2,
		HandleRadius:       6,
		BarBackground:      color.RGBA{220, 220, 220, 255},
		ButtonBackground:   color.RGBA{200, 200, 200, 255},
		ButtonHover:        color.RGBA{180, 180, 180, 255},
		ButtonPress:        color.RGBA{150, 150, 150, 255},
		ButtonDisabled:     color.RGBA{225, 225, 225, 255},
		ButtonText:         color.RGBA{0, 0, 0, 255},
		ButtonTextDisabled: color.RGBA{150, 150, 150, 255},
		ButtonBorder:       color.RGBA{0, 0, 0, 255},
	}
}
