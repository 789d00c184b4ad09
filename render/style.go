// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "github.com/gogpu/gg"

// HintText is the instruction text shown after a rejected animate command.
const HintText = "Click to place points, Enter to animate, Backspace to reset"

// Style holds the colors and sizes used by a Renderer.
type Style struct {
	Background gg.RGBA

	// Control points are drawn as a PointRadius disc in PointColor with a
	// PointInnerRadius disc in PointCenter on top.
	PointColor       gg.RGBA
	PointCenter      gg.RGBA
	PointRadius      float64
	PointInnerRadius float64

	CurveColor gg.RGBA
	CurveWidth float64

	TextColor gg.RGBA

	// ShowStatus enables the step counter drawn while animating.
	ShowStatus bool
}

// DefaultStyle returns white rings on black with a green curve of width 2.
func DefaultStyle() Style {
	return Style{
		Background:       gg.Black,
		PointColor:       gg.White,
		PointCenter:      gg.Black,
		PointRadius:      3,
		PointInnerRadius: 2,
		CurveColor:       gg.Green,
		CurveWidth:       2,
		TextColor:        gg.White,
		ShowStatus:       true,
	}
}
