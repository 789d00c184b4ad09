// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chaikin

import "github.com/gogpu/gg"

// Point is a position in window coordinates, the same space the pointer
// reports in. Origin is top-left, Y increases down.
//
// It is gg's Point, so curves can be handed to a gg.Context unconverted.
type Point = gg.Point

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return gg.Pt(x, y)
}
