// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chaikin

// Subdivide performs one pass of Chaikin corner cutting over an open
// polyline.
//
// Every segment (p0, p1) is replaced by the two points lying 1/4 and 3/4
// of the way from p0 to p1. Unlike the classical open-curve rule, the first
// and last input points are kept, so the refined curve always passes
// through the original end points. For n >= 2 points the result holds
// exactly 2n points.
//
// Inputs with fewer than two points have no segment to cut and are
// returned unchanged. The result never shares storage with points.
func Subdivide(points []Point) []Point {
	if len(points) < 2 {
		return append([]Point(nil), points...)
	}

	out := make([]Point, 0, 2*len(points))
	out = append(out, points[0])
	for i := 1; i < len(points); i++ {
		p0, p1 := points[i-1], points[i]
		out = append(out, p0.Lerp(p1, 0.25), p0.Lerp(p1, 0.75))
	}
	out = append(out, points[len(points)-1])
	return out
}

// SubdivideN applies Subdivide n times, starting from points.
// n <= 0 returns a copy of points.
func SubdivideN(points []Point, n int) []Point {
	out := append([]Point(nil), points...)
	for i := 0; i < n; i++ {
		out = Subdivide(out)
	}
	return out
}

// PolylineLength returns the summed length of the segments joining points
// in order.
func PolylineLength(points []Point) float64 {
	var length float64
	for i := 1; i < len(points); i++ {
		length += points[i-1].Distance(points[i])
	}
	return length
}
