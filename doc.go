// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package chaikin animates Chaikin's corner-cutting subdivision over a
// user-drawn polyline.
//
// # Overview
//
// The package has three layers:
//   - [Subdivide] and [SubdivideN]: the pure geometric transform
//   - [Animator]: the time-driven state machine that re-derives the displayed
//     curve from the control points at every step
//   - [Session]: the input adapter that turns pointer and keyboard events
//     into Animator commands and produces a [Frame] per draw tick
//
// Drawing and windowing live elsewhere: package render draws a Frame with gg,
// and package integration/gogpuhost binds a Session to a gogpu window.
//
// # Quick Start
//
//	s := chaikin.NewSession()
//	for _, p := range []chaikin.Point{{100, 400}, {300, 100}, {500, 400}} {
//	    s.PointerMoved(p.X, p.Y)
//	    s.PointerPressed(chaikin.ButtonPrimary)
//	}
//	s.Handle(chaikin.CommandAnimate, time.Now())
//
//	// once per draw tick
//	frame := s.Update(time.Now())
//
// # Subdivision
//
// Each pass replaces every segment with the points 1/4 and 3/4 along it and
// keeps the two end points, so n points become 2n and the curve stays pinned
// to the first and last control point.
//
// # Animation
//
// Step 0 shows the control polyline itself. Every [DefaultTickInterval] the
// step advances by one up to [DefaultMaxSteps], then wraps to 0. Start needs
// at least [DefaultMinPoints] control points.
package chaikin
