// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render draws chaikin frames with gg.
//
// A [Renderer] turns a [chaikin.Frame] into pixels on a *gg.Context: a ring
// at every control point, the subdivided curve as a stroked line strip while
// the animation runs, and optional instruction and status text. It only
// issues gg drawing calls; the host decides whether the context is an
// offscreen pixmap (see [Export]) or a window canvas (see package
// integration/gogpuhost).
//
// # Usage
//
//	face, err := render.LoadFace("", 24) // embedded Go Regular
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r := render.New(render.DefaultStyle(), face)
//
//	dc := gg.NewContext(800, 600)
//	if err := r.Draw(dc, session.Frame()); err != nil {
//	    log.Print(err)
//	}
//
// # Thread Safety
//
// A Renderer holds no per-frame state and may be shared, but a gg.Context
// must not be drawn from several goroutines at once.
package render
