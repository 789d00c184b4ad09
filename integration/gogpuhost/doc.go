// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gogpuhost runs a chaikin session inside a gogpu window.
//
// The data flow per draw tick is:
//
//	Session.Update(now) -> render.Renderer -> ggcanvas.Canvas -> Window
//
// Input events are translated by [KeyCommand] and [PointerButton] and fed to
// the session as they arrive.
//
// # Usage
//
//	app := gogpu.NewApp(gogpu.DefaultConfig().
//	    WithTitle(gogpuhost.Title).
//	    WithSize(800, 600).
//	    WithContinuousRender(true))
//	gogpuhost.Attach(app, chaikin.NewSession(), render.New(render.DefaultStyle(), face))
//	if err := app.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// Drawing happens on gg's CPU rasterizer; the canvas only uploads the
// finished pixmap to the window surface.
package gogpuhost
