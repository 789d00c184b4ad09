// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gogpuhost

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gogpu/chaikin"
	"github.com/gogpu/chaikin/render"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
)

// errNoProvider reports that the window has no GPU context yet. The first
// frames of a gogpu app can arrive before it is ready.
var errNoProvider = errors.New("gogpuhost: GPU context provider not ready")

// canvas is the part of *ggcanvas.Canvas the host uses.
type canvas interface {
	Size() (width, height int)
	Resize(width, height int) error
	Draw(fn func(*gg.Context)) error
	RenderTo(dc gpucontext.TextureDrawer) error
	Close() error
}

// Host feeds window events into a chaikin.Session and presents the
// rendered frames. All methods must be called from the window's event loop.
type Host struct {
	session  *chaikin.Session
	renderer *render.Renderer
	quit     func()
	now      func() time.Time

	newCanvas func(width, height int) (canvas, error)
	canvas    canvas
}

// newHost creates a Host that is not bound to a window. quit is called when
// the user asks to exit; newCanvas creates the presentation canvas on the
// first frame.
func newHost(session *chaikin.Session, renderer *render.Renderer, quit func(), newCanvas func(width, height int) (canvas, error)) *Host {
	return &Host{
		session:   session,
		renderer:  renderer,
		quit:      quit,
		now:       time.Now,
		newCanvas: newCanvas,
	}
}

// Attach registers the input, draw and close callbacks of app and returns
// the Host driving them. The app should be configured for continuous
// rendering so that the animation keeps ticking without input.
func Attach(app *gogpu.App, session *chaikin.Session, renderer *render.Renderer) *Host {
	h := newHost(session, renderer, app.Quit, func(width, height int) (canvas, error) {
		provider := app.GPUContextProvider()
		if provider == nil {
			return nil, errNoProvider
		}
		return ggcanvas.New(provider, width, height)
	})

	events := app.EventSource()
	events.OnKeyPress(h.KeyPress)
	events.OnMouseMove(h.MouseMove)
	events.OnMousePress(h.MousePress)

	app.OnDraw(func(dc *gogpu.Context) {
		h.DrawFrame(dc.Width(), dc.Height(), dc.AsTextureDrawer())
	})
	app.OnClose(h.Close)
	return h
}

// KeyPress handles a key-down event.
func (h *Host) KeyPress(key gpucontext.Key, _ gpucontext.Modifiers) {
	cmd := KeyCommand(key)
	if cmd == chaikin.CommandNone {
		return
	}
	if h.session.Handle(cmd, h.now()) && h.quit != nil {
		h.quit()
	}
}

// MouseMove handles a pointer-move event.
func (h *Host) MouseMove(x, y float64) {
	h.session.PointerMoved(x, y)
}

// MousePress handles a button-down event at (x, y).
func (h *Host) MousePress(button gpucontext.MouseButton, x, y float64) {
	h.session.PointerMoved(x, y)
	h.session.PointerPressed(PointerButton(button))
}

// DrawFrame advances the session to the current time, draws the frame into
// the canvas and presents it on target. The canvas is created on the first
// call and follows the window size.
//
// Failures are logged and the frame is skipped; the next tick retries.
func (h *Host) DrawFrame(width, height int, target gpucontext.TextureDrawer) {
	if width <= 0 || height <= 0 {
		return
	}
	log := chaikin.Logger()

	if h.canvas == nil {
		c, err := h.newCanvas(width, height)
		if errors.Is(err, errNoProvider) {
			return
		}
		if err != nil {
			log.Warn("gogpuhost: create canvas", slog.Any("err", err))
			return
		}
		h.canvas = c
		log.Info("gogpuhost: canvas created", slog.Int("width", width), slog.Int("height", height))
	}

	if cw, ch := h.canvas.Size(); cw != width || ch != height {
		if err := h.canvas.Resize(width, height); err != nil {
			log.Warn("gogpuhost: resize canvas", slog.Any("err", err))
			return
		}
	}

	frame := h.session.Update(h.now())
	var drawErr error
	if err := h.canvas.Draw(func(cc *gg.Context) {
		drawErr = h.renderer.Draw(cc, frame)
	}); err != nil {
		log.Warn("gogpuhost: draw", slog.Any("err", err))
		return
	}
	if drawErr != nil {
		log.Warn("gogpuhost: render frame", slog.Any("err", drawErr))
	}

	if err := h.canvas.RenderTo(target); err != nil {
		log.Warn("gogpuhost: present", slog.Any("err", err))
	}
}

// Close releases the canvas. It is safe to call more than once.
func (h *Host) Close() {
	if h.canvas == nil {
		return
	}
	if err := h.canvas.Close(); err != nil {
		chaikin.Logger().Warn("gogpuhost: close canvas", slog.Any("err", err))
	}
	h.canvas = nil
}
