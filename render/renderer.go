// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/chaikin"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// textMargin is the distance of the status line from the top-left corner.
const textMargin = 12

// Renderer draws chaikin frames into a gg.Context.
type Renderer struct {
	style Style
	face  text.Face
}

// New creates a Renderer. face may be nil, in which case no text is drawn.
func New(style Style, face text.Face) *Renderer {
	return &Renderer{style: style, face: face}
}

// Style returns the style the renderer draws with.
func (r *Renderer) Style() Style { return r.style }

// Draw paints f over the whole of dc.
//
// The curve is stroked only while f.Animating, beneath the control points
// so that the points stay visible.
func (r *Renderer) Draw(dc *gg.Context, f chaikin.Frame) error {
	dc.ClearWithColor(r.style.Background)

	var errs []error
	if f.Animating && len(f.Curve) > 1 {
		if err := r.drawCurve(dc, f.Curve); err != nil {
			errs = append(errs, fmt.Errorf("render: curve: %w", err))
		}
	}
	if err := r.drawPoints(dc, f.ControlPoints); err != nil {
		errs = append(errs, fmt.Errorf("render: control points: %w", err))
	}
	r.drawText(dc, f)
	return errors.Join(errs...)
}

func (r *Renderer) drawCurve(dc *gg.Context, curve []chaikin.Point) error {
	setColor(dc, r.style.CurveColor)
	dc.SetLineWidth(r.style.CurveWidth)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	dc.MoveTo(curve[0].X, curve[0].Y)
	for _, p := range curve[1:] {
		dc.LineTo(p.X, p.Y)
	}
	return dc.Stroke()
}

func (r *Renderer) drawPoints(dc *gg.Context, points []chaikin.Point) error {
	for _, p := range points {
		setColor(dc, r.style.PointColor)
		dc.DrawCircle(p.X, p.Y, r.style.PointRadius)
		if err := dc.Fill(); err != nil {
			return err
		}
		if r.style.PointInnerRadius <= 0 {
			continue
		}
		setColor(dc, r.style.PointCenter)
		dc.DrawCircle(p.X, p.Y, r.style.PointInnerRadius)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) drawText(dc *gg.Context, f chaikin.Frame) {
	if r.face == nil {
		return
	}
	dc.SetFont(r.face)
	setColor(dc, r.style.TextColor)

	if f.ShowHint {
		w, h := float64(dc.Width()), float64(dc.Height())
		dc.DrawStringAnchored(HintText, w/2, h/2, 0.5, 0.5)
	}
	if f.Animating && r.style.ShowStatus {
		status := StatusText(f)
		_, lh := dc.MeasureString(status)
		dc.DrawString(status, textMargin, textMargin+lh)
	}
}

// StatusText describes the animation progress of f, for example
// "step 3/7 · 48 points · 512 px".
func StatusText(f chaikin.Frame) string {
	return fmt.Sprintf("step %d/%d · %d points · %.0f px",
		f.Step, f.MaxSteps, len(f.Curve), chaikin.PolylineLength(f.Curve))
}

// setColor sets c without the 8-bit round trip of c.Color(); gg.RGBA has no
// RGBA method, so it cannot go to SetColor directly.
func setColor(dc *gg.Context, c gg.RGBA) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}
