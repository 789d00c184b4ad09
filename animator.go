// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chaikin

import (
	"errors"
	"log/slog"
	"time"
)

const (
	// DefaultTickInterval is the minimum time between two animation steps.
	DefaultTickInterval = 500 * time.Millisecond

	// DefaultMaxSteps is the last step shown before the animation wraps to 0.
	DefaultMaxSteps = 7

	// DefaultMinPoints is the number of control points Start requires.
	// A curve needs strictly more than two points to show any smoothing at
	// its interior corners.
	DefaultMinPoints = 3

	// MaxStepsLimit is the largest accepted max step count. The curve doubles
	// in size every step, so step 12 already holds 4096 points per control point.
	MaxStepsLimit = 12
)

// Start errors. Both describe rejected commands, not failures: the
// Animator state is left untouched.
var (
	// ErrNotEnoughPoints is returned by Start when fewer than the minimum
	// number of control points have been placed.
	ErrNotEnoughPoints = errors.New("chaikin: not enough control points to animate")

	// ErrAnimating is returned by Start while an animation is already running.
	ErrAnimating = errors.New("chaikin: animation already running")
)

// Animator drives the subdivision animation.
//
// While idle it collects control points. Once started it advances one
// step each time Tick observes that the tick interval has elapsed,
// wrapping from MaxSteps back to 0, and never stops on its own.
//
// The displayed curve is always SubdivideN(ControlPoints(), Step()): it is
// recomputed from the control points on every step change rather than
// refined from the previous curve, so no rounding error accumulates.
//
// Animator is not safe for concurrent use. Time is passed in explicitly;
// callers sample a monotonic clock (time.Now) once per draw tick.
type Animator struct {
	interval  time.Duration
	maxSteps  int
	minPoints int

	control   []Point
	displayed []Point

	animating bool
	step      int
	lastTick  time.Time
}

// NewAnimator creates an idle Animator at step 0.
func NewAnimator(opts ...Option) *Animator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Animator{
		interval:  o.interval,
		maxSteps:  o.maxSteps,
		minPoints: o.minPoints,
	}
}

// Append adds p to the end of the control points. It reports false and
// does nothing while animating.
func (a *Animator) Append(p Point) bool {
	if a.animating {
		return false
	}
	a.control = append(a.control, p)
	return true
}

// Start begins the animation at step 0, with the displayed curve equal to
// the control points. It returns ErrAnimating if already running and
// ErrNotEnoughPoints if fewer than MinPoints control points exist.
func (a *Animator) Start(now time.Time) error {
	if a.animating {
		return ErrAnimating
	}
	if len(a.control) < a.minPoints {
		return ErrNotEnoughPoints
	}

	a.step = 0
	a.lastTick = now
	a.animating = true
	a.displayed = SubdivideN(a.control, a.step)

	Logger().Info("chaikin: animation started",
		slog.Int("points", len(a.control)),
		slog.Int("maxSteps", a.maxSteps),
		slog.Duration("interval", a.interval))
	return nil
}

// Tick advances the animation by one step if at least TickInterval has
// passed since the previous advance (or since Start). It reports whether
// the step changed. When it reports false the displayed curve is the same
// slice as before.
func (a *Animator) Tick(now time.Time) bool {
	if !a.animating {
		return false
	}
	if now.Sub(a.lastTick) < a.interval {
		return false
	}

	a.step++
	if a.step > a.maxSteps {
		a.step = 0
	}
	a.displayed = SubdivideN(a.control, a.step)
	a.lastTick = now

	Logger().Debug("chaikin: step advanced",
		slog.Int("step", a.step),
		slog.Int("points", len(a.displayed)))
	return true
}

// Reset clears all points and returns to idle at step 0.
func (a *Animator) Reset() {
	a.control = nil
	a.displayed = nil
	a.animating = false
	a.step = 0
	a.lastTick = time.Time{}

	Logger().Info("chaikin: reset")
}

// Animating reports whether the animation is running.
func (a *Animator) Animating() bool { return a.animating }

// Step returns the current animation step in [0, MaxSteps].
func (a *Animator) Step() int { return a.step }

// MaxSteps returns the last step before the animation wraps.
func (a *Animator) MaxSteps() int { return a.maxSteps }

// MinPoints returns the number of control points Start requires.
func (a *Animator) MinPoints() int { return a.minPoints }

// TickInterval returns the minimum time between two steps.
func (a *Animator) TickInterval() time.Duration { return a.interval }

// ControlPoints returns the control points in insertion order.
// The returned slice must not be modified.
func (a *Animator) ControlPoints() []Point { return a.control }

// Displayed returns the curve for the current step, or nil while idle.
// The returned slice must not be modified.
func (a *Animator) Displayed() []Point {
	if !a.animating {
		return nil
	}
	return a.displayed
}
