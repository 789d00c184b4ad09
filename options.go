// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chaikin

import "time"

// Option configures an Animator during creation.
//
// Example:
//
//	// Faster animation that also accepts two-point curves
//	a := chaikin.NewAnimator(
//	    chaikin.WithTickInterval(250*time.Millisecond),
//	    chaikin.WithMinPoints(2),
//	)
type Option func(*animatorOptions)

type animatorOptions struct {
	interval  time.Duration
	maxSteps  int
	minPoints int
}

func defaultOptions() animatorOptions {
	return animatorOptions{
		interval:  DefaultTickInterval,
		maxSteps:  DefaultMaxSteps,
		minPoints: DefaultMinPoints,
	}
}

// WithTickInterval sets the minimum time between two step advances.
// Non-positive durations are ignored.
func WithTickInterval(d time.Duration) Option {
	return func(o *animatorOptions) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithMaxSteps sets the highest step shown before the animation wraps back
// to step 0. Values outside [0, MaxStepsLimit] are ignored.
func WithMaxSteps(n int) Option {
	return func(o *animatorOptions) {
		if n >= 0 && n <= MaxStepsLimit {
			o.maxSteps = n
		}
	}
}

// WithMinPoints sets how many control points Start requires.
// Values below 1 are ignored.
func WithMinPoints(n int) Option {
	return func(o *animatorOptions) {
		if n >= 1 {
			o.minPoints = n
		}
	}
}
