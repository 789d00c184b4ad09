// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chaikin

import (
	"errors"
	"log/slog"
	"time"
)

// Button identifies a pointer button independently of the windowing
// backend.
type Button int

const (
	ButtonOther Button = iota
	ButtonPrimary
)

// Command is a user command decoded from the keyboard.
type Command int

const (
	CommandNone Command = iota
	CommandAnimate
	CommandReset
	CommandQuit
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandAnimate:
		return "Animate"
	case CommandReset:
		return "Reset"
	case CommandQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Frame is a snapshot of what should be on screen after a tick.
// Its slices belong to the Animator and must not be modified.
type Frame struct {
	// ControlPoints are the user-placed points, in order.
	ControlPoints []Point

	// Curve is the subdivided curve for Step. Nil while idle.
	Curve []Point

	Step      int
	MaxSteps  int
	Animating bool

	// ShowHint asks the renderer to display the usage instructions. It is
	// raised when an animate command is rejected.
	ShowHint bool
}

// Session is the state of one interactive run: the animator, the last
// known pointer position and the hint flag. Event handlers and the per-tick
// Update all operate on the same *Session; it is not safe for concurrent
// use.
type Session struct {
	anim    *Animator
	pointer Point
	hint    bool
}

// NewSession returns a session driving a new Animator built with opts.
func NewSession(opts ...Option) *Session {
	return &Session{anim: NewAnimator(opts...)}
}

// Animator returns the session's animator.
func (s *Session) Animator() *Animator { return s.anim }

// Pointer returns the last pointer position reported by PointerMoved.
func (s *Session) Pointer() Point { return s.pointer }

// PointerMoved records the pointer position used by the next press.
func (s *Session) PointerMoved(x, y float64) {
	s.pointer = Pt(x, y)
}

// PointerPressed appends the current pointer position as a control point
// when b is the primary button and no animation is running. It reports
// whether a point was added.
func (s *Session) PointerPressed(b Button) bool {
	if b != ButtonPrimary {
		return false
	}
	if !s.anim.Append(s.pointer) {
		Logger().Debug("chaikin: point ignored while animating", slog.Float64("x", s.pointer.X), slog.Float64("y", s.pointer.Y))
		return false
	}
	s.hint = false
	return true
}

// Handle applies cmd. It reports true when the host should quit.
//
// A rejected animate command is not an error: the session raises the hint
// flag so the instructions are shown, and otherwise nothing changes.
func (s *Session) Handle(cmd Command, now time.Time) (quit bool) {
	switch cmd {
	case CommandAnimate:
		err := s.anim.Start(now)
		switch {
		case errors.Is(err, ErrNotEnoughPoints):
			s.hint = true
			Logger().Debug("chaikin: animate ignored",
				slog.Int("points", len(s.anim.ControlPoints())),
				slog.Int("required", s.anim.MinPoints()))
		case err != nil:
			Logger().Debug("chaikin: animate ignored", slog.String("reason", err.Error()))
		}
	case CommandReset:
		s.anim.Reset()
		s.hint = false
	case CommandQuit:
		return true
	}
	return false
}

// Update advances the animation for the tick at now and returns the frame
// to draw.
func (s *Session) Update(now time.Time) Frame {
	s.anim.Tick(now)
	return s.Frame()
}

// Frame returns the current frame without advancing time.
func (s *Session) Frame() Frame {
	return Frame{
		ControlPoints: s.anim.ControlPoints(),
		Curve:         s.anim.Displayed(),
		Step:          s.anim.Step(),
		MaxSteps:      s.anim.MaxSteps(),
		Animating:     s.anim.Animating(),
		ShowHint:      s.hint,
	}
}
