// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chaikin

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func place(s *Session, pts ...Point) {
	for _, p := range pts {
		s.PointerMoved(p.X, p.Y)
		s.PointerPressed(ButtonPrimary)
	}
}

func TestSession_PointerMovedDoesNotAppend(t *testing.T) {
	s := NewSession()
	s.PointerMoved(10, 20)
	s.PointerMoved(30, 40)
	if got := s.Pointer(); got != Pt(30, 40) {
		t.Errorf("Pointer() = %v, want (30, 40)", got)
	}
	if n := len(s.Frame().ControlPoints); n != 0 {
		t.Errorf("len(ControlPoints) = %d, want 0", n)
	}
}

func TestSession_PointerPressed(t *testing.T) {
	tests := []struct {
		name   string
		button Button
		want   bool
	}{
		{"primary", ButtonPrimary, true},
		{"other", ButtonOther, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			s.PointerMoved(5, 6)
			if got := s.PointerPressed(tt.button); got != tt.want {
				t.Errorf("PointerPressed(%v) = %v, want %v", tt.button, got, tt.want)
			}
			if got := len(s.Frame().ControlPoints) == 1; got != tt.want {
				t.Errorf("point appended = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSession_PressOrderIsKept(t *testing.T) {
	s := NewSession()
	pts := []Point{Pt(5, 5), Pt(1, 1), Pt(5, 5), Pt(3, 9)}
	place(s, pts...)
	if diff := cmp.Diff(pts, s.Frame().ControlPoints); diff != "" {
		t.Errorf("ControlPoints mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_AnimateThreshold(t *testing.T) {
	s := NewSession()
	place(s, Pt(0, 0), Pt(10, 0))

	s.Handle(CommandAnimate, epoch)
	f := s.Frame()
	if f.Animating {
		t.Fatal("Animating = true with 2 points, want false")
	}
	if !f.ShowHint {
		t.Error("ShowHint = false after rejected animate, want true")
	}

	place(s, Pt(20, 10))
	if s.Frame().ShowHint {
		t.Error("ShowHint = true after adding a point, want false")
	}

	s.Handle(CommandAnimate, epoch)
	f = s.Frame()
	if !f.Animating || f.Step != 0 {
		t.Errorf("Animating, Step = %v, %d; want true, 0", f.Animating, f.Step)
	}
	if diff := cmp.Diff(f.ControlPoints, f.Curve); diff != "" {
		t.Errorf("Curve at step 0 mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_PressWhileAnimating(t *testing.T) {
	s := NewSession()
	place(s, Pt(0, 0), Pt(10, 10), Pt(20, 0))
	s.Handle(CommandAnimate, epoch)

	s.PointerMoved(99, 99)
	if s.PointerPressed(ButtonPrimary) {
		t.Error("PointerPressed while animating = true, want false")
	}
	if n := len(s.Frame().ControlPoints); n != 3 {
		t.Errorf("len(ControlPoints) = %d, want 3", n)
	}
}

func TestSession_Update(t *testing.T) {
	s := NewSession()
	ctrl := []Point{Pt(0, 0), Pt(10, 10), Pt(20, 0)}
	place(s, ctrl...)
	s.Handle(CommandAnimate, epoch)

	f := s.Update(epoch.Add(100 * time.Millisecond))
	if f.Step != 0 {
		t.Errorf("Step = %d at 100ms, want 0", f.Step)
	}
	f = s.Update(epoch.Add(600 * time.Millisecond))
	if f.Step != 1 {
		t.Errorf("Step = %d at 600ms, want 1", f.Step)
	}
	if f.MaxSteps != DefaultMaxSteps {
		t.Errorf("MaxSteps = %d, want %d", f.MaxSteps, DefaultMaxSteps)
	}
	if diff := cmp.Diff(Subdivide(ctrl), f.Curve); diff != "" {
		t.Errorf("Curve mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_Reset(t *testing.T) {
	s := NewSession()
	place(s, Pt(0, 0), Pt(10, 10), Pt(20, 0))
	s.Handle(CommandAnimate, epoch)
	s.Update(epoch.Add(time.Second))
	s.PointerMoved(42, 24)

	if quit := s.Handle(CommandReset, epoch.Add(time.Second)); quit {
		t.Error("Handle(Reset) = true, want false")
	}
	f := s.Frame()
	if f.Animating || f.Step != 0 || len(f.ControlPoints) != 0 || f.Curve != nil {
		t.Errorf("frame after reset = %+v, want idle and empty", f)
	}
	if got := s.Pointer(); got != Pt(42, 24) {
		t.Errorf("Pointer() = %v after reset, want (42, 24)", got)
	}

	s.PointerPressed(ButtonPrimary)
	if diff := cmp.Diff([]Point{Pt(42, 24)}, s.Frame().ControlPoints); diff != "" {
		t.Errorf("ControlPoints after reset mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_ResetClearsHint(t *testing.T) {
	s := NewSession()
	s.Handle(CommandAnimate, epoch)
	s.Handle(CommandReset, epoch)
	if s.Frame().ShowHint {
		t.Error("ShowHint = true after reset, want false")
	}
}

func TestSession_Quit(t *testing.T) {
	tests := []struct {
		cmd  Command
		want bool
	}{
		{CommandNone, false},
		{CommandAnimate, false},
		{CommandReset, false},
		{CommandQuit, true},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.String(), func(t *testing.T) {
			s := NewSession()
			if got := s.Handle(tt.cmd, epoch); got != tt.want {
				t.Errorf("Handle(%v) = %v, want %v", tt.cmd, got, tt.want)
			}
		})
	}
}

func TestCommand_String(t *testing.T) {
	if got := Command(99).String(); got != "Unknown" {
		t.Errorf("Command(99).String() = %q, want %q", got, "Unknown")
	}
}
