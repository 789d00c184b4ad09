// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chaikin

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	return &buf
}

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.Int("step", 1)}).(nopHandler); !ok {
		t.Error("nopHandler.WithAttrs() did not return nopHandler")
	}
	if _, ok := h.WithGroup("anim").(nopHandler); !ok {
		t.Error("nopHandler.WithGroup() did not return nopHandler")
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled, want silent")
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) stored nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) left an enabled logger")
	}
}

func TestAnimatorLogsLifecycle(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	a := NewAnimator()
	for _, p := range []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)} {
		a.Append(p)
	}
	if err := a.Start(epoch); err != nil {
		t.Fatalf("Start() = %v", err)
	}
	a.Tick(epoch.Add(time.Second))
	a.Reset()

	out := buf.String()
	for _, want := range []string{"animation started", "step advanced", "step=1", "points=6", "reset"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestSessionLogsRejectedAnimate(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	s := NewSession()
	place(s, Pt(0, 0))
	s.Handle(CommandAnimate, epoch)

	out := buf.String()
	if !strings.Contains(out, "animate ignored") || !strings.Contains(out, "required=3") {
		t.Errorf("log output = %q, want rejected animate with required=3", out)
	}
}

func TestInfoLevelHidesSteps(t *testing.T) {
	buf := captureLogs(t, slog.LevelInfo)

	a := NewAnimator(WithMinPoints(1))
	a.Append(Pt(0, 0))
	_ = a.Start(epoch)
	a.Tick(epoch.Add(time.Second))

	if strings.Contains(buf.String(), "step advanced") {
		t.Errorf("debug record logged at info level:\n%s", buf.String())
	}
}
