// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command chaikin is an interactive Chaikin curve-smoothing visualizer.
//
// Left click places control points, Enter animates the subdivision, Backspace
// clears everything and Esc quits. With -export the animation steps are
// written to PNG files instead and no window is opened.
package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/chaikin"
	"github.com/gogpu/chaikin/integration/gogpuhost"
	"github.com/gogpu/chaikin/render"
	"github.com/gogpu/gg"
	"github.com/gogpu/gogpu"
)

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("chaikin: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.logLevel}))
	chaikin.SetLogger(logger)
	gg.SetLogger(logger)

	// The font is loaded before any window exists so that a bad -font
	// aborts startup without partial UI.
	face, err := render.LoadFace(cfg.fontPath, cfg.fontSize)
	if err != nil {
		log.Fatalf("chaikin: %v", err)
	}
	renderer := render.New(render.DefaultStyle(), face)

	if cfg.exportDir != "" {
		paths, err := renderer.Export(cfg.exportDir, cfg.points, cfg.width, cfg.height, cfg.maxSteps)
		if err != nil {
			log.Fatalf("chaikin: %v", err)
		}
		log.Printf("Exported %d steps to %s", len(paths), cfg.exportDir)
		return
	}

	session := newSession(cfg)

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(gogpuhost.Title).
		WithSize(cfg.width, cfg.height).
		WithContinuousRender(true))
	gogpuhost.Attach(app, session, renderer)

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}

// newSession creates the interactive session and places the -points seeds
// as if they had been clicked.
func newSession(cfg config) *chaikin.Session {
	s := chaikin.NewSession(cfg.animatorOptions()...)
	for _, p := range cfg.points {
		s.PointerMoved(p.X, p.Y)
		s.PointerPressed(chaikin.ButtonPrimary)
	}
	return s
}
