// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/chaikin"
	"github.com/gogpu/chaikin/render"
)

type config struct {
	width, height int
	fontPath      string
	fontSize      float64
	tick          time.Duration
	maxSteps      int
	minPoints     int
	logLevel      slog.Level
	points        []chaikin.Point
	exportDir     string
}

func parseConfig(args []string, stderr io.Writer) (config, error) {
	var (
		cfg      config
		level    string
		pointArg string
	)

	fs := flag.NewFlagSet("chaikin", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.width, "width", 800, "window width")
	fs.IntVar(&cfg.height, "height", 600, "window height")
	fs.StringVar(&cfg.fontPath, "font", "", "TrueType font file (default embedded Go Regular)")
	fs.Float64Var(&cfg.fontSize, "font-size", render.DefaultFontSize, "text size in points")
	fs.DurationVar(&cfg.tick, "tick", chaikin.DefaultTickInterval, "time between animation steps")
	fs.IntVar(&cfg.maxSteps, "max-steps", chaikin.DefaultMaxSteps, "last subdivision step before the animation loops")
	fs.IntVar(&cfg.minPoints, "min-points", chaikin.DefaultMinPoints, "control points required to animate")
	fs.StringVar(&level, "log-level", "warn", "log level: debug, info, warn or error")
	fs.StringVar(&pointArg, "points", "", "initial control points as x,y;x,y;...")
	fs.StringVar(&cfg.exportDir, "export", "", "render every step to PNG files in this directory and exit")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if err := cfg.logLevel.UnmarshalText([]byte(level)); err != nil {
		return config{}, fmt.Errorf("invalid -log-level %q: %w", level, err)
	}
	pts, err := parsePoints(pointArg)
	if err != nil {
		return config{}, err
	}
	cfg.points = pts

	return cfg, cfg.validate()
}

func (c config) validate() error {
	var errs []error
	if c.width <= 0 || c.height <= 0 {
		errs = append(errs, fmt.Errorf("invalid size %dx%d", c.width, c.height))
	}
	if c.fontSize <= 0 {
		errs = append(errs, fmt.Errorf("invalid -font-size %v", c.fontSize))
	}
	if c.tick <= 0 {
		errs = append(errs, fmt.Errorf("invalid -tick %v", c.tick))
	}
	if c.maxSteps < 0 || c.maxSteps > chaikin.MaxStepsLimit {
		errs = append(errs, fmt.Errorf("-max-steps %d out of range [0, %d]", c.maxSteps, chaikin.MaxStepsLimit))
	}
	if c.minPoints < 1 {
		errs = append(errs, fmt.Errorf("invalid -min-points %d", c.minPoints))
	}
	if c.exportDir != "" && len(c.points) == 0 {
		errs = append(errs, errors.New("-export requires -points"))
	}
	return errors.Join(errs...)
}

// animatorOptions returns the chaikin options selected by the flags.
func (c config) animatorOptions() []chaikin.Option {
	return []chaikin.Option{
		chaikin.WithTickInterval(c.tick),
		chaikin.WithMaxSteps(c.maxSteps),
		chaikin.WithMinPoints(c.minPoints),
	}
}

// parsePoints parses "x,y;x,y;..." into points. Blank entries are skipped.
func parsePoints(s string) ([]chaikin.Point, error) {
	var pts []chaikin.Point
	for _, field := range strings.Split(s, ";") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		xs, ys, ok := strings.Cut(field, ",")
		if !ok {
			return nil, fmt.Errorf("invalid point %q: want x,y", field)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", field, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", field, err)
		}
		pts = append(pts, chaikin.Pt(x, y))
	}
	return pts, nil
}
