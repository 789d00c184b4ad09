// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/chaikin"
	"github.com/gogpu/gg"
)

var (
	// ErrInvalidSize is returned by Export for non-positive image dimensions.
	ErrInvalidSize = errors.New("render: image size must be positive")

	// ErrInvalidSteps is returned by Export for a negative step count.
	ErrInvalidSteps = errors.New("render: max steps must not be negative")
)

// Export renders every animation step of points, from 0 through maxSteps,
// into dir as step-00.png, step-01.png, and so on. dir is created if
// needed. It returns the paths written, in step order.
//
// Each image shows the frame a running animation displays at that step.
func (r *Renderer) Export(dir string, points []chaikin.Point, width, height, maxSteps int) ([]string, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	if maxSteps < 0 {
		return nil, ErrInvalidSteps
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: export: %w", err)
	}

	paths := make([]string, 0, maxSteps+1)
	for step := 0; step <= maxSteps; step++ {
		f := chaikin.Frame{
			ControlPoints: points,
			Curve:         chaikin.SubdivideN(points, step),
			Step:          step,
			MaxSteps:      maxSteps,
			Animating:     true,
		}
		path := filepath.Join(dir, fmt.Sprintf("step-%02d.png", step))
		if err := r.exportFrame(path, f, width, height); err != nil {
			return paths, err
		}
		paths = append(paths, path)
		chaikin.Logger().Debug("render: exported step", slog.Int("step", step), slog.String("path", path))
	}
	return paths, nil
}

func (r *Renderer) exportFrame(path string, f chaikin.Frame, width, height int) error {
	dc := gg.NewContext(width, height)
	defer dc.Close()

	if err := r.Draw(dc, f); err != nil {
		return fmt.Errorf("render: export step %d: %w", f.Step, err)
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: export step %d: %w", f.Step, err)
	}
	return nil
}
