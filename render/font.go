// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontSize is the text size, in points, used when none is given.
const DefaultFontSize = 24

// ErrInvalidFontSize is returned by LoadFace for non-positive sizes.
var ErrInvalidFontSize = errors.New("render: font size must be positive")

// LoadFace loads a font face of the given size.
//
// An empty path selects the embedded Go Regular font, which cannot fail to
// load. Otherwise the TrueType/OpenType file at path is used and any read or
// parse failure is returned; callers treat it as fatal at startup.
func LoadFace(path string, size float64) (text.Face, error) {
	if size <= 0 {
		return nil, ErrInvalidFontSize
	}

	var (
		source *text.FontSource
		err    error
	)
	if path == "" {
		source, err = text.NewFontSource(goregular.TTF)
	} else {
		source, err = text.NewFontSourceFromFile(path)
	}
	if err != nil {
		if path == "" {
			path = "goregular"
		}
		return nil, fmt.Errorf("render: load font %q: %w", path, err)
	}
	return source.Face(size), nil
}
