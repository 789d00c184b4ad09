// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFace(t *testing.T) {
	garbage := filepath.Join(t.TempDir(), "broken.ttf")
	if err := os.WriteFile(garbage, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		size    float64
		wantErr bool
	}{
		{"embedded", "", DefaultFontSize, false},
		{"missing file", filepath.Join(t.TempDir(), "missing.ttf"), DefaultFontSize, true},
		{"not a font", garbage, DefaultFontSize, true},
		{"zero size", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			face, err := LoadFace(tt.path, tt.size)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadFace(%q, %v) error = %v, wantErr %v", tt.path, tt.size, err, tt.wantErr)
			}
			if !tt.wantErr && face == nil {
				t.Error("LoadFace() returned nil face")
			}
		})
	}
}

func TestLoadFace_InvalidSize(t *testing.T) {
	if _, err := LoadFace("", -1); !errors.Is(err, ErrInvalidFontSize) {
		t.Errorf("LoadFace(\"\", -1) = %v, want ErrInvalidFontSize", err)
	}
}
