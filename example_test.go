// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chaikin_test

import (
	"fmt"
	"time"

	"github.com/gogpu/chaikin"
)

func ExampleSubdivide() {
	fmt.Println(chaikin.Subdivide([]chaikin.Point{chaikin.Pt(0, 0), chaikin.Pt(4, 0)}))
	// Output: [{0 0} {1 0} {3 0} {4 0}]
}

func ExampleSession() {
	s := chaikin.NewSession()
	for _, p := range []chaikin.Point{chaikin.Pt(0, 0), chaikin.Pt(8, 8), chaikin.Pt(16, 0)} {
		s.PointerMoved(p.X, p.Y)
		s.PointerPressed(chaikin.ButtonPrimary)
	}

	start := time.Now()
	s.Handle(chaikin.CommandAnimate, start)
	for i := 1; i <= 3; i++ {
		f := s.Update(start.Add(time.Duration(i) * chaikin.DefaultTickInterval))
		fmt.Printf("step %d: %d points\n", f.Step, len(f.Curve))
	}
	// Output:
	// step 1: 6 points
	// step 2: 12 points
	// step 3: 24 points
}
