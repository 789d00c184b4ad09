// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gogpuhost

import (
	"github.com/gogpu/chaikin"
	"github.com/gogpu/gpucontext"
)

// Title names the window and lists the commands bound by KeyCommand.
const Title = "Chaikin's Algorithm | Left Click -> Add Point | Enter -> Animate | Backspace -> Reset | Esc -> Quit"

// KeyCommand maps a key press to a session command.
//
//	Enter     -> Animate
//	Backspace -> Reset
//	Escape    -> Quit
//
// Every other key maps to CommandNone.
func KeyCommand(key gpucontext.Key) chaikin.Command {
	switch key {
	case gpucontext.KeyEnter:
		return chaikin.CommandAnimate
	case gpucontext.KeyBackspace:
		return chaikin.CommandReset
	case gpucontext.KeyEscape:
		return chaikin.CommandQuit
	default:
		return chaikin.CommandNone
	}
}

// PointerButton maps a mouse button to a session button. Only the left
// button places points.
func PointerButton(b gpucontext.MouseButton) chaikin.Button {
	if b == gpucontext.MouseButtonLeft {
		return chaikin.ButtonPrimary
	}
	return chaikin.ButtonOther
}
