package bfvm

import (
	"fmt"
	"io"

	"github.com/reusee/bf/bflang"
)

// Run is a push iterator: callers range over it and receive interrupts
// ('#' and '%') and fatal I/O errors. Returning false from the yield stops
// execution; otherwise the program counter advances and the run continues
// until it passes the last instruction. There is no step limit: a
// non-terminating program runs until the caller stops it.
func (v *VM) Run(yield func(*Interrupt, error) bool) {
	for {
		if v.IP < 0 || v.IP >= len(v.Prog.Code) {
			return
		}

		op := v.Prog.Code[v.IP]
		v.IP++

		switch op {

		case bflang.OpInc:
			v.Tape.Increment()

		case bflang.OpDec:
			v.Tape.Decrement()

		case bflang.OpRight:
			v.Tape.MoveRight()

		case bflang.OpLeft:
			v.Tape.MoveLeft()

		case bflang.OpOutput:
			if v.Out == nil {
				continue
			}
			if _, err := v.Out.Write([]byte{v.Tape.Cell()}); err != nil {
				if !yield(nil, fmt.Errorf("write output: %w", err)) {
					return
				}
			}

		case bflang.OpInput:
			if v.In == nil {
				// no source attached, same as exhausted
				continue
			}
			b, err := v.In.ReadByte()
			if err == io.EOF {
				// exhausted input is a no-op, not an error
				continue
			}
			if err != nil {
				if !yield(nil, fmt.Errorf("read input: %w", err)) {
					return
				}
				continue
			}
			v.Tape.SetCell(b)

		case bflang.OpLoopBegin:
			if v.Tape.Cell() == 0 {
				v.IP = v.Prog.Jumps[v.IP-1] + 1
			}

		case bflang.OpLoopEnd:
			if v.Tape.Cell() != 0 {
				v.IP = v.Prog.Jumps[v.IP-1] + 1
			}

		case bflang.OpDump:
			if !yield(InterruptDump, nil) {
				return
			}

		case bflang.OpBreak:
			if !yield(InterruptBreak, nil) {
				return
			}

		}
	}
}
