package bflang

import (
	"fmt"
	"io"
	"strings"
)

// Compile reads program source from r, drops comment bytes, and resolves
// the matching bracket of every loop boundary in a single pass, using a
// stack of pending open brackets. No partial program is ever returned: an
// unbalanced source fails with a *BracketMismatchError before execution
// can begin.
func Compile(name string, r io.Reader) (*Program, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	src := NewSource(name, string(content))

	prog := &Program{
		Name: name,
	}
	var pending []int

	for off := range content {
		op, ok := Decode(content[off])
		if !ok {
			// comment
			continue
		}

		idx := len(prog.Code)
		prog.Code = append(prog.Code, op)
		prog.Offsets = append(prog.Offsets, off)
		prog.Jumps = append(prog.Jumps, -1)

		switch op {

		case OpLoopBegin:
			pending = append(pending, idx)

		case OpLoopEnd:
			if len(pending) == 0 {
				return nil, &BracketMismatchError{
					Source:  src,
					Bracket: ']',
					Offset:  off,
				}
			}
			open := pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			prog.Jumps[open] = idx
			prog.Jumps[idx] = open

		}
	}

	if len(pending) > 0 {
		// report the earliest unmatched open bracket
		return nil, &BracketMismatchError{
			Source:  src,
			Bracket: '[',
			Offset:  prog.Offsets[pending[0]],
		}
	}

	return prog, nil
}

func MustCompile(name string, source string) *Program {
	prog, err := Compile(name, strings.NewReader(source))
	if err != nil {
		panic(err)
	}
	return prog
}
