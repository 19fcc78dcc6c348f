package bfvm

import (
	"bufio"
	"io"
	"strings"

	"github.com/reusee/bf/bflang"
)

// Session owns a tape and its cursor across any number of fragment
// executions. Each fragment gets a fresh VM and program counter; only the
// tape state carries over, which is what makes REPL-style execution
// different from one-shot runs. Fragments never run concurrently: one runs
// to completion before the next is accepted.
type Session struct {
	Tape *Tape
	In   io.ByteReader
	Out  io.Writer

	// Dump handles '#'. It must write to a diagnostic channel, never to
	// the program output stream.
	Dump func(*VM)
	// OnBreak handles '%'. A nil hook makes '%' a no-op, so programs
	// containing it still run to completion outside interactive contexts.
	OnBreak func(*VM) error
}

func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{
		Tape: NewTape(),
		In:   byteReader(in),
		Out:  out,
	}
}

func byteReader(r io.Reader) io.ByteReader {
	if r == nil {
		return nil
	}
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// Reset discards the retained tape, starting the next fragment from a
// blank machine.
func (s *Session) Reset() {
	s.Tape = NewTape()
}

func (s *Session) RunFragment(prog *bflang.Program) error {
	vm := NewVM(prog, s.Tape, s.In, s.Out)
	for intr, err := range vm.Run {
		if err != nil {
			return err
		}
		if intr == nil {
			continue
		}
		switch {
		case intr.Dump:
			if s.Dump != nil {
				s.Dump(vm)
			}
		case intr.Break:
			if s.OnBreak != nil {
				if err := s.OnBreak(vm); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *Session) Exec(name string, source string) error {
	prog, err := bflang.Compile(name, strings.NewReader(source))
	if err != nil {
		return err
	}
	return s.RunFragment(prog)
}
