package bfvm

import (
	"io"

	"github.com/reusee/bf/bflang"
)

// VM executes one compiled program against a tape. The tape may outlive
// the VM: a session hands the same tape to a fresh VM per fragment.
type VM struct {
	Prog *bflang.Program
	IP   int
	Tape *Tape
	In   io.ByteReader
	Out  io.Writer
}

func NewVM(
	prog *bflang.Program,
	tape *Tape,
	in io.ByteReader,
	out io.Writer,
) *VM {
	return &VM{
		Prog: prog,
		Tape: tape,
		In:   in,
		Out:  out,
	}
}
