package bfvm

import (
	"io"
	"testing"

	"github.com/reusee/bf/bflang"
)

const sierpinski = `
	++++++++[>+>++++<<-]>++>>+<[-[>>+<<-]+>>]>+[
		-<<<[
			->[+[-]+>++>>>-<<]<[<]>>++++++[<<+++++>>-]+<<++.[-]<<
		]>.>+[>>]>+
	]
`

func BenchmarkVM_TightLoop(b *testing.B) {
	// 255 iterations of wraparound countdown per run
	prog := bflang.MustCompile("countdown", "-[-]")
	b.ResetTimer()
	for range b.N {
		vm := NewVM(prog, NewTape(), nil, nil)
		for _, err := range vm.Run {
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkVM_Sierpinski(b *testing.B) {
	prog := bflang.MustCompile("sierpinski", sierpinski)
	b.ResetTimer()
	for range b.N {
		vm := NewVM(prog, NewTape(), nil, io.Discard)
		for _, err := range vm.Run {
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}
