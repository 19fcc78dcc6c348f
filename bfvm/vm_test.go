package bfvm

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/bf/bflang"
)

const helloWorld = `
	++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]
	>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.
`

func runProgram(t *testing.T, source string, input string) string {
	t.Helper()
	prog := bflang.MustCompile("test", source)
	var out bytes.Buffer
	vm := NewVM(prog, NewTape(), strings.NewReader(input), &out)
	for _, err := range vm.Run {
		if err != nil {
			t.Fatal(err)
		}
	}
	return out.String()
}

func TestVMHelloWorld(t *testing.T) {
	if out := runProgram(t, helloWorld, ""); out != "Hello World!\n" {
		t.Fatalf("got %q", out)
	}
}

func TestVMCat(t *testing.T) {
	// emits the input truncated at, and excluding, the first zero byte
	for _, c := range []struct {
		input string
		want  string
	}{
		{"", ""},
		{"abc", "abc"},
		{"ab\x00cd", "ab"},
		{"\x00abc", ""},
	} {
		if out := runProgram(t, ",[.[-],]", c.input); out != c.want {
			t.Fatalf("input %q: got %q", c.input, out)
		}
	}
}

func TestVMInputExhausted(t *testing.T) {
	// ',' on an exhausted source leaves the cell unchanged and execution
	// continues with the next instruction
	if out := runProgram(t, "+++++,.", ""); out != "\x05" {
		t.Fatalf("got %q", out)
	}
}

func TestVMNilInput(t *testing.T) {
	prog := bflang.MustCompile("test", "+++,.")
	var out bytes.Buffer
	vm := NewVM(prog, NewTape(), nil, &out)
	for _, err := range vm.Run {
		if err != nil {
			t.Fatal(err)
		}
	}
	if out.String() != "\x03" {
		t.Fatalf("got %q", out.String())
	}
}

func TestVMLoops(t *testing.T) {
	// zero cell skips the body entirely
	if out := runProgram(t, "[.]", ""); out != "" {
		t.Fatalf("got %q", out)
	}

	// the body repeats until the cell drains
	if out := runProgram(t, "+++[.-]", ""); out != "\x03\x02\x01" {
		t.Fatalf("got %q", out)
	}

	// nested loops: 3*4 via the usual multiply idiom
	if out := runProgram(t, "+++[>++++[>+<-]<-]>>.", ""); out != "\x0c" {
		t.Fatalf("got %q", out)
	}
}

func TestVMInterrupts(t *testing.T) {
	prog := bflang.MustCompile("test", "+#+%+.")
	var out bytes.Buffer
	vm := NewVM(prog, NewTape(), nil, &out)

	var dumps, breaks int
	for intr, err := range vm.Run {
		if err != nil {
			t.Fatal(err)
		}
		switch {
		case intr.Dump:
			dumps++
			// the program counter already advanced past '#'
			if vm.IP != 2 {
				t.Fatalf("got %v", vm.IP)
			}
		case intr.Break:
			breaks++
			if vm.IP != 4 {
				t.Fatalf("got %v", vm.IP)
			}
		}
	}

	if dumps != 1 || breaks != 1 {
		t.Fatalf("got %v %v", dumps, breaks)
	}
	// both instructions are side-effect only
	if out.String() != "\x03" {
		t.Fatalf("got %q", out.String())
	}
}

func TestVMStopOnYieldFalse(t *testing.T) {
	prog := bflang.MustCompile("test", "#+++.")
	var out bytes.Buffer
	vm := NewVM(prog, NewTape(), nil, &out)
	vm.Run(func(intr *Interrupt, err error) bool {
		return false
	})
	if out.Len() != 0 {
		t.Fatalf("got %q", out.String())
	}
}

type failReader struct{}

func (failReader) ReadByte() (byte, error) {
	return 0, errors.New("disk on fire")
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("pipe closed")
}

func TestVMIOErrors(t *testing.T) {
	prog := bflang.MustCompile("test", ",")
	vm := NewVM(prog, NewTape(), failReader{}, nil)
	var got error
	for _, err := range vm.Run {
		if err != nil {
			got = err
			break
		}
	}
	if got == nil || !strings.Contains(got.Error(), "read input") {
		t.Fatalf("got %v", got)
	}

	prog = bflang.MustCompile("test", "+.")
	vm = NewVM(prog, NewTape(), nil, failWriter{})
	got = nil
	for _, err := range vm.Run {
		if err != nil {
			got = err
			break
		}
	}
	if got == nil || !strings.Contains(got.Error(), "write output") {
		t.Fatalf("got %v", got)
	}
}
