package bflang

import "strings"

// Program is a compiled instruction sequence. Jumps holds, for every loop
// boundary, the index of its matching bracket; a program with a valid jump
// table is always bracket-balanced.
type Program struct {
	Name    string
	Code    []OpCode
	Jumps   []int // matching bracket index, -1 for non-brackets
	Offsets []int // source byte offset of each instruction
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, op := range p.Code {
		sb.WriteByte(op.Symbol())
	}
	return sb.String()
}
