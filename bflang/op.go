package bflang

type OpCode uint8

const (
	OpInc OpCode = iota
	OpDec
	OpRight
	OpLeft
	OpOutput
	OpInput
	OpLoopBegin
	OpLoopEnd
	OpDump
	OpBreak
)

// Decode maps a source byte to its instruction. Every byte without a
// mapping is a comment and is dropped at load time.
func Decode(c byte) (OpCode, bool) {
	switch c {
	case '+':
		return OpInc, true
	case '-':
		return OpDec, true
	case '>':
		return OpRight, true
	case '<':
		return OpLeft, true
	case '.':
		return OpOutput, true
	case ',':
		return OpInput, true
	case '[':
		return OpLoopBegin, true
	case ']':
		return OpLoopEnd, true
	case '#':
		return OpDump, true
	case '%':
		return OpBreak, true
	}
	return 0, false
}

func (o OpCode) Symbol() byte {
	switch o {
	case OpInc:
		return '+'
	case OpDec:
		return '-'
	case OpRight:
		return '>'
	case OpLeft:
		return '<'
	case OpOutput:
		return '.'
	case OpInput:
		return ','
	case OpLoopBegin:
		return '['
	case OpLoopEnd:
		return ']'
	case OpDump:
		return '#'
	case OpBreak:
		return '%'
	}
	return '?'
}

func (o OpCode) String() string {
	return string(o.Symbol())
}
