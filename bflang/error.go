package bflang

import (
	"fmt"
	"strings"
)

type BracketMismatchError struct {
	Source  *Source
	Bracket byte // '[' or ']'
	Offset  int  // byte offset in the source
}

func (e *BracketMismatchError) Error() string {
	line, col := e.Source.LineCol(e.Offset)

	var sb strings.Builder
	fmt.Fprintf(&sb, "unmatched '%c' at %s:%d:%d\n", e.Bracket, e.Source.Name, line, col)

	// Line content
	if idx := line - 1; idx >= 0 && idx < len(e.Source.Lines) {
		text := e.Source.Lines[idx]
		sb.WriteString(text)
		sb.WriteString("\n")

		// Caret
		for i, r := range []rune(text) {
			if i >= col-1 {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("^")
	}

	return sb.String()
}
