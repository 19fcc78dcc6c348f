package bflang

import (
	"strings"
	"unicode/utf8"
)

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// LineCol converts a byte offset to a 1-based line and rune column.
func (s *Source) LineCol(offset int) (line int, col int) {
	if offset > len(s.Content) {
		offset = len(s.Content)
	}
	line = 1
	lineStart := 0
	for i := range offset {
		if s.Content[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	col = utf8.RuneCountInString(s.Content[lineStart:offset]) + 1
	return
}
