package bfvm

import (
	"bufio"
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"os"
)

type tapeState struct {
	Pos   int
	Right []byte
	Left  []byte
}

// Save snapshots the retained tape and cursor so a later process can
// resume the session.
func (s *Session) Save(w io.Writer) error {
	state := tapeState{
		Pos:   s.Tape.pos,
		Right: s.Tape.right,
		Left:  s.Tape.left,
	}
	if err := gob.NewEncoder(w).Encode(state); err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}
	return nil
}

func (s *Session) Load(r io.Reader) error {
	var state tapeState
	if err := gob.NewDecoder(r).Decode(&state); err != nil {
		return fmt.Errorf("decode session state: %w", err)
	}
	if len(state.Right) == 0 {
		state.Right = make([]byte, 1)
	}
	if state.Pos >= len(state.Right) || -state.Pos > len(state.Left) {
		return fmt.Errorf("corrupt session state: cursor %d outside allocated tape", state.Pos)
	}
	s.Tape = &Tape{
		pos:   state.Pos,
		right: state.Right,
		left:  state.Left,
	}
	return nil
}

// SaveFile writes atomically so an interrupted save never corrupts a
// resumable state file.
func (s *Session) SaveFile(path string) error {
	var buf bytes.Buffer
	if err := s.Save(&buf); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (s *Session) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.Load(bufio.NewReader(f))
}
