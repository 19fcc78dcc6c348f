package bfvm

import (
	"io"

	"github.com/reusee/bf/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

type MakeSession func(in io.Reader, out io.Writer) *Session

func (Module) MakeSession(
	logger logs.Logger,
) MakeSession {
	return func(in io.Reader, out io.Writer) *Session {
		logger.Debug("new session")
		return NewSession(in, out)
	}
}
