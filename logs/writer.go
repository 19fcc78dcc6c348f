package logs

import (
	"io"
	"os"
	"strings"
	"testing"
)

type Writer io.Writer

func (Module) Writer(t *testing.T) Writer {
	if t != nil {
		return testWriter{t}
	}
	return os.Stderr
}

// testWriter routes log output through the test log, keeping test runs quiet
// unless they fail.
type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
