package cmds

import (
	"fmt"
	"os"
)

var defaultExecutor = NewExecutor()

func Define(name string, command *Command) {
	defaultExecutor.Define(name, command)
}

// Execute runs args against the default executor. On error it prints the
// error and the usage, then exits, so binaries can call it unconditionally.
func Execute(args []string) {
	if err := defaultExecutor.Execute(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		defaultExecutor.PrintUsage()
		os.Exit(1)
	}
}
