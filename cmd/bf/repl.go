package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/vars"
)

// errQuit unwinds the break REPL's q command through the running fragment.
var errQuit = errors.New("quit")

func runREPL(
	ctx context.Context,
	session *bfvm.Session,
	logger logs.Logger,
	newSpan logs.NewSpan,
	loader configs.Loader,
) error {

	prompt := vars.FirstNonZero(
		configs.First[string](loader, "prompt"),
		"bf> ",
	)
	historyFile := configs.First[string](loader, "history_file")
	if historyFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			historyFile = filepath.Join(home, ".bf_history")
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: historyFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		ctx, _ := newSpan(ctx, "")
		if err := session.Exec("repl", line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintln(os.Stderr, logs.WrapSpan(ctx, err))
			continue
		}
		logger.DebugContext(ctx, "fragment done")
	}
}

func breakREPL(
	ctx context.Context,
	session *bfvm.Session,
	vm *bfvm.VM,
	dump debugs.Dump,
	inspect debugs.Inspect,
) error {

	fmt.Fprintln(os.Stderr, "breakpoint: fragments run against the live tape")
	fmt.Fprintln(os.Stderr, "  c  continue")
	fmt.Fprintln(os.Stderr, "  q  quit the interpreter")
	fmt.Fprintln(os.Stderr, "  d  dump machine state")
	fmt.Fprintln(os.Stderr, "  i  inspect machine state in a starlark session")

	rl, err := readline.NewEx(&readline.Config{
		Prompt: "bf# ",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			return errQuit
		}
		switch strings.TrimSpace(line) {
		case "":
			continue
		case "c":
			return nil
		case "q":
			return errQuit
		case "d":
			dump(ctx, vm)
			continue
		case "i":
			inspect(ctx, vm)
			continue
		}
		if err := session.Exec("break", line); err != nil {
			if errors.Is(err, errQuit) {
				return errQuit
			}
			fmt.Fprintln(os.Stderr, err)
		}
	}
}
