package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reusee/bf/bflang"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

var (
	programFile = cmds.Var[string]("-file")
	evalSource  = cmds.Var[string]("-e")
	forceREPL   = cmds.Switch("-repl")
	stateFile   = cmds.Var[string]("-state")
	configFiles = cmds.Collect[string]("-config")
)

type mainModule struct {
	dscope.Module
}

func (mainModule) ConfigPaths() configs.Paths {
	if len(*configFiles) > 0 {
		return configs.Paths(*configFiles)
	}
	return configs.DefaultPaths()
}

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(bfvm.Module),
		new(configs.Module),
		new(debugs.Module),
		new(logs.Module),
		new(mainModule),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		loader configs.Loader,
		makeSession bfvm.MakeSession,
		dump debugs.Dump,
		inspect debugs.Inspect,
	) {
		ctx := context.Background()
		interactive := term.IsTerminal(int(os.Stdin.Fd()))

		session := makeSession(os.Stdin, os.Stdout)
		session.Dump = func(vm *bfvm.VM) {
			dump(ctx, vm)
		}
		session.OnBreak = func(vm *bfvm.VM) error {
			if !interactive {
				return nil
			}
			return breakREPL(ctx, session, vm, dump, inspect)
		}

		if *stateFile != "" {
			if _, err := os.Stat(*stateFile); err == nil {
				if err := session.LoadFile(*stateFile); err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(1)
				}
				logger.InfoContext(ctx, "session state loaded", "path", *stateFile)
			}
		}

		var runErr error
		switch {

		case *programFile != "":
			runErr = runFile(session, *programFile)

		case *evalSource != "":
			runErr = runProgram(session, "-e", strings.NewReader(*evalSource))

		case *forceREPL || interactive:
			runErr = runREPL(ctx, session, logger, newSpan, loader)

		default:
			// the program itself arrives on stdin, so ',' has nothing
			// left to read from
			session.In = nil
			runErr = runProgram(session, "stdin", os.Stdin)
		}

		if *stateFile != "" {
			if err := session.SaveFile(*stateFile); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			logger.InfoContext(ctx, "session state saved", "path", *stateFile)
		}

		if runErr != nil && !errors.Is(runErr, errQuit) {
			fmt.Fprintln(os.Stderr, runErr)
			os.Exit(1)
		}
	})
}

func runFile(session *bfvm.Session, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return runProgram(session, path, f)
}

func runProgram(session *bfvm.Session, name string, r io.Reader) error {
	prog, err := bflang.Compile(name, r)
	if err != nil {
		return err
	}
	return session.RunFragment(prog)
}
