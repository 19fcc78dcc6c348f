package debugs

import (
	"context"

	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/logs"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Inspect opens an interactive Starlark session over a snapshot of the
// engine, for poking at tape contents from a breakpoint.
type Inspect func(ctx context.Context, vm *bfvm.VM)

func (Module) Inspect(
	logger logs.Logger,
	window DumpWindow,
) Inspect {
	return func(ctx context.Context, vm *bfvm.VM) {
		logger.InfoContext(ctx, "inspect: entering starlark session")
		defer func() {
			logger.InfoContext(ctx, "inspect: leaving starlark session")
		}()

		thread := &starlark.Thread{
			Name: "inspect",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, snapshotGlobals(vm, vm.Snapshot(int(window))))
	}
}

func snapshotGlobals(vm *bfvm.VM, snap bfvm.Snapshot) starlark.StringDict {
	window := make([]starlark.Value, len(snap.Window))
	for i, b := range snap.Window {
		window[i] = starlark.MakeInt(int(b))
	}
	return starlark.StringDict{
		"program":   starlark.String(snap.Program),
		"ip":        starlark.MakeInt(snap.IP),
		"cursor":    starlark.MakeInt(snap.Cursor),
		"cell":      starlark.MakeInt(int(snap.Cell)),
		"window":    starlark.NewList(window),
		"window_lo": starlark.MakeInt(snap.WindowLo),
		"extent": starlark.Tuple{
			starlark.MakeInt(snap.ExtentLo),
			starlark.MakeInt(snap.ExtentHi),
		},
		"cell_at": starlarkutil.MakeFunc("cell_at", func(pos int) int {
			return int(vm.Tape.At(pos))
		}),
	}
}
