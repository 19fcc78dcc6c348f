package debugs

import (
	"context"

	"github.com/goforj/godump"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
)

// DumpWindow is the tape radius around the cursor shown in '#' snapshots.
type DumpWindow int

func (Module) DumpWindow(
	loader configs.Loader,
) DumpWindow {
	if w := configs.First[int](loader, "dump_window"); w > 0 {
		return DumpWindow(w)
	}
	return 8
}

// Dump renders a snapshot of the engine internals to the diagnostic
// channel. It never writes to the program output stream and never mutates
// the running VM.
type Dump func(ctx context.Context, vm *bfvm.VM)

func (Module) Dump(
	logger logs.Logger,
	writer logs.Writer,
	window DumpWindow,
) Dump {
	return func(ctx context.Context, vm *bfvm.VM) {
		snap := vm.Snapshot(int(window))
		logger.DebugContext(ctx, "dump",
			"program", snap.Program,
			"ip", snap.IP,
			"cursor", snap.Cursor,
			"cell", snap.Cell,
		)
		godump.Fdump(writer, snap)
	}
}
