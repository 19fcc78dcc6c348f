package bfvm

// Snapshot is a read-only view of engine internals for diagnostics.
// Taking one never mutates the tape, the cursor, or the program counter.
type Snapshot struct {
	Program  string
	IP       int
	Cursor   int
	Cell     byte
	WindowLo int // position of Window[0]
	Window   []byte
	ExtentLo int
	ExtentHi int
}

func (v *VM) Snapshot(radius int) Snapshot {
	if radius < 0 {
		radius = 0
	}
	cursor := v.Tape.Cursor()
	lo := cursor - radius
	window := make([]byte, 0, 2*radius+1)
	for pos := lo; pos <= cursor+radius; pos++ {
		window = append(window, v.Tape.At(pos))
	}
	extentLo, extentHi := v.Tape.Extent()
	return Snapshot{
		Program:  v.Prog.Name,
		IP:       v.IP,
		Cursor:   cursor,
		Cell:     v.Tape.Cell(),
		WindowLo: lo,
		Window:   window,
		ExtentLo: extentLo,
		ExtentHi: extentHi,
	}
}
