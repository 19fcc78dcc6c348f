package bfvm

type Interrupt struct {
	Dump  bool
	Break bool
}

var (
	InterruptDump = &Interrupt{
		Dump: true,
	}
	InterruptBreak = &Interrupt{
		Break: true,
	}
)
