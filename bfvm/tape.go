package bfvm

// Tape is the machine memory: byte cells addressed by a signed position,
// unbounded in both directions, all cells implicitly zero. Storage is
// materialized lazily, one cell per move, so memory stays proportional to
// the positions actually visited. Growth is bounded only by the host;
// running out of memory is a fatal resource condition, not a language
// error.
type Tape struct {
	pos   int
	right []byte // cells at positions >= 0
	left  []byte // cells at positions < 0; left[i] holds position -(i+1)
}

func NewTape() *Tape {
	return &Tape{
		right: make([]byte, 1),
	}
}

func (t *Tape) Cursor() int {
	return t.pos
}

func (t *Tape) cell() *byte {
	if t.pos >= 0 {
		return &t.right[t.pos]
	}
	return &t.left[-t.pos-1]
}

func (t *Tape) Cell() byte {
	return *t.cell()
}

func (t *Tape) SetCell(b byte) {
	*t.cell() = b
}

// Increment and Decrement wrap modulo 256; overflow is defined behavior.

func (t *Tape) Increment() {
	*t.cell()++
}

func (t *Tape) Decrement() {
	*t.cell()--
}

func (t *Tape) MoveRight() {
	t.pos++
	if t.pos >= 0 && t.pos >= len(t.right) {
		t.right = append(t.right, 0)
	}
}

func (t *Tape) MoveLeft() {
	t.pos--
	if t.pos < 0 && -t.pos > len(t.left) {
		t.left = append(t.left, 0)
	}
}

// At reads any position without moving the cursor; unallocated positions
// read as zero.
func (t *Tape) At(pos int) byte {
	if pos >= 0 {
		if pos < len(t.right) {
			return t.right[pos]
		}
		return 0
	}
	if i := -pos - 1; i < len(t.left) {
		return t.left[i]
	}
	return 0
}

// Extent returns the allocated position range, inclusive.
func (t *Tape) Extent() (lo int, hi int) {
	return -len(t.left), len(t.right) - 1
}
