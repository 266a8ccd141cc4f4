package cow

const (
	TAPE_SIZE = 25 // Default number of memory blocks.
)

// Tape is the memory of the engine: a fixed row of cells and a pointer
// to the current one.
type Tape struct {
	Cells   []int16
	Pointer int
}

// NewTape creates a zeroed tape with size cells.
func NewTape(size int) (t *Tape) {
	t = &Tape{
		Cells: make([]int16, size),
	}
	return
}

// Len is the number of cells on the tape.
func (t *Tape) Len() int {
	return len(t.Cells)
}

// Get returns the current cell.
func (t *Tape) Get() int16 {
	return t.Cells[t.Pointer]
}

// Set replaces the current cell.
func (t *Tape) Set(value int16) {
	t.Cells[t.Pointer] = value
}

// Cell returns a pointer to the current cell.
func (t *Tape) Cell() *int16 {
	return &t.Cells[t.Pointer]
}

// Left moves to the previous cell. The pointer is unchanged on error.
func (t *Tape) Left() (err error) {
	if t.Pointer == 0 {
		err = ErrBlock(t.Pointer - 1)
		return
	}

	t.Pointer--
	return
}

// Right moves to the next cell. The pointer is unchanged on error.
func (t *Tape) Right() (err error) {
	if t.Pointer >= len(t.Cells)-1 {
		err = ErrBlock(t.Pointer + 1)
		return
	}

	t.Pointer++
	return
}

// Reset zeros all cells and rewinds the pointer.
func (t *Tape) Reset() {
	clear(t.Cells)
	t.Pointer = 0
}

// Load copies values into the start of the tape.
// Values past the end of the tape are dropped.
func (t *Tape) Load(values []int16) {
	copy(t.Cells, values)
}
