package cow

// Register is the one slot transfer register.
type Register struct {
	Value int16
	Held  bool
}

// Swap copies the cell into the register when it is empty, otherwise
// copies the held value into the cell and empties the register.
func (r *Register) Swap(cell *int16) {
	if !r.Held {
		r.Value = *cell
		r.Held = true
		return
	}

	*cell = r.Value
	r.Held = false
}

// Reset empties the register.
func (r *Register) Reset() {
	r.Value = 0
	r.Held = false
}
