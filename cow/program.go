package cow

import (
	"fmt"
	"iter"
	"strings"
)

// Program is a tokenized COW program.
type Program struct {
	Opcodes []Opcode // Commands in source order.
	Lines   []int    // Source line of each command.
}

// Len returns the number of commands in the program.
func (prog *Program) Len() int {
	return len(prog.Opcodes)
}

// LineNo returns the source line of the command at ip, or 0 if unknown.
func (prog *Program) LineNo(ip int) int {
	if ip < 0 || ip >= len(prog.Lines) {
		return 0
	}

	return prog.Lines[ip]
}

// All iterates over the instruction pointers and opcodes of the program.
func (prog *Program) All() iter.Seq2[int, Opcode] {
	return func(yield func(ip int, op Opcode) bool) {
		for ip, op := range prog.Opcodes {
			if !yield(ip, op) {
				return
			}
		}
	}
}

// String returns a listing of the program, one command per line.
func (prog *Program) String() string {
	var sb strings.Builder

	for ip, op := range prog.All() {
		fmt.Fprintf(&sb, "%04d: %v ; line %d\n", ip, op, prog.LineNo(ip))
	}

	return sb.String()
}
