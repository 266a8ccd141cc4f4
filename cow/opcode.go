package cow

import (
	"fmt"
	"iter"
)

// COMMAND_LENGTH is the number of letters in every command.
const COMMAND_LENGTH = 3

// Opcode is the instruction code of a COW command.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_LOOP_BACK  = Opcode(0)  // moo
	OP_MOVE_LEFT  = Opcode(1)  // mOo
	OP_MOVE_RIGHT = Opcode(2)  // moO
	OP_INDIRECT   = Opcode(3)  // mOO
	OP_IO_CHAR    = Opcode(4)  // Moo
	OP_DECREMENT  = Opcode(5)  // MOo
	OP_INCREMENT  = Opcode(6)  // MoO
	OP_LOOP_START = Opcode(7)  // MOO
	OP_ZERO       = Opcode(8)  // OOO
	OP_REGISTER   = Opcode(9)  // MMM
	OP_PRINT_INT  = Opcode(10) // OOM
	OP_READ_INT   = Opcode(11) // oom
)

// OPCODE_COUNT is the number of valid opcodes.
const OPCODE_COUNT = 12

// tokenMap maps command spellings to opcodes.
var tokenMap = map[string]Opcode{
	"moo": OP_LOOP_BACK,
	"mOo": OP_MOVE_LEFT,
	"moO": OP_MOVE_RIGHT,
	"mOO": OP_INDIRECT,
	"Moo": OP_IO_CHAR,
	"MOo": OP_DECREMENT,
	"MoO": OP_INCREMENT,
	"MOO": OP_LOOP_START,
	"OOO": OP_ZERO,
	"MMM": OP_REGISTER,
	"OOM": OP_PRINT_INT,
	"oom": OP_READ_INT,
}

// defineMap names the opcode codes for configuration files.
var defineMap = map[string]Opcode{
	"LOOP_BACK":  OP_LOOP_BACK,
	"MOVE_LEFT":  OP_MOVE_LEFT,
	"MOVE_RIGHT": OP_MOVE_RIGHT,
	"INDIRECT":   OP_INDIRECT,
	"IO_CHAR":    OP_IO_CHAR,
	"DECREMENT":  OP_DECREMENT,
	"INCREMENT":  OP_INCREMENT,
	"LOOP_START": OP_LOOP_START,
	"ZERO":       OP_ZERO,
	"REGISTER":   OP_REGISTER,
	"PRINT_INT":  OP_PRINT_INT,
	"READ_INT":   OP_READ_INT,
}

// Lookup returns the opcode spelled by token.
// The match is exact and case sensitive.
func Lookup(token string) (op Opcode, ok bool) {
	op, ok = tokenMap[token]
	return
}

// Valid returns true if op is one of the twelve commands.
func (op Opcode) Valid() bool {
	return op >= OP_LOOP_BACK && op <= OP_READ_INT
}

// Defines returns an iterator over the opcode names and their codes.
func Defines() iter.Seq2[string, string] {
	return func(yield func(name, value string) bool) {
		for name, op := range defineMap {
			if !yield(name, fmt.Sprintf("%d", int(op))) {
				return
			}
		}
	}
}
