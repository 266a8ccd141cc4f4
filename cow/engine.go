// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cow

import (
	"log"

	"github.com/Higgs32584/cow/io"
)

//go:generate go tool mockgen -destination=mock_console_test.go -package=cow github.com/Higgs32584/cow/io Console

// Engine is the execution state of a COW program.
type Engine struct {
	Verbose bool // Set to enable verbose logging.

	Tape     *Tape      // Memory tape and pointer.
	Register Register   // Transfer register.
	Console  io.Console // Program output.
}

// NewEngine creates an engine with a tape of size cells.
func NewEngine(size int, console io.Console) (eng *Engine) {
	eng = &Engine{
		Tape:    NewTape(size),
		Console: console,
	}

	return
}

// Reset zeros the tape and empties the register.
func (eng *Engine) Reset() {
	if eng.Verbose {
		log.Printf("engine: reset")
	}

	eng.Tape.Reset()
	eng.Register.Reset()
}

// Step executes the command at ip and returns the index of the next
// command to execute. ErrHalt is returned when the program asked to stop.
func (eng *Engine) Step(prog *Program, ip int) (next int, err error) {
	if ip < 0 || ip >= prog.Len() {
		err = ErrIpRange
		return
	}

	op := prog.Opcodes[ip]

	defer func() {
		if err != nil {
			err = &ErrInstruction{Ip: ip, Opcode: op, Err: err}
		}
	}()

	if eng.Verbose {
		log.Printf("%04d: %v [%d]=%d", ip, op, eng.Tape.Pointer, eng.Tape.Get())
	}

	next, err = eng.execute(prog, ip, op)

	return
}

// execute runs op as if it were found at ip.
func (eng *Engine) execute(prog *Program, ip int, op Opcode) (next int, err error) {
	next = ip + 1

	tape := eng.Tape

	switch op {
	case OP_LOOP_BACK:
		next, err = eng.loopBack(prog, ip)
	case OP_MOVE_LEFT:
		err = tape.Left()
	case OP_MOVE_RIGHT:
		err = tape.Right()
	case OP_INDIRECT:
		target := Opcode(tape.Get())
		if target == OP_INDIRECT {
			err = ErrSelfReference
			return
		}
		if !target.Valid() {
			if eng.Verbose {
				log.Printf("%04d: %v quit program", ip, op)
			}
			err = ErrHalt
			return
		}
		// Only the effects of the target are kept; execution always
		// continues with the next command.
		_, err = eng.execute(prog, ip, target)
	case OP_IO_CHAR:
		value := tape.Get()
		switch {
		case value == 0:
			err = ErrNotImplemented
		case value > 0 && value < 256:
			err = eng.Console.WriteChar(byte(value))
		default:
			err = ErrUnprintable
		}
	case OP_DECREMENT:
		tape.Set(tape.Get() - 1)
	case OP_INCREMENT:
		tape.Set(tape.Get() + 1)
	case OP_LOOP_START:
		if tape.Get() == 0 {
			next, err = eng.loopStart(prog, ip)
		}
	case OP_ZERO:
		tape.Set(0)
	case OP_REGISTER:
		eng.Register.Swap(tape.Cell())
	case OP_PRINT_INT:
		err = eng.Console.WriteInt(tape.Get())
	case OP_READ_INT:
		err = ErrNotImplemented
	default:
		err = ErrOpcodeInvalid
	}

	return
}

// loopBack searches backwards for the matching OP_LOOP_START, skipping the
// command just before ip, and returns its index.
func (eng *Engine) loopBack(prog *Program, ip int) (next int, err error) {
	nested := 0

	for n := ip - 2; n >= 0; n-- {
		switch prog.Opcodes[n] {
		case OP_LOOP_BACK:
			nested++
		case OP_LOOP_START:
			if nested == 0 {
				next = n
				return
			}
			nested--
		}
	}

	err = ErrNoMatch(OP_LOOP_START)
	return
}

// loopStart searches forwards for the matching OP_LOOP_BACK, skipping the
// command just after ip, and returns the index after it.
func (eng *Engine) loopStart(prog *Program, ip int) (next int, err error) {
	nested := 0

	for n := ip + 2; n < prog.Len(); n++ {
		switch prog.Opcodes[n] {
		case OP_LOOP_BACK:
			if nested == 0 {
				next = n + 1
				return
			}
			nested--
		case OP_LOOP_START:
			nested++
		}
	}

	err = ErrNoMatch(OP_LOOP_BACK)
	return
}
