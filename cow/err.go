package cow

import (
	"errors"

	"github.com/Higgs32584/cow/translate"
)

var f = translate.From

var (
	// Parser errors
	ErrParseOverflow = errors.New(f("too many instructions, not enough space in opcodes array"))

	// Engine errors
	ErrUnmatchedLoop  = errors.New(f("unmatched loop"))
	ErrTapeBounds     = errors.New(f("tape bounds exceeded"))
	ErrSelfReference  = errors.New(f("cannot call itself, it would cause an infinite loop"))
	ErrUnprintable    = errors.New(f("this character cannot be printed"))
	ErrNotImplemented = errors.New(f("not implemented yet"))
	ErrOpcodeInvalid  = errors.New(f("invalid command code"))
	ErrIpRange        = errors.New(f("instruction pointer outside of program"))

	// ErrHalt ends the program successfully.
	ErrHalt = errors.New(f("quit program"))
)

// ErrNoMatch is a loop search that ran off the end of the program
// looking for the given opcode.
type ErrNoMatch Opcode

func (err ErrNoMatch) Error() string {
	return f("could not find a matching '%v' command", Opcode(err).String())
}

func (err ErrNoMatch) Is(target error) bool {
	return target == ErrUnmatchedLoop
}

// ErrBlock is a tape pointer move to a block outside of the tape.
type ErrBlock int

func (err ErrBlock) Error() string {
	if err < 0 {
		return f("trying to access a memory block before the first one")
	}
	return f("not enough memory for block %d", int(err))
}

func (err ErrBlock) Is(target error) bool {
	return target == ErrTapeBounds
}

// ErrInstruction locates an engine error at the instruction that raised it.
type ErrInstruction struct {
	Ip     int
	Opcode Opcode
	Err    error
}

func (err *ErrInstruction) Error() string {
	return f("ip %d: %v", err.Ip, err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}

// ErrParse locates a tokenizer error in the source.
type ErrParse struct {
	LineNo int
	Err    error
}

func (err *ErrParse) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrParse) Unwrap() error {
	return err.Err
}
