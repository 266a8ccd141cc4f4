package config

import (
	"github.com/Higgs32584/cow/translate"
)

var f = translate.From

// ErrConfig locates an error in a configuration file.
type ErrConfig struct {
	File string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.File, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

// ErrValue is a tunable that is out of range.
type ErrValue struct {
	Name  string
	Value int
}

func (err ErrValue) Error() string {
	return f("%v must be positive, not %d", err.Name, err.Value)
}

// ErrType is a global of the wrong type.
type ErrType struct {
	Name string
	Err  error
}

func (err ErrType) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err ErrType) Unwrap() error {
	return err.Err
}

type ErrNotList string

func (err ErrNotList) Error() string {
	return f("got %v, want list", string(err))
}

type ErrTapeLength int

func (err ErrTapeLength) Error() string {
	return f("TAPE has %d cells, more than TAPE_SIZE", int(err))
}

type ErrCellRange struct {
	Index int
	Value int
}

func (err ErrCellRange) Error() string {
	return f("TAPE[%d] = %d does not fit in a cell", err.Index, err.Value)
}
