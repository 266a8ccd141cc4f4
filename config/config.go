// Package config holds the tunables of the COW interpreter and loads them
// from Starlark configuration files.
package config

import (
	"io"
	"iter"
	"log"
	"math"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

const (
	TAPE_SIZE        = 25     // Default number of memory blocks.
	MAX_INSTRUCTIONS = 2000   // Default program capacity.
	MAX_STEPS        = 500000 // Default step ceiling.
)

// Config is the set of interpreter tunables.
type Config struct {
	TapeSize        int     // Number of memory blocks.
	MaxInstructions int     // Maximum number of commands in a program.
	MaxSteps        int     // Maximum number of executed commands.
	Tape            []int16 // Initial contents of the first memory blocks.
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		TapeSize:        TAPE_SIZE,
		MaxInstructions: MAX_INSTRUCTIONS,
		MaxSteps:        MAX_STEPS,
	}
}

// Validate checks that the configuration can be used to run a program.
func (cfg *Config) Validate() (err error) {
	switch {
	case cfg.TapeSize <= 0:
		err = ErrValue{Name: "TAPE_SIZE", Value: cfg.TapeSize}
	case cfg.MaxInstructions <= 0:
		err = ErrValue{Name: "MAX_INSTRUCTIONS", Value: cfg.MaxInstructions}
	case cfg.MaxSteps <= 0:
		err = ErrValue{Name: "MAX_STEPS", Value: cfg.MaxSteps}
	case len(cfg.Tape) > cfg.TapeSize:
		err = ErrTapeLength(len(cfg.Tape))
	}

	return
}

// Load executes a Starlark file and returns the configuration it describes.
//
// Every define is predeclared as an integer. Top level assignments to
// TAPE_SIZE, MAX_INSTRUCTIONS and MAX_STEPS replace the defaults, and TAPE
// may hold a list of initial cell values.
func Load(name string, src io.Reader, defines iter.Seq2[string, string]) (cfg *Config, err error) {
	defer func() {
		if err != nil {
			cfg = nil
			err = &ErrConfig{File: name, Err: err}
		}
	}()

	data, err := io.ReadAll(src)
	if err != nil {
		return
	}

	pred := starlark.StringDict{}
	for key, str := range defines {
		value, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Only integer defines are visible.
			continue
		}
		pred[key] = starlark.MakeInt64(value)
	}

	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", name, msg)
		},
	}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, name, data, pred)
	if err != nil {
		return
	}

	cfg = Default()

	ints := map[string]*int{
		"TAPE_SIZE":        &cfg.TapeSize,
		"MAX_INSTRUCTIONS": &cfg.MaxInstructions,
		"MAX_STEPS":        &cfg.MaxSteps,
	}
	for key, field := range ints {
		value, ok := globals[key]
		if !ok {
			continue
		}
		*field, err = starlark.AsInt32(value)
		if err != nil {
			err = ErrType{Name: key, Err: err}
			return
		}
	}

	if value, ok := globals["TAPE"]; ok {
		cfg.Tape, err = cells(value)
		if err != nil {
			err = ErrType{Name: "TAPE", Err: err}
			return
		}
	}

	err = cfg.Validate()

	return
}

// cells converts a Starlark list or tuple of integers into cell values.
func cells(value starlark.Value) (tape []int16, err error) {
	list, ok := value.(starlark.Indexable)
	if !ok {
		err = ErrNotList(value.Type())
		return
	}

	tape = make([]int16, list.Len())
	for n := range list.Len() {
		var cell int
		cell, err = starlark.AsInt32(list.Index(n))
		if err != nil {
			return
		}
		if cell < math.MinInt16 || cell > math.MaxInt16 {
			err = ErrCellRange{Index: n, Value: cell}
			return
		}
		tape[n] = int16(cell)
	}

	return
}
