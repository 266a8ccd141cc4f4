// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs tokenized COW programs to completion.
package emulator

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"

	"github.com/Higgs32584/cow/config"
	"github.com/Higgs32584/cow/cow"
	"github.com/Higgs32584/cow/internal"
	cowio "github.com/Higgs32584/cow/io"
	"github.com/Higgs32584/cow/translate"
)

var _emulator_defines = map[string]string{
	"TAPE_SIZE":        fmt.Sprintf("%v", config.TAPE_SIZE),
	"MAX_INSTRUCTIONS": fmt.Sprintf("%v", config.MAX_INSTRUCTIONS),
	"MAX_STEPS":        fmt.Sprintf("%v", config.MAX_STEPS),
}

// Emulator state. Engine + program + step accounting.
type Emulator struct {
	Verbose     bool         // If set, enables verbose logging.
	*cow.Engine              // Reference to the execution engine.
	Program     *cow.Program // Reference to the currently running program.

	Console cowio.Stream // Program output.

	MaxInstructions int     // Program capacity used by Load.
	MaxSteps        int     // Step ceiling.
	Preset          []int16 // Tape contents after Reset.

	Ip     int  // Next command to execute.
	Steps  int  // Commands executed since Reset.
	Halted bool // Set when the program stopped itself.
}

// NewEmulator creates a new emulator from a configuration.
func NewEmulator(cfg *config.Config) (emu *Emulator) {
	emu = &Emulator{
		Program:         &cow.Program{},
		MaxInstructions: cfg.MaxInstructions,
		MaxSteps:        cfg.MaxSteps,
		Preset:          cfg.Tape,
	}

	emu.Engine = cow.NewEngine(cfg.TapeSize, &emu.Console)

	return
}

// Defines returns an iterator over all of the defines
func Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		cow.Defines(),
	)
}

// Load tokenizes a program from source text.
func (emu *Emulator) Load(input io.Reader) (err error) {
	ps := &cow.Parser{
		Verbose:         emu.Verbose,
		MaxInstructions: emu.MaxInstructions,
	}

	prog, err := ps.Parse(input)
	if err != nil {
		return
	}

	emu.Program = prog

	return
}

// Reset the engine and rewind to the first command.
func (emu *Emulator) Reset() {
	emu.Engine.Verbose = emu.Verbose
	emu.Engine.Reset()
	emu.Engine.Tape.Load(emu.Preset)
	emu.Console.Rewind()

	emu.Ip = 0
	emu.Steps = 0
	emu.Halted = false
}

// LineNo returns the source line of the next command.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.Ip)
}

// Tick executes a single command of the program.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Program == nil {
		err = ErrNoProgram
		return
	}

	if emu.Ip >= emu.Program.Len() {
		done = true
		return
	}

	// Set engine verbosity
	emu.Engine.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	if emu.MaxSteps > 0 && emu.Steps >= emu.MaxSteps {
		err = ErrStepLimit
		return
	}

	next, err := emu.Engine.Step(emu.Program, emu.Ip)
	emu.Steps++
	if errors.Is(err, cow.ErrHalt) {
		err = nil
		emu.Halted = true
		done = true
		return
	}
	if err != nil {
		return
	}

	emu.Ip = next

	return
}

// Run ticks until the program ends or fails.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	if emu.Verbose {
		log.Printf("emulator: %d commands, %d steps", emu.Program.Len(), emu.Steps)
	}

	return
}

// Stats writes the program size and executed step count.
func (emu *Emulator) Stats(w io.Writer) {
	translate.To(w, "Number of commands in program: %d\n", emu.Program.Len())
	translate.To(w, "Number of executed commands: %d\n", emu.Steps)
}

// Dump writes the tape contents, as numbers and as characters.
func (emu *Emulator) Dump(w io.Writer) {
	cells := emu.Engine.Tape.Cells

	translate.To(w, "Memory looks like this:\n")
	for _, cell := range cells {
		fmt.Fprintf(w, "| %d ", cell)
	}
	fmt.Fprint(w, "|")

	fmt.Fprint(w, "\n\n")
	translate.To(w, "In ASCII:\n")
	for _, cell := range cells {
		switch cell {
		case 0:
			fmt.Fprint(w, "|   ")
		case 10:
			fmt.Fprint(w, "| LF ")
		case 32:
			fmt.Fprint(w, "| space ")
		default:
			fmt.Fprintf(w, "| %c ", rune(cell))
		}
	}
	fmt.Fprint(w, "|")
}
