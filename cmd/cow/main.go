// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tebeka/atexit"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/Higgs32584/cow/config"
	"github.com/Higgs32584/cow/cow"
	"github.com/Higgs32584/cow/emulator"
	"github.com/Higgs32584/cow/translate"
)

var f = translate.From

type options struct {
	source          string
	config          string
	tapeSize        int
	maxInstructions int
	maxSteps        int
	verbose         bool
	list            bool
}

// errPhase tags an error with the phase of the run that raised it.
type errPhase struct {
	phase string
	err   error
}

func (err *errPhase) Error() string {
	return err.err.Error()
}

func (err *errPhase) Unwrap() error {
	return err.err
}

func parseArgs(args []string) (opts *options, err error) {
	opts = &options{}

	app := kingpin.New("cow", f("Interpreter for the COW programming language."))
	app.Arg("source", f("COW source file to run.")).Required().StringVar(&opts.source)
	app.Flag("config", f("Starlark configuration file.")).Short('c').StringVar(&opts.config)
	app.Flag("tape-size", f("Number of memory blocks.")).IntVar(&opts.tapeSize)
	app.Flag("max-instructions", f("Maximum number of commands in the program.")).IntVar(&opts.maxInstructions)
	app.Flag("max-steps", f("Maximum number of commands to execute.")).IntVar(&opts.maxSteps)
	app.Flag("verbose", f("Trace every executed command.")).Short('v').BoolVar(&opts.verbose)
	app.Flag("list", f("List the tokenized program and exit.")).Short('l').BoolVar(&opts.list)

	_, err = app.Parse(args)
	if err != nil {
		opts = nil
		err = &errPhase{phase: "main", err: err}
	}

	return
}

// loadConfig builds the configuration from the defaults, the optional
// configuration file and the command line overrides.
func loadConfig(opts *options) (cfg *config.Config, err error) {
	cfg = config.Default()

	if len(opts.config) != 0 {
		var inf *os.File
		inf, err = os.Open(opts.config)
		if err != nil {
			return
		}
		defer inf.Close()

		cfg, err = config.Load(opts.config, inf, emulator.Defines())
		if err != nil {
			return
		}
	}

	if opts.tapeSize != 0 {
		cfg.TapeSize = opts.tapeSize
	}
	if opts.maxInstructions != 0 {
		cfg.MaxInstructions = opts.maxInstructions
	}
	if opts.maxSteps != 0 {
		cfg.MaxSteps = opts.maxSteps
	}

	err = cfg.Validate()

	return
}

func run(opts *options, stdout io.Writer) (err error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		err = &errPhase{phase: "config", err: err}
		return
	}

	emu := emulator.NewEmulator(cfg)
	emu.Verbose = opts.verbose
	emu.Console.Output = stdout

	inf, err := os.Open(opts.source)
	if err != nil {
		err = &errPhase{phase: "parserfile", err: err}
		return
	}
	defer inf.Close()

	translate.To(stdout, "\nStarting parser.\n")
	err = emu.Load(inf)
	if err != nil {
		return
	}
	translate.To(stdout, "Reached end of source code.\n")

	if opts.list {
		fmt.Fprint(stdout, emu.Program.String())
		return
	}

	emu.Reset()

	if emu.Program.Len() > 0 {
		translate.To(stdout, "\nExecuting program.\n")
		translate.To(stdout, "Number of memory blocks: %d\n", emu.Engine.Tape.Len())
		translate.To(stdout, "Index of current block: %d\n", emu.Engine.Tape.Pointer)
		translate.To(stdout, "Output: ")

		err = emu.Run()
		if err != nil {
			return
		}

		if emu.Halted {
			translate.To(stdout, "\n[%v]: %v", cow.OP_INDIRECT, cow.ErrHalt)
		}

		translate.To(stdout, "\nProgram end.\n\n")
		emu.Stats(stdout)
	} else {
		translate.To(stdout, "No valid commands found.\n")
	}

	fmt.Fprintln(stdout)
	emu.Dump(stdout)
	fmt.Fprintln(stdout)

	return
}

// label names the command or phase that raised err.
func label(err error) string {
	var instr *cow.ErrInstruction
	var phase *errPhase
	var parse *cow.ErrParse

	switch {
	case errors.As(err, &instr):
		return instr.Opcode.String()
	case errors.As(err, &phase):
		return phase.phase
	case errors.As(err, &parse):
		return "parser"
	case errors.Is(err, emulator.ErrStepLimit):
		return "runner"
	}

	return "main"
}

// report writes a fatal error the way the run output expects it.
func report(w io.Writer, err error) {
	translate.To(w, "\nError [%v]: %v\n", label(err), err)
}

func main() {
	out := bufio.NewWriter(os.Stdout)
	atexit.Register(func() { out.Flush() })

	opts, err := parseArgs(os.Args[1:])
	if err == nil {
		err = run(opts, out)
	}
	if err != nil {
		report(out, err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
