package main

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Higgs32584/cow/cow"
	"github.com/Higgs32584/cow/emulator"
)

var _ = Describe("Driver", func() {
	var (
		dir string
		out *bytes.Buffer
	)

	write := func(name, text string) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, []byte(text), 0o644)).To(Succeed())
		return path
	}

	runArgs := func(args ...string) error {
		opts, err := parseArgs(args)
		if err != nil {
			return err
		}
		return run(opts, out)
	}

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "cow")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)

		out = &bytes.Buffer{}
	})

	Describe("parseArgs", func() {
		It("should require a source file", func() {
			_, err := parseArgs([]string{})
			Expect(err).To(HaveOccurred())
			Expect(label(err)).To(Equal("main"))
		})

		It("should read flags", func() {
			opts, err := parseArgs([]string{"-v", "--tape-size", "5", "--max-steps=9", "prog.cow"})
			Expect(err).NotTo(HaveOccurred())
			Expect(opts.source).To(Equal("prog.cow"))
			Expect(opts.verbose).To(BeTrue())
			Expect(opts.tapeSize).To(Equal(5))
			Expect(opts.maxSteps).To(Equal(9))
			Expect(opts.list).To(BeFalse())
		})
	})

	Describe("run", func() {
		It("should run a program and dump memory", func() {
			source := write("count.cow", "MoO MoO MoO\nMOO OOM MOo moo\n")

			Expect(runArgs(source)).To(Succeed())

			text := out.String()
			Expect(text).To(HavePrefix("\nStarting parser.\nReached end of source code.\n"))
			Expect(text).To(ContainSubstring("Number of memory blocks: 25\n"))
			Expect(text).To(ContainSubstring("Index of current block: 0\n"))
			Expect(text).To(ContainSubstring("Output: 3\n2\n1\n\nProgram end.\n\n"))
			Expect(text).To(ContainSubstring("Number of commands in program: 7\n"))
			Expect(text).To(ContainSubstring("Number of executed commands: 16\n"))
			Expect(text).To(ContainSubstring("Memory looks like this:\n| 0 | 0 "))
			Expect(text).To(ContainSubstring("In ASCII:\n"))
		})

		It("should report an empty program", func() {
			source := write("empty.cow", "nothing to see\n")

			Expect(runArgs(source)).To(Succeed())
			Expect(out.String()).To(ContainSubstring("No valid commands found.\n"))
			Expect(out.String()).NotTo(ContainSubstring("Executing program."))
		})

		It("should report a deliberate halt", func() {
			config := write("halt.star", "TAPE = [100]\n")
			source := write("halt.cow", "mOO OOM")

			Expect(runArgs("--config", config, source)).To(Succeed())
			Expect(out.String()).To(ContainSubstring("[mOO]: quit program\nProgram end."))
			Expect(out.String()).To(ContainSubstring("Number of executed commands: 1\n"))
		})

		It("should apply the configuration file and flag overrides", func() {
			config := write("small.star", "TAPE_SIZE = 3\nTAPE = [INCREMENT]\n")
			source := write("indirect.cow", "mOO OOM")

			Expect(runArgs("-c", config, "--tape-size", "4", source)).To(Succeed())
			Expect(out.String()).To(ContainSubstring("Number of memory blocks: 4\n"))
			Expect(out.String()).To(ContainSubstring("Output: 7\n"))
			Expect(out.String()).To(ContainSubstring("| 7 | 0 | 0 | 0 |"))
		})

		It("should list the program", func() {
			source := write("list.cow", "MoO\nOOM")

			Expect(runArgs("--list", source)).To(Succeed())
			Expect(out.String()).To(HaveSuffix("0000: MoO ; line 1\n0001: OOM ; line 2\n"))
		})

		It("should label engine errors with the command", func() {
			source := write("bad.cow", "OOO MOO moo")

			err := runArgs(source)
			Expect(err).To(MatchError(cow.ErrUnmatchedLoop))
			Expect(label(err)).To(Equal("MOO"))

			report(out, err)
			Expect(out.String()).To(HaveSuffix("\nError [MOO]: line 1 ip 1: could not find a matching 'moo' command\n"))
		})

		It("should label tape errors with the command", func() {
			source := write("left.cow", "mOo")

			err := runArgs(source)
			Expect(err).To(MatchError(cow.ErrTapeBounds))
			Expect(label(err)).To(Equal("mOo"))
		})

		It("should label parser overflow", func() {
			source := write("big.cow", "MoO MoO MoO")

			err := runArgs("--max-instructions", "2", source)
			Expect(err).To(MatchError(cow.ErrParseOverflow))
			Expect(label(err)).To(Equal("parser"))
		})

		It("should label runaway programs", func() {
			source := write("loop.cow", "MoO MOO MoO moo")

			err := runArgs("--max-steps", "50", source)
			Expect(err).To(MatchError(emulator.ErrStepLimit))
			Expect(label(err)).To(Equal("runner"))
		})

		It("should label a missing source file", func() {
			err := runArgs(filepath.Join(dir, "missing.cow"))
			Expect(err).To(HaveOccurred())
			Expect(label(err)).To(Equal("parserfile"))
		})

		It("should label a broken configuration", func() {
			config := write("broken.star", "TAPE_SIZE = 0\n")
			source := write("ok.cow", "MoO")

			err := runArgs("--config", config, source)
			Expect(err).To(HaveOccurred())
			Expect(label(err)).To(Equal("config"))
		})
	})
})
