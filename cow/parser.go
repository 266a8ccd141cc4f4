// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cow

import (
	"bufio"
	"errors"
	"io"
	"log"
)

// Parser extracts COW commands from source text.
type Parser struct {
	Verbose         bool // If set, logs every command found.
	MaxInstructions int  // Program capacity. Zero or less is unbounded.
}

// isCommandLetter returns true for the letters commands are made of.
func isCommandLetter(c byte) bool {
	switch c {
	case 'm', 'M', 'o', 'O':
		return true
	}
	return false
}

// Parse reads source text and returns the program it spells.
//
// A window holds the last letters seen. Any other character empties it.
// When the window fills and does not spell a command, only its oldest
// letter is dropped, so "mmoo" still yields "moo".
func (ps *Parser) Parse(input io.Reader) (prog *Program, err error) {
	reader := bufio.NewReader(input)

	lineno := 1

	defer func() {
		if err != nil {
			prog = nil
			err = &ErrParse{LineNo: lineno, Err: err}
		}
	}()

	prog = &Program{}

	var window [COMMAND_LENGTH]byte
	var count int

	for {
		var c byte
		c, err = reader.ReadByte()
		if errors.Is(err, io.EOF) {
			err = nil
			break
		}
		if err != nil {
			return
		}

		if !isCommandLetter(c) {
			if c == '\n' {
				lineno++
			}
			count = 0
			continue
		}

		copy(window[:], window[1:])
		window[COMMAND_LENGTH-1] = c
		count++

		if count < COMMAND_LENGTH {
			continue
		}

		op, ok := Lookup(string(window[:]))
		if !ok {
			// Retry with the next letter appended to the last two.
			count--
			continue
		}

		count = 0

		if ps.MaxInstructions > 0 && len(prog.Opcodes) >= ps.MaxInstructions {
			err = ErrParseOverflow
			return
		}

		if ps.Verbose {
			log.Printf("parser: line %d: %v (%d)", lineno, op, int(op))
		}

		prog.Opcodes = append(prog.Opcodes, op)
		prog.Lines = append(prog.Lines, lineno)
	}

	return
}
