// Package io provides the output surfaces of the COW engine.
package io

// Console is where the engine writes program output.
type Console interface {
	// WriteChar writes a single character.
	WriteChar(c byte) error
	// WriteInt writes value as a decimal number followed by a line break.
	WriteInt(value int16) error
}
