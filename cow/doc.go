// Package cow implements the tokenizer and execution engine for the COW
// esoteric language.
//
// A COW program is made of twelve three letter commands spelled with the
// letters m, M, o and O. Every other character is ignored. The engine owns a
// fixed size tape of 16-bit signed cells, a tape pointer, a one slot transfer
// register, and executes one command per Step, including nesting aware loop
// matching and indirect execution of the value held in the current cell.
package cow
