// Package cpu implements the LS-8 machine that decodes clue payloads.
//
// The machine is an 8-bit processor with 256 cells of memory, eight
// general-purpose registers (r7 doubles as the stack pointer, r5 and r6
// as the interrupt mask and interrupt status registers), a three-bit
// comparison flags register, and a two-line interrupt controller driven
// by a wall-clock timer and a non-blocking keyboard source.
//
// One machine instance serves one decode request: construct with New,
// populate memory with Load or LoadBytes, then Run to halt or
// cancellation. Characters printed by the program accumulate in an
// output buffer that Run returns.
//
// The assembler provides a small assembly language for the LS-8
// instruction set, supporting labels, equates, character literals, and
// compile-time expression evaluation.
package cpu
