// Package scratch provides the temporary-file capability used to materialize
// inline print content before it can be referenced on a command line.
package scratch
