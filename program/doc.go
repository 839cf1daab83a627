// Package program parses source text into an executable instruction list.
//
// Only the eight characters '>', '<', '+', '-', '.', ',', '[' and ']' are
// instructions; every other character is a comment. Brackets are matched in
// a single pass at parse time, and the resulting jump table is consulted by
// the interpreter whenever a loop is entered or repeated.
package program
