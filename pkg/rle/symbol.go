// Package rle decodes run-length-encoded cell patterns into coordinate
// lists. The accepted grammar is the bare body of the common .rle pattern
// format: runs of 'b' (dead) and 'o' (alive) separated by '$' row breaks,
// with an optional decimal count before each tag. Headers, comment lines
// and the '!' terminator are not part of the grammar.
package rle

import (
	"fmt"
	"math"
)

// Kind identifies the run type a symbol encodes.
type Kind uint8

const (
	// DeadRun advances the cursor across dead cells.
	DeadRun Kind = iota
	// AliveRun emits consecutive live cells.
	AliveRun
	// EndRow moves the cursor to the start of a lower row.
	EndRow
)

// Symbol is one decoded pattern atom: a run tag with its count.
type Symbol struct {
	Kind  Kind
	Count int
}

// ParseError reports the byte offset at which an input stopped matching the
// pattern grammar.
type ParseError struct {
	Pos    int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed pattern at offset %d: %s", e.Pos, e.Reason)
}

// Parse decodes an input string into its symbol sequence. A missing count
// defaults to 1. Every byte of the input must belong to a run; any leftover
// character fails the whole parse with a *ParseError.
func Parse(input string) ([]Symbol, error) {
	if input == "" {
		return nil, &ParseError{Pos: 0, Reason: "empty pattern"}
	}
	var syms []Symbol
	pos := 0
	for pos < len(input) {
		sym, next, err := parseSymbol(input, pos)
		if err != nil {
			return nil, err
		}
		syms = append(syms, sym)
		pos = next
	}
	return syms, nil
}

// parseSymbol decodes the single symbol starting at pos and returns the
// offset of the one after it.
func parseSymbol(input string, pos int) (Symbol, int, error) {
	start := pos
	count := 0
	for pos < len(input) && input[pos] >= '0' && input[pos] <= '9' {
		d := int(input[pos] - '0')
		if count > (math.MaxInt32-d)/10 {
			return Symbol{}, 0, &ParseError{Pos: start, Reason: "run count overflows"}
		}
		count = count*10 + d
		pos++
	}
	if pos == start {
		count = 1
	}
	if pos == len(input) {
		return Symbol{}, 0, &ParseError{Pos: pos, Reason: "input ends before a run tag"}
	}
	var kind Kind
	switch input[pos] {
	case 'b':
		kind = DeadRun
	case 'o':
		kind = AliveRun
	case '$':
		kind = EndRow
	default:
		return Symbol{}, 0, &ParseError{Pos: pos, Reason: fmt.Sprintf("unexpected character %q", input[pos])}
	}
	return Symbol{Kind: kind, Count: count}, pos + 1, nil
}
