package main

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"
)

func init() {
	register("3a", day3a)
	register("3b", day3b)
}

type number struct {
	value  int
	length int
	pos    int
}

type symbol struct {
	char rune
	pos  int
}

// A line is one row of an engine schematic.
type line struct {
	length  int
	numbers []number
	symbols []symbol
}

var (
	errNumberParse = errors.New("cannot parse number")
	errSymbolParse = errors.New("cannot parse symbol")
)

var (
	numberRx = regexp.MustCompile(`\d+`)
	symbolRx = regexp.MustCompile(`[^0-9.]`)
)

func parseLine(s string) (line, error) {
	l := line{length: len(s)}
	for _, loc := range numberRx.FindAllStringIndex(s, -1) {
		text := s[loc[0]:loc[1]]
		n, err := strconv.Atoi(text)
		if err != nil {
			return line{}, fmt.Errorf("%w %q at %d", errNumberParse, text, loc[0])
		}
		l.numbers = append(l.numbers, number{value: n, length: len(text), pos: loc[0]})
	}
	for _, loc := range symbolRx.FindAllStringIndex(s, -1) {
		c, size := utf8.DecodeRuneInString(s[loc[0]:loc[1]])
		if c == utf8.RuneError && size <= 1 {
			return line{}, fmt.Errorf("%w at %d", errSymbolParse, loc[0])
		}
		l.symbols = append(l.symbols, symbol{char: c, pos: loc[0]})
	}
	return l, nil
}

func parseSchematic(input string) ([]line, error) {
	var schematic []line
	for i, s := range lines(input) {
		l, err := parseLine(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		schematic = append(schematic, l)
	}
	return schematic, nil
}

// adjacent reports whether column pos is next to n, diagonals included.
func (n number) adjacent(pos int) bool {
	return pos >= n.pos-1 && pos <= n.pos+n.length
}

// neighborRows returns the rows above, at, and below row that exist.
func neighborRows(schematic []line, row int) []line {
	lo, hi := max(row-1, 0), min(row+2, len(schematic))
	return schematic[lo:hi]
}

func day3a(r *runner, input string) (int, error) {
	schematic, err := parseSchematic(input)
	if err != nil {
		return 0, err
	}
	r.debug(schematic)
	var sum int
	for row, l := range schematic {
	numLoop:
		for _, n := range l.numbers {
			for _, nl := range neighborRows(schematic, row) {
				for _, sym := range nl.symbols {
					if n.adjacent(sym.pos) {
						sum += n.value
						continue numLoop
					}
				}
			}
		}
	}
	return sum, nil
}

func day3b(r *runner, input string) (int, error) {
	schematic, err := parseSchematic(input)
	if err != nil {
		return 0, err
	}
	r.debug(schematic)
	var sum int
	for row, l := range schematic {
		for _, sym := range l.symbols {
			if sym.char != '*' {
				continue
			}
			var parts []int
			for _, nl := range neighborRows(schematic, row) {
				for _, n := range nl.numbers {
					if n.adjacent(sym.pos) {
						parts = append(parts, n.value)
					}
				}
			}
			if len(parts) == 2 {
				sum += parts[0] * parts[1]
			}
		}
	}
	return sum, nil
}
