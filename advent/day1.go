package main

import (
	"fmt"
	"regexp"
	"strconv"
)

func init() {
	register("1a", day1a)
	register("1b", day1b)
}

// A calibration is the sum of the per-line calibration values.
type calibration int

func (c calibration) String() string { return strconv.Itoa(int(c)) }

func day1a(r *runner, input string) (int, error) {
	if r.dump {
		for _, line := range lines(input) {
			r.debug(readDigits(line))
		}
	}
	return int(parseCalibration(input)), nil
}

func day1b(r *runner, input string) (int, error) {
	if r.dump {
		for _, line := range lines(input) {
			tokens, err := parseTokens(line)
			if err != nil {
				return 0, err
			}
			r.debug(tokens)
		}
	}
	c, err := parseCalibrationWords(input)
	if err != nil {
		return 0, err
	}
	return int(c), nil
}

func parseCalibration(input string) calibration {
	var sum calibration
	for _, line := range lines(input) {
		sum += calibration(firstAndLast(readDigits(line)))
	}
	return sum
}

func readDigits(line string) []int {
	var digits []int
	for i := 0; i < len(line); i++ {
		if c := line[i]; c >= '0' && c <= '9' {
			digits = append(digits, int(c-'0'))
		}
	}
	return digits
}

func firstAndLast(digits []int) int {
	if len(digits) == 0 {
		return 0
	}
	return digits[0]*10 + digits[len(digits)-1]
}

type tokenKind int

const (
	digitToken tokenKind = iota
	wordToken
)

type token struct {
	kind  tokenKind
	value int
}

var numberWords = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
}

func parseToken(s string) (token, error) {
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return token{digitToken, int(s[0] - '0')}, nil
	}
	if n, ok := numberWords[s]; ok {
		return token{wordToken, n}, nil
	}
	return token{}, fmt.Errorf("invalid token %q", s)
}

var tokenRx = regexp.MustCompile(`^(?:[1-9]|one|two|three|four|five|six|seven|eight|nine)`)

// parseTokens finds the tokens of line in order of their start offset.
// Spelled-out numbers may share letters ("oneight" is 1 then 8), so
// every offset is tried rather than taking non-overlapping matches.
func parseTokens(line string) ([]token, error) {
	var tokens []token
	for i := 0; i < len(line); i++ {
		m := tokenRx.FindString(line[i:])
		if m == "" {
			continue
		}
		tok, err := parseToken(m)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func parseCalibrationWords(input string) (calibration, error) {
	var sum calibration
	for _, line := range lines(input) {
		tokens, err := parseTokens(line)
		if err != nil {
			return 0, err
		}
		if len(tokens) == 0 {
			continue
		}
		sum += calibration(tokens[0].value*10 + tokens[len(tokens)-1].value)
	}
	return sum, nil
}
