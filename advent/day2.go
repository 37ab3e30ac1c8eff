package main

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

func init() {
	register("2a", day2a)
	register("2b", day2b)
}

func day2a(r *runner, input string) (int, error) {
	games, err := parseGames(input)
	if err != nil {
		return 0, err
	}
	r.debug(games)
	var sum int
	for _, g := range games {
		if r.cfg.bag.allows(g) {
			sum += g.id
		}
	}
	return sum, nil
}

func day2b(r *runner, input string) (int, error) {
	games, err := parseGames(input)
	if err != nil {
		return 0, err
	}
	r.debug(games)
	var sum int
	for _, g := range games {
		sum += g.power()
	}
	return sum, nil
}

type cubeColor int

const (
	red cubeColor = iota
	green
	blue
	numColors
)

var cubeColors = []cubeColor{red, green, blue}

func (c cubeColor) String() string {
	switch c {
	case red:
		return "red"
	case green:
		return "green"
	case blue:
		return "blue"
	}
	return fmt.Sprintf("cubeColor(%d)", int(c))
}

func parseCubeColor(s string) (cubeColor, error) {
	for _, c := range cubeColors {
		if s == c.String() {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", errInvalidColor, s)
}

// A draw is one handful of cubes. Colors not shown are absent from the map
// and count as zero.
type draw map[cubeColor]int

type game struct {
	id    int
	draws []draw
}

// A bag holds the number of cubes of each color available.
type bag [numColors]int

var defaultBag = bag{red: 12, green: 13, blue: 14}

// allows reports whether every draw of g could have come from b.
func (b bag) allows(g game) bool {
	for _, d := range g.draws {
		for c, n := range d {
			if n > b[c] {
				return false
			}
		}
	}
	return true
}

// power is the product of the fewest cubes of each color that make g
// possible.
func (g game) power() int {
	var need bag
	for _, d := range g.draws {
		for c, n := range d {
			if n > need[c] {
				need[c] = n
			}
		}
	}
	p := 1
	for _, n := range need {
		p *= n
	}
	return p
}

var (
	errInvalidFormat    = errors.New("invalid format")
	errInvalidGameID    = errors.New("invalid game id")
	errInvalidColor     = errors.New("invalid color")
	errColorListedTwice = errors.New("color listed twice")
	errInvalidCount     = errors.New("invalid count")
)

var (
	gameRx = regexp.MustCompile(`Game (\w+):(.*)`)
	cubeRx = regexp.MustCompile(`(\d+) (\w+)`)
)

func parseGames(input string) ([]game, error) {
	var games []game
	for i, line := range lines(input) {
		g, err := parseGame(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		games = append(games, g)
	}
	return games, nil
}

func parseGame(s string) (game, error) {
	m := gameRx.FindStringSubmatch(s)
	if m == nil {
		return game{}, errInvalidFormat
	}
	id, err := strconv.Atoi(m[1])
	if err != nil || id < 0 {
		return game{}, fmt.Errorf("%w: %q", errInvalidGameID, m[1])
	}
	g := game{id: id}
	for _, ds := range strings.Split(m[2], ";") {
		d, err := parseDraw(ds)
		if err != nil {
			return game{}, err
		}
		g.draws = append(g.draws, d)
	}
	return g, nil
}

func parseDraw(s string) (draw, error) {
	d := make(draw)
	for _, item := range strings.Split(s, ",") {
		m := cubeRx.FindStringSubmatch(strings.TrimSpace(item))
		if m == nil {
			return nil, errInvalidFormat
		}
		c, err := parseCubeColor(m[2])
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %s", errInvalidCount, err)
		}
		if _, ok := d[c]; ok {
			return nil, fmt.Errorf("%w: %s", errColorListedTwice, c)
		}
		d[c] = n
	}
	return d, nil
}
