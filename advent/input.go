package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
)

// The embedded inputs are the published examples for each day.
// Real puzzle inputs are per-player; pass them with -input or the config.
//
//go:embed input/*.txt
var embeddedInputs embed.FS

// input returns the input text for the given day. The -input flag wins
// over a configured path, which wins over the embedded input.
func (r *runner) input(day int) (string, error) {
	var (
		b   []byte
		err error
		src string
	)
	switch {
	case r.inputFile != "":
		src = r.inputFile
		b, err = os.ReadFile(src)
	case r.cfg.inputs[day] != "":
		src = r.cfg.inputs[day]
		b, err = os.ReadFile(src)
	default:
		src = fmt.Sprintf("input/day%d.txt", day)
		b, err = fs.ReadFile(embeddedInputs, src)
		if err != nil {
			return "", fmt.Errorf("no input for day %d", day)
		}
	}
	if err != nil {
		return "", err
	}
	input := string(b)
	r.logf("read %s: %s lines, %s", src, humanize.Comma(int64(len(lines(input)))), humanize.Bytes(uint64(len(b))))
	return input, nil
}

// lines splits s into lines. A trailing newline does not produce an
// empty final line and a trailing \r is stripped from each line.
func lines(s string) []string {
	if s == "" {
		return nil
	}
	ls := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, l := range ls {
		ls[i] = strings.TrimSuffix(l, "\r")
	}
	return ls
}
