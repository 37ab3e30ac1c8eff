package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vaughan0/go-ini"
)

func TestNameLess(t *testing.T) {
	names := []string{"10a", "2b", "1b", "2a", "1a", "3a"}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	want := []string{"1a", "1b", "2a", "2b", "3a", "10a"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("sorted names (-want +got):\n%s", diff)
	}
}

func TestExpand(t *testing.T) {
	for _, tt := range []struct {
		arg  string
		want []string
	}{
		{"1a", []string{"1a"}},
		{"2", []string{"2a", "2b"}},
		{"3b", []string{"3b"}},
	} {
		got, err := expand(tt.arg)
		if err != nil {
			t.Fatalf("expand(%q): %s", tt.arg, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("expand(%q) (-want +got):\n%s", tt.arg, diff)
		}
	}
	for _, arg := range []string{"7z", "99", "", "a1"} {
		if _, err := expand(arg); err == nil {
			t.Errorf("expand(%q): got nil error", arg)
		}
	}
}

func TestRegisterDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic registering a duplicate solution")
		}
	}()
	register("1a", day1a)
}

func TestLines(t *testing.T) {
	for _, tt := range []struct {
		s    string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\nb\n", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\n\nb", []string{"a", "", "b"}},
	} {
		if diff := cmp.Diff(tt.want, lines(tt.s)); diff != "" {
			t.Errorf("lines(%q) (-want +got):\n%s", tt.s, diff)
		}
	}
}

// The embedded inputs are the published examples, so the expected
// answers are the published ones.
func TestEmbeddedInputs(t *testing.T) {
	r := &runner{cfg: defaultConfig()}
	for _, tt := range []struct {
		name string
		want int
	}{
		{"1a", 142},
		{"1b", 142},
		{"2a", 8},
		{"2b", 2286},
		{"3a", 4361},
		{"3b", 467835},
	} {
		got, err := r.run(tt.name)
		if err != nil {
			t.Fatalf("%s: %s", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: got %d; want %d", tt.name, got, tt.want)
		}
	}
}

func TestInputPrecedence(t *testing.T) {
	dir := t.TempDir()
	flagFile := filepath.Join(dir, "flag.txt")
	configFile := filepath.Join(dir, "config.txt")
	writeFile(t, flagFile, "7\n")
	writeFile(t, configFile, "3\n")

	r := &runner{cfg: defaultConfig()}
	r.cfg.inputs[1] = configFile
	got, err := r.run("1a")
	if err != nil {
		t.Fatal(err)
	}
	if want := 33; got != want {
		t.Errorf("with config: got %d; want %d", got, want)
	}

	r.inputFile = flagFile
	got, err = r.run("1a")
	if err != nil {
		t.Fatal(err)
	}
	if want := 77; got != want {
		t.Errorf("with -input: got %d; want %d", got, want)
	}

	r.inputFile = filepath.Join(dir, "missing.txt")
	if _, err := r.run("1a"); err == nil {
		t.Error("missing input file: got nil error")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "advent.ini")
	writeFile(t, filename, `
[day1]
input = inputs/1.txt

[day2]
input = /tmp/day2.txt
red = 20
blue = 1

[notes]
input = ignored
`)
	cfg, err := loadConfig(filename)
	if err != nil {
		t.Fatal(err)
	}
	wantInputs := map[int]string{
		1: filepath.Join(dir, "inputs", "1.txt"),
		2: "/tmp/day2.txt",
	}
	if diff := cmp.Diff(wantInputs, cfg.inputs); diff != "" {
		t.Errorf("inputs (-want +got):\n%s", diff)
	}
	if want := (bag{red: 20, green: 13, blue: 1}); cfg.bag != want {
		t.Errorf("bag: got %v; want %v", cfg.bag, want)
	}
}

func TestParseConfigErrors(t *testing.T) {
	for _, count := range []string{"many", "-1", ""} {
		file := ini.File{"day2": ini.Section{"green": count}}
		_, err := parseConfig(file, ".")
		if err == nil {
			t.Errorf("green = %q: got nil error", count)
			continue
		}
		if !strings.Contains(err.Error(), "[day2] green") {
			t.Errorf("green = %q: error %q does not name the key", count, err)
		}
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.ini")); err == nil {
		t.Error("missing config file: got nil error")
	}
}

func writeFile(t *testing.T, name, contents string) {
	t.Helper()
	if err := os.WriteFile(name, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}
