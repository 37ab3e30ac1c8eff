package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/felixge/fgprof"
	"github.com/kr/pretty"
)

func main() {
	log.SetFlags(0)
	var (
		inputFile   = flag.String("input", "", "Read puzzle input from this file instead of the embedded input")
		configFile  = flag.String("config", "", "Load configuration from this INI file")
		dump        = flag.Bool("dump", false, "Pretty-print parsed input to stderr")
		verbose     = flag.Bool("v", false, "Log input sizes and timings")
		profileFile = flag.String("profile", "", "Write a wall-clock profile to this file")
	)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}

	names, err := expand(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	cfg := defaultConfig()
	if *configFile != "" {
		cfg, err = loadConfig(*configFile)
		if err != nil {
			log.Fatal(err)
		}
	}

	if *profileFile != "" {
		f, err := os.Create(*profileFile)
		if err != nil {
			log.Fatal(err)
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if err := stop(); err != nil {
				log.Fatalf("error writing profile: %s", err)
			}
			if err := f.Close(); err != nil {
				log.Fatal(err)
			}
		}()
	}

	r := &runner{
		cfg:       cfg,
		inputFile: *inputFile,
		dump:      *dump,
		verbose:   *verbose,
	}
	for _, name := range names {
		answer, err := r.run(name)
		if err != nil {
			log.Fatalf("%s: %s", name, err)
		}
		fmt.Println(answer)
	}
}

func usage() {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [solution]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is a day number or one of:")
	for _, name := range names {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "flags:")
	flag.PrintDefaults()
}

// A solution computes one part of one day from that day's input.
type solution func(r *runner, input string) (int, error)

var solutions = make(map[string]solution)

func register(name string, fn solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	if _, s := splitName(name); s == "" {
		panic(fmt.Sprintf("solution name %q has no part suffix", name))
	}
	solutions[name] = fn
}

// expand resolves a command-line solution argument to the registered
// solutions to run. A bare day number selects every part of that day.
func expand(arg string) ([]string, error) {
	if _, ok := solutions[arg]; ok {
		return []string{arg}, nil
	}
	if _, err := strconv.Atoi(arg); err == nil {
		var names []string
		for name := range solutions {
			if n, _ := splitName(name); strconv.Itoa(n) == arg {
				names = append(names, name)
			}
		}
		if len(names) > 0 {
			sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
			return names, nil
		}
	}
	return nil, fmt.Errorf("unknown solution %q", arg)
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}

type runner struct {
	cfg       config
	inputFile string // overrides cfg and the embedded input
	dump      bool
	verbose   bool
}

func (r *runner) run(name string) (int, error) {
	fn, ok := solutions[name]
	if !ok {
		return 0, fmt.Errorf("unknown solution %q", name)
	}
	day, _ := splitName(name)
	input, err := r.input(day)
	if err != nil {
		return 0, err
	}
	start := time.Now()
	answer, err := fn(r, input)
	if err != nil {
		return 0, err
	}
	r.logf("%s: solved in %s", name, time.Since(start).Round(time.Microsecond))
	return answer, nil
}

func (r *runner) logf(format string, args ...interface{}) {
	if r.verbose {
		log.Printf(format, args...)
	}
}

// debug pretty-prints v to stderr when -dump is set.
func (r *runner) debug(v interface{}) {
	if r.dump {
		pretty.Fprintf(os.Stderr, "%# v\n", v)
	}
}
