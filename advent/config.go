package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vaughan0/go-ini"
)

type config struct {
	inputs map[int]string // day -> input file
	bag    bag
}

func defaultConfig() config {
	return config{
		inputs: make(map[int]string),
		bag:    defaultBag,
	}
}

// loadConfig reads an INI file with one [dayN] section per day.
// Any day may set input; [day2] may also set red, green, and blue.
func loadConfig(filename string) (config, error) {
	file, err := ini.LoadFile(filename)
	if err != nil {
		return config{}, fmt.Errorf("error loading config (%s): %s", filename, err)
	}
	return parseConfig(file, filepath.Dir(filename))
}

func parseConfig(file ini.File, dir string) (config, error) {
	cfg := defaultConfig()
	for name, section := range file {
		if !strings.HasPrefix(name, "day") {
			continue
		}
		day, err := strconv.Atoi(strings.TrimPrefix(name, "day"))
		if err != nil || day <= 0 {
			continue
		}
		if path, ok := section["input"]; ok && path != "" {
			if !filepath.IsAbs(path) {
				path = filepath.Join(dir, path)
			}
			cfg.inputs[day] = path
		}
	}
	for _, c := range cubeColors {
		v, ok := file.Get("day2", c.String())
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 0 {
			return config{}, fmt.Errorf("config: [day2] %s: bad cube count %q", c, v)
		}
		cfg.bag[c] = n
	}
	return cfg, nil
}
