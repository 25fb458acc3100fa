// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

package iconsgen

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

var _ = fmt.Print

const DefaultRuntime = "github.com/kovidgoyal/fileicons/tools/icons/svgicon"

// EnvPrefix is the prefix of the environment variables that override
// settings from the config file, for example ICONSGEN_SOURCE.
const EnvPrefix = "ICONSGEN_"

type Config struct {
	// Directory containing the SVG assets
	Source string `yaml:"source" env:"SOURCE"`
	// Go file to write
	Output string `yaml:"output" env:"OUTPUT"`
	// Package name of the generated file
	Package string `yaml:"package" env:"PACKAGE"`
	// Import path of the package providing svgicon.New
	Runtime string `yaml:"runtime" env:"RUNTIME"`
	// Glob patterns relative to Source, matching assets to use and to skip
	Include []string `yaml:"include" env:"INCLUDE"`
	Exclude []string `yaml:"exclude" env:"EXCLUDE"`
	// Added before and after every component name
	Prefix string `yaml:"prefix" env:"PREFIX"`
	Suffix string `yaml:"suffix" env:"SUFFIX"`
	// Attribute renames, an empty new name removes the attribute
	Rename map[string]string `yaml:"rename" env:"RENAME" envKeyValSeparator:"="`
	// Attributes removed from the root <svg> element
	Drop []string `yaml:"drop" env:"DROP"`

	Logger *slog.Logger `yaml:"-"`
}

func Defaults() *Config {
	return &Config{
		Package: "components",
		Runtime: DefaultRuntime,
		Include: []string{"**/*.svg"},
		Rename: map[string]string{
			"xlink:href":  "href",
			"xmlns:xlink": "",
			"xml:space":   "",
		},
		Drop: []string{"width", "height"},
	}
}

func (self *Config) logger() *slog.Logger {
	if self.Logger != nil {
		return self.Logger
	}
	return slog.Default()
}

// Load returns the default config updated from the YAML file at path, if
// path is not empty, and then from the environment. Relative source and
// output paths in the file are relative to the directory containing it.
func Load(path string) (*Config, error) {
	ans := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(ans); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		base := filepath.Dir(path)
		for _, p := range []*string{&ans.Source, &ans.Output} {
			if *p != "" && !filepath.IsAbs(*p) {
				*p = filepath.Join(base, *p)
			}
		}
	}
	if err := env.ParseWithOptions(ans, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("invalid %s environment variable: %w", EnvPrefix, err)
	}
	return ans, nil
}

func (self *Config) Validate() error {
	var errs []error
	if self.Source == "" {
		errs = append(errs, errors.New("no source directory specified"))
	}
	if self.Output == "" {
		errs = append(errs, errors.New("no output file specified"))
	}
	if !token.IsIdentifier(self.Package) {
		errs = append(errs, fmt.Errorf("not a valid package name: %#v", self.Package))
	}
	if self.Runtime == "" {
		errs = append(errs, errors.New("no runtime package specified"))
	}
	if len(self.Include) == 0 {
		errs = append(errs, errors.New("no include patterns specified"))
	}
	for _, patterns := range [][]string{self.Include, self.Exclude} {
		for _, pat := range patterns {
			if !doublestar.ValidatePattern(pat) {
				errs = append(errs, fmt.Errorf("not a valid glob pattern: %#v", pat))
			}
		}
	}
	return errors.Join(errs...)
}
