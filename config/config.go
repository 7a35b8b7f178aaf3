/*
Package config loads settings for the divertido command.

Settings are read from a TOML or YAML file, selected by file extension.
Without an explicit file, "divertido.toml" and "divertido.yaml" in the
current directory are tried; a missing default file is not an error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Scoping modes.
const (
	ScopingFlat  = "flat"
	ScopingBlock = "block"
)

// DefaultFiles are tried in order if no configuration file is given.
var DefaultFiles = []string{"divertido.toml", "divertido.yaml", "divertido.yml"}

// Config holds the settings of the command.
type Config struct {
	Trace   string `toml:"trace" yaml:"trace"`       // trace level: Debug, Info or Error
	Scoping string `toml:"scoping" yaml:"scoping"`   // flat or block
	Prompt  string `toml:"prompt" yaml:"prompt"`     // REPL prompt
	ShowAST bool   `toml:"show_ast" yaml:"show_ast"` // print AST before execution
}

// Default returns the default settings.
func Default() Config {
	return Config{
		Trace:   "Error",
		Scoping: ScopingFlat,
		Prompt:  "divertido :> ",
	}
}

// BlockScoping is a predicate: is block scoping configured?
func (c Config) BlockScoping() bool {
	return c.Scoping == ScopingBlock
}

// Validate checks the settings.
func (c Config) Validate() error {
	switch strings.ToLower(c.Scoping) {
	case ScopingFlat, ScopingBlock:
	default:
		return fmt.Errorf("invalid scoping mode %q, expected %q or %q", c.Scoping, ScopingFlat, ScopingBlock)
	}
	switch strings.ToLower(c.Trace) {
	case "debug", "info", "error":
	default:
		return fmt.Errorf("invalid trace level %q, expected Debug, Info or Error", c.Trace)
	}
	return nil
}

// Load reads settings from a file, on top of the defaults. If path is empty,
// the default files are tried.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		for _, f := range DefaultFiles {
			if _, err := os.Stat(f); err == nil {
				path = f
				break
			}
		}
		if path == "" {
			return c, nil
		}
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("cannot read configuration: %w", err)
	}
	if err := Decode(data, filepath.Ext(path), &c); err != nil {
		return c, fmt.Errorf("cannot decode configuration file %s: %w", path, err)
	}
	c.Scoping = strings.ToLower(c.Scoping)
	return c, c.Validate()
}

// ErrUnknownFormat is returned for configuration files which are neither
// TOML nor YAML.
var ErrUnknownFormat = errors.New("unknown configuration format")

// Decode decodes configuration data in a format given by a file extension
// (".toml", ".yaml" or ".yml").
func Decode(data []byte, ext string, c *Config) error {
	switch strings.ToLower(ext) {
	case ".toml":
		_, err := toml.Decode(string(data), c)
		return err
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, c)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
}
