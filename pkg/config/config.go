// Package config loads parser and CLI settings from TOML or YAML files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/agenthands/superecma/pkg/compiler/emitter"
	"github.com/agenthands/superecma/pkg/compiler/parser"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota
	FormatYAML
	// FormatAuto makes LoadWithFormat pick the format from the file
	// extension. Parse rejects it.
	FormatAuto
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config holds the complete configuration
type Config struct {
	Parser ParserConfig `toml:"parser" yaml:"parser"`
	Output OutputConfig `toml:"output" yaml:"output"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// ParserConfig holds parser feature switches
type ParserConfig struct {
	MaxDepth        int  `toml:"max_depth" yaml:"max_depth"`
	IntegerLiterals bool `toml:"integer_literals" yaml:"integer_literals"`
	VarStatements   bool `toml:"var_statements" yaml:"var_statements"`
	Trace           bool `toml:"trace" yaml:"trace"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
	Color  bool   `toml:"color" yaml:"color"`
}

type LogConfig struct {
	Debug bool `toml:"debug" yaml:"debug"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Parser: ParserConfig{MaxDepth: parser.DefaultMaxDepth},
		Output: OutputConfig{Format: string(emitter.FormatText), Color: true},
	}
}

// Load reads the file at path, picking the decoder from its extension.
// Keys missing from the file keep their Default values.
func Load(path string) (*Config, error) {
	return LoadWithFormat(path, FormatAuto)
}

// LoadWithFormat reads the file at path with the given decoder.
func LoadWithFormat(path string, format Format) (*Config, error) {
	path = os.ExpandEnv(path)
	if format == FormatAuto {
		format = detectFormat(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "loading config %s", path)
	}
	return cfg, nil
}

// Parse decodes data on top of Default and validates the result.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "failed to parse YAML")
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, errors.Wrap(err, "failed to parse TOML")
		}
	case FormatAuto:
		return nil, errors.New("format auto needs a file name, use LoadWithFormat")
	default:
		return nil, errors.Errorf("unsupported config format %s", format)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var result *multierror.Error
	if c.Parser.MaxDepth <= 0 {
		result = multierror.Append(result, errors.Errorf("parser.max_depth must be positive, got %d", c.Parser.MaxDepth))
	}
	if _, err := emitter.ParseFormat(c.Output.Format); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "output.format"))
	}
	return result.ErrorOrNil()
}

// OutputFormat returns the validated output format.
func (c *Config) OutputFormat() emitter.Format {
	f, err := emitter.ParseFormat(c.Output.Format)
	if err != nil {
		return emitter.FormatText
	}
	return f
}

// ParserOptions translates the parser section into parser options.
func (c *Config) ParserOptions() []parser.Option {
	opts := []parser.Option{parser.WithMaxDepth(c.Parser.MaxDepth)}
	if c.Parser.IntegerLiterals {
		opts = append(opts, parser.WithIntegerLiterals())
	}
	if c.Parser.VarStatements {
		opts = append(opts, parser.WithVarStatements())
	}
	return opts
}
