// Doost!

package system

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alphazero/wahl/syslib/errors"
)

/// configuration //////////////////////////////////////////////////////////////

type BenchConfig struct {
	Seed  int64  `yaml:"seed"`
	Reps  int    `yaml:"reps"`
	Sizes []uint `yaml:"sizes"` // operand bit lengths
}

type OutputConfig struct {
	Format  string `yaml:"format"`
	Verbose bool   `yaml:"verbose"`
	Debug   bool   `yaml:"debug"`
}

// Config holds the wahl command defaults. Flags override config values.
type Config struct {
	BenchConfig  `yaml:"bench"`
	OutputConfig `yaml:"output"`
}

func DefaultConfig() *Config {
	var c = &Config{}
	c.setDefaults()
	return c
}

// LoadConfig reads the yaml config file at path. Missing or invalid values
// are set to defaults.
func LoadConfig(path string) (*Config, error) {
	var fn = errors.For("system.LoadConfig")
	file, e := os.Open(path)
	if e != nil {
		return nil, fn.ErrorWithCause(e, "open %q", path)
	}
	defer file.Close()

	var c Config
	if e := yaml.NewDecoder(file).Decode(&c); e != nil {
		return nil, fn.ErrorWithCause(e, "decode %q", path)
	}
	c.setDefaults()
	return &c, nil
}

// Save writes the config in yaml to path, replacing any existing file.
func (c *Config) Save(path string) error {
	var fn = errors.For("Config.Save")
	file, e := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FilePerm)
	if e != nil {
		return fn.ErrorWithCause(e, "open %q", path)
	}
	defer file.Close()

	var encoder = yaml.NewEncoder(file)
	if e := encoder.Encode(c); e != nil {
		return fn.ErrorWithCause(e, "encode %q", path)
	}
	return encoder.Close()
}

// setDefaults will fill empty and incorrect values with default ones
func (c *Config) setDefaults() {
	if c.Reps <= 0 {
		c.Reps = DefaultBenchReps
	}
	var sizes []uint
	for _, n := range c.Sizes {
		if n > 0 {
			sizes = append(sizes, n)
		}
	}
	if len(sizes) == 0 {
		for pow := uint(DefaultBenchMinPow); pow <= DefaultBenchMaxPow; pow += DefaultBenchPowStep {
			sizes = append(sizes, 1<<pow)
		}
	}
	c.Sizes = sizes

	switch c.Format {
	case FormatBits, FormatBlocks, FormatPositions:
	default:
		c.Format = FormatBits
	}
}
