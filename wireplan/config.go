package wireplan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the yaml configuration used for wireplan. It is built once at startup and not
// changed after it is handed to the manager.
type Config struct {
	// Topology is the topology file to compile, yaml or json by extension.
	Topology string `yaml:"topology"`
	// Output is where the compiled plan is written, yaml or json by extension.
	Output string `yaml:"output"`
	// Addressing controls per-switch address block allocation.
	Addressing Addressing `yaml:"addressing"`
	// Watch keeps wireplan running, recompiling the plan whenever the topology file changes.
	Watch bool `yaml:"watch"`
	// LogLevel is one of error, warn, info or debug.
	LogLevel string `yaml:"log-level"`
}

// Addressing holds the address planner settings.
type Addressing struct {
	// Base is the network of the first block, e.g. 10.1.1.0.
	Base string `yaml:"base"`
	// PrefixLength is the size of every per-switch block.
	PrefixLength int `yaml:"prefix-length"`
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Topology: TopologyFile,
		Output:   OutputFile,
		Addressing: Addressing{
			Base:         BaseNetwork,
			PrefixLength: PrefixLength,
		},
		LogLevel: LogLevel,
	}
}

// LoadConfig reads the config file at path over the defaults. A missing file is only an error
// when required is set.
func LoadConfig(path string, required bool) (*Config, error) {
	c := DefaultConfig()

	configBytes, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}

		return nil, fmt.Errorf(
			"%w: failed reading config file at path %q, err: %s", ErrConfig, path, err,
		)
	}

	err = yaml.Unmarshal(configBytes, c)
	if err != nil {
		return nil, fmt.Errorf("%w: failed unmarshaling config file, err: %s", ErrConfig, err)
	}

	return c, nil
}

// AddressBase returns the validated address base the config describes.
func (c *Config) AddressBase() (AddressBase, error) {
	return NewAddressBase(c.Addressing.Base, c.Addressing.PrefixLength)
}

// validate checks the config is usable before anything is compiled.
func (c *Config) validate() error {
	if c.Topology == "" {
		return fmt.Errorf("%w: no topology file configured", ErrConfig)
	}

	if c.Output == "" {
		return fmt.Errorf("%w: no output file configured", ErrConfig)
	}

	_, err := useYAMLForPath(c.Output)
	if err != nil {
		return err
	}

	_, err = c.AddressBase()

	return err
}
