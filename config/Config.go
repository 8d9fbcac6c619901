// Package config implements the configuration of a complete training
// run: the environment, the hyperparameters of the agent, and the
// random seed. Configurations are loaded from JSON or YAML files.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/samuelfneumann/qlearn/agent/qlearning"
	"github.com/samuelfneumann/qlearn/environment/envconfig"
)

// Config represents a configuration of a training run
type Config struct {
	Seed        uint64           `json:"seed" yaml:"seed"`
	Environment envconfig.Config `json:"environment" yaml:"environment"`
	Agent       qlearning.Config `json:"agent" yaml:"agent"`
}

// Default returns the configuration used to train on the non-slippery
// 4x4 FrozenLake
func Default() Config {
	return Config{
		Environment: envconfig.Default(),
		Agent:       qlearning.DefaultConfig(),
	}
}

// Validate ensures the Config is valid
func (c Config) Validate() error {
	if err := c.Environment.Validate(); err != nil {
		return err
	}
	return c.Agent.Validate()
}

// Load reads the Config stored in filename. Files ending in .yaml or
// .yml are decoded as YAML, all others as JSON. Hyperparameters missing
// from the file keep their Default values, and a file without an
// environment section trains on the Default environment.
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("load: could not read config: %v", err)
	}

	// Environment defaults are only applied after decoding, so that a
	// file naming another environment does not inherit the FrozenLake map
	c := Default()
	c.Environment = envconfig.Config{}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.UnmarshalStrict(data, &c)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&c)
	}
	if err != nil {
		return Config{}, fmt.Errorf("load: could not decode %v: %v",
			filename, err)
	}

	if c.Environment == (envconfig.Config{}) {
		c.Environment = envconfig.Default()
	} else if c.Environment.Environment == "" {
		c.Environment.Environment = envconfig.FrozenLake
	}

	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("load: %w", err)
	}
	return c, nil
}

// Save writes the Config to filename in the format given by its
// extension, see Load
func (c Config) Save(filename string) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "\t")
	}
	if err != nil {
		return fmt.Errorf("save: could not encode config: %v", err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("save: could not write config: %v", err)
	}
	return nil
}
