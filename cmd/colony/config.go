// Config loading for the colony CLI. Run settings come from an optional YAML
// file merged with command-line flags; flags that were explicitly set win.
package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/varankin/colony/sim"
)

// runConfig holds everything a headless run needs: graph shape, RNG seed and
// the colony parameters. Zero values mean "not set" for the graph fields and
// are replaced by defaults after merging.
type runConfig struct {
	// Nodes is the number of random nodes to generate.
	Nodes int `yaml:"nodes"`

	// Width and Height are the placement canvas bounds.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Seed feeds the deterministic RNG; 0 selects the library default stream.
	Seed int64 `yaml:"seed"`

	// MaxTicks bounds the run against stalled generations; 0 = auto.
	MaxTicks int `yaml:"max_ticks"`

	Parameters parametersConfig `yaml:"parameters"`
}

// parametersConfig mirrors sim.Parameters for YAML decoding.
type parametersConfig struct {
	Ants       int     `yaml:"ants"`
	Alpha      float64 `yaml:"alpha"`
	Beta       float64 `yaml:"beta"`
	Rho        float64 `yaml:"rho"`
	Q          float64 `yaml:"q"`
	Iterations int     `yaml:"iterations"`
}

// defaultRunConfig returns the built-in run settings.
func defaultRunConfig() runConfig {
	p := sim.DefaultParameters()
	return runConfig{
		Nodes:  10,
		Width:  800,
		Height: 600,
		Parameters: parametersConfig{
			Ants:       p.AntCount,
			Alpha:      p.Alpha,
			Beta:       p.Beta,
			Rho:        p.Rho,
			Q:          p.Q,
			Iterations: p.Iterations,
		},
	}
}

// loadRunConfig overlays the YAML file at path onto the defaults.
func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// simParameters converts the decoded parameter block, clamped into the
// supported ranges so hand-edited files degrade gracefully instead of
// erroring out.
func (c runConfig) simParameters() sim.Parameters {
	return sim.Parameters{
		AntCount:   c.Parameters.Ants,
		Alpha:      c.Parameters.Alpha,
		Beta:       c.Parameters.Beta,
		Rho:        c.Parameters.Rho,
		Q:          c.Parameters.Q,
		Iterations: c.Parameters.Iterations,
	}.Clamp()
}
