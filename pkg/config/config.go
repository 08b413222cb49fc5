// Package config holds the engine's tunable knobs - currently just the
// hybrid cycle detector's thresholds and the default log level - loadable
// from YAML and validated before use.
package config

import (
	"fmt"
	"os"

	"github.com/3plates/steadyflow/pkg/algorithms"
	"github.com/3plates/steadyflow/pkg/validation"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// EngineConfig is the full set of configurable engine behavior. Zero-value
// EngineConfig is not valid for use; start from DefaultEngineConfig.
type EngineConfig struct {
	// IncrementalMinNodes is the graph-size floor below which the cycle
	// detector always runs a full scan, regardless of change ratio.
	IncrementalMinNodes int `yaml:"incrementalMinNodes" validate:"gte=1"`
	// IncrementalChangeRatio is the batch-size-to-graph-size ratio above
	// which the cycle detector falls back to a full scan.
	IncrementalChangeRatio float64 `yaml:"incrementalChangeRatio" validate:"gt=0,lte=1"`
	// LogLevel is the default logging.Level name ("debug", "info", "warn",
	// "error") a facade built from this config should log at.
	LogLevel string `yaml:"logLevel" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultEngineConfig returns the cycle detector's default thresholds and an
// "info" log level.
func DefaultEngineConfig() EngineConfig {
	th := algorithms.DefaultThresholds()
	return EngineConfig{
		IncrementalMinNodes:    th.MinNodes,
		IncrementalChangeRatio: th.ChangeRatio,
		LogLevel:               "info",
	}
}

// Thresholds converts the config's detector knobs into algorithms.Thresholds.
func (c EngineConfig) Thresholds() algorithms.Thresholds {
	return algorithms.Thresholds{MinNodes: c.IncrementalMinNodes, ChangeRatio: c.IncrementalChangeRatio}
}

// Validate checks struct-tag constraints via validator, then applies
// additional business-rule checks via validation.EngineConfigValidator.
func (c EngineConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return validation.NewEngineConfigValidator().
		IncrementalMinNodes(c.IncrementalMinNodes).
		IncrementalChangeRatio(c.IncrementalChangeRatio).
		LogLevel(c.LogLevel).
		Validate()
}

// Load reads an EngineConfig from a YAML file at path, filling any field the
// file omits with DefaultEngineConfig's value, then validates the result.
func Load(path string) (EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EngineConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := DefaultEngineConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EngineConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return EngineConfig{}, err
	}
	return cfg, nil
}
