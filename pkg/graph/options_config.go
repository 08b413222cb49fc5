package graph

import "github.com/3plates/steadyflow/pkg/config"

// WithEngineConfig applies an EngineConfig's detector thresholds, typically
// loaded via config.Load. Equivalent to WithThresholds(cfg.Thresholds()).
func WithEngineConfig(cfg config.EngineConfig) Option {
	return WithThresholds(cfg.Thresholds())
}
