package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// CharterPath is a charter file or a directory of charter files
	// (.json or .hcl).
	CharterPath string

	// Face is the label of the face every charter is resolved against.
	Face string

	LogFormat string
	LogLevel  string

	// MaxDepth overrides the engine's recursion limit when positive.
	MaxDepth int
}

// NewConfig validates a Config value.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.CharterPath == "" {
		return nil, errors.New("CharterPath is a required configuration field and cannot be empty")
	}
	if cfg.Face == "" {
		return nil, errors.New("Face is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
