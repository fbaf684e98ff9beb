package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SnapshotPath string // yaml snapshot of validated taxpayer information
	ParamsPath   string // hcl parameter table; empty selects the built-in table

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.SnapshotPath == "" {
		return nil, errors.New("SnapshotPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
