package app

import "errors"

// Config holds everything an App instance needs to run one pipeline
// invocation. There are no ambient globals; the CLI layer builds one of
// these and hands it to New.
type Config struct {
	ConfigPath string // configuration document (.yaml, .yml or .hcl)

	StarExecutable string
	Overwrite      bool
	DryRun         bool

	UseSlurm  bool
	NumCPUs   int
	Mem       string // SLURM-style memory string, e.g. "64G"
	Partition string
	TimeLimit string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}
	if cfg.StarExecutable == "" {
		cfg.StarExecutable = "STAR"
	}
	if cfg.NumCPUs < 1 {
		return nil, errors.New("NumCPUs must be at least 1")
	}
	if cfg.Mem == "" {
		cfg.Mem = "4G"
	}
	return &cfg, nil
}
