package opt

import (
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config tunes the maximization of objectives.
type Config struct {
	// Strategy names the refinement strategy: "linear", "binary" or "descending".
	Strategy string `yaml:"strategy" validate:"omitempty,oneof=linear binary descending"`
	// MaxRounds bounds the number of refinement rounds per objective. 0 means no bound.
	MaxRounds int `yaml:"maxRounds" validate:"gte=0"`
	// ProbeAfter is the number of improving rounds after which the optimizer checks
	// whether the objective can exceed UnboundedThreshold. 0 disables the check.
	ProbeAfter int `yaml:"probeAfter" validate:"gte=0"`
	// UnboundedThreshold is the value past which an objective is deemed unbounded.
	UnboundedThreshold int64 `yaml:"unboundedThreshold" validate:"gt=0"`
	// Verify makes the optimizer check that the final value of each objective is reached.
	Verify bool `yaml:"verify"`
	// Verbose logs every refinement step.
	Verbose bool `yaml:"verbose"`
	// DumpDir, if not empty, is where a benchmark is written before each check.
	DumpDir string `yaml:"dumpDir"`
	// DumpPrefix is the prefix of benchmark file names.
	DumpPrefix string `yaml:"dumpPrefix"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Strategy:           "linear",
		MaxRounds:          10000,
		ProbeAfter:         32,
		UnboundedThreshold: 1 << 62,
		DumpPrefix:         "opt_solver",
	}
}

var validate = validator.New()

// Validate returns an error if cfg is not usable.
func (cfg Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid optimizer configuration")
	}
	return nil
}

// LoadConfig reads a YAML configuration. Missing fields keep their default value.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, errors.Wrap(err, "could not parse optimizer configuration")
	}
	return cfg, cfg.Validate()
}
