// Package config provides the explicit, enumerated configuration structure
// for synergycore's named options: a plain struct with yaml tags, a
// Default constructor, and a Load(path) reader. Unknown YAML keys are
// rejected outright at load via yaml.v3's strict decoder rather than
// silently ignored, so a typo in an option name fails fast instead of
// quietly running with the default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownKey is wrapped into the decode error when the YAML document
// contains a key config.Config does not declare.
var ErrUnknownKey = errors.New("config: unknown configuration key")

// Config holds every named run option, with no other mutable state.
type Config struct {
	// Alpha is the propagation restart probability, used only when the
	// optional propagation pre-processor is enabled.
	Alpha float64 `yaml:"alpha"`
	// NRandomizations is the null-model sample count for z-scoring.
	NRandomizations int `yaml:"n_randomizations"`
	// DegreeBins is the number of equal-count degree bands.
	DegreeBins int `yaml:"degree_bins"`
	// TopPct is the top/bottom quantile used to derive drug up/down sets
	// upstream of this core; carried here since it is a named option.
	TopPct float64 `yaml:"top_pct"`
	// CloseThreshold, K, L are the Topology Classifier constants.
	CloseThreshold float64 `yaml:"close_threshold"`
	K              float64 `yaml:"K"`
	L              float64 `yaml:"L"`
	// RandomSeed is the base seed for per-task sub-seed derivation.
	RandomSeed int64 `yaml:"random_seed"`
	// Parallelism is the worker-pool size; 0 means "use all cores".
	Parallelism int `yaml:"parallelism"`
}

// Default returns the pinned default configuration.
func Default() Config {
	return Config{
		Alpha:           0.5,
		NRandomizations: 1000,
		DegreeBins:      20,
		TopPct:          0.05,
		CloseThreshold:  3.0,
		K:               10.0,
		L:               5.0,
		RandomSeed:      42,
		Parallelism:     runtime.NumCPU(),
	}
}

// Load reads and strictly decodes a YAML configuration file over the
// defaults: fields absent from the file keep their default value, but any
// field present in the file that Config does not declare is a load error
// (ErrUnknownKey), never silently dropped.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Decode(data)
}

// Decode strictly decodes YAML bytes over the defaults.
func Decode(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if isUnknownFieldError(err) {
			return Config{}, fmt.Errorf("%w: %v", ErrUnknownKey, err)
		}
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}

// isUnknownFieldError detects yaml.v3's "field X not found in type Y"
// TypeError produced by strict decoding; yaml.v3 does not export a sentinel
// for this, so the check is textual, matching how callers of gopkg.in/yaml.v3
// KnownFields commonly distinguish it from other decode failures.
func isUnknownFieldError(err error) bool {
	var te *yaml.TypeError
	if errors.As(err, &te) {
		for _, msg := range te.Errors {
			if containsUnknownField(msg) {
				return true
			}
		}
	}
	return false
}

func containsUnknownField(msg string) bool {
	return strings.Contains(msg, "not found in type")
}
