package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Config is the trace configuration. Values come from DefaultConfig, then an
// optional YAML file, then command-line flags.
type Config struct {
	Input       string        `yaml:"input" validate:"required"`
	Origin      *OriginConfig `yaml:"origin,omitempty"`
	OutDir      string        `yaml:"out_dir" validate:"required"`
	Outputs     []string      `yaml:"outputs" validate:"min=1,dive,oneof=gray gradient orientation"`
	Boundary    string        `yaml:"boundary" validate:"oneof=wrap clamp"`
	Interval    time.Duration `yaml:"interval" validate:"gt=0"`
	Frame       time.Duration `yaml:"frame" validate:"gt=0"`
	CheckEvery  uint64        `yaml:"check_every" validate:"gt=0"`
	MaxSize     int           `yaml:"max_size" validate:"gte=0"`
	MetricsFile string        `yaml:"metrics_file"`
	LogLevel    string        `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// OriginConfig is the search origin in source-image pixels.
// When omitted the image centre is used.
type OriginConfig struct {
	X int `yaml:"x" validate:"gte=0"`
	Y int `yaml:"y" validate:"gte=0"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		OutDir:     "out",
		Outputs:    []string{"gray", "gradient", "orientation"},
		Boundary:   "wrap",
		Interval:   100 * time.Millisecond,
		Frame:      250 * time.Millisecond,
		CheckEvery: 1024,
		LogLevel:   "info",
	}
}

// loadConfig reads a YAML file over DefaultConfig. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field constraints and reports every violation at once.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// parseOrigin parses "X,Y".
func parseOrigin(s string) (*OriginConfig, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("origin %q: want X,Y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return nil, fmt.Errorf("origin %q: bad X: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return nil, fmt.Errorf("origin %q: bad Y: %w", s, err)
	}
	return &OriginConfig{X: x, Y: y}, nil
}
