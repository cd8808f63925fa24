// Package config provides the YAML configuration loader for strata.
package config

import (
	"bytes"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/voltlab/strata/internal/core/domain"
	"github.com/voltlab/strata/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	log      ports.Logger
	validate *validator.Validate
}

// NewLoader builds a loader with a fresh validator instance.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{
		log:      log,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load reads the configuration at path. Unknown YAML keys are rejected so a
// typo in a config file fails loudly instead of silently falling back to a
// default.
func (l *Loader) Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if err := l.validate.Struct(cfg); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid configuration"), "path", path)
	}
	if err := cfg.CrossCheck(); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.log.Debug("configuration loaded",
		"path", path,
		"dim", cfg.Mesh.Dim,
		"max_depth", cfg.Mesh.MaxDepth)

	return cfg, nil
}

// Parse decodes raw YAML into a config and applies defaults. Validation is
// the caller's job.
func Parse(data []byte) (*domain.Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg domain.Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}
