package profile

import (
	"fmt"
	"os"
	"strings"

	"github.com/dshills/veil/internal/dlp"
	"gopkg.in/yaml.v3"
)

// Profile is a redaction preset loaded from --profile.
type Profile struct {
	Version       string   `yaml:"version"`
	Description   string   `yaml:"description,omitempty"`
	InfoTypes     []string `yaml:"info_types,omitempty"`
	MinLikelihood string   `yaml:"min_likelihood,omitempty"`
	ReplaceWith   string   `yaml:"replace_with,omitempty"`
}

// Load reads a profile file from disk. Returns nil Profile and nil error if
// path is empty. Invalid likelihood names and blank info-type entries fail
// here, before any remote call is attempted.
func Load(path string) (*Profile, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile file: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return &p, nil
}

func (p *Profile) validate() error {
	if p.MinLikelihood != "" {
		if _, err := dlp.ParseLikelihood(p.MinLikelihood); err != nil {
			return err
		}
	}
	for i, name := range p.InfoTypes {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("info_types[%d] is blank", i)
		}
	}
	return nil
}
