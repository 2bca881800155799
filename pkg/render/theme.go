package render

import (
	"fmt"
	"os"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// StaticSelector serves one manifest for every selection. It covers
// deployments that ship a single theme file instead of a full provider.
type StaticSelector struct {
	Manifest *theme.Manifest
}

var _ theme.ThemeSelector = StaticSelector{}

func (s StaticSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if s.Manifest == nil {
		return nil, fmt.Errorf("render: no theme manifest loaded")
	}
	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: s.Manifest,
	}, nil
}

// LoadManifest reads a theme manifest from a YAML file.
func LoadManifest(path string) (*theme.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: read theme manifest: %w", err)
	}
	var manifest theme.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("render: parse theme manifest %s: %w", path, err)
	}
	return &manifest, nil
}
