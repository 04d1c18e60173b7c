package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalogYAML []byte

// Parse decodes a YAML catalog, normalizes and validates it.
func Parse(raw []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	c.Normalize()
	if err := c.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("invalid catalog: %w", err)
	}
	c.Source = SourceBuiltin
	return c, nil
}

// LoadBuiltin returns the embedded catalog, or the file at overridePath when set.
func LoadBuiltin(overridePath string) (Catalog, error) {
	raw := defaultCatalogYAML
	if overridePath != "" {
		b, err := os.ReadFile(overridePath)
		if err != nil {
			return Catalog{}, fmt.Errorf("read catalog file: %w", err)
		}
		raw = b
	}
	return Parse(raw)
}
