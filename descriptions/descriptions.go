// Package descriptions holds the static lookup tables that map test and
// category names to human-readable descriptions, plus the preferred
// category ordering used by the report.
package descriptions

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed descriptions.yaml
var defaultCatalog []byte

// Catalog is the read-only description configuration consulted while
// rendering. Entries not present yield empty descriptions.
type Catalog struct {
	// CategoryPrefix is stripped from category names for display.
	CategoryPrefix string `yaml:"category_prefix"`

	// CategoryOrder lists qualified category names in their preferred
	// report order. Categories not listed appear afterwards in
	// first-encountered order.
	CategoryOrder []string `yaml:"category_order"`

	// Categories maps qualified category names to descriptions.
	Categories map[string]string `yaml:"categories"`

	// Tests maps short test names to descriptions.
	Tests map[string]string `yaml:"tests"`
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return parse(defaultCatalog)
}

// LoadFile parses a catalog from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptions file %q: %w", path, err)
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse descriptions: %w", err)
	}
	if c.Categories == nil {
		c.Categories = make(map[string]string)
	}
	if c.Tests == nil {
		c.Tests = make(map[string]string)
	}
	return &c, nil
}

// Merge overlays another catalog onto this one. Non-empty scalar fields and
// individual map entries from other win; the category order is replaced
// only when other provides one.
func (c *Catalog) Merge(other *Catalog) {
	if other == nil {
		return
	}
	if other.CategoryPrefix != "" {
		c.CategoryPrefix = other.CategoryPrefix
	}
	if len(other.CategoryOrder) > 0 {
		c.CategoryOrder = other.CategoryOrder
	}
	for name, desc := range other.Categories {
		c.Categories[name] = desc
	}
	for name, desc := range other.Tests {
		c.Tests[name] = desc
	}
}

// TestDescription returns the description for a short test name, or ""
// when none is configured.
func (c *Catalog) TestDescription(shortName string) string {
	return c.Tests[shortName]
}

// CategoryDescription returns the description for a qualified category
// name, or "" when none is configured.
func (c *Catalog) CategoryDescription(name string) string {
	return c.Categories[name]
}

// DisplayCategory strips the configured common prefix from a qualified
// category name.
func (c *Catalog) DisplayCategory(name string) string {
	if c.CategoryPrefix != "" && len(name) > len(c.CategoryPrefix) && name[:len(c.CategoryPrefix)] == c.CategoryPrefix {
		return name[len(c.CategoryPrefix):]
	}
	return name
}
