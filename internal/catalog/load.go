package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pelletier/go-toml/v2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LoadFile reads a catalog from path. The format is chosen by extension:
// .json or .toml.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(filepath.Ext(path), data)
}

// Parse decodes data in the format named by ext and validates the result.
func Parse(ext string, data []byte) (*Catalog, error) {
	var cat Catalog
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "json":
		if err := json.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("parse catalog: %w", err)
		}
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&cat); err != nil {
			return nil, fmt.Errorf("parse catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}
	trim(&cat)
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &cat, nil
}

func trim(c *Catalog) {
	for i := range c.Domains {
		d := &c.Domains[i]
		d.Name = strings.TrimSpace(d.Name)
		for j := range d.Events {
			d.Events[j].Name = strings.TrimSpace(d.Events[j].Name)
			d.Events[j].About = strings.TrimSpace(d.Events[j].About)
		}
	}
}
