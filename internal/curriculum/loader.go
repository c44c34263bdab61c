package curriculum

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed wcag.yaml
var wcagYAML []byte

var (
	defaultOnce sync.Once
	defaultReg  *Registry
	defaultErr  error
)

// Default returns the built-in WCAG 2.2 curriculum. It is parsed once.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultReg, defaultErr = Parse(wcagYAML)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("built-in curriculum: %w", defaultErr)
		}
	})
	return defaultReg, defaultErr
}

// LoadFile reads a curriculum document from path.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open curriculum: %w", err)
	}
	defer f.Close()

	reg, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return reg, nil
}

// Load reads a YAML curriculum document from r.
func Load(r io.Reader) (*Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read curriculum: %w", err)
	}
	return Parse(data)
}

// Parse decodes, schema-checks and builds a curriculum from YAML bytes.
func Parse(data []byte) (*Registry, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse curriculum yaml: %w", err)
	}
	if err := validateShape(raw); err != nil {
		return nil, err
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode curriculum: %w", err)
	}
	return New(doc.Groups)
}
