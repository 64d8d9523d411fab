// Package catalog provides the embedded registry of hosted text-generation
// models the demo knows about.
package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed models.yaml
var modelsYAML []byte

// Model describes one hosted model endpoint.
type Model struct {
	Key         string   `yaml:"key"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Endpoint    string   `yaml:"endpoint"`
	BestFor     []string `yaml:"best_for"`
}

// Catalog is an ordered, read-only set of models keyed by short identifiers.
type Catalog struct {
	models []Model
	index  map[string]int
}

type document struct {
	Models []Model `yaml:"models"`
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Parse(modelsYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded models.yaml: %v", err))
	}

	return c
})

// Default returns the embedded catalog.
func Default() *Catalog { return defaultCatalog() }

// Parse decodes a YAML catalog document and validates every entry.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}

	if len(doc.Models) == 0 {
		return nil, fmt.Errorf("catalog: at least one model is required")
	}

	c := &Catalog{
		models: doc.Models,
		index:  make(map[string]int, len(doc.Models)),
	}

	for i, m := range doc.Models {
		if err := m.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.index[m.Key]; dup {
			return nil, fmt.Errorf("catalog: duplicate model key %q", m.Key)
		}
		c.index[m.Key] = i
	}

	return c, nil
}

func (m Model) validate() error {
	switch {
	case m.Key == "":
		return fmt.Errorf("catalog: model key is required")
	case m.Name == "":
		return fmt.Errorf("catalog: model %q: name is required", m.Key)
	case m.Description == "":
		return fmt.Errorf("catalog: model %q: description is required", m.Key)
	case m.Endpoint == "":
		return fmt.Errorf("catalog: model %q: endpoint is required", m.Key)
	case len(m.BestFor) == 0:
		return fmt.Errorf("catalog: model %q: at least one best_for tag is required", m.Key)
	}

	return nil
}

// All returns the models in declaration order. The slice is a copy.
func (c *Catalog) All() []Model {
	out := make([]Model, len(c.models))
	for i, m := range c.models {
		m.BestFor = append([]string(nil), m.BestFor...)
		out[i] = m
	}

	return out
}

// Get returns the model registered under key.
func (c *Catalog) Get(key string) (Model, bool) {
	i, ok := c.index[key]
	if !ok {
		return Model{}, false
	}

	m := c.models[i]
	m.BestFor = append([]string(nil), m.BestFor...)

	return m, true
}

// Render writes a human-readable listing of every model to w.
func (c *Catalog) Render(w io.Writer) error {
	var sb strings.Builder

	for _, m := range c.models {
		fmt.Fprintf(&sb, "\n%s (%s)\n", m.Name, m.Key)
		fmt.Fprintf(&sb, "   Description: %s\n", m.Description)
		fmt.Fprintf(&sb, "   Best for: %s\n", strings.Join(m.BestFor, ", "))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
