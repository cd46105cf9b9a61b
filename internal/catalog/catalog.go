// Package catalog holds the static topic dependency table and the decoders
// that load it from JSON, YAML, CUE and HCL files.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/cespare/xxhash/v2"
)

var (
	// ErrDuplicateTopic is returned when a table declares the same topic twice.
	ErrDuplicateTopic = errors.New("duplicate topic")
	// ErrEmptyName is returned for a topic or prerequisite with an empty name.
	ErrEmptyName = errors.New("empty topic name")
)

// Topic is a single entry of the dependency table.
type Topic struct {
	Name          string   `json:"name" yaml:"name"`
	Category      string   `json:"category,omitempty" yaml:"category,omitempty"`
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"`
	Prerequisites []string `json:"prerequisites" yaml:"prerequisites"`
}

// Catalog is an immutable dependency table: topic name to its direct
// prerequisites, in declaration order.
type Catalog struct {
	topics     []Topic
	byName     map[string]int
	categories []string
}

// New builds a Catalog from topics in declaration order.
// Prerequisite names need not be defined topics.
func New(topics []Topic) (*Catalog, error) {
	c := &Catalog{
		topics: make([]Topic, 0, len(topics)),
		byName: make(map[string]int, len(topics)),
	}

	var errs []error
	seenCategory := make(map[string]bool)
	for i, t := range topics {
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("topic #%d: %w", i+1, ErrEmptyName))
			continue
		}
		if _, dup := c.byName[t.Name]; dup {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateTopic, t.Name))
			continue
		}
		for _, p := range t.Prerequisites {
			if p == "" {
				errs = append(errs, fmt.Errorf("topic %q prerequisite: %w", t.Name, ErrEmptyName))
			}
		}

		t.Prerequisites = slices.Clone(t.Prerequisites)
		c.byName[t.Name] = len(c.topics)
		c.topics = append(c.topics, t)

		if t.Category != "" && !seenCategory[t.Category] {
			seenCategory[t.Category] = true
			c.categories = append(c.categories, t.Category)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return c, nil
}

// FromMap builds a Catalog from a plain topic → prerequisites mapping.
// Map iteration order is random, so topics are declared in name order.
func FromMap(table map[string][]string) (*Catalog, error) {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	topics := make([]Topic, 0, len(names))
	for _, name := range names {
		topics = append(topics, Topic{Name: name, Prerequisites: table[name]})
	}
	return New(topics)
}

// Topics returns every topic name in declaration order.
func (c *Catalog) Topics() []string {
	names := make([]string, len(c.topics))
	for i, t := range c.topics {
		names[i] = t.Name
	}
	return names
}

// Entries returns a copy of every topic entry in declaration order.
func (c *Catalog) Entries() []Topic {
	out := make([]Topic, len(c.topics))
	for i, t := range c.topics {
		out[i] = t
		out[i].Prerequisites = slices.Clone(t.Prerequisites)
	}
	return out
}

// Len returns the number of topics.
func (c *Catalog) Len() int {
	return len(c.topics)
}

// Has reports whether name is a defined topic.
func (c *Catalog) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Topic returns the entry for name.
func (c *Catalog) Topic(name string) (Topic, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Topic{}, false
	}
	t := c.topics[i]
	t.Prerequisites = slices.Clone(t.Prerequisites)
	return t, true
}

// DirectPrerequisites returns the prerequisites of name exactly as declared,
// including names that are not themselves defined topics.
// Unknown topics yield an empty result.
func (c *Catalog) DirectPrerequisites(name string) []string {
	i, ok := c.byName[name]
	if !ok {
		return nil
	}
	return slices.Clone(c.topics[i].Prerequisites)
}

// Categories returns the distinct non-empty categories in first-seen order.
func (c *Catalog) Categories() []string {
	return slices.Clone(c.categories)
}

// ByCategory returns the topics of a category in declaration order.
func (c *Catalog) ByCategory(category string) []Topic {
	var out []Topic
	for _, t := range c.topics {
		if t.Category == category {
			t.Prerequisites = slices.Clone(t.Prerequisites)
			out = append(out, t)
		}
	}
	return out
}

// Fingerprint returns a stable hash of the dependency table. Metadata
// (category, description) does not contribute.
func (c *Catalog) Fingerprint() string {
	d := xxhash.New()
	for _, t := range c.topics {
		_, _ = d.WriteString(t.Name)
		_, _ = d.Write([]byte{0x1f})
		for _, p := range t.Prerequisites {
			_, _ = d.WriteString(p)
			_, _ = d.Write([]byte{0x1f})
		}
		_, _ = d.Write([]byte{0x1e})
	}
	return fmt.Sprintf("%016x", d.Sum64())
}
