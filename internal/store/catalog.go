package store

import (
	"strings"
	"sync"
)

// Catalog holds the enumerated batch and subject lists. They are static
// configuration seeded at bootstrap, not runtime input.
type Catalog struct {
	mu       sync.RWMutex
	batches  []string
	subjects []string
}

// NewCatalog constructs an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Seed replaces both lists, dropping blank entries.
func (c *Catalog) Seed(batches, subjects []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.batches = cleanList(batches)
	c.subjects = cleanList(subjects)
}

// Batches returns a copy of the batch list.
func (c *Catalog) Batches() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.batches...)
}

// Subjects returns a copy of the subject list.
func (c *Catalog) Subjects() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.subjects...)
}

// HasBatch reports whether the batch is a configured option.
func (c *Catalog) HasBatch(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return contains(c.batches, name)
}

// HasSubject reports whether the subject is a configured option.
func (c *Catalog) HasSubject(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return contains(c.subjects, name)
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func contains(values []string, name string) bool {
	for _, v := range values {
		if v == name {
			return true
		}
	}
	return false
}
