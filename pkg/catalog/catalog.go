// Package catalog is an in-memory directory of entity display names. It
// implements types.Names for decision traces and title templates.
package catalog

import (
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/docflow/pkg/errors"
	"github.com/arthur-debert/docflow/pkg/types"
)

// Catalog maps (kind, id) pairs to names. It is safe for concurrent use.
type Catalog struct {
	mu    sync.RWMutex
	names map[types.EntityKind]map[types.ID]string
}

// New returns an empty Catalog.
func New() *Catalog {
	return &Catalog{names: make(map[types.EntityKind]map[types.ID]string)}
}

// Register records the name of an entity. Ids must be set and unique per
// kind.
func (c *Catalog) Register(kind types.EntityKind, id types.ID, name string) error {
	if id == types.NoID {
		return errors.Newf(errors.ErrInvalidInput, "%s id cannot be empty", kind).
			WithDetail("name", name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	byID, ok := c.names[kind]
	if !ok {
		byID = make(map[types.ID]string)
		c.names[kind] = byID
	}
	if existing, exists := byID[id]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "%s %d is already registered as '%s'", kind, id, existing).
			WithDetail("kind", kind.String()).
			WithDetail("id", int64(id))
	}
	byID[id] = name
	return nil
}

// Name implements types.Names.
func (c *Catalog) Name(kind types.EntityKind, id types.ID) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	name, ok := c.names[kind][id]
	return name, ok
}

// Lookup finds an entity id by name, ignoring case.
func (c *Catalog) Lookup(kind types.EntityKind, name string) (types.ID, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, id := range c.idsLocked(kind) {
		if strings.EqualFold(c.names[kind][id], name) {
			return id, true
		}
	}
	return types.NoID, false
}

// IDs returns the registered ids of kind in ascending order.
func (c *Catalog) IDs(kind types.EntityKind) []types.ID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.idsLocked(kind)
}

func (c *Catalog) idsLocked(kind types.EntityKind) []types.ID {
	ids := make([]types.ID, 0, len(c.names[kind]))
	for id := range c.names[kind] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Count returns the number of registered entities across all kinds.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, byID := range c.names {
		n += len(byID)
	}
	return n
}
