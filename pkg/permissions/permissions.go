// Package permissions provides an in-memory types.PermissionSource, used by
// the CLI and tests in place of a real authorization backend.
package permissions

import (
	"sync"

	"github.com/arthur-debert/docflow/pkg/types"
)

// Store holds the current grants per document. It is safe for concurrent
// use.
type Store struct {
	mu     sync.RWMutex
	grants map[types.ID]types.Permissions
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{grants: make(map[types.ID]types.Permissions)}
}

// Set replaces the grants recorded for a document.
func (s *Store) Set(document types.ID, p types.Permissions) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grants[document] = p.Clone()
}

// Permissions implements types.PermissionSource. Unknown documents have no
// grants.
func (s *Store) Permissions(document types.ID) types.Permissions {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.grants[document]
	if !ok {
		return types.Permissions{}
	}
	return p.Clone()
}

// Apply records the permission sets of a mutation set for a document.
func (s *Store) Apply(document types.ID, ms *types.MutationSet) {
	if ms == nil {
		return
	}
	s.Set(document, ms.Permissions)
}

// Count returns the number of documents with recorded grants.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.grants)
}
