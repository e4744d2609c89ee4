package types

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ID identifies an entity owned by the persistence layer. Ids are assigned
// sequentially, so comparing two ids also compares their creation order.
type ID int64

// NoID is the unset reference.
const NoID ID = 0

func (id ID) String() string {
	if id == NoID {
		return "None"
	}
	return strconv.FormatInt(int64(id), 10)
}

// IDSet is an insertion-ordered set of ids. The zero value is an empty set
// ready to use.
type IDSet struct {
	items []ID
	index map[ID]struct{}
}

// NewIDSet returns a set holding ids in first-seen order.
func NewIDSet(ids ...ID) IDSet {
	var s IDSet
	s.Add(ids...)
	return s
}

// Add appends ids that are not yet members. Existing members keep their
// position.
func (s *IDSet) Add(ids ...ID) {
	for _, id := range ids {
		if s.index == nil {
			s.index = make(map[ID]struct{}, len(ids))
		}
		if _, ok := s.index[id]; ok {
			continue
		}
		s.index[id] = struct{}{}
		s.items = append(s.items, id)
	}
}

// Union adds every member of other, in other's order.
func (s *IDSet) Union(other IDSet) {
	s.Add(other.items...)
}

// Remove drops ids from the set. Ids that are not members are ignored.
func (s *IDSet) Remove(ids ...ID) {
	if len(s.items) == 0 || len(ids) == 0 {
		return
	}
	removed := false
	for _, id := range ids {
		if _, ok := s.index[id]; ok {
			delete(s.index, id)
			removed = true
		}
	}
	if !removed {
		return
	}
	kept := make([]ID, 0, len(s.index))
	for _, id := range s.items {
		if _, ok := s.index[id]; ok {
			kept = append(kept, id)
		}
	}
	s.items = kept
}

// Subtract removes every member of other.
func (s *IDSet) Subtract(other IDSet) {
	s.Remove(other.items...)
}

// Clear empties the set.
func (s *IDSet) Clear() {
	s.items = nil
	s.index = nil
}

func (s IDSet) Contains(id ID) bool {
	_, ok := s.index[id]
	return ok
}

// ContainsAll reports whether every member of other is in s.
func (s IDSet) ContainsAll(other IDSet) bool {
	for _, id := range other.items {
		if !s.Contains(id) {
			return false
		}
	}
	return true
}

func (s IDSet) Len() int { return len(s.items) }

func (s IDSet) IsEmpty() bool { return len(s.items) == 0 }

// Items returns a copy of the members in insertion order.
func (s IDSet) Items() []ID {
	out := make([]ID, len(s.items))
	copy(out, s.items)
	return out
}

// Clone returns an independent copy.
func (s IDSet) Clone() IDSet {
	return NewIDSet(s.items...)
}

func (s IDSet) String() string {
	parts := make([]string, len(s.items))
	for i, id := range s.items {
		parts[i] = id.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// MarshalJSON encodes the set as an array in insertion order. An empty set
// encodes as [] rather than null.
func (s IDSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Items())
}

func (s *IDSet) UnmarshalJSON(b []byte) error {
	var ids []ID
	if err := json.Unmarshal(b, &ids); err != nil {
		return err
	}
	s.Clear()
	s.Add(ids...)
	return nil
}
