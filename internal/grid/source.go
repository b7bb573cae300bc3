package grid

// Source supplies the grid's raw item sequence. A source that also
// implements MutableSource supports local insert and delete; otherwise
// those mutations are silently skipped and only the notification events
// fire, leaving persistence to the host.
type Source[T any] interface {
	Items() []T
}

// MutableSource is a Source whose item collection the grid may mutate
// when internal editing is enabled.
type MutableSource[T any] interface {
	Source[T]
	Append(item T)
	Remove(item T) bool
	Contains(item T) bool
}

// SliceSource is a MutableSource backed by a slice. T is normally a
// pointer type so grid edits are visible to the owner of the items.
type SliceSource[T comparable] struct {
	items []T
}

// NewSliceSource creates a slice-backed mutable source.
func NewSliceSource[T comparable](items ...T) *SliceSource[T] {
	return &SliceSource[T]{items: items}
}

// Items returns the backing slice.
func (s *SliceSource[T]) Items() []T {
	return s.items
}

// Len returns the item count.
func (s *SliceSource[T]) Len() int {
	return len(s.items)
}

// Append adds an item to the end of the collection.
func (s *SliceSource[T]) Append(item T) {
	s.items = append(s.items, item)
}

// Remove deletes the first occurrence of item, reporting whether it was
// present.
func (s *SliceSource[T]) Remove(item T) bool {
	for i, it := range s.items {
		if it == item {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether item is in the collection.
func (s *SliceSource[T]) Contains(item T) bool {
	for _, it := range s.items {
		if it == item {
			return true
		}
	}
	return false
}

// FixedSource is a read-only Source over a slice, for hosts that manage
// persistence themselves.
type FixedSource[T any] struct {
	items []T
}

// NewFixedSource creates a read-only source.
func NewFixedSource[T any](items ...T) *FixedSource[T] {
	return &FixedSource[T]{items: items}
}

// Items returns the backing slice.
func (s *FixedSource[T]) Items() []T {
	return s.items
}
