// Package set provides a generic Set[T] and slice-uniqueness helpers.
package set

// Set is a generic set of unique elements. It is not synchronized;
// share it read-only or confine it to one goroutine.
type Set[T comparable] struct {
	items map[T]struct{}
}

// New creates a new empty Set.
func New[T comparable]() *Set[T] {
	return &Set[T]{items: make(map[T]struct{})}
}

// Of creates a new Set from the given elements.
func Of[T comparable](elements ...T) *Set[T] {
	s := New[T]()
	for _, e := range elements {
		s.items[e] = struct{}{}
	}
	return s
}

// Add adds an element. Returns true if it was not already present.
func (s *Set[T]) Add(elem T) bool {
	if _, exists := s.items[elem]; exists {
		return false
	}
	s.items[elem] = struct{}{}
	return true
}

// Contains returns true if the set contains the element.
func (s *Set[T]) Contains(elem T) bool {
	_, exists := s.items[elem]
	return exists
}

// Remove removes an element. Returns true if it was present.
func (s *Set[T]) Remove(elem T) bool {
	if _, exists := s.items[elem]; !exists {
		return false
	}
	delete(s.items, elem)
	return true
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// ToSlice returns all elements as a slice in unspecified order.
func (s *Set[T]) ToSlice() []T {
	result := make([]T, 0, len(s.items))
	for elem := range s.items {
		result = append(result, elem)
	}
	return result
}

// Distinct returns the elements of slice with duplicates removed,
// preserving first-occurrence order.
func Distinct[T comparable](slice []T) []T {
	seen := New[T]()
	result := make([]T, 0, len(slice))
	for _, elem := range slice {
		if seen.Add(elem) {
			result = append(result, elem)
		}
	}
	return result
}

// HasDuplicates reports whether slice contains a repeated element.
func HasDuplicates[T comparable](slice []T) bool {
	seen := New[T]()
	for _, elem := range slice {
		if !seen.Add(elem) {
			return true
		}
	}
	return false
}

// FirstDuplicate returns the first repeated element and true, or the
// zero value and false when all elements are unique.
func FirstDuplicate[T comparable](slice []T) (T, bool) {
	seen := New[T]()
	for _, elem := range slice {
		if !seen.Add(elem) {
			return elem, true
		}
	}
	var zero T
	return zero, false
}
