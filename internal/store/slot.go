// Package store holds the "last record" of a console desk.
package store

// Slot holds at most one record. It is not safe for concurrent use.
type Slot[T any] struct {
	record T
	ok     bool
}

// Set replaces the stored record.
func (s *Slot[T]) Set(record T) {
	s.record = record
	s.ok = true
}

// Get returns the stored record and whether one is present.
func (s *Slot[T]) Get() (T, bool) {
	return s.record, s.ok
}

// Has reports whether a record is stored.
func (s *Slot[T]) Has() bool {
	return s.ok
}

// Clear drops the stored record.
func (s *Slot[T]) Clear() {
	var zero T
	s.record = zero
	s.ok = false
}
