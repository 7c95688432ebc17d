// Package timerange provides a closed time interval with overlap and
// intersection arithmetic.
package timerange

import (
	"fmt"
	"time"

	"github.com/logistics-platform/libs/go/measures/functional"
)

// Range is an interval between two instants, start inclusive and end
// inclusive. A Range is immutable once constructed.
type Range struct {
	start time.Time
	end   time.Time
}

// NewRange creates a Range. The end must not be before the start.
func NewRange(start, end time.Time) (Range, error) {
	if end.Before(start) {
		return Range{}, fmt.Errorf("range end %s before start %s", end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	return Range{start: start, end: end}, nil
}

// MustNewRange creates a Range, panicking on invalid input.
func MustNewRange(start, end time.Time) Range {
	r, err := NewRange(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

// Start returns the inclusive start instant.
func (r Range) Start() time.Time {
	return r.start
}

// End returns the inclusive end instant.
func (r Range) End() time.Time {
	return r.end
}

// Duration returns the length of the range.
func (r Range) Duration() time.Duration {
	return r.end.Sub(r.start)
}

// Contains reports whether t falls inside the range.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.start) && !t.After(r.end)
}

// ContainsRange reports whether other lies entirely inside the range.
func (r Range) ContainsRange(other Range) bool {
	return !other.start.Before(r.start) && !other.end.After(r.end)
}

// Overlaps reports whether the two ranges share any instant.
func (r Range) Overlaps(other Range) bool {
	return r.OverlapsBy(other, 0)
}

// OverlapsBy reports whether the two ranges share at least minOverlap
// of time. A zero tolerance counts a single shared boundary instant.
func (r Range) OverlapsBy(other Range, minOverlap time.Duration) bool {
	overlap, ok := r.Intersection(other).Get()
	if !ok {
		return false
	}
	return overlap.Duration() >= minOverlap
}

// Intersection returns the shared sub-range, or None when the ranges
// are disjoint.
func (r Range) Intersection(other Range) functional.Option[Range] {
	start := r.start
	if other.start.After(start) {
		start = other.start
	}
	end := r.end
	if other.end.Before(end) {
		end = other.end
	}
	if end.Before(start) {
		return functional.None[Range]()
	}
	return functional.Some(Range{start: start, end: end})
}

// Equals checks whether both endpoints coincide.
func (r Range) Equals(other Range) bool {
	return r.start.Equal(other.start) && r.end.Equal(other.end)
}

// String renders the range as "start/end" in RFC 3339.
func (r Range) String() string {
	return r.start.Format(time.RFC3339) + "/" + r.end.Format(time.RFC3339)
}
