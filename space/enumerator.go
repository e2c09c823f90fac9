package space

import (
	"iter"
)

// Enumerator walks the Cartesian product of a range table one point at a
// time, like an odometer: B0 advances on every step and IssueWidth
// advances last. Consumers that write fixed-column tuples rely on this
// order.
//
// An Enumerator is not safe for concurrent use; create one per goroutine
// or use All, which hands every caller its own iteration state.
type Enumerator struct {
	ranges  Ranges
	current Point
	started bool
	done    bool
}

// NewEnumerator creates an Enumerator over the given ranges. Ranges with a
// negative bound or a non-positive step are rejected. An inverted range is
// accepted and yields an empty enumeration.
func NewEnumerator(ranges Ranges) (*Enumerator, error) {
	if err := ranges.Validate(); err != nil {
		return nil, err
	}

	e := &Enumerator{ranges: ranges}
	e.Reset()
	return e, nil
}

// Enumerate is shorthand for NewEnumerator followed by All.
func Enumerate(ranges Ranges) (iter.Seq[Point], error) {
	e, err := NewEnumerator(ranges)
	if err != nil {
		return nil, err
	}
	return e.All(), nil
}

// Ranges returns the range table being enumerated.
func (e *Enumerator) Ranges() Ranges {
	return e.ranges
}

// Len returns the total number of points the enumeration yields.
func (e *Enumerator) Len() int {
	return e.ranges.Count()
}

// Reset rewinds the enumeration to its first point.
func (e *Enumerator) Reset() {
	e.current = Point{}
	e.started = false
	e.done = e.ranges.Empty()
}

// Next returns the next point. The second result is false once the
// enumeration is exhausted.
func (e *Enumerator) Next() (Point, bool) {
	if e.done {
		return Point{}, false
	}

	if !e.started {
		for i, r := range e.ranges {
			e.current[i] = r.Min
		}
		e.started = true
		return e.current, true
	}

	for i := int(NumParams) - 1; i >= 0; i-- {
		r := e.ranges[i]
		if r.Max-e.current[i] > r.Step {
			e.current[i] += r.Step
			return e.current, true
		}
		e.current[i] = r.Min
	}

	e.done = true
	return Point{}, false
}

// All returns the enumeration as a lazy sequence. Every iteration of the
// returned sequence starts from the first point and is independent of the
// receiver's own Next/Reset state.
func (e *Enumerator) All() iter.Seq[Point] {
	ranges := e.ranges
	return func(yield func(Point) bool) {
		it := &Enumerator{ranges: ranges}
		it.Reset()
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}
