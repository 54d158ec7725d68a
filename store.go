package timing

import "sort"

// store holds one kind's segments, strictly sorted and deduplicated by
// StartRow. Single-segment inserts, replacements and deletes go through
// its methods; the region editors in edit.go and TidyUp's neutral-segment
// sweep rewrite segs directly.
type store[T rowEqual[T]] struct {
	segs []T
}

// lowerBound returns the index of the first segment with Row() >= row.
func (s *store[T]) lowerBound(row int) int {
	return sort.Search(len(s.segs), func(i int) bool {
		return s.segs[i].Row() >= row
	})
}

// indexAtRow returns the index of the last segment with Row() <= row.
// It returns 0 when the store is empty, and also 0 when every segment
// starts after row; callers for kinds TidyUp fills guarantee
// non-emptiness before relying on the result.
func (s *store[T]) indexAtRow(row int) int {
	i := s.lowerBound(row + 1)
	if i == 0 {
		return 0
	}
	return i - 1
}

// at returns the payload used to answer "X at row" for kinds that may
// be empty, plus whether a segment was actually found.
func (s *store[T]) at(row int) (T, bool) {
	var zero T
	if len(s.segs) == 0 {
		return zero, false
	}
	return s.segs[s.indexAtRow(row)], true
}

// nextStartRow returns the row of the first segment with Row() > row,
// or (-1, false) if none.
func (s *store[T]) nextStartRow(row int) (int, bool) {
	i := s.lowerBound(row + 1)
	if i >= len(s.segs) {
		return -1, false
	}
	return s.segs[i].Row(), true
}

// prevStartRow returns the row of the last segment with Row() <= row, or
// (-1, false) if none.
func (s *store[T]) prevStartRow(row int) (int, bool) {
	i := s.lowerBound(row + 1)
	if i == 0 {
		return -1, false
	}
	return s.segs[i-1].Row(), true
}

// setAtRow inserts seg in sorted order, or replaces the existing
// segment at the same row. After the write, if the segment's value now
// equals the immediately preceding segment's value, it is dropped
// instead (effective-equality coalescing, spec invariant 2).
func (s *store[T]) setAtRow(seg T) {
	i := s.lowerBound(seg.Row())
	switch {
	case i < len(s.segs) && s.segs[i].Row() == seg.Row():
		s.segs[i] = seg
	default:
		s.segs = append(s.segs, seg)
		copy(s.segs[i+1:], s.segs[i:])
		s.segs[i] = seg
	}
	s.coalesceAt(i)
	s.assertSorted()
}

// assertSorted panics with an assertionFailure if the segment sequence
// is not strictly increasing by row. Every mutator in this file is
// meant to preserve that invariant; a violation here is this package's
// own bug, not a caller error, so it is never returned as an error.
func (s *store[T]) assertSorted() {
	for i := 1; i < len(s.segs); i++ {
		assertf(s.segs[i-1].Row() < s.segs[i].Row(),
			"store: rows out of order or duplicated at index %d (row %d) and %d (row %d)",
			i-1, s.segs[i-1].Row(), i, s.segs[i].Row())
	}
}

// coalesceAt drops the segment at index i if it is value-equal to the
// segment immediately before it.
func (s *store[T]) coalesceAt(i int) {
	if i <= 0 || i >= len(s.segs) {
		return
	}
	if s.segs[i].Equals(s.segs[i-1]) {
		s.segs = append(s.segs[:i], s.segs[i+1:]...)
	}
}

// deleteAtRow removes the segment whose StartRow equals row, if any.
func (s *store[T]) deleteAtRow(row int) {
	i := s.lowerBound(row)
	if i < len(s.segs) && s.segs[i].Row() == row {
		s.segs = append(s.segs[:i], s.segs[i+1:]...)
	}
}

// deleteAt removes the segment at the given slice index.
func (s *store[T]) deleteAt(i int) {
	s.segs = append(s.segs[:i], s.segs[i+1:]...)
}

// inRange returns the slice of segments with Row() in [start, end).
func (s *store[T]) inRange(start, end int) []T {
	lo := s.lowerBound(start)
	hi := s.lowerBound(end)
	return s.segs[lo:hi]
}

// coalesceAll sweeps the whole sequence once, dropping any segment that
// is value-equal to its predecessor. Used by TidyUp and after bulk
// region edits that may have produced new adjacent duplicates.
func (s *store[T]) coalesceAll() {
	out := s.segs[:0]
	for _, seg := range s.segs {
		if n := len(out); n > 0 && seg.Equals(out[n-1]) {
			continue
		}
		out = append(out, seg)
	}
	s.segs = out
	s.assertSorted()
}

func (s *store[T]) clone() store[T] {
	cp := make([]T, len(s.segs))
	copy(cp, s.segs)
	return store[T]{segs: cp}
}
