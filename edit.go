package timing

import (
	"math"
	"sort"

	clone "github.com/huandu/go-clone/generic"
)

// rowShiftable is the constraint region editors need beyond rowEqual: a
// way to produce a copy of a segment at a different row. Kept separate
// from rowEqual so the store itself never needs to know edits exist.
type rowShiftable[T any] interface {
	rowEqual[T]
	WithRow(row int) T
}

// shiftFrom moves every segment with Row() >= threshold forward by delta
// (delta may be negative). Shifting preserves relative order, so no
// re-sort is needed.
func shiftFrom[T rowShiftable[T]](s *store[T], threshold, delta int) {
	for i := range s.segs {
		if r := s.segs[i].Row(); r >= threshold {
			s.segs[i] = s.segs[i].WithRow(r + delta)
		}
	}
}

// deleteRange removes every segment with Row() in [startRow, startRow +
// rowsToDelete) and shifts everything after the deleted range backward
// by rowsToDelete.
func deleteRange[T rowShiftable[T]](s *store[T], startRow, rowsToDelete int) {
	out := s.segs[:0]
	for _, seg := range s.segs {
		r := seg.Row()
		switch {
		case r < startRow:
			out = append(out, seg)
		case r >= startRow+rowsToDelete:
			out = append(out, seg.WithRow(r-rowsToDelete))
		}
	}
	s.segs = out
	s.coalesceAll()
}

// scaleRange remaps every segment's row per ScaleRegion's formula:
// segments inside [startRow, endRow) are scaled from startRow; segments
// at or after endRow shift by the region's net growth.
func scaleRange[T rowShiftable[T]](s *store[T], startRow, endRow int, scale float64) {
	regionShift := int(math.Round(float64(endRow-startRow) * (scale - 1)))
	for i := range s.segs {
		r := s.segs[i].Row()
		switch {
		case r >= startRow && r < endRow:
			newRow := startRow + int(math.Round(float64(r-startRow)*scale))
			s.segs[i] = s.segs[i].WithRow(newRow)
		case r >= endRow:
			s.segs[i] = s.segs[i].WithRow(r + regionShift)
		}
	}
	sort.Slice(s.segs, func(i, j int) bool { return s.segs[i].Row() < s.segs[j].Row() })
	s.coalesceAll()
}

// ScaleRegion multiplies the row span [startRow, endRow) by scale across
// every segment kind, shifting everything after the region by the span's
// net growth. If adjustBPM, every BPM segment inside the original region
// has its bpm multiplied by scale: stretching the region's row span by
// scale also stretches its beat span by scale (Beat = Row/RowsPerBeat
// is unaffected by this edit), so the tempo must grow by the same
// factor for elapsed = beats/bps to come out unchanged.
func (t *TimingData) ScaleRegion(scale float64, startRow, endRow int, adjustBPM bool) error {
	if startRow < 0 || endRow < startRow {
		return ErrOutOfRange
	}
	if scale <= 0 {
		return invalidSegment("ScaleRegion", "scale must be strictly positive")
	}

	if adjustBPM {
		for i := range t.bpms.segs {
			r := t.bpms.segs[i].Row()
			if r >= startRow && r < endRow {
				t.bpms.segs[i].BPM *= scale
			}
		}
	}

	scaleRange(&t.bpms, startRow, endRow, scale)
	scaleRange(&t.stops, startRow, endRow, scale)
	scaleRange(&t.delays, startRow, endRow, scale)
	scaleRange(&t.warps, startRow, endRow, scale)
	scaleRange(&t.timeSignatures, startRow, endRow, scale)
	scaleRange(&t.tickcounts, startRow, endRow, scale)
	scaleRange(&t.combos, startRow, endRow, scale)
	scaleRange(&t.labels, startRow, endRow, scale)
	scaleRange(&t.speeds, startRow, endRow, scale)
	scaleRange(&t.scrolls, startRow, endRow, scale)
	scaleRange(&t.fakes, startRow, endRow, scale)

	t.invalidate()
	return nil
}

// InsertRows shifts every segment at or after startRow forward by
// rowsToAdd, across every kind.
func (t *TimingData) InsertRows(startRow, rowsToAdd int) error {
	if startRow < 0 {
		return ErrOutOfRange
	}
	if rowsToAdd < 0 {
		return invalidSegment("InsertRows", "rowsToAdd must be non-negative")
	}

	shiftFrom(&t.bpms, startRow, rowsToAdd)
	shiftFrom(&t.stops, startRow, rowsToAdd)
	shiftFrom(&t.delays, startRow, rowsToAdd)
	shiftFrom(&t.warps, startRow, rowsToAdd)
	shiftFrom(&t.timeSignatures, startRow, rowsToAdd)
	shiftFrom(&t.tickcounts, startRow, rowsToAdd)
	shiftFrom(&t.combos, startRow, rowsToAdd)
	shiftFrom(&t.labels, startRow, rowsToAdd)
	shiftFrom(&t.speeds, startRow, rowsToAdd)
	shiftFrom(&t.scrolls, startRow, rowsToAdd)
	shiftFrom(&t.fakes, startRow, rowsToAdd)

	t.invalidate()
	return nil
}

// DeleteRows removes every segment in [startRow, startRow+rowsToDelete)
// across every kind, and shifts everything after the deleted span
// backward by rowsToDelete.
func (t *TimingData) DeleteRows(startRow, rowsToDelete int) error {
	if startRow < 0 {
		return ErrOutOfRange
	}
	if rowsToDelete < 0 {
		return invalidSegment("DeleteRows", "rowsToDelete must be non-negative")
	}

	deleteRange(&t.bpms, startRow, rowsToDelete)
	deleteRange(&t.stops, startRow, rowsToDelete)
	deleteRange(&t.delays, startRow, rowsToDelete)
	deleteRange(&t.warps, startRow, rowsToDelete)
	deleteRange(&t.timeSignatures, startRow, rowsToDelete)
	deleteRange(&t.tickcounts, startRow, rowsToDelete)
	deleteRange(&t.combos, startRow, rowsToDelete)
	deleteRange(&t.labels, startRow, rowsToDelete)
	deleteRange(&t.speeds, startRow, rowsToDelete)
	deleteRange(&t.scrolls, startRow, rowsToDelete)
	deleteRange(&t.fakes, startRow, rowsToDelete)

	t.invalidate()
	return nil
}

// MultiplyBPMInBeatRange multiplies the bpm of every BPM segment whose
// row falls in [startRow, endRow) by factor.
func (t *TimingData) MultiplyBPMInBeatRange(startRow, endRow int, factor float64) error {
	if startRow < 0 || endRow < startRow {
		return ErrOutOfRange
	}
	if factor <= 0 {
		return invalidSegment("MultiplyBPMInBeatRange", "factor must be strictly positive")
	}
	for i := range t.bpms.segs {
		r := t.bpms.segs[i].Row()
		if r >= startRow && r < endRow {
			t.bpms.segs[i].BPM *= factor
		}
	}
	t.invalidate()
	return nil
}

// CopyRange returns a new TimingData containing a deep copy of every
// segment in [startRow, endRow), rebased so startRow becomes row 0. The
// new TimingData inherits offsetSeconds and must be TidyUp'd separately
// by the caller if it needs defaults installed.
func (t *TimingData) CopyRange(startRow, endRow int) (*TimingData, error) {
	if startRow < 0 || endRow < startRow {
		return nil, ErrOutOfRange
	}

	out := New(t.offsetSeconds)
	out.sourceFile = t.sourceFile

	rebase(&out.bpms, t.bpms.inRange(startRow, endRow), startRow)
	rebase(&out.stops, t.stops.inRange(startRow, endRow), startRow)
	rebase(&out.delays, t.delays.inRange(startRow, endRow), startRow)
	rebase(&out.warps, t.warps.inRange(startRow, endRow), startRow)
	rebase(&out.timeSignatures, t.timeSignatures.inRange(startRow, endRow), startRow)
	rebase(&out.tickcounts, t.tickcounts.inRange(startRow, endRow), startRow)
	rebase(&out.combos, t.combos.inRange(startRow, endRow), startRow)
	rebase(&out.labels, t.labels.inRange(startRow, endRow), startRow)
	rebase(&out.speeds, t.speeds.inRange(startRow, endRow), startRow)
	rebase(&out.scrolls, t.scrolls.inRange(startRow, endRow), startRow)
	rebase(&out.fakes, t.fakes.inRange(startRow, endRow), startRow)

	out.invalidate()
	return out, nil
}

// rebase deep-copies src via clone.Clone (so no slice backing array is
// shared with the source TimingData, matching the exclusive-ownership
// contract in this package's documentation) and appends each element to
// dst with its row shifted down by startRow.
func rebase[T rowShiftable[T]](dst *store[T], src []T, startRow int) {
	cp := clone.Clone(src)
	dst.segs = make([]T, len(cp))
	for i, seg := range cp {
		dst.segs[i] = seg.WithRow(seg.Row() - startRow)
	}
}
