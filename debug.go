package timing

// TimeSignatureAt is the struct form of TimeSignatureAtRow, used where a
// single value is more convenient than two return values (e.g.
// NoteRowToMeasureAndBeat's internal lookup).
type TimeSignatureAt struct {
	Numerator   int
	Denominator int
}

// GetTimeSignatureSegmentAtRow returns both time signature fields as a
// single struct.
func (t *TimingData) GetTimeSignatureSegmentAtRow(row int) TimeSignatureAt {
	num, denom := t.TimeSignatureAtRow(row)
	return TimeSignatureAt{Numerator: num, Denominator: denom}
}

// DebugSegmentKind names a segment kind for DebugIndexAtRow, independent
// of SegmentKind so CLI tooling can add a stable diagnostic surface
// without coupling to the serialization enum.
type DebugSegmentKind int

const (
	DebugKindBPM DebugSegmentKind = iota
	DebugKindStop
	DebugKindDelay
	DebugKindWarp
	DebugKindTimeSignature
	DebugKindTickcount
	DebugKindCombo
	DebugKindLabel
	DebugKindSpeed
	DebugKindScroll
	DebugKindFake
)

// DebugIndexAtRow reports the slice index indexAtRow would use for kind
// at row, and the length of that kind's sequence — a diagnostic used by
// cmd/timingdump and cmd/timingwalk to show which segment governs the
// current cursor position.
func (t *TimingData) DebugIndexAtRow(kind DebugSegmentKind, row int) (index, length int) {
	switch kind {
	case DebugKindBPM:
		return t.bpms.indexAtRow(row), len(t.bpms.segs)
	case DebugKindStop:
		return t.stops.indexAtRow(row), len(t.stops.segs)
	case DebugKindDelay:
		return t.delays.indexAtRow(row), len(t.delays.segs)
	case DebugKindWarp:
		return t.warps.indexAtRow(row), len(t.warps.segs)
	case DebugKindTimeSignature:
		return t.timeSignatures.indexAtRow(row), len(t.timeSignatures.segs)
	case DebugKindTickcount:
		return t.tickcounts.indexAtRow(row), len(t.tickcounts.segs)
	case DebugKindCombo:
		return t.combos.indexAtRow(row), len(t.combos.segs)
	case DebugKindLabel:
		return t.labels.indexAtRow(row), len(t.labels.segs)
	case DebugKindSpeed:
		return t.speeds.indexAtRow(row), len(t.speeds.segs)
	case DebugKindScroll:
		return t.scrolls.indexAtRow(row), len(t.scrolls.segs)
	case DebugKindFake:
		return t.fakes.indexAtRow(row), len(t.fakes.segs)
	default:
		return 0, 0
	}
}

// NextSegmentBeat returns the beat of the next BPM segment starting
// strictly after row, or -1 if none. The other ten kinds follow the same
// shape; BPM is exposed here because it is the one the CLI tools query
// most, per original_source's GetNextSegmentBeatAtRow family.
func (t *TimingData) NextSegmentBeat(row int) float64 {
	if r, ok := t.bpms.nextStartRow(row); ok {
		return RowToBeat(r)
	}
	return -1
}

// PreviousSegmentBeat returns the beat of the last BPM segment starting
// at or before row, or -1 if none.
func (t *TimingData) PreviousSegmentBeat(row int) float64 {
	if r, ok := t.bpms.prevStartRow(row); ok {
		return RowToBeat(r)
	}
	return -1
}
