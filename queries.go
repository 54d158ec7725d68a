package timing

import "math"

// Default segment values TidyUp installs and these queries fall back to
// before TidyUp has run.
const (
	DefaultBPM               = 60.0
	DefaultTimeSigNumerator  = 4
	DefaultTimeSigDenominator = 4
	DefaultTickcount         = 4
)

// BPMAtRow returns the BPM in effect at row. Returns DefaultBPM if
// TidyUp has not yet run and no BPM segment exists.
func (t *TimingData) BPMAtRow(row int) float64 {
	if seg, ok := t.bpms.at(row); ok {
		return seg.BPM
	}
	return DefaultBPM
}

// BPMAtBeat returns the BPM in effect at beat.
func (t *TimingData) BPMAtBeat(beat float64) float64 { return t.BPMAtRow(BeatToRow(beat)) }

// SetBPMAtRow sets (or replaces) the BPM segment at row.
func (t *TimingData) SetBPMAtRow(row int, bpm float64) error {
	if row < 0 {
		return ErrOutOfRange
	}
	if bpm <= 0 {
		return invalidSegment("BPM", "bpm must be strictly positive")
	}
	t.bpms.setAtRow(BPMSegment{StartRow: row, BPM: bpm})
	t.invalidate()
	return nil
}

// SetBPMAtBeat sets the BPM segment at beat.
func (t *TimingData) SetBPMAtBeat(beat, bpm float64) error {
	return t.SetBPMAtRow(BeatToRow(beat), bpm)
}

// StopAtRow returns the stop length, in seconds, at row (0 if none).
func (t *TimingData) StopAtRow(row int) float64 {
	if seg, ok := t.stops.at(row); ok && seg.StartRow == row {
		return seg.Seconds
	}
	return 0
}

// SetStopAtRow sets the stop length at row. A zero length removes the
// segment (spec invariant: neutral forms are dropped); a negative length
// is rejected with an InvalidSegmentError.
func (t *TimingData) SetStopAtRow(row int, seconds float64) error {
	if row < 0 {
		return ErrOutOfRange
	}
	if seconds < 0 {
		return invalidSegment("Stop", "seconds must be non-negative")
	}
	if seconds == 0 {
		t.stops.deleteAtRow(row)
	} else {
		t.stops.setAtRow(StopSegment{StartRow: row, Seconds: seconds})
	}
	t.invalidate()
	return nil
}

// DelayAtRow returns the delay length, in seconds, at row (0 if none).
func (t *TimingData) DelayAtRow(row int) float64 {
	if seg, ok := t.delays.at(row); ok && seg.StartRow == row {
		return seg.Seconds
	}
	return 0
}

// SetDelayAtRow sets the delay length at row; zero removes it.
func (t *TimingData) SetDelayAtRow(row int, seconds float64) error {
	if row < 0 {
		return ErrOutOfRange
	}
	if seconds < 0 {
		return invalidSegment("Delay", "seconds must be non-negative")
	}
	if seconds == 0 {
		t.delays.deleteAtRow(row)
	} else {
		t.delays.setAtRow(DelaySegment{StartRow: row, Seconds: seconds})
	}
	t.invalidate()
	return nil
}

// WarpDestinationBeat returns the beat a warp starting at row jumps to,
// or the row's own beat if no warp starts there.
func (t *TimingData) WarpDestinationBeat(row int) float64 {
	i := t.warps.lowerBound(row)
	if i < len(t.warps.segs) && t.warps.segs[i].StartRow == row {
		return RowToBeat(row) + t.warps.segs[i].LengthBeats
	}
	return RowToBeat(row)
}

// SetWarpAtRow sets a warp at row whose destination is destBeat. A
// destination at or before the row's own beat removes the warp.
func (t *TimingData) SetWarpAtRow(row int, destBeat float64) error {
	if row < 0 {
		return ErrOutOfRange
	}
	length := destBeat - RowToBeat(row)
	if length <= 0 {
		t.warps.deleteAtRow(row)
	} else {
		t.warps.setAtRow(WarpSegment{StartRow: row, LengthBeats: length})
	}
	t.invalidate()
	return nil
}

// IsWarpAtRow reports whether row falls inside a warp's skipped range.
// Warps never overlap in a well-formed chart, so only the last warp
// starting at or before row can possibly cover it.
func (t *TimingData) IsWarpAtRow(row int) bool {
	i := t.warps.lowerBound(row + 1)
	if i == 0 {
		return false
	}
	w := t.warps.segs[i-1]
	return w.StartRow+BeatToRow(w.LengthBeats) > row
}

// IsWarpAtBeat reports whether beat falls inside a warp's skipped range.
func (t *TimingData) IsWarpAtBeat(beat float64) bool { return t.IsWarpAtRow(BeatToRow(beat)) }

// IsFakeAtRow reports whether row falls inside a Fake region. Fake
// regions never overlap, so only the last one starting at or before row
// can possibly cover it.
func (t *TimingData) IsFakeAtRow(row int) bool {
	i := t.fakes.lowerBound(row + 1)
	if i == 0 {
		return false
	}
	f := t.fakes.segs[i-1]
	return f.StartRow+BeatToRow(f.LengthBeats) > row
}

// IsFakeAtBeat reports whether beat falls inside a Fake region.
func (t *TimingData) IsFakeAtBeat(beat float64) bool { return t.IsFakeAtRow(BeatToRow(beat)) }

// IsJudgableAtRow reports whether row is neither warped away nor faked.
func (t *TimingData) IsJudgableAtRow(row int) bool {
	return !t.IsWarpAtRow(row) && !t.IsFakeAtRow(row)
}

// IsJudgableAtBeat reports whether beat is neither warped away nor faked.
func (t *TimingData) IsJudgableAtBeat(beat float64) bool {
	return t.IsJudgableAtRow(BeatToRow(beat))
}

// TimeSignatureAtRow returns the numerator and denominator in effect at
// row, defaulting to 4/4.
func (t *TimingData) TimeSignatureAtRow(row int) (numerator, denominator int) {
	if seg, ok := t.timeSignatures.at(row); ok {
		return seg.Numerator, seg.Denominator
	}
	return DefaultTimeSigNumerator, DefaultTimeSigDenominator
}

// SetTimeSignatureAtRow sets both fields of the time signature at row.
func (t *TimingData) SetTimeSignatureAtRow(row, numerator, denominator int) error {
	if row < 0 {
		return ErrOutOfRange
	}
	if numerator < 1 || denominator < 1 {
		return invalidSegment("TimeSignature", "numerator and denominator must be >= 1")
	}
	t.timeSignatures.setAtRow(TimeSignatureSegment{StartRow: row, Numerator: numerator, Denominator: denominator})
	t.invalidate()
	return nil
}

// SetTimeSignatureNumeratorAtRow changes only the numerator at row,
// preserving whatever denominator is already in effect there.
func (t *TimingData) SetTimeSignatureNumeratorAtRow(row, numerator int) error {
	_, denom := t.TimeSignatureAtRow(row)
	return t.SetTimeSignatureAtRow(row, numerator, denom)
}

// SetTimeSignatureDenominatorAtRow changes only the denominator at row,
// preserving whatever numerator is already in effect there.
func (t *TimingData) SetTimeSignatureDenominatorAtRow(row, denominator int) error {
	num, _ := t.TimeSignatureAtRow(row)
	return t.SetTimeSignatureAtRow(row, num, denominator)
}

// TickcountAtRow returns the tickcount in effect at row, defaulting to
// DefaultTickcount.
func (t *TimingData) TickcountAtRow(row int) int {
	if seg, ok := t.tickcounts.at(row); ok {
		return seg.Ticks
	}
	return DefaultTickcount
}

// SetTickcountAtRow sets the tickcount at row.
func (t *TimingData) SetTickcountAtRow(row, ticks int) error {
	if row < 0 {
		return ErrOutOfRange
	}
	if ticks < 0 {
		return invalidSegment("Tickcount", "ticks must be non-negative")
	}
	t.tickcounts.setAtRow(TickcountSegment{StartRow: row, Ticks: ticks})
	t.invalidate()
	return nil
}

// ComboAtRow returns the hit-combo and miss-combo increments in effect
// at row.
func (t *TimingData) ComboAtRow(row int) (hitCombo, missCombo int) {
	if seg, ok := t.combos.at(row); ok {
		return seg.HitCombo, seg.MissCombo
	}
	return 0, 0
}

// SetComboAtRow sets the combo segment at row.
func (t *TimingData) SetComboAtRow(row, hitCombo, missCombo int) error {
	if row < 0 {
		return ErrOutOfRange
	}
	if hitCombo < 0 || missCombo < 0 {
		return invalidSegment("Combo", "hit and miss combo must be non-negative")
	}
	t.combos.setAtRow(ComboSegment{StartRow: row, HitCombo: hitCombo, MissCombo: missCombo})
	t.invalidate()
	return nil
}

// LabelAtRow returns the label text in effect at row ("" if none).
func (t *TimingData) LabelAtRow(row int) string {
	if seg, ok := t.labels.at(row); ok {
		return seg.Text
	}
	return ""
}

// SetLabelAtRow sets the label at row; an empty string removes it.
func (t *TimingData) SetLabelAtRow(row int, text string) error {
	if row < 0 {
		return ErrOutOfRange
	}
	for _, r := range text {
		if r == ',' || r == '=' {
			return invalidSegment("Label", "text must not contain a comma or equals-sign")
		}
	}
	if text == "" {
		t.labels.deleteAtRow(row)
	} else {
		t.labels.setAtRow(LabelSegment{StartRow: row, Text: text})
	}
	t.invalidate()
	return nil
}

// DoesLabelExist reports whether any label segment's text exactly
// matches text.
func (t *TimingData) DoesLabelExist(text string) bool {
	for _, l := range t.labels.segs {
		if l.Text == text {
			return true
		}
	}
	return false
}

// SpeedAtRow returns the speed segment in effect at row.
func (t *TimingData) SpeedAtRow(row int) (percent, wait float64, unit SpeedUnit) {
	if seg, ok := t.speeds.at(row); ok {
		return seg.Percent, seg.Wait, seg.Unit
	}
	return 1.0, 0, SpeedUnitBeats
}

// SetSpeedAtRow sets the speed segment at row.
func (t *TimingData) SetSpeedAtRow(row int, percent, wait float64, unit SpeedUnit) error {
	if row < 0 {
		return ErrOutOfRange
	}
	if wait < 0 {
		return invalidSegment("Speed", "wait must be non-negative")
	}
	t.speeds.setAtRow(SpeedSegment{StartRow: row, Percent: percent, Wait: wait, Unit: unit})
	t.invalidate()
	return nil
}

// ScrollAtRow returns the scroll ratio in effect at row (1.0 if none).
func (t *TimingData) ScrollAtRow(row int) float64 {
	if seg, ok := t.scrolls.at(row); ok {
		return seg.Ratio
	}
	return 1.0
}

// SetScrollAtRow sets the scroll ratio at row.
func (t *TimingData) SetScrollAtRow(row int, ratio float64) error {
	if row < 0 {
		return ErrOutOfRange
	}
	t.scrolls.setAtRow(ScrollSegment{StartRow: row, Ratio: ratio})
	t.invalidate()
	return nil
}

// FakeDestinationBeat returns the beat a Fake region starting at row
// extends to, or the row's own beat if no fake starts there.
func (t *TimingData) FakeDestinationBeat(row int) float64 {
	i := t.fakes.lowerBound(row)
	if i < len(t.fakes.segs) && t.fakes.segs[i].StartRow == row {
		return RowToBeat(row) + t.fakes.segs[i].LengthBeats
	}
	return RowToBeat(row)
}

// SetFakeAtRow sets a Fake region at row extending to destBeat. A
// destination at or before the row's own beat removes the region.
func (t *TimingData) SetFakeAtRow(row int, destBeat float64) error {
	if row < 0 {
		return ErrOutOfRange
	}
	length := destBeat - RowToBeat(row)
	if length <= 0 {
		t.fakes.deleteAtRow(row)
	} else {
		t.fakes.setAtRow(FakeSegment{StartRow: row, LengthBeats: length})
	}
	t.invalidate()
	return nil
}

// GetActualBPM reports the minimum and maximum BPM across all BPM
// segments, with the maximum clamped to cap.
func (t *TimingData) GetActualBPM(cap float64) (min, max float64) {
	if cap <= 0 {
		cap = math.MaxFloat32
	}
	min, max = math.MaxFloat64, 0
	for _, seg := range t.bpms.segs {
		if seg.BPM < min {
			min = seg.BPM
		}
		b := seg.BPM
		if b > cap {
			b = cap
		}
		if b > max {
			max = b
		}
	}
	if len(t.bpms.segs) == 0 {
		return 0, 0
	}
	return min, max
}

// HasWarps, HasFakes, HasSpeedChanges and HasScrollChanges are cheap
// existence checks used by CLI rendering to skip empty sections.
func (t *TimingData) HasWarps() bool         { return len(t.warps.segs) > 0 }
func (t *TimingData) HasFakes() bool         { return len(t.fakes.segs) > 0 }
func (t *TimingData) HasSpeedChanges() bool  { return len(t.speeds.segs) > 0 }
func (t *TimingData) HasScrollChanges() bool { return len(t.scrolls.segs) > 0 }

// NoteRowToMeasureAndBeat splits row into a measure number and the beat
// offset within that measure, using the time signature in effect at row
// itself (not at row 0) — see DESIGN.md for the rationale.
func (t *TimingData) NoteRowToMeasureAndBeat(row int) (measure int, beatInMeasure float64) {
	sig := t.GetTimeSignatureSegmentAtRow(row)
	seg, ok := t.timeSignatures.at(row)
	sigStartRow := 0
	if ok {
		sigStartRow = seg.StartRow
	}

	beatsPerMeasure := float64(sig.Numerator)
	rowsIntoSig := row - sigStartRow
	beatsIntoSig := RowToBeat(rowsIntoSig)

	measure = int(math.Floor(beatsIntoSig / beatsPerMeasure))
	beatInMeasure = beatsIntoSig - float64(measure)*beatsPerMeasure
	return measure, beatInMeasure
}
