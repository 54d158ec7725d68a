package timing

// GetDisplayedSpeedPercent returns the displayed scroll-speed percentage
// at the given beat and elapsed song time, interpolating any in-progress
// Speed ramp. musicSeconds must be the wall-clock time (ignoring
// OffsetSeconds) that corresponds to beat, as returned by
// ElapsedTimeFromBeatNoOffset — callers driving playback already have
// both values from the same tick.
func (t *TimingData) GetDisplayedSpeedPercent(beat, musicSeconds float64) float64 {
	if len(t.speeds.segs) == 0 {
		return 1.0
	}

	row := BeatToRow(beat)
	i := t.speeds.indexAtRow(row)
	cur := t.speeds.segs[i]
	if i == 0 && cur.StartRow > row {
		return 1.0
	}

	prevPercent := 1.0
	if i > 0 {
		prevPercent = t.speeds.segs[i-1].Percent
	}

	if cur.Wait <= 0 {
		return cur.Percent
	}

	var progress float64
	switch cur.Unit {
	case SpeedUnitSeconds:
		rampStartSec := t.ElapsedTimeFromBeatNoOffset(RowToBeat(cur.StartRow))
		progress = (musicSeconds - rampStartSec) / cur.Wait
	default: // SpeedUnitBeats
		progress = (beat - RowToBeat(cur.StartRow)) / cur.Wait
	}

	switch {
	case progress <= 0:
		return prevPercent
	case progress >= 1:
		return cur.Percent
	default:
		return prevPercent + (cur.Percent-prevPercent)*progress
	}
}

// GetDisplayedBeat returns the on-screen scroll position for beat,
// integrating every Scroll segment's ratio across the beats traversed so
// far. A ratio below 1 compresses the displayed note spacing; a negative
// ratio reverses it, matching the source chart format's "negative BPM"
// style reverse-scroll sections.
func (t *TimingData) GetDisplayedBeat(beat float64) float64 {
	if len(t.scrolls.segs) == 0 {
		return beat
	}

	row := BeatToRow(beat)
	displayed := 0.0
	cursorBeat := 0.0
	ratio := 1.0

	for _, seg := range t.scrolls.segs {
		if seg.StartRow > row {
			break
		}
		segBeat := RowToBeat(seg.StartRow)
		displayed += (segBeat - cursorBeat) * ratio
		cursorBeat = segBeat
		ratio = seg.Ratio
	}

	displayed += (beat - cursorBeat) * ratio
	return displayed
}
