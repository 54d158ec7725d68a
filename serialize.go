package timing

import (
	"fmt"
	"strconv"
	"strings"
)

// SegmentKind identifies one of the eleven segment sequences, used by
// ToVectorString to pick which store to render.
type SegmentKind int

const (
	KindBPM SegmentKind = iota
	KindStop
	KindDelay
	KindWarp
	KindTimeSignature
	KindTickcount
	KindCombo
	KindLabel
	KindSpeed
	KindScroll
	KindFake
)

func formatFloat(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// ToVectorString renders every segment of kind as "<beat>=<payload>",
// one per line joined with "\n", payload fields separated by "=" in
// declaration order, floats rendered to decimals places and
// booleans/enums as 0/1 integers. Used by chart serializers; this
// package has no file format of its own.
func (t *TimingData) ToVectorString(kind SegmentKind, decimals int) string {
	var lines []string
	switch kind {
	case KindBPM:
		for _, s := range t.bpms.segs {
			lines = append(lines, fmt.Sprintf("%s=%s", formatFloat(RowToBeat(s.StartRow), decimals), formatFloat(s.BPM, decimals)))
		}
	case KindStop:
		for _, s := range t.stops.segs {
			lines = append(lines, fmt.Sprintf("%s=%s", formatFloat(RowToBeat(s.StartRow), decimals), formatFloat(s.Seconds, decimals)))
		}
	case KindDelay:
		for _, s := range t.delays.segs {
			lines = append(lines, fmt.Sprintf("%s=%s", formatFloat(RowToBeat(s.StartRow), decimals), formatFloat(s.Seconds, decimals)))
		}
	case KindWarp:
		for _, s := range t.warps.segs {
			lines = append(lines, fmt.Sprintf("%s=%s", formatFloat(RowToBeat(s.StartRow), decimals), formatFloat(s.LengthBeats, decimals)))
		}
	case KindTimeSignature:
		for _, s := range t.timeSignatures.segs {
			lines = append(lines, fmt.Sprintf("%s=%d=%d", formatFloat(RowToBeat(s.StartRow), decimals), s.Numerator, s.Denominator))
		}
	case KindTickcount:
		for _, s := range t.tickcounts.segs {
			lines = append(lines, fmt.Sprintf("%s=%d", formatFloat(RowToBeat(s.StartRow), decimals), s.Ticks))
		}
	case KindCombo:
		for _, s := range t.combos.segs {
			lines = append(lines, fmt.Sprintf("%s=%d=%d", formatFloat(RowToBeat(s.StartRow), decimals), s.HitCombo, s.MissCombo))
		}
	case KindLabel:
		for _, s := range t.labels.segs {
			lines = append(lines, fmt.Sprintf("%s=%s", formatFloat(RowToBeat(s.StartRow), decimals), s.Text))
		}
	case KindSpeed:
		for _, s := range t.speeds.segs {
			unit := 0
			if s.Unit == SpeedUnitSeconds {
				unit = 1
			}
			lines = append(lines, fmt.Sprintf("%s=%s=%s=%d", formatFloat(RowToBeat(s.StartRow), decimals), formatFloat(s.Percent, decimals), formatFloat(s.Wait, decimals), unit))
		}
	case KindScroll:
		for _, s := range t.scrolls.segs {
			lines = append(lines, fmt.Sprintf("%s=%s", formatFloat(RowToBeat(s.StartRow), decimals), formatFloat(s.Ratio, decimals)))
		}
	case KindFake:
		for _, s := range t.fakes.segs {
			lines = append(lines, fmt.Sprintf("%s=%s", formatFloat(RowToBeat(s.StartRow), decimals), formatFloat(s.LengthBeats, decimals)))
		}
	}
	return strings.Join(lines, "\n")
}

// Equal reports whether t and other have bitwise-equal offsetSeconds and
// element-wise-equal segment sequences in every kind (start row and
// payload, both exact).
func (t *TimingData) Equal(other *TimingData) bool {
	if other == nil {
		return false
	}
	if t.offsetSeconds != other.offsetSeconds {
		return false
	}
	return storeEqual(t.bpms, other.bpms) &&
		storeEqual(t.stops, other.stops) &&
		storeEqual(t.delays, other.delays) &&
		storeEqual(t.warps, other.warps) &&
		storeEqual(t.timeSignatures, other.timeSignatures) &&
		storeEqual(t.tickcounts, other.tickcounts) &&
		storeEqual(t.combos, other.combos) &&
		storeEqual(t.labels, other.labels) &&
		storeEqual(t.speeds, other.speeds) &&
		storeEqual(t.scrolls, other.scrolls) &&
		storeEqual(t.fakes, other.fakes)
}

func storeEqual[T rowEqual[T]](a, b store[T]) bool {
	if len(a.segs) != len(b.segs) {
		return false
	}
	for i := range a.segs {
		if a.segs[i].Row() != b.segs[i].Row() || !a.segs[i].Equals(b.segs[i]) {
			return false
		}
	}
	return true
}
