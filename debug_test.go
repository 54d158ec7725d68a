package timing

import "testing"

func TestGetTimeSignatureSegmentAtRow(t *testing.T) {
	td := New(0)
	must(t, td.SetTimeSignatureAtRow(0, 4, 4))
	must(t, td.SetTimeSignatureAtRow(96, 7, 8))

	got := td.GetTimeSignatureSegmentAtRow(96)
	want := TimeSignatureAt{Numerator: 7, Denominator: 8}
	if got != want {
		t.Errorf("GetTimeSignatureSegmentAtRow(96) = %+v, want %+v", got, want)
	}
}

func TestSetTimeSignatureNumeratorAtRowPreservesDenominator(t *testing.T) {
	td := New(0)
	must(t, td.SetTimeSignatureAtRow(0, 4, 8))
	must(t, td.SetTimeSignatureNumeratorAtRow(0, 3))

	num, denom := td.TimeSignatureAtRow(0)
	if num != 3 || denom != 8 {
		t.Errorf("TimeSignatureAtRow(0) = %d/%d, want 3/8", num, denom)
	}
}

func TestSetTimeSignatureDenominatorAtRowPreservesNumerator(t *testing.T) {
	td := New(0)
	must(t, td.SetTimeSignatureAtRow(0, 3, 4))
	must(t, td.SetTimeSignatureDenominatorAtRow(0, 16))

	num, denom := td.TimeSignatureAtRow(0)
	if num != 3 || denom != 16 {
		t.Errorf("TimeSignatureAtRow(0) = %d/%d, want 3/16", num, denom)
	}
}

func TestDebugIndexAtRow(t *testing.T) {
	td := New(0)
	must(t, td.SetBPMAtRow(0, 120))
	must(t, td.SetBPMAtRow(96, 150))
	must(t, td.SetBPMAtRow(192, 180))

	cases := []struct {
		row       int
		wantIndex int
	}{
		{0, 0},
		{50, 0},
		{96, 1},
		{300, 2},
	}
	for _, c := range cases {
		index, length := td.DebugIndexAtRow(DebugKindBPM, c.row)
		if index != c.wantIndex {
			t.Errorf("DebugIndexAtRow(BPM, %d) index = %d, want %d", c.row, index, c.wantIndex)
		}
		if length != 3 {
			t.Errorf("DebugIndexAtRow(BPM, %d) length = %d, want 3", c.row, length)
		}
	}

	if index, length := td.DebugIndexAtRow(DebugSegmentKind(999), 0); index != 0 || length != 0 {
		t.Errorf("DebugIndexAtRow(unknown kind) = (%d, %d), want (0, 0)", index, length)
	}
}

func TestNextAndPreviousSegmentBeat(t *testing.T) {
	td := New(0)
	must(t, td.SetBPMAtRow(0, 120))
	must(t, td.SetBPMAtRow(96, 150))

	if got := td.NextSegmentBeat(0); !approxEqual(got, RowToBeat(96)) {
		t.Errorf("NextSegmentBeat(0) = %v, want %v", got, RowToBeat(96))
	}
	if got := td.NextSegmentBeat(96); got != -1 {
		t.Errorf("NextSegmentBeat(96) = %v, want -1 (no later segment)", got)
	}
	if got := td.PreviousSegmentBeat(50); !approxEqual(got, RowToBeat(0)) {
		t.Errorf("PreviousSegmentBeat(50) = %v, want %v", got, RowToBeat(0))
	}
	if got := td.PreviousSegmentBeat(200); !approxEqual(got, RowToBeat(96)) {
		t.Errorf("PreviousSegmentBeat(200) = %v, want %v", got, RowToBeat(96))
	}
}
