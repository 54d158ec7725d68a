package timing

import "testing"

func TestBPMAtRowDefaultsBeforeTidyUp(t *testing.T) {
	td := New(0)
	if got := td.BPMAtRow(0); got != DefaultBPM {
		t.Errorf("BPMAtRow(0) on empty TimingData = %v, want %v", got, DefaultBPM)
	}
}

func TestSetBPMAtRowRejectsNonPositive(t *testing.T) {
	td := New(0)
	if err := td.SetBPMAtRow(0, 0); err == nil {
		t.Error("SetBPMAtRow(0, 0) = nil error, want InvalidSegmentError")
	}
	if err := td.SetBPMAtRow(0, -10); err == nil {
		t.Error("SetBPMAtRow(0, -10) = nil error, want InvalidSegmentError")
	}
}

func TestSetStopAtRowZeroRemoves(t *testing.T) {
	td := New(0)
	must(t, td.SetStopAtRow(48, 1.0))
	if got := td.StopAtRow(48); got != 1.0 {
		t.Fatalf("StopAtRow(48) = %v, want 1.0", got)
	}
	must(t, td.SetStopAtRow(48, 0))
	if got := td.StopAtRow(48); got != 0 {
		t.Errorf("StopAtRow(48) = %v, want 0 after setting to 0", got)
	}
}

func TestIsJudgableAtRow(t *testing.T) {
	td := New(0)
	must(t, td.SetWarpAtRow(48, RowToBeat(48)+1))
	must(t, td.SetFakeAtRow(192, RowToBeat(192)+1))

	cases := []struct {
		row      int
		judgable bool
	}{
		{0, true},
		{60, false},   // inside the warp
		{200, false},  // inside the fake
		{300, true},
	}
	for _, c := range cases {
		if got := td.IsJudgableAtRow(c.row); got != c.judgable {
			t.Errorf("IsJudgableAtRow(%d) = %v, want %v", c.row, got, c.judgable)
		}
	}
}

func TestDoesLabelExist(t *testing.T) {
	td := New(0)
	must(t, td.SetLabelAtRow(96, "chorus"))

	if !td.DoesLabelExist("chorus") {
		t.Error("DoesLabelExist(\"chorus\") = false, want true")
	}
	if td.DoesLabelExist("bridge") {
		t.Error("DoesLabelExist(\"bridge\") = true, want false")
	}
}

func TestSetLabelAtRowRejectsSeparators(t *testing.T) {
	td := New(0)
	if err := td.SetLabelAtRow(0, "verse,1"); err == nil {
		t.Error("SetLabelAtRow with a comma in the text = nil error, want InvalidSegmentError")
	}
	if err := td.SetLabelAtRow(0, "verse=1"); err == nil {
		t.Error("SetLabelAtRow with an equals-sign in the text = nil error, want InvalidSegmentError")
	}
}

func TestGetActualBPM(t *testing.T) {
	td := New(0)
	must(t, td.SetBPMAtRow(0, 100))
	must(t, td.SetBPMAtRow(96, 300))
	must(t, td.SetBPMAtRow(192, 200))

	min, max := td.GetActualBPM(250)
	if min != 100 {
		t.Errorf("min = %v, want 100", min)
	}
	if max != 250 {
		t.Errorf("max = %v, want 250 (clamped from 300)", max)
	}
}

func TestNoteRowToMeasureAndBeatUsesRowLocalTimeSignature(t *testing.T) {
	td := New(0)
	must(t, td.SetTimeSignatureAtRow(0, 4, 4))
	must(t, td.SetTimeSignatureAtRow(BeatToRow(8), 3, 4))

	// Row-local: at beat 10 (two beats into the 3/4 section), measure
	// boundaries are every 3 beats from beat 8 onward, not every 4.
	measure, beatInMeasure := td.NoteRowToMeasureAndBeat(BeatToRow(10))
	if measure != 0 {
		t.Errorf("measure = %d, want 0 (no full 3-beat measure elapsed since the signature changed)", measure)
	}
	if !approxEqual(beatInMeasure, 2) {
		t.Errorf("beatInMeasure = %v, want 2", beatInMeasure)
	}
}
