package timing

import "testing"

func newFixture(t *testing.T) *TimingData {
	t.Helper()
	td := New(0)
	must(t, td.SetBPMAtRow(0, 120))
	must(t, td.SetBPMAtRow(192, 150))
	must(t, td.SetStopAtRow(48, 0.5))
	must(t, td.SetWarpAtRow(96, RowToBeat(96)+1))
	must(t, td.SetLabelAtRow(24, "verse"))
	return td
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

// S5 — insert-then-delete identity.
func TestInsertThenDeleteIdentity(t *testing.T) {
	original := newFixture(t)
	copyOfOriginal := cloneTimingData(original)

	must(t, original.InsertRows(24, 96))
	must(t, original.DeleteRows(24, 96))

	if !original.Equal(copyOfOriginal) {
		t.Errorf("InsertRows then DeleteRows did not restore the original:\ngot  %+v\nwant %+v", original, copyOfOriginal)
	}
}

func cloneTimingData(td *TimingData) *TimingData {
	out := New(td.offsetSeconds)
	out.sourceFile = td.sourceFile
	out.bpms = td.bpms.clone()
	out.stops = td.stops.clone()
	out.delays = td.delays.clone()
	out.warps = td.warps.clone()
	out.timeSignatures = td.timeSignatures.clone()
	out.tickcounts = td.tickcounts.clone()
	out.combos = td.combos.clone()
	out.labels = td.labels.clone()
	out.speeds = td.speeds.clone()
	out.scrolls = td.scrolls.clone()
	out.fakes = td.fakes.clone()
	return out
}

// S6 — scale with BPM adjust.
func TestScaleRegionWithBPMAdjustPreservesDuration(t *testing.T) {
	td := New(0)
	must(t, td.SetBPMAtRow(0, 120))

	before := td.ElapsedTimeFromBeatNoOffset(4)
	if !approxEqual(before, 2.0) {
		t.Fatalf("precondition: elapsed to beat 4 = %v, want 2.0", before)
	}

	must(t, td.ScaleRegion(2, 0, BeatToRow(4), true))

	if got := td.BPMAtRow(0); !approxEqual(got, 240) {
		t.Errorf("BPMAtRow(0) after scale = %v, want 240", got)
	}

	after := td.ElapsedTimeFromBeatNoOffset(8)
	if diff := after - before; diff > 1e-3 || diff < -1e-3 {
		t.Errorf("elapsed to end of scaled region = %v, want %v (tolerance 1e-3)", after, before)
	}
}

func TestScaleRegionWithoutBPMAdjustStretchesDuration(t *testing.T) {
	td := New(0)
	must(t, td.SetBPMAtRow(0, 120))
	must(t, td.ScaleRegion(2, 0, BeatToRow(4), false))

	if got := td.BPMAtRow(0); !approxEqual(got, 120) {
		t.Errorf("BPMAtRow(0) after scale without adjustBPM = %v, want 120 (unchanged)", got)
	}
	if got := td.ElapsedTimeFromBeatNoOffset(8); !approxEqual(got, 4.0) {
		t.Errorf("ElapsedTimeFromBeatNoOffset(8) = %v, want 4.0", got)
	}
}

func TestInsertRowsShiftsLaterSegments(t *testing.T) {
	td := New(0)
	must(t, td.SetBPMAtRow(0, 120))
	must(t, td.SetBPMAtRow(96, 140))

	must(t, td.InsertRows(48, 48))

	if got := td.BPMAtRow(0); !approxEqual(got, 120) {
		t.Errorf("BPMAtRow(0) = %v, want 120", got)
	}
	if seg, ok := td.bpms.at(144); !ok || seg.StartRow != 144 {
		t.Fatal("expected a BPM segment present at row 144")
	}
	if got := td.BPMAtRow(144); !approxEqual(got, 140) {
		t.Errorf("BPMAtRow(144) = %v, want 140 (shifted from row 96)", got)
	}
}

func TestDeleteRowsRemovesAndShifts(t *testing.T) {
	td := New(0)
	must(t, td.SetBPMAtRow(0, 120))
	must(t, td.SetStopAtRow(48, 1.0))
	must(t, td.SetBPMAtRow(144, 140))

	must(t, td.DeleteRows(24, 96))

	if got := td.StopAtRow(48); got != 0 {
		t.Errorf("StopAtRow(48) = %v, want 0 (segment should have been deleted)", got)
	}
	if got := td.BPMAtRow(48); !approxEqual(got, 140) {
		t.Errorf("BPMAtRow(48) = %v, want 140 (shifted from row 144)", got)
	}
}

func TestMultiplyBPMInBeatRange(t *testing.T) {
	td := New(0)
	must(t, td.SetBPMAtRow(0, 100))
	must(t, td.SetBPMAtRow(96, 200))
	must(t, td.SetBPMAtRow(192, 300))

	must(t, td.MultiplyBPMInBeatRange(48, 150, 2))

	if got := td.BPMAtRow(0); !approxEqual(got, 100) {
		t.Errorf("BPMAtRow(0) = %v, want 100 (outside range)", got)
	}
	if got := td.BPMAtRow(96); !approxEqual(got, 400) {
		t.Errorf("BPMAtRow(96) = %v, want 400 (doubled)", got)
	}
	if got := td.BPMAtRow(192); !approxEqual(got, 300) {
		t.Errorf("BPMAtRow(192) = %v, want 300 (outside range)", got)
	}
}

func TestCopyRangeRebasesAndDeepCopies(t *testing.T) {
	td := New(2.5)
	must(t, td.SetBPMAtRow(48, 120))
	must(t, td.SetLabelAtRow(96, "chorus"))
	must(t, td.SetBPMAtRow(300, 200)) // outside the copied range

	sub, err := td.CopyRange(48, 192)
	if err != nil {
		t.Fatal(err)
	}

	if sub.OffsetSeconds() != 2.5 {
		t.Errorf("sub.OffsetSeconds() = %v, want 2.5", sub.OffsetSeconds())
	}
	if got := sub.BPMAtRow(0); !approxEqual(got, 120) {
		t.Errorf("sub.BPMAtRow(0) = %v, want 120 (rebased from row 48)", got)
	}
	if got := sub.LabelAtRow(48); got != "chorus" {
		t.Errorf("sub.LabelAtRow(48) = %q, want \"chorus\" (rebased from row 96)", got)
	}
	if got := sub.BPMAtRow(252); approxEqual(got, 200) {
		t.Errorf("sub.BPMAtRow(252) = %v, the row-300 segment outside [48, 192) leaked into the copy", got)
	}

	must(t, sub.SetBPMAtRow(0, 999))
	if got := td.BPMAtRow(48); approxEqual(got, 999) {
		t.Errorf("mutating the copy mutated the original: shared storage detected")
	}
}
