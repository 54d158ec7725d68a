package timing

import "testing"

func TestGetDisplayedSpeedPercentBeatsRamp(t *testing.T) {
	td := New(0)
	must(t, td.SetBPMAtRow(0, 120))
	must(t, td.SetSpeedAtRow(BeatToRow(4), 2.0, 4, SpeedUnitBeats))

	if got := td.GetDisplayedSpeedPercent(4, 0); !approxEqual(got, 1.0) {
		t.Errorf("at ramp start: got %v, want 1.0", got)
	}
	if got := td.GetDisplayedSpeedPercent(6, 0); !approxEqual(got, 1.5) {
		t.Errorf("halfway through ramp: got %v, want 1.5", got)
	}
	if got := td.GetDisplayedSpeedPercent(8, 0); !approxEqual(got, 2.0) {
		t.Errorf("at ramp end: got %v, want 2.0", got)
	}
	if got := td.GetDisplayedSpeedPercent(20, 0); !approxEqual(got, 2.0) {
		t.Errorf("after ramp: got %v, want 2.0", got)
	}
}

func TestGetDisplayedSpeedPercentZeroWaitIsInstant(t *testing.T) {
	td := New(0)
	must(t, td.SetSpeedAtRow(BeatToRow(4), 2.0, 0, SpeedUnitBeats))

	if got := td.GetDisplayedSpeedPercent(4, 0); !approxEqual(got, 2.0) {
		t.Errorf("zero-wait speed change: got %v, want 2.0 immediately", got)
	}
}

func TestGetDisplayedBeatIntegratesScroll(t *testing.T) {
	td := New(0)
	must(t, td.SetScrollAtRow(0, 1.0))
	must(t, td.SetScrollAtRow(BeatToRow(4), 0.5))

	if got := td.GetDisplayedBeat(4); !approxEqual(got, 4.0) {
		t.Errorf("GetDisplayedBeat(4) = %v, want 4.0", got)
	}
	if got := td.GetDisplayedBeat(8); !approxEqual(got, 6.0) {
		t.Errorf("GetDisplayedBeat(8) = %v, want 6.0 (4 beats at 1.0 + 4 beats at 0.5)", got)
	}
}

func TestGetDisplayedBeatNoScrollSegmentsIsIdentity(t *testing.T) {
	td := New(0)
	if got := td.GetDisplayedBeat(7.5); !approxEqual(got, 7.5) {
		t.Errorf("GetDisplayedBeat(7.5) with no scroll segments = %v, want 7.5", got)
	}
}
