package timing

// TidyUp installs the mandatory default segments a freshly parsed
// TimingData is missing, drops now-neutral Warp/Fake segments, and
// coalesces any adjacent-equal pairs an editor left behind. Call it once
// after populating a TimingData and before relying on any query that
// assumes row 0 defaults exist.
func (t *TimingData) TidyUp() {
	if len(t.bpms.segs) == 0 {
		t.logf("timing: no BPM segments, inserting default BPM(0, %.0f)", DefaultBPM)
		t.bpms.setAtRow(BPMSegment{StartRow: 0, BPM: DefaultBPM})
	}
	if len(t.timeSignatures.segs) == 0 || t.timeSignatures.segs[0].StartRow != 0 {
		t.timeSignatures.setAtRow(TimeSignatureSegment{StartRow: 0, Numerator: DefaultTimeSigNumerator, Denominator: DefaultTimeSigDenominator})
	}
	if len(t.tickcounts.segs) == 0 || t.tickcounts.segs[0].StartRow != 0 {
		t.tickcounts.setAtRow(TickcountSegment{StartRow: 0, Ticks: DefaultTickcount})
	}
	if len(t.combos.segs) == 0 || t.combos.segs[0].StartRow != 0 {
		t.combos.setAtRow(ComboSegment{StartRow: 0, HitCombo: 0, MissCombo: 0})
	}
	// Label's documented default is the empty string, which LabelSegment
	// treats as neutral (see LabelSegment.neutral) — so the default is
	// "no label at row 0", not an inserted segment.

	dropNeutral(&t.warps)
	dropNeutral(&t.fakes)
	// SetLabelAtRow already deletes on empty text, so this sweep is only
	// a backstop against a LabelSegment built some other way (e.g. a
	// fixture or CopyRange source with a blank label slipped in).
	dropNeutral(&t.labels)

	t.bpms.coalesceAll()
	t.stops.coalesceAll()
	t.delays.coalesceAll()
	t.warps.coalesceAll()
	t.timeSignatures.coalesceAll()
	t.tickcounts.coalesceAll()
	t.combos.coalesceAll()
	t.labels.coalesceAll()
	t.speeds.coalesceAll()
	t.scrolls.coalesceAll()
	t.fakes.coalesceAll()

	t.invalidate()
}

type neutralChecker interface{ neutral() bool }

// dropNeutral removes every segment for which neutral() reports true.
// WarpSegment and FakeSegment are neutral at a non-positive length;
// LabelSegment is neutral at the empty string. Kinds that don't
// implement neutralChecker pass through untouched.
func dropNeutral[T rowEqual[T]](s *store[T]) {
	out := s.segs[:0]
	for _, seg := range s.segs {
		if nc, ok := any(seg).(neutralChecker); ok && nc.neutral() {
			continue
		}
		out = append(out, seg)
	}
	s.segs = out
}
