package timing

import "log"

// TimingData is one timing object for a song or chart difficulty. It
// owns eleven sorted, duplicate-free segment sequences and a wall-clock
// offset, and answers every positional query and region edit described
// by this package. A TimingData has no internal synchronization: a
// single owner mutates it, and readers must not observe it concurrently
// with a mutation — the same value-like-aggregate contract the teacher
// applies to Song (owned exclusively by the Player that loaded it).
type TimingData struct {
	offsetSeconds float64
	sourceFile    string

	bpms           store[BPMSegment]
	stops          store[StopSegment]
	delays         store[DelaySegment]
	warps          store[WarpSegment]
	timeSignatures store[TimeSignatureSegment]
	tickcounts     store[TickcountSegment]
	combos         store[ComboSegment]
	labels         store[LabelSegment]
	speeds         store[SpeedSegment]
	scrolls        store[ScrollSegment]
	fakes          store[FakeSegment]

	timeline      []timelineNode
	timelineDirty bool

	logger *log.Logger
}

// New creates an empty TimingData with the given wall-clock offset (the
// real time, in seconds, at which beat 0 occurs). Run TidyUp before
// relying on any default-filling query.
func New(offsetSeconds float64) *TimingData {
	return &TimingData{offsetSeconds: offsetSeconds, timelineDirty: true}
}

// SourceFile reports the informational source-file name for this
// TimingData, if any was set.
func (t *TimingData) SourceFile() string { return t.sourceFile }

// SetSourceFile records an informational source-file name. It has no
// effect on any query or mutation.
func (t *TimingData) SetSourceFile(name string) { t.sourceFile = name }

// OffsetSeconds returns the wall-clock time at which beat 0 occurs.
func (t *TimingData) OffsetSeconds() float64 { return t.offsetSeconds }

// SetOffsetSeconds changes the wall-clock offset.
func (t *TimingData) SetOffsetSeconds(seconds float64) {
	t.offsetSeconds = seconds
	t.invalidate()
}

// logf logs through the configured logger, falling back to the default
// logger for a zero-value TimingData (mirrors the teacher's
// log.SetPrefix/log.Printf usage in cmd/modplay).
func (t *TimingData) logf(format string, args ...any) {
	if t.logger != nil {
		t.logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// SetLogger installs a custom logger for TidyUp diagnostics.
func (t *TimingData) SetLogger(l *log.Logger) { t.logger = l }

// Empty reports whether every one of the eleven segment sequences is
// empty.
func (t *TimingData) Empty() bool {
	return len(t.bpms.segs) == 0 &&
		len(t.stops.segs) == 0 &&
		len(t.delays.segs) == 0 &&
		len(t.warps.segs) == 0 &&
		len(t.timeSignatures.segs) == 0 &&
		len(t.tickcounts.segs) == 0 &&
		len(t.combos.segs) == 0 &&
		len(t.labels.segs) == 0 &&
		len(t.speeds.segs) == 0 &&
		len(t.scrolls.segs) == 0 &&
		len(t.fakes.segs) == 0
}

// invalidate drops the cached beat↔time timeline. Every mutator must
// call this; queries rebuild the cache lazily on next use.
func (t *TimingData) invalidate() {
	t.timelineDirty = true
}
