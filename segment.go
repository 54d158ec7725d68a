package timing

// SpeedUnit selects whether a Speed segment's wait is measured in beats
// or in seconds.
type SpeedUnit int

const (
	SpeedUnitBeats SpeedUnit = iota
	SpeedUnitSeconds
)

// rowEqual is the constraint every per-kind segment store requires: a
// row to sort/search by, and a value-equality predicate used to
// coalesce no-op inserts. It intentionally has no other methods — the
// conversion engine never dispatches through this interface, it reads
// the concrete fields directly off the merged event stream built in
// engine.go.
type rowEqual[T any] interface {
	Row() int
	Equals(T) bool
}

// BPMSegment sets the tempo, in beats per minute, from its row onward.
type BPMSegment struct {
	StartRow int
	BPM      float64 // strictly positive
}

func (s BPMSegment) Row() int             { return s.StartRow }
func (s BPMSegment) Equals(o BPMSegment) bool { return s.BPM == o.BPM }
func (s BPMSegment) WithRow(row int) BPMSegment { s.StartRow = row; return s }

// StopSegment freezes the beat for Seconds while time keeps advancing.
// Notes at StartRow play after the freeze.
type StopSegment struct {
	StartRow int
	Seconds  float64 // non-negative
}

func (s StopSegment) Row() int               { return s.StartRow }
func (s StopSegment) Equals(o StopSegment) bool { return s.Seconds == o.Seconds }
func (s StopSegment) WithRow(row int) StopSegment { s.StartRow = row; return s }

// DelaySegment is a freeze like StopSegment, except notes at StartRow
// play after the freeze has already elapsed from the caller's point of
// view — a time-to-beat lookup landing inside a delay still reports the
// delayed beat, just tagged differently than a stop.
type DelaySegment struct {
	StartRow int
	Seconds  float64 // non-negative
}

func (s DelaySegment) Row() int                { return s.StartRow }
func (s DelaySegment) Equals(o DelaySegment) bool { return s.Seconds == o.Seconds }
func (s DelaySegment) WithRow(row int) DelaySegment { s.StartRow = row; return s }

// WarpSegment instantaneously advances the beat by LengthBeats at fixed
// wall-clock time. The skipped beat range [StartBeat, StartBeat+Length)
// is never judgable and never landed on by a time-to-beat lookup.
type WarpSegment struct {
	StartRow    int
	LengthBeats float64 // strictly positive
}

func (s WarpSegment) Row() int                 { return s.StartRow }
func (s WarpSegment) Equals(o WarpSegment) bool { return s.LengthBeats == o.LengthBeats }
func (s WarpSegment) neutral() bool             { return s.LengthBeats <= 0 }
func (s WarpSegment) WithRow(row int) WarpSegment { s.StartRow = row; return s }

// TimeSignatureSegment declares a Numerator/Denominator pair in effect
// from its row onward.
type TimeSignatureSegment struct {
	StartRow    int
	Numerator   int // >= 1
	Denominator int // >= 1
}

func (s TimeSignatureSegment) Row() int { return s.StartRow }
func (s TimeSignatureSegment) Equals(o TimeSignatureSegment) bool {
	return s.Numerator == o.Numerator && s.Denominator == o.Denominator
}
func (s TimeSignatureSegment) WithRow(row int) TimeSignatureSegment { s.StartRow = row; return s }

// TickcountSegment sets the number of hold-note ticks per beat.
type TickcountSegment struct {
	StartRow int
	Ticks    int // >= 0
}

func (s TickcountSegment) Row() int                   { return s.StartRow }
func (s TickcountSegment) Equals(o TickcountSegment) bool { return s.Ticks == o.Ticks }
func (s TickcountSegment) WithRow(row int) TickcountSegment { s.StartRow = row; return s }

// ComboSegment sets the per-hit and per-miss combo increment.
type ComboSegment struct {
	StartRow  int
	HitCombo  int // >= 0
	MissCombo int // >= 0
}

func (s ComboSegment) Row() int { return s.StartRow }
func (s ComboSegment) Equals(o ComboSegment) bool {
	return s.HitCombo == o.HitCombo && s.MissCombo == o.MissCombo
}
func (s ComboSegment) WithRow(row int) ComboSegment { s.StartRow = row; return s }

// LabelSegment names a row for display/navigation. Text must never
// contain a comma or an equals-sign (the equals-sign is ToVectorString's
// field separator).
type LabelSegment struct {
	StartRow int
	Text     string // non-empty
}

func (s LabelSegment) Row() int                { return s.StartRow }
func (s LabelSegment) Equals(o LabelSegment) bool { return s.Text == o.Text }
func (s LabelSegment) neutral() bool           { return s.Text == "" }
func (s LabelSegment) WithRow(row int) LabelSegment { s.StartRow = row; return s }

// SpeedSegment ramps the displayed scroll speed percentage to Percent
// over Wait beats or seconds (per Unit), starting at StartRow.
type SpeedSegment struct {
	StartRow int
	Percent  float64
	Wait     float64 // >= 0
	Unit     SpeedUnit
}

func (s SpeedSegment) Row() int { return s.StartRow }
func (s SpeedSegment) Equals(o SpeedSegment) bool {
	return s.Percent == o.Percent && s.Wait == o.Wait && s.Unit == o.Unit
}
func (s SpeedSegment) WithRow(row int) SpeedSegment { s.StartRow = row; return s }

// ScrollSegment multiplies displayed note spacing by Ratio from its row
// onward. Purely visual: never consulted by the beat↔time engine.
type ScrollSegment struct {
	StartRow int
	Ratio    float64
}

func (s ScrollSegment) Row() int                 { return s.StartRow }
func (s ScrollSegment) Equals(o ScrollSegment) bool { return s.Ratio == o.Ratio }
func (s ScrollSegment) WithRow(row int) ScrollSegment { s.StartRow = row; return s }

// FakeSegment marks LengthBeats of non-judgable (displayed but unscored)
// notes starting at StartRow.
type FakeSegment struct {
	StartRow    int
	LengthBeats float64 // strictly positive
}

func (s FakeSegment) Row() int                 { return s.StartRow }
func (s FakeSegment) Equals(o FakeSegment) bool { return s.LengthBeats == o.LengthBeats }
func (s FakeSegment) neutral() bool             { return s.LengthBeats <= 0 }
func (s FakeSegment) WithRow(row int) FakeSegment { s.StartRow = row; return s }
