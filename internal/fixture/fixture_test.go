package fixture

import "testing"

func TestBuildBasicFixture(t *testing.T) {
	f := File{OffsetSeconds: 0.5}
	f.BPMs = append(f.BPMs, struct {
		Beat float64 `toml:"beat"`
		BPM  float64 `toml:"bpm"`
	}{Beat: 0, BPM: 120})
	f.Stops = append(f.Stops, struct {
		Beat    float64 `toml:"beat"`
		Seconds float64 `toml:"seconds"`
	}{Beat: 1, Seconds: 1.5})

	td, err := Build(f)
	if err != nil {
		t.Fatal(err)
	}

	if td.OffsetSeconds() != 0.5 {
		t.Errorf("OffsetSeconds() = %v, want 0.5", td.OffsetSeconds())
	}
	if got := td.BPMAtRow(0); got != 120 {
		t.Errorf("BPMAtRow(0) = %v, want 120", got)
	}
	if got := td.StopAtRow(48); got != 1.5 {
		t.Errorf("StopAtRow(48) = %v, want 1.5", got)
	}
}

func TestBuildEmptyFixtureRunsTidyUp(t *testing.T) {
	td, err := Build(File{})
	if err != nil {
		t.Fatal(err)
	}
	if td.Empty() {
		t.Error("Build(File{}) left TimingData empty, want TidyUp defaults installed")
	}
}

func TestBuildPropagatesInvalidSegmentError(t *testing.T) {
	f := File{}
	f.BPMs = append(f.BPMs, struct {
		Beat float64 `toml:"beat"`
		BPM  float64 `toml:"bpm"`
	}{Beat: 0, BPM: -10})

	if _, err := Build(f); err == nil {
		t.Error("Build with a negative BPM = nil error, want InvalidSegmentError")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("testdata/does-not-exist.toml"); err == nil {
		t.Error("Load of a missing file = nil error, want a read error")
	}
}
