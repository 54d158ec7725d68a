// Package fixture loads a readable TOML description of a TimingData
// into the timing engine. It is a debug/test format for this module's
// own tooling, not a chart-file parser.
package fixture

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	timing "github.com/mvassen/timingcore"
)

// File is the TOML document shape this package accepts. Each slice
// field mirrors one of the eleven segment kinds; a row is expressed in
// beats for readability, converted to rows on load.
type File struct {
	OffsetSeconds float64 `toml:"offset_seconds"`

	BPMs []struct {
		Beat float64 `toml:"beat"`
		BPM  float64 `toml:"bpm"`
	} `toml:"bpm"`

	Stops []struct {
		Beat    float64 `toml:"beat"`
		Seconds float64 `toml:"seconds"`
	} `toml:"stop"`

	Delays []struct {
		Beat    float64 `toml:"beat"`
		Seconds float64 `toml:"seconds"`
	} `toml:"delay"`

	Warps []struct {
		Beat        float64 `toml:"beat"`
		LengthBeats float64 `toml:"length_beats"`
	} `toml:"warp"`

	TimeSignatures []struct {
		Beat        float64 `toml:"beat"`
		Numerator   int     `toml:"numerator"`
		Denominator int     `toml:"denominator"`
	} `toml:"time_signature"`

	Tickcounts []struct {
		Beat  float64 `toml:"beat"`
		Ticks int     `toml:"ticks"`
	} `toml:"tickcount"`

	Combos []struct {
		Beat      float64 `toml:"beat"`
		HitCombo  int     `toml:"hit_combo"`
		MissCombo int     `toml:"miss_combo"`
	} `toml:"combo"`

	Labels []struct {
		Beat float64 `toml:"beat"`
		Text string  `toml:"text"`
	} `toml:"label"`

	Speeds []struct {
		Beat    float64 `toml:"beat"`
		Percent float64 `toml:"percent"`
		Wait    float64 `toml:"wait"`
		Seconds bool    `toml:"seconds"` // true selects SpeedUnitSeconds
	} `toml:"speed"`

	Scrolls []struct {
		Beat  float64 `toml:"beat"`
		Ratio float64 `toml:"ratio"`
	} `toml:"scroll"`

	Fakes []struct {
		Beat        float64 `toml:"beat"`
		LengthBeats float64 `toml:"length_beats"`
	} `toml:"fake"`
}

// Load reads path, parses it as a fixture File, and builds a TimingData
// from it. TidyUp is run automatically if the fixture declares no
// segments at all (an empty fixture describing only offset_seconds).
func Load(path string) (*timing.TimingData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("fixture: parse %s: %w", path, err)
	}

	return Build(f)
}

// Build converts a parsed File into a TimingData, beat-to-row converting
// every entry and returning the first InvalidSegment/OutOfRange error
// encountered.
func Build(f File) (*timing.TimingData, error) {
	td := timing.New(f.OffsetSeconds)

	for _, s := range f.BPMs {
		if err := td.SetBPMAtRow(timing.BeatToRow(s.Beat), s.BPM); err != nil {
			return nil, err
		}
	}
	for _, s := range f.Stops {
		if err := td.SetStopAtRow(timing.BeatToRow(s.Beat), s.Seconds); err != nil {
			return nil, err
		}
	}
	for _, s := range f.Delays {
		if err := td.SetDelayAtRow(timing.BeatToRow(s.Beat), s.Seconds); err != nil {
			return nil, err
		}
	}
	for _, s := range f.Warps {
		if err := td.SetWarpAtRow(timing.BeatToRow(s.Beat), s.Beat+s.LengthBeats); err != nil {
			return nil, err
		}
	}
	for _, s := range f.TimeSignatures {
		if err := td.SetTimeSignatureAtRow(timing.BeatToRow(s.Beat), s.Numerator, s.Denominator); err != nil {
			return nil, err
		}
	}
	for _, s := range f.Tickcounts {
		if err := td.SetTickcountAtRow(timing.BeatToRow(s.Beat), s.Ticks); err != nil {
			return nil, err
		}
	}
	for _, s := range f.Combos {
		if err := td.SetComboAtRow(timing.BeatToRow(s.Beat), s.HitCombo, s.MissCombo); err != nil {
			return nil, err
		}
	}
	for _, s := range f.Labels {
		if err := td.SetLabelAtRow(timing.BeatToRow(s.Beat), s.Text); err != nil {
			return nil, err
		}
	}
	for _, s := range f.Speeds {
		unit := timing.SpeedUnitBeats
		if s.Seconds {
			unit = timing.SpeedUnitSeconds
		}
		if err := td.SetSpeedAtRow(timing.BeatToRow(s.Beat), s.Percent, s.Wait, unit); err != nil {
			return nil, err
		}
	}
	for _, s := range f.Scrolls {
		if err := td.SetScrollAtRow(timing.BeatToRow(s.Beat), s.Ratio); err != nil {
			return nil, err
		}
	}
	for _, s := range f.Fakes {
		if err := td.SetFakeAtRow(timing.BeatToRow(s.Beat), s.Beat+s.LengthBeats); err != nil {
			return nil, err
		}
	}

	if td.Empty() {
		td.TidyUp()
	}

	return td, nil
}
