package timing

import "testing"

func TestBeatToRow(t *testing.T) {
	cases := []struct {
		beat float64
		row  int
	}{
		{0, 0},
		{1, 48},
		{0.5, 24},
		{4, 192},
		{-1, -48},
	}
	for _, c := range cases {
		if got := BeatToRow(c.beat); got != c.row {
			t.Errorf("BeatToRow(%v) = %d, want %d", c.beat, got, c.row)
		}
	}
}

func TestRowToBeat(t *testing.T) {
	if got := RowToBeat(48); got != 1.0 {
		t.Errorf("RowToBeat(48) = %v, want 1.0", got)
	}
	if got := RowToBeat(24); got != 0.5 {
		t.Errorf("RowToBeat(24) = %v, want 0.5", got)
	}
}

func TestRowBeatRoundTrip(t *testing.T) {
	for row := -100; row <= 100; row++ {
		if got := BeatToRow(RowToBeat(row)); got != row {
			t.Errorf("BeatToRow(RowToBeat(%d)) = %d, want %d", row, got, row)
		}
	}
}
