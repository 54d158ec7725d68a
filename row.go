package timing

import "math"

// RowsPerBeat is the number of note-rows in one musical beat. A row is
// the fixed-point subdivision every positional query and mutator uses
// internally; beats are the floating-point approximation rows expose to
// callers who think in musical terms.
const RowsPerBeat = 48

// BeatToRow converts a beat to the nearest row, rounding half away from
// zero.
func BeatToRow(beat float64) int {
	return int(math.Round(beat * RowsPerBeat))
}

// RowToBeat converts a row back to a beat. It is the exact inverse of
// BeatToRow for any row produced by BeatToRow itself.
func RowToBeat(row int) float64 {
	return float64(row) / RowsPerBeat
}
