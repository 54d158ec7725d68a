package timing

import "sort"

// timelineNode is one row at which at least one of BPM, Stop, Delay or
// Warp changes. Nodes are built once per mutation (see
// TimingData.ensureTimeline) by walking the four stores in merged row
// order, advancing a single (beat, seconds) cursor: at each row, delays land before the beat, stops land
// after it, and warps — which cost no time at all — are applied first.
//
// beatIn/secIn is the cursor on arrival, before this row's own events
// are applied. landingSec is the instant the row's beat is considered
// to have occurred (after any delay, before any stop). secOut/beatOut
// is the cursor handed to the next node's interpolation.
type timelineNode struct {
	row             int
	beatIn          float64
	secIn           float64
	delaySeconds    float64
	stopSeconds     float64
	landingSec      float64
	secOut          float64
	warpLengthBeats float64
	beatOut         float64
	bps             float64 // tempo in effect starting at this node
}

// ensureTimeline rebuilds the cached merged event stream if a mutation
// has invalidated it. Not safe for concurrent use, matching the rest of
// this package's single-owner contract.
func (t *TimingData) ensureTimeline() {
	if !t.timelineDirty && t.timeline != nil {
		return
	}
	t.timeline = buildTimeline(&t.bpms, &t.stops, &t.delays, &t.warps)
	t.timelineDirty = false
}

// buildTimeline merges the BPM/Stop/Delay/Warp sequences into nodes
// ordered by row and walks the cursor forward through them once.
func buildTimeline(bpms *store[BPMSegment], stops *store[StopSegment], delays *store[DelaySegment], warps *store[WarpSegment]) []timelineNode {
	rows := mergeRows(bpms, stops, delays, warps)
	nodes := make([]timelineNode, 0, len(rows))

	var beat, sec, bps float64
	if len(bpms.segs) > 0 {
		bps = bpms.segs[0].BPM / 60
	}

	bi, si, di, wi := 0, 0, 0, 0
	for _, row := range rows {
		beatIn := RowToBeat(row)
		if beatIn > beat {
			sec += (beatIn - beat) / bps
		}
		beat = beatIn

		node := timelineNode{row: row, beatIn: beatIn, secIn: sec}

		// Warp first: costs no time, jumps the beat.
		if wi < len(warps.segs) && warps.segs[wi].StartRow == row {
			node.warpLengthBeats = warps.segs[wi].LengthBeats
			wi++
		}
		// Delay next: lands before the beat.
		if di < len(delays.segs) && delays.segs[di].StartRow == row {
			node.delaySeconds = delays.segs[di].Seconds
			di++
		}
		node.landingSec = node.secIn + node.delaySeconds
		// Stop: lands after the beat.
		if si < len(stops.segs) && stops.segs[si].StartRow == row {
			node.stopSeconds = stops.segs[si].Seconds
			si++
		}
		node.secOut = node.landingSec + node.stopSeconds
		node.beatOut = node.beatIn + node.warpLengthBeats

		// BPM applies after the warp's destination.
		if bi < len(bpms.segs) && bpms.segs[bi].StartRow == row {
			bps = bpms.segs[bi].BPM / 60
			bi++
		}
		node.bps = bps

		beat = node.beatOut
		sec = node.secOut

		nodes = append(nodes, node)
	}

	return nodes
}

// mergeRows returns the sorted, deduplicated set of rows that carry at
// least one BPM, Stop, Delay or Warp segment.
func mergeRows(bpms *store[BPMSegment], stops *store[StopSegment], delays *store[DelaySegment], warps *store[WarpSegment]) []int {
	seen := make(map[int]struct{}, len(bpms.segs)+len(stops.segs)+len(delays.segs)+len(warps.segs))
	for _, s := range bpms.segs {
		seen[s.StartRow] = struct{}{}
	}
	for _, s := range stops.segs {
		seen[s.StartRow] = struct{}{}
	}
	for _, s := range delays.segs {
		seen[s.StartRow] = struct{}{}
	}
	for _, s := range warps.segs {
		seen[s.StartRow] = struct{}{}
	}
	rows := make([]int, 0, len(seen))
	for r := range seen {
		rows = append(rows, r)
	}
	sort.Ints(rows)
	return rows
}

// BeatQueryResult is the result of converting an elapsed time into a
// musical position.
type BeatQueryResult struct {
	Beat            float64
	BPS             float64
	InFreeze        bool // the instant queried is inside a Stop
	InDelay         bool // the instant queried is inside a Delay
	WarpStartBeat   float64
	WarpLengthBeats float64 // > 0 iff the queried instant is exactly when a warp resolved
}

// ElapsedTimeFromBeatNoOffset converts a beat to elapsed seconds,
// ignoring OffsetSeconds (as if beat 0 occurred at t=0).
func (t *TimingData) ElapsedTimeFromBeatNoOffset(beat float64) float64 {
	t.ensureTimeline()
	return elapsedTimeFromBeat(t.timeline, beat)
}

// ElapsedTimeFromBeat converts a beat to elapsed wall-clock seconds.
func (t *TimingData) ElapsedTimeFromBeat(beat float64) float64 {
	return t.ElapsedTimeFromBeatNoOffset(beat) + t.offsetSeconds
}

// BeatAndBpsFromElapsedTimeNoOffset converts elapsed seconds to a
// musical position, ignoring OffsetSeconds.
func (t *TimingData) BeatAndBpsFromElapsedTimeNoOffset(seconds float64) BeatQueryResult {
	t.ensureTimeline()
	return beatFromElapsedTime(t.timeline, seconds)
}

// BeatAndBpsFromElapsedTime converts wall-clock elapsed seconds to a
// musical position.
func (t *TimingData) BeatAndBpsFromElapsedTime(seconds float64) BeatQueryResult {
	return t.BeatAndBpsFromElapsedTimeNoOffset(seconds - t.offsetSeconds)
}

func elapsedTimeFromBeat(nodes []timelineNode, beat float64) float64 {
	if len(nodes) == 0 {
		return 0
	}
	if beat < nodes[0].beatIn {
		// Beat below the first node extrapolates with its tempo.
		return nodes[0].secIn + (beat-nodes[0].beatIn)/nodes[0].bps
	}

	i := sort.Search(len(nodes), func(i int) bool { return nodes[i].beatIn > beat }) - 1
	n := nodes[i]
	switch {
	case beat == n.beatIn:
		// Exactly at the row: landed after any delay, before any stop.
		return n.landingSec
	case n.warpLengthBeats > 0 && beat < n.beatOut:
		// Inside the warp's skipped range: time never passed here.
		return n.landingSec
	default:
		return n.secOut + (beat-n.beatOut)/n.bps
	}
}

func beatFromElapsedTime(nodes []timelineNode, seconds float64) BeatQueryResult {
	if len(nodes) == 0 {
		return BeatQueryResult{}
	}
	if seconds < nodes[0].secIn {
		bps := nodes[0].bps
		return BeatQueryResult{
			Beat: nodes[0].beatIn + (seconds-nodes[0].secIn)/bps,
			BPS:  bps,
		}
	}

	i := sort.Search(len(nodes), func(i int) bool { return nodes[i].secIn > seconds }) - 1
	n := nodes[i]

	switch {
	case seconds == n.secOut:
		// The fully-resolved instant: if a warp triggered here, the
		// result is its destination beat, not its origin.
		if n.warpLengthBeats > 0 {
			return BeatQueryResult{
				Beat:            n.beatOut,
				BPS:             n.bps,
				WarpStartBeat:   n.beatIn,
				WarpLengthBeats: n.warpLengthBeats,
			}
		}
		return BeatQueryResult{Beat: n.beatOut, BPS: n.bps}
	case seconds <= n.secIn:
		return BeatQueryResult{Beat: n.beatIn, BPS: n.bps}
	case seconds < n.landingSec:
		return BeatQueryResult{Beat: n.beatIn, BPS: n.bps, InDelay: true}
	case seconds < n.secOut:
		return BeatQueryResult{Beat: n.beatIn, BPS: n.bps, InFreeze: true}
	default:
		return BeatQueryResult{
			Beat: n.beatOut + (seconds-n.secOut)*n.bps,
			BPS:  n.bps,
		}
	}
}
