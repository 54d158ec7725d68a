// Command timingwalk is an interactive beat-cursor stepper. It loads a
// timing fixture and lets the arrow keys walk a query cursor across it,
// printing the beat, elapsed seconds, bps and any freeze/delay/warp
// flags in effect at the cursor — the query-side analogue of
// cmd/modplay's playback loop.
package main

import (
	"flag"
	"fmt"
	"log"

	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"
	"github.com/fatih/color"

	timing "github.com/mvassen/timingcore"
	"github.com/mvassen/timingcore/internal/fixture"
)

// stepSeconds is how far the cursor moves per arrow-key press.
const stepSeconds = 0.1

func main() {
	log.SetFlags(0)
	log.SetPrefix("timingwalk: ")

	flag.Usage = func() {
		fmt.Println("Usage: timingwalk <fixture.toml>")
		fmt.Println("  Left/Right  step the cursor by 0.1s")
		fmt.Println("  Up/Down     step the cursor by 1s")
		fmt.Println("  q / Esc     quit")
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		log.Fatal("missing fixture filename")
	}

	td, err := fixture.Load(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	td.TidyUp()

	w := &walker{td: td}
	w.render()

	err = keyboard.Listen(func(key keys.Key) (stop bool, err error) {
		switch key.Code {
		case keys.RuneKey:
			if key.String() == "q" {
				return true, nil
			}
		case keys.CtrlC, keys.Escape:
			return true, nil
		case keys.Left:
			w.move(-stepSeconds)
		case keys.Right:
			w.move(stepSeconds)
		case keys.Up:
			w.move(1.0)
		case keys.Down:
			w.move(-1.0)
		default:
			return false, nil
		}
		w.render()
		return false, nil
	})
	if err != nil {
		log.Fatal(err)
	}
}

// walker holds the interactive cursor state; the teacher's AudioPlayer
// plays forward from a running clock, this walks a manually-driven one.
type walker struct {
	td      *timing.TimingData
	seconds float64
	lines   int
}

func (w *walker) move(delta float64) {
	w.seconds += delta
	if w.seconds < 0 {
		w.seconds = 0
	}
}

func (w *walker) render() {
	if w.lines > 0 {
		fmt.Printf("\033[%dA", w.lines)
	}

	res := w.td.BeatAndBpsFromElapsedTime(w.seconds)
	row := timing.BeatToRow(res.Beat)
	bpmIndex, bpmLen := w.td.DebugIndexAtRow(timing.DebugKindBPM, row)

	label := color.New(color.FgCyan).SprintFunc()
	flag := color.New(color.FgYellow, color.Bold).SprintFunc()

	lines := []string{
		fmt.Sprintf("%s %.3fs", label("seconds:"), w.seconds),
		fmt.Sprintf("%s %.3f", label("beat:"), res.Beat),
		fmt.Sprintf("%s %.2f", label("bps:"), res.BPS),
		fmt.Sprintf("%s %s", label("flags:"), flagString(res, flag)),
		fmt.Sprintf("%s %d of %d", label("bpm segment:"), bpmIndex, bpmLen),
		fmt.Sprintf("%s %s", label("next/prev bpm beat:"), segmentBeatString(w.td, row)),
	}
	for _, l := range lines {
		fmt.Printf("\033[2K%s\n", l)
	}
	w.lines = len(lines)
}

// segmentBeatString formats the next and previous BPM segment's beat
// around row, or "-" where NextSegmentBeat/PreviousSegmentBeat report
// none.
func segmentBeatString(td *timing.TimingData, row int) string {
	next := td.NextSegmentBeat(row)
	prev := td.PreviousSegmentBeat(row)
	nextStr, prevStr := "-", "-"
	if next >= 0 {
		nextStr = fmt.Sprintf("%.3f", next)
	}
	if prev >= 0 {
		prevStr = fmt.Sprintf("%.3f", prev)
	}
	return fmt.Sprintf("next %s / prev %s", nextStr, prevStr)
}

func flagString(res timing.BeatQueryResult, flag func(a ...interface{}) string) string {
	s := ""
	if res.InDelay {
		s += flag("[delay]") + " "
	}
	if res.InFreeze {
		s += flag("[stop]") + " "
	}
	if res.WarpLengthBeats > 0 {
		s += flag("[warp]") + " "
	}
	if s == "" {
		return "-"
	}
	return s
}
