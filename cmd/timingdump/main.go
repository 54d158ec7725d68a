package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/fatih/color"

	timing "github.com/mvassen/timingcore"
	"github.com/mvassen/timingcore/internal/fixture"
)

// kindInfo pairs a segment kind's serialization enum with its debug enum
// and display name, so both dump() and the [row] governing-index report
// below can walk all eleven kinds from one table.
type kindInfo struct {
	name  string
	kind  timing.SegmentKind
	debug timing.DebugSegmentKind
}

var kinds = []kindInfo{
	{"BPM", timing.KindBPM, timing.DebugKindBPM},
	{"Stop", timing.KindStop, timing.DebugKindStop},
	{"Delay", timing.KindDelay, timing.DebugKindDelay},
	{"Warp", timing.KindWarp, timing.DebugKindWarp},
	{"TimeSignature", timing.KindTimeSignature, timing.DebugKindTimeSignature},
	{"Tickcount", timing.KindTickcount, timing.DebugKindTickcount},
	{"Combo", timing.KindCombo, timing.DebugKindCombo},
	{"Label", timing.KindLabel, timing.DebugKindLabel},
	{"Speed", timing.KindSpeed, timing.DebugKindSpeed},
	{"Scroll", timing.KindScroll, timing.DebugKindScroll},
	{"Fake", timing.KindFake, timing.DebugKindFake},
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("timingdump: ")

	if len(os.Args) <= 1 {
		log.Fatal("Usage: timingdump <fixture.toml> [row]")
	}

	td, err := fixture.Load(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	td.TidyUp()

	cyan := color.New(color.FgCyan).SprintfFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	for _, k := range kinds {
		dump(td, cyan, yellow, k.name, k.kind)
	}

	if len(os.Args) > 2 {
		row, err := strconv.Atoi(os.Args[2])
		if err != nil {
			log.Fatalf("invalid row %q: %v", os.Args[2], err)
		}
		printGoverningIndex(td, cyan, row)
	}
}

func dump(td *timing.TimingData, header func(string, ...any) string, line func(a ...any) string, name string, kind timing.SegmentKind) {
	vec := td.ToVectorString(kind, 6)
	if vec == "" {
		return
	}
	fmt.Println(header("[%s]", name))
	fmt.Println(line(vec))
	fmt.Println()
}

// printGoverningIndex reports, for every kind, the slice index of the
// segment currently governing row — the same lookup cmd/timingwalk
// displays live as the cursor moves.
func printGoverningIndex(td *timing.TimingData, header func(string, ...any) string, row int) {
	fmt.Println(header("[Governing segment at row %d]", row))
	for _, k := range kinds {
		index, length := td.DebugIndexAtRow(k.debug, row)
		fmt.Printf("%-14s index %d of %d\n", k.name, index, length)
	}
}
