// Command runescan reports rune and byte statistics for UTF-8 text files
// and times the underlying scans. It is a manual harness around the
// runeindex package, complementing the package benchmarks.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/npillmayer/runeindex"
	"github.com/npillmayer/runeindex/textfile"
	"golang.org/x/term"
)

var (
	atByte  = flag.Int("at", -1, "translate a byte offset to a rune index")
	atRune  = flag.Int("rune", -1, "translate a rune index to a byte offset")
	repeat  = flag.Int("repeat", 1, "number of timed scan repetitions")
	stream  = flag.Bool("stream", false, "count fragment-wise while the file is loading")
	nocolor = flag.Bool("no-color", false, "disable colored output")
)

func main() {
	flag.Parse()
	if *nocolor || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: runescan [options] file ...")
		flag.PrintDefaults()
		os.Exit(2)
	}
	exit := 0
	for _, name := range flag.Args() {
		if err := scanFile(name); err != nil {
			color.Red("%s: %v", name, err)
			exit = 1
		}
	}
	os.Exit(exit)
}

func scanFile(name string) error {
	if *stream {
		return scanStream(name)
	}
	text, err := textfile.Load(name)
	if err != nil {
		return err
	}
	reps := *repeat
	if reps < 1 {
		reps = 1
	}
	var runes int
	start := time.Now()
	for i := 0; i < reps; i++ {
		runes = runeindex.Count(text)
	}
	elapsed := time.Since(start) / time.Duration(reps)
	color.Cyan("%s", name)
	fmt.Printf("  bytes: %d  runes: %d  scan: %v (%s)\n",
		len(text), runes, elapsed, throughput(len(text), elapsed))
	if *atByte >= 0 {
		fmt.Printf("  byte %d -> rune %d\n", *atByte, runeindex.RuneIndex(text, *atByte))
	}
	if *atRune >= 0 {
		fmt.Printf("  rune %d -> byte %d\n", *atRune, runeindex.ByteOffset(text, *atRune))
	}
	return nil
}

// scanStream counts while the file is still loading: per-byte
// classification makes counts additive over arbitrary fragment cuts.
func scanStream(name string) error {
	s, err := textfile.LoadStream(name, 0)
	if err != nil {
		return err
	}
	runes := 0
	frags := 0
	start := time.Now()
	for f := range s.Fragments() {
		runes += runeindex.CountBytes([]byte(f.Text))
		frags++
	}
	if err := s.Err(); err != nil {
		return err
	}
	elapsed := time.Since(start)
	color.Cyan("%s", name)
	fmt.Printf("  bytes: %d  runes: %d  fragments: %d  load+scan: %v\n",
		s.Size(), runes, frags, elapsed)
	return nil
}

func throughput(n int, d time.Duration) string {
	if d <= 0 {
		return "n/a"
	}
	mb := float64(n) / (1 << 20)
	return fmt.Sprintf("%.1f MB/s", mb/d.Seconds())
}
