package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	mg "chess-core/chessmg"
	"chess-core/internal/crosscheck"
)

func main() {
	fen := flag.String("fen", mg.FENStartPos, "FEN or dotted record (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	verify := flag.Bool("verify", false, "Compare every node against dragontoothmg and notnil/chess")
	notnilOnly := flag.Bool("notnil-only", false, "With -verify, skip dragontoothmg (it mishandles rank-pinned en passant)")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("perft: ")

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := mg.ParsePosition(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParsePosition error: %v\n", err)
		os.Exit(2)
	}

	if *verify {
		oracles := crosscheck.Default()
		if *notnilOnly {
			oracles = []crosscheck.Oracle{crosscheck.Notnil{}}
		}
		start := time.Now()
		nodes, err := crosscheck.Walk(pos, *depth, oracles...)
		if err != nil {
			log.Fatalf("verify depth %d: %v", *depth, err)
		}
		fmt.Printf("verified %d leaf nodes in %s\n", nodes, time.Since(start))
		return
	}

	// Optional divide output
	if *divide {
		div := mg.PerftDivide(&pos, *depth)
		// Sort moves for stable output
		moves := maps.Keys(div)
		names := make([]string, len(moves))
		byName := make(map[string]uint64, len(moves))
		var sum uint64
		for i, m := range moves {
			names[i] = m.String()
			byName[names[i]] = div[m]
			sum += div[m]
		}
		slices.Sort(names)
		for _, n := range names {
			fmt.Printf("%s: %d\n", n, byName[n])
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.Fatalf("creating cpuprofile: %v", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("start cpu profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// Timing loop
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += mg.Perft(&pos, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	// Optional heap profile after run
	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			log.Fatalf("creating memprofile: %v", err)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("write heap profile: %v", err)
		}
		_ = f.Close()
	}
}
