package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/crib"
)

func main() {
	count := flag.Int("count", 1000, "Number of notes to generate")
	filter := flag.String("filter", "note_1", "Filter applied on the second run")
	keep := flag.Bool("keep", false, "Keep the benchmark notes after running")
	flag.Parse()

	// 1. Setup notes directory
	benchDir, err := os.MkdirTemp("", "crib_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	fmt.Printf("Generating %d notes in %s...\n", *count, benchDir)
	startGen := time.Now()

	// Direct writes; we only measure loading and rendering.
	for i := 0; i < *count; i++ {
		content := fmt.Sprintf("---\ntags: [benchmark, test]\n---\nBenchmark note %d\n  second line\n", i)
		filename := filepath.Join(benchDir, fmt.Sprintf("note_%d.md", i))
		if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
			panic(err)
		}
	}
	fmt.Printf("Generation took: %v\n", time.Since(startGen))

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ctx := context.Background()

	// 2. Load
	fmt.Println("Loading notes...")
	startLoad := time.Now()
	notes, err := crib.Load(ctx, benchDir, crib.WithLogger(logger))
	if err != nil {
		panic(err)
	}
	loadDuration := time.Since(startLoad)
	fmt.Printf("Load Result: %v (Entries: %d)\n", loadDuration, notes.Len())

	renderer := crib.NewRenderer(notes)

	// Run 1: every entry
	startAll := time.Now()
	if err := renderer.RenderTo(io.Discard, nil); err != nil {
		panic(err)
	}
	allDuration := time.Since(startAll)

	// Run 2: filtered
	startFiltered := time.Now()
	if err := renderer.RenderTo(io.Discard, []string{*filter}); err != nil {
		panic(err)
	}
	filteredDuration := time.Since(startFiltered)

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d notes):\n", *count)
	fmt.Printf("  Load:     %v\n", loadDuration)
	fmt.Printf("  All:      %v\n", allDuration)
	fmt.Printf("  Filtered: %v (%q)\n", filteredDuration, *filter)
	fmt.Printf("--------------------------------------------------\n")
}
