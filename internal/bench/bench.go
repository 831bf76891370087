// Package bench runs EXH (and MM, when an instance names an opponent)
// over a folder of instance files and records per-run wall-clock time as
// CSV, promoted out of cmd/labyrinth-bench so the command stays a thin
// wrapper (§4.3, grounded on algolibs/benchmark/benchmark.cpp and
// run_exhsearch.cpp).
package bench

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/j-blue-arz/labyrinth/internal/eval"
	"github.com/j-blue-arz/labyrinth/internal/exh"
	"github.com/j-blue-arz/labyrinth/internal/instance"
	"github.com/j-blue-arz/labyrinth/internal/maze"
	"github.com/j-blue-arz/labyrinth/internal/mm"
)

// Result is one instance's measured durations, one per repetition.
type Result struct {
	InstanceName string
	Durations    []time.Duration
}

// Run walks instanceFolder for ".txt" files, times repeats solves of
// each, and returns one Result per instance in directory order. An
// instance naming an opponent location is solved with a fixed-depth MM
// search (depth matched to the instance's expected depth, or 2 if none
// is recorded); every other instance is solved with EXH. A per-instance
// read or parse error is logged and that instance is skipped, matching
// the original tool's tolerance for a malformed file in a large batch.
func Run(instanceFolder string, repeats int) ([]Result, error) {
	entries, err := os.ReadDir(instanceFolder)
	if err != nil {
		return nil, fmt.Errorf("bench: reading %s: %w", instanceFolder, err)
	}

	var results []Result
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".txt" {
			continue
		}
		path := filepath.Join(instanceFolder, entry.Name())
		inst, err := instance.Load(path)
		if err != nil {
			log.Printf("bench: skipping %s: %v", entry.Name(), err)
			continue
		}
		results = append(results, Result{
			InstanceName: inst.Name,
			Durations:    timeInstance(inst, repeats),
		})
	}
	return results, nil
}

func timeInstance(inst instance.Instance, repeats int) []time.Duration {
	durations := make([]time.Duration, repeats)
	opponentSet := inst.Solver.OpponentLocation != maze.NoLocation
	depth := inst.ExpectedDepth
	if depth == 0 {
		depth = 2
	}

	for r := 0; r < repeats; r++ {
		working := inst.Solver
		working.Graph = inst.Solver.Graph.Clone()

		start := time.Now()
		if opponentSet {
			mm.FindBestAction(working, eval.NewWinAndObjectiveDistance(), depth)
		} else {
			exh.FindBestActions(working)
		}
		durations[r] = time.Since(start)
	}
	return durations
}

// WriteCSV writes the documented header and one row per result
// (§6 "Benchmark CSV output": `instance,time0[s],time1[s],...`).
func WriteCSV(path string, repeats int, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bench: creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := make([]string, 0, repeats+1)
	header = append(header, "instance")
	for i := 0; i < repeats; i++ {
		header = append(header, fmt.Sprintf("time%d[s]", i))
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("bench: writing header: %w", err)
	}

	for _, result := range results {
		row := make([]string, 0, len(result.Durations)+1)
		row = append(row, result.InstanceName)
		for _, d := range result.Durations {
			row = append(row, strconv.FormatFloat(d.Seconds(), 'f', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("bench: writing row for %s: %w", result.InstanceName, err)
		}
	}
	w.Flush()
	return w.Error()
}
