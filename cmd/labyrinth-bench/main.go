// Command labyrinth-bench times a solve over every instance file in a
// folder and writes the results as CSV (§6 "CLI surface", "Benchmark CSV
// output"; grounded on cmd/chessplay-uci/main.go's shape and
// algolibs/benchmark/benchmark.cpp).
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/j-blue-arz/labyrinth/internal/bench"
)

const defaultRepeats = 10

func main() {
	if len(os.Args) < 3 {
		showUsage(os.Args[0])
		os.Exit(1)
	}
	run(os.Args[1], os.Args[2])
}

func showUsage(name string) {
	fmt.Fprintf(os.Stderr, "Usage: %s INSTANCE_FOLDER OUT_CSV\n", name)
	fmt.Fprintln(os.Stderr, "Where:")
	fmt.Fprintln(os.Stderr, "\tINSTANCE_FOLDER\t\tcontains files ending with .txt in the documented format.")
	fmt.Fprintln(os.Stderr, "\tOUT_CSV\t\t\twill be created by the benchmark and will contain the results.")
}

func run(instanceFolder, outCSV string) {
	results, err := bench.Run(instanceFolder, defaultRepeats)
	if err != nil {
		log.Fatalf("labyrinth-bench: %v", err)
	}
	if err := bench.WriteCSV(outCSV, defaultRepeats, results); err != nil {
		log.Fatalf("labyrinth-bench: %v", err)
	}
}
