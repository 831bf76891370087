// Command labyrinth-solve reads a single instance file and prints the
// EXH solution's action count and each of its actions, exiting nonzero on
// a missing argument (§6 "CLI surface", grounded on
// cmd/chessplay-uci/main.go's shape and algolibs/benchmark/
// run_exhsearch.cpp).
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/j-blue-arz/labyrinth/internal/exh"
	"github.com/j-blue-arz/labyrinth/internal/instance"
)

func main() {
	if len(os.Args) < 2 {
		showUsage(os.Args[0])
		os.Exit(1)
	}
	run(os.Args[1])
}

func showUsage(name string) {
	fmt.Fprintf(os.Stderr, "Usage: %s INSTANCE_FILE\n", name)
	fmt.Fprintln(os.Stderr, "Where:")
	fmt.Fprintln(os.Stderr, "\tINSTANCE_FILE\t\tis a file in the documented instance format.")
}

func run(filename string) {
	inst, err := instance.Load(filename)
	if err != nil {
		log.Fatalf("labyrinth-solve: %v", err)
	}

	actions := exh.FindBestActions(inst.Solver)
	if inst.ExpectedDepth != 0 && len(actions) != inst.ExpectedDepth {
		fmt.Fprintf(os.Stderr, "search depth mismatch for instance %s, expected %d, found %d\n",
			inst.Name, inst.ExpectedDepth, len(actions))
	}

	fmt.Printf("instance %s: %d actions\n", inst.Name, len(actions))
	for i, a := range actions {
		fmt.Printf("  %d: shift %+v move %+v\n", i, a.Shift, a.MoveLocation)
	}
}
