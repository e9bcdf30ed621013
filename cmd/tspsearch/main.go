// Command tspsearch solves a travelling salesman instance over generated or
// configured cities with A*, simulated annealing or tabu search.
//
//	tspsearch astar  --cities 8 --seed 3
//	tspsearch anneal --cities 40 --iterations 20000 --dot tour.dot
//	tspsearch tabu   --config run.yaml --tabu-size 25
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the CLI with args and returns the process exit status.
// Any error is printed to stderr; usage is not repeated.
func execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "tspsearch: %v\n", err)
		return 1
	}
	return 0
}
