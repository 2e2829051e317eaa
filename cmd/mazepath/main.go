// Command mazepath solves oriented-grid mazes from the command line or
// serves the solver over HTTP.
//
//	mazepath solve maze.txt
//	mazepath solve --json --render - < maze.txt
//	mazepath serve --addr :8080 --trace-stdout
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
