// Command lispkit is the CLI entrypoint: run a file with -f, or start an
// interactive REPL.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/korhonen/lispkit/pkg/lisp"
	"github.com/korhonen/lispkit/pkg/repl"
)

func main() {
	var filename string
	flag.StringVar(&filename, "f", "", "load and execute a Lisp file, then exit")
	flag.Parse()

	env, err := lisp.InitEnvironmentWithPrelude()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lispkit: failed to load prelude: %v\n", err)
		os.Exit(1)
	}

	if filename != "" {
		source, err := os.ReadFile(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lispkit: %v\n", err)
			os.Exit(1)
		}
		result, err := lisp.EvaluateIn(string(source), env)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lispkit: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(result.String())
		return
	}

	if err := repl.Run(env); err != nil {
		fmt.Fprintf(os.Stderr, "lispkit: %v\n", err)
		os.Exit(1)
	}
}
