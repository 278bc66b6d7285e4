// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go.starlark.net/starlark"

	"github.com/ezrec/bitslice/script"
)

func main() {
	var expr string
	var verbose bool

	flag.StringVar(&expr, "e", "", "Expression to evaluate, after any scripts")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	in := script.NewInterpreter()
	in.Verbose = verbose
	in.Output = os.Stdout

	files := flag.Args()
	if len(files) == 0 && len(expr) == 0 {
		files = []string{"-"}
	}

	for _, file := range files {
		var src any
		if file == "-" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				log.Fatalf("%v: %v", os.Args[0], err)
			}
			src = data
		}

		err := in.Exec(file, src)
		if err != nil {
			fatal(file, err)
		}
	}

	if len(expr) != 0 {
		value, err := in.Eval(expr)
		if err != nil {
			fatal("-e", err)
		}
		fmt.Println(value)
	}
}

// fatal reports err, with the Starlark backtrace if there is one.
func fatal(name string, err error) {
	var evalErr *starlark.EvalError
	if errors.As(err, &evalErr) {
		log.Fatalf("%v: %v", name, evalErr.Backtrace())
	}
	log.Fatalf("%v: %v", name, err)
}
