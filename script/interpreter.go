// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package script

import (
	"fmt"
	"io"
	"log"
	"maps"
	"os"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Interpreter evaluates Starlark over bits values. Globals defined by
// each Exec are visible to later calls.
type Interpreter struct {
	Verbose bool      // Set to enable verbose logging.
	Output  io.Writer // Destination of print(); stdout if nil.

	Globals starlark.StringDict
}

// NewInterpreter creates a new interpreter.
func NewInterpreter() (in *Interpreter) {
	in = &Interpreter{
		Globals: starlark.StringDict{},
	}

	return
}

// Predeclared returns the names available to every script.
func Predeclared() starlark.StringDict {
	return starlark.StringDict{
		"bits": starlark.NewBuiltin("bits", makeBits),
	}
}

func (in *Interpreter) thread(name string) *starlark.Thread {
	out := in.Output
	if out == nil {
		out = os.Stdout
	}

	return &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(out, msg)
		},
	}
}

func (in *Interpreter) environment() (env starlark.StringDict) {
	env = Predeclared()
	maps.Copy(env, in.Globals)
	return
}

var fileOptions = syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// Exec runs a script. If src is nil, the script is read from filename.
func (in *Interpreter) Exec(filename string, src any) (err error) {
	if in.Verbose {
		log.Printf("script: exec %v", filename)
	}

	globals, err := starlark.ExecFileOptions(&fileOptions, in.thread(filename), filename, src, in.environment())
	if err != nil {
		return
	}

	if in.Globals == nil {
		in.Globals = starlark.StringDict{}
	}
	maps.Copy(in.Globals, globals)

	if in.Verbose {
		log.Printf("script: %v defined %v", filename, globals.Keys())
	}

	return
}

// Eval evaluates a single expression.
func (in *Interpreter) Eval(expr string) (value starlark.Value, err error) {
	if in.Verbose {
		log.Printf("script: eval %v", expr)
	}

	return starlark.EvalOptions(&fileOptions, in.thread("expr"), "expr", expr, in.environment())
}
