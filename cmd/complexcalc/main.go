// Copyright 2023 The go-maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The complexcalc command evaluates Starlark programs over complex
// numbers. With a file argument or -c program it executes the program;
// with no arguments and a terminal on stdin it starts a
// read-eval-print loop; otherwise it executes the program on stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	starlarkmath "go.starlark.net/lib/math"
	"go.starlark.net/starlark"
	"golang.org/x/term"

	"github.com/xclud/go-maths/starlarkcomplex"
)

// flags
var (
	showenv  = flag.Bool("showenv", false, "on success, print final global environment")
	execprog = flag.String("c", "", "execute program `prog`")
)

func main() {
	os.Exit(doMain())
}

func doMain() int {
	log.SetPrefix("complexcalc: ")
	log.SetFlags(0)
	flag.Parse()

	thread := &starlark.Thread{Name: "complexcalc"}
	globals := make(starlark.StringDict)

	starlark.Universe[starlarkcomplex.ModuleName] = starlarkcomplex.Module
	starlark.Universe["math"] = starlarkmath.Module

	switch {
	case flag.NArg() == 1 || *execprog != "":
		var (
			filename string
			src      interface{}
			err      error
		)
		if *execprog != "" {
			// Execute provided program.
			filename = "cmdline"
			src = *execprog
		} else {
			// Execute specified file.
			filename = flag.Arg(0)
		}
		thread.Name = "exec " + filename
		globals, err = starlark.ExecFile(thread, filename, src, nil)
		if err != nil {
			printError(err)
			return 1
		}
	case flag.NArg() == 0:
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Println("Welcome to complexcalc (github.com/xclud/go-maths)")
			thread.Name = "REPL"
			repl(thread, globals)
			break
		}
		// Piped input: execute stdin as a program.
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Print(err)
			return 1
		}
		thread.Name = "exec stdin"
		globals, err = starlark.ExecFile(thread, "<stdin>", src, nil)
		if err != nil {
			printError(err)
			return 1
		}
	default:
		log.Print("want at most one program file name")
		return 1
	}

	// Print the global environment.
	if *showenv {
		for _, name := range globals.Keys() {
			if !strings.HasPrefix(name, "_") {
				fmt.Fprintf(os.Stderr, "%s = %s\n", name, globals[name])
			}
		}
	}

	return 0
}

// printError prints the error to stderr,
// or its backtrace if it is a Starlark evaluation error.
func printError(err error) {
	if evalErr, ok := err.(*starlark.EvalError); ok {
		fmt.Fprintln(os.Stderr, evalErr.Backtrace())
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
}
