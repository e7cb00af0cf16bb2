// Copyright 2023 The go-maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/chzyer/readline"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/xclud/go-maths/complexval"
	"github.com/xclud/go-maths/starlarkcomplex"
)

const (
	promptMain = "cplx> "
	promptCont = " ...> "
)

var interrupted = make(chan os.Signal, 1)

// repl executes a read, eval, print loop over complex-number programs.
//
// It supports readline-style editing with persistent history and
// interrupts through Control-C. A sole expression is evaluated and its
// result rendered; finite non-zero complex results carry a polar
// annotation alongside the canonical rectangular form. Any other input
// is executed as a program, for side effects.
//
// Before evaluating each item the repl sets the Starlark thread local
// variable named "context" to a context.Context cancelled by a SIGINT.
func repl(thread *starlark.Thread, globals starlark.StringDict) {
	signal.Notify(interrupted, os.Interrupt)
	defer signal.Stop(interrupted)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      promptMain,
		HistoryFile: historyFile(),
	})
	if err != nil {
		printError(err)
		return
	}
	defer rl.Close()
	for {
		if err := readEvalPrint(rl, thread, globals); err != nil {
			if err == readline.ErrInterrupt {
				fmt.Println(err)
				continue
			}
			break
		}
	}
	fmt.Println()
}

// historyFile returns the path of the persistent history file, or ""
// to disable history if no home directory is available.
func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".complexcalc_history")
}

// readEvalPrint reads, evaluates, and renders one item.
//
// It returns an error (possibly readline.ErrInterrupt) only if
// readline failed. Starlark errors are printed.
func readEvalPrint(rl *readline.Instance, thread *starlark.Thread, globals starlark.StringDict) error {
	// Each item gets its own context,
	// which is cancelled by a SIGINT.
	//
	// Note: during Readline calls, Control-C causes Readline to return
	// ErrInterrupt but does not generate a SIGINT.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-interrupted:
			cancel()
		case <-ctx.Done():
		}
	}()

	thread.SetLocal("context", ctx)

	eof := false

	// readLine returns EOF, ErrInterrupt, or a line including "\n",
	// switching to the continuation prompt after the first line.
	rl.SetPrompt(promptMain)
	readLine := func() ([]byte, error) {
		line, err := rl.Readline()
		rl.SetPrompt(promptCont)
		if err != nil {
			if err == io.EOF {
				eof = true
			}
			return nil, err
		}
		return []byte(line + "\n"), nil
	}

	f, err := syntax.ParseCompoundStmt("<stdin>", readLine)
	if err != nil {
		if eof {
			return io.EOF
		}
		printError(err)
		return nil
	}

	// A sole expression is evaluated and rendered; anything else is
	// executed as a program.
	if len(f.Stmts) == 1 {
		if stmt, ok := f.Stmts[0].(*syntax.ExprStmt); ok {
			v, err := starlark.EvalExpr(thread, stmt.X, globals)
			if err != nil {
				printError(err)
				return nil
			}
			renderResult(os.Stdout, v)
			return nil
		}
	}
	if err := starlark.ExecREPLChunk(f, thread, globals); err != nil {
		printError(err)
	}
	return nil
}

// renderResult prints an evaluation result. None is suppressed, and a
// finite non-zero complex value is annotated with its polar form so a
// calculator session shows both coordinates at a glance:
//
//	cplx> complex.complex(3, 4)
//	(3 + 4i)	r=5 θ=0.92729522
func renderResult(w io.Writer, v starlark.Value) {
	switch v := v.(type) {
	case starlark.NoneType:
	case starlarkcomplex.Complex:
		z := complexval.Complex(v)
		if z.IsFinite() && !z.Equal(complexval.Zero) {
			fmt.Fprintf(w, "%s\tr=%.8g θ=%.8g\n", z, z.Abs(), z.Arg())
			return
		}
		fmt.Fprintln(w, z)
	default:
		fmt.Fprintln(w, v)
	}
}
