// Package watch stops an interpreter run when a Starlark expression over the
// interpreter state becomes true.
//
// The expression sees the Trace fields (at, op, pc, cycles, ptr, cell) and
// the integer interpreter defines (TAPE_LENGTH, CYCLE_LIMIT). For example:
//
//	cell == 0 and op == "]"
//	cycles > 1000 or ptr >= 100
package watch

import (
	"errors"
	"iter"
	"log"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/brainfuck/internal"
	"github.com/ezrec/brainfuck/interpreter"
	"github.com/ezrec/brainfuck/translate"
)

var f = translate.From

var (
	// Watch errors
	ErrExpression = errors.New(f("watch expression invalid"))
)

// Watch is a compiled break-point expression.
type Watch struct {
	Verbose bool   // If set, logs every hit.
	Expr    string // Starlark expression text.

	defines iter.Seq2[string, string]
	hit     *interpreter.Trace
	err     error
}

// Compile checks the expression against an empty trace, so that syntax and
// name errors are reported before a run starts.
func Compile(expr string, defines iter.Seq2[string, string]) (w *Watch, err error) {
	w = &Watch{
		Expr:    expr,
		defines: defines,
	}

	_, err = w.Match(interpreter.Trace{})
	if err != nil {
		w = nil
	}

	return
}

// predeclared builds the Starlark globals for a trace.
func (w *Watch) predeclared(trace interpreter.Trace) (pred starlark.StringDict) {
	pred = starlark.StringDict{}

	// Defines are only bound when integer valued.
	intDefines := internal.IterSeq2Convert(w.defines, func(key string, str string) (value any, ok bool) {
		n, err := strconv.Atoi(str)
		return n, err == nil
	})

	for key, value := range internal.IterSeq2Concat(intDefines, trace.Vars()) {
		switch v := value.(type) {
		case int:
			pred[key] = starlark.MakeInt(v)
		case string:
			pred[key] = starlark.String(v)
		}
	}

	return
}

// Match evaluates the expression for a trace.
func (w *Watch) Match(trace interpreter.Trace) (ok bool, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	prog := "rc=(" + w.Expr + ")\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "watch", prog, w.predeclared(trace))
	if err != nil {
		err = errors.Join(ErrExpression, err)
		return
	}
	rc, found := dict["rc"]
	if !found {
		err = ErrExpression
		return
	}

	ok = bool(rc.Truth())
	return
}

// Callback returns an interpreter step callback that stops the run on the
// first trace matching the expression. An evaluation error also stops the
// run, and is reported by Err.
func (w *Watch) Callback() func(trace interpreter.Trace) bool {
	w.hit = nil
	w.err = nil

	return func(trace interpreter.Trace) bool {
		ok, err := w.Match(trace)
		if err != nil {
			w.err = err
			return false
		}
		if ok {
			w.hit = &trace
			if w.Verbose {
				log.Printf("watch: %q hit at pc %d", w.Expr, trace.At)
			}
			return false
		}
		return true
	}
}

// Hit returns the trace that stopped the run, if any.
func (w *Watch) Hit() (trace interpreter.Trace, ok bool) {
	if w.hit == nil {
		return
	}

	return *w.hit, true
}

// Err returns the evaluation error that stopped the run, if any.
func (w *Watch) Err() error {
	return w.err
}
