// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/brainfuck/interpreter"
	"github.com/ezrec/brainfuck/io"
	"github.com/ezrec/brainfuck/program"
	"github.com/ezrec/brainfuck/tape"
	"github.com/ezrec/brainfuck/watch"
)

func main() {
	var source string
	var input string
	var output string
	var storage string
	var breakpoint string
	var listing bool
	var verbose bool

	flag.StringVar(&source, "e", "", "Program source text")
	flag.StringVar(&input, "i", "-", "Program input")
	flag.StringVar(&output, "o", "-", "Program output")
	flag.StringVar(&storage, "t", "static", "Tape storage (static, dynamic)")
	flag.StringVar(&breakpoint, "b", "", "Stop when this Starlark expression is true")
	flag.BoolVar(&listing, "p", false, "Print the parsed program, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	var prog *program.Program
	var err error
	name := "-e"
	switch {
	case len(source) != 0 && flag.NArg() == 0:
		prog, err = program.Parse(source)
	case len(source) == 0 && flag.NArg() == 1:
		name = flag.Arg(0)
		prog, err = program.FromFile(name)
	default:
		log.Fatalf("%v: expected one program file, or -e: %v", os.Args[0], flag.Args())
	}
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	if listing {
		fmt.Println(prog.String())
		return
	}

	kind, err := tape.ParseStorage(storage)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	in := interpreter.NewInterpreter(prog, kind)
	in.Verbose = verbose

	port := &io.Port{}
	in.Input = port
	in.Output = port

	if input == "-" {
		port.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		port.Input = inf
	}

	if output == "-" {
		port.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		port.Output = ouf
	}

	var hook func(trace interpreter.Trace) bool
	var w *watch.Watch
	if len(breakpoint) != 0 {
		w, err = watch.Compile(breakpoint, in.Defines())
		if err != nil {
			log.Fatalf("-b: %v", err)
		}
		w.Verbose = verbose
		hook = w.Callback()
	}

	err = in.RunWithCallback(hook)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	if w != nil {
		if err := w.Err(); err != nil {
			log.Fatalf("-b: %v", err)
		}
		if trace, ok := w.Hit(); ok {
			log.Printf("%v: stopped at pc %d '%v' after %d cycles, ptr=%d cell=%d",
				name, trace.At, trace.Instruction, trace.Cycles, trace.Pointer, trace.Cell)
		}
	}
}
