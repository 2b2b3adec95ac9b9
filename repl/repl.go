// SPDX-License-Identifier: Apache-2.0

// Package repl reads declarations line by line, checks each line and prints
// the typed declarations or the diagnostics.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/repr"

	"cinder/internal/ast"
	"cinder/internal/compiler"
)

const PROMPT = ">> "

const (
	cmdDump = ":dump"
	cmdQuit = ":quit"
)

type REPL struct {
	out  io.Writer
	dump bool
	line int
}

func New(out io.Writer) *REPL {
	return &REPL{out: out}
}

func Start(in io.Reader, out io.Writer) {
	New(out).Run(in)
}

// Run loops until in is exhausted or the user types :quit.
func (r *REPL) Run(in io.Reader) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(r.out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == cmdQuit {
			return
		}
		r.Eval(line)
	}
}

// Eval handles one input line.
func (r *REPL) Eval(line string) {
	switch line {
	case "":
		return
	case cmdDump:
		r.dump = !r.dump
		fmt.Fprintf(r.out, "dump %s\n", onOff(r.dump))
		return
	}

	r.line++
	unit := compiler.Check(fmt.Sprintf("<repl:%d>", r.line), line)
	if !unit.OK() {
		fmt.Fprint(r.out, unit.Report())
		return
	}

	for _, decl := range unit.Program.Decls {
		if r.dump {
			fmt.Fprintln(r.out, repr.String(decl, repr.Indent("  "), repr.OmitEmpty(true)))
		}
		fmt.Fprintln(r.out, ast.Typed(decl))
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
