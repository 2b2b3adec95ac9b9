package main

import (
	"errors"
	"fmt"
	"os"
	"os/user"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/repr"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"

	"cinder/grammar"
	"cinder/internal/ast"
	"cinder/internal/compiler"
	"cinder/internal/parser"
	"cinder/repl"
)

// fileArg resolves the file argument, falling back to the configured one.
func fileArg(c *cli.Context) (string, error) {
	path := c.Args().First()
	if path == "" {
		path = cfg.Filename
	}
	if path == "" {
		return "", cli.Exit(fmt.Sprintf("Usage: cinder %s <file>", c.Command.Name), 1)
	}
	return path, nil
}

func sourceFile(c *cli.Context) (string, string, error) {
	path, err := fileArg(c)
	if err != nil {
		return "", "", err
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return "", "", tracerr.Wrap(err)
	}
	return path, string(source), nil
}

func checkCommand(c *cli.Context) error {
	path, source, err := sourceFile(c)
	if err != nil {
		return err
	}

	unit := compiler.Check(path, source)
	duration := formatDuration(unit.Duration)

	if !unit.OK() {
		fmt.Print(unit.Report())
		color.Red("Compilation failed after %s", duration)
		return cli.Exit("", 1)
	}

	for _, decl := range unit.Program.Decls {
		fmt.Println(ast.Typed(decl))
	}
	color.Green("Successfully processed %s in %s", path, duration)
	return nil
}

func tokensCommand(c *cli.Context) error {
	path, source, err := sourceFile(c)
	if err != nil {
		return err
	}

	scanner := parser.NewScanner(source)
	for _, tok := range scanner.ScanTokens() {
		fmt.Printf("%d:%d\t%s\n", tok.Pos.Line, tok.Pos.Column, tok)
	}

	if errs := scanner.Errors(); len(errs) > 0 {
		for _, lexErr := range errs {
			color.Red("%s:%s", path, lexErr)
		}
		return cli.Exit("", 1)
	}
	return nil
}

func astCommand(c *cli.Context) error {
	path, source, err := sourceFile(c)
	if err != nil {
		return err
	}

	unit := compiler.Check(path, source)
	if unit.Program == nil {
		fmt.Print(unit.Report())
		return cli.Exit("", 1)
	}

	repr.Println(unit.Program, repr.Indent("  "), repr.OmitEmpty(true))
	if !unit.OK() {
		fmt.Print(unit.Report())
		return cli.Exit("", 1)
	}
	return nil
}

func grammarCommand(c *cli.Context) error {
	path, err := fileArg(c)
	if err != nil {
		return err
	}

	file, err := grammar.ParseFile(path)
	if err != nil {
		var pe participle.Error
		if !errors.As(err, &pe) {
			return tracerr.Wrap(err)
		}
		source, _ := os.ReadFile(path)
		fmt.Print(grammar.FormatError(string(source), pe))
		return cli.Exit("", 1)
	}

	fmt.Println(file.Program().String())
	return nil
}

func replCommand(c *cli.Context) error {
	name := "there"
	if current, err := user.Current(); err == nil {
		name = current.Username
	}

	fmt.Printf("Welcome to the cinder REPL, %s!\n", name)
	repl.Start(os.Stdin, os.Stdout)
	return nil
}
