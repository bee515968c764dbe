// ucc - a compiler for a tiny subset of C
//
// Reads one C source file (or -e source text) and writes 32-bit x86
// assembly in AT&T syntax.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/kolkov/ucc"
	"github.com/kolkov/ucc/internal/toolchain"
)

// version is set at build time via -ldflags.
var version = "dev"

const (
	shortUsage = "usage: ucc [-strict] [-tokens] [-ast] [-run] [-o file] [-b binary] [-e 'src' | file]"
	longUsage  = `Input:
  file              C source file, "-" for stdin
  -e src            compile src instead of a file

Output:
  -o file           write assembly to file (default: stdout)
  -b binary         assemble and link with "gcc -m32" into binary
  -run              interpret the program and print the value it returns

Diagnostics:
  -strict           treat unrecognized input as an error
  -tokens           print the token list to stderr
  -ast              print the syntax tree to stderr

Other:
  -h, --help        show this help message
  -version          show ucc version and exit
`
)

//nolint:gocyclo // CLI argument parsing is inherently branchy
func main() {
	var (
		source     string
		haveSource bool
		outFile    string
		binFile    string
		strict     bool
		dumpTokens bool
		dumpAST    bool
		run        bool
	)

	needArg := func(i int, flag string) {
		if i+1 >= len(os.Args) {
			errorExitf("flag needs an argument: %s", flag)
		}
	}

	var i int
	for i = 1; i < len(os.Args); i++ {
		arg := os.Args[i]
		if arg == "--" {
			i++
			break
		}
		if arg == "-" || len(arg) == 0 || arg[0] != '-' {
			break
		}

		switch arg {
		case "-e":
			needArg(i, arg)
			i++
			source, haveSource = os.Args[i], true
		case "-o":
			needArg(i, arg)
			i++
			outFile = os.Args[i]
		case "-b":
			needArg(i, arg)
			i++
			binFile = os.Args[i]
		case "-strict":
			strict = true
		case "-tokens":
			dumpTokens = true
		case "-ast":
			dumpAST = true
		case "-run":
			run = true
		case "-h", "--help":
			fmt.Printf("ucc %s - tiny C compiler\n\n%s\n\n%s", version, shortUsage, longUsage)
			os.Exit(0)
		case "-version", "--version":
			fmt.Printf("ucc version %s\n", version)
			fmt.Println("  target: x86 (32-bit), AT&T syntax")
			os.Exit(0)
		default:
			errorExitf("flag provided but not defined: %s", arg)
		}
	}

	args := os.Args[i:]
	filename := ""
	switch {
	case haveSource:
		if len(args) > 0 {
			errorExitf("unexpected argument with -e: %s", args[0])
		}
		filename = "<arg>"
	case len(args) == 1:
		filename = args[0]
		source = readSource(filename)
	default:
		errorExitf(shortUsage)
	}

	prog, err := ucc.Compile(source, &ucc.Config{
		Strict:   strict,
		Stderr:   prefixWriter{os.Stderr},
		Filename: filename,
	})
	if err != nil {
		errorExit(err)
	}

	if dumpTokens {
		fmt.Fprint(os.Stderr, prog.Tokens())
	}
	if dumpAST {
		fmt.Fprintln(os.Stderr, prog.AST())
	}

	if run {
		v, err := prog.Run()
		if err != nil {
			errorExit(err)
		}
		fmt.Println(v)
	}

	if binFile != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := prog.Build(ctx, binFile); err != nil {
			if errors.Is(err, toolchain.ErrNotFound) {
				errorExitf("cannot build %s: %s not found in PATH", binFile, toolchain.CC)
			}
			errorExit(err)
		}
	}

	switch {
	case outFile != "":
		if err := os.WriteFile(outFile, []byte(prog.Assembly()), 0o644); err != nil {
			errorExitf("cannot write %s: %v", outFile, err)
		}
	case !run && binFile == "":
		fmt.Print(prog.Assembly())
	}
}

// readSource reads a source file, "-" meaning stdin.
func readSource(name string) string {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		errorExitf("cannot read source file %s: %v", name, err)
	}
	return string(data)
}

// prefixWriter tags library diagnostics with the program name.
type prefixWriter struct{ w io.Writer }

func (p prefixWriter) Write(b []byte) (int, error) {
	if _, err := fmt.Fprintf(p.w, "ucc: %s", b); err != nil {
		return 0, err
	}
	return len(b), nil
}

// errorExitf prints formatted error message and exits with code 1
func errorExitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ucc: "+format+"\n", args...)
	os.Exit(1)
}

// errorExit prints error and exits with code 1
func errorExit(err error) {
	fmt.Fprintf(os.Stderr, "ucc: %v\n", err)
	os.Exit(1)
}
