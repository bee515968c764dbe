package ucc

import (
	"errors"
	"fmt"

	"github.com/kolkov/ucc/internal/codegen"
	"github.com/kolkov/ucc/internal/lexer"
	"github.com/kolkov/ucc/internal/parser"
)

// Version is the ucc version string.
const Version = "0.1.0"

// Compile lexes, parses and generates code for src.
// If config is nil, default configuration is used.
//
// Example:
//
//	prog, err := ucc.Compile("int main() { return 2; }", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(prog.Assembly())
func Compile(src string, config *Config) (*Program, error) {
	var cfg Config
	if config != nil {
		cfg = *config
	}
	cfg.applyDefaults()

	tokens, err := lexer.Lex(src)
	var warnings []error
	if err != nil {
		var ue *lexer.UnrecognizedInputError
		if !errors.As(err, &ue) {
			return nil, err
		}
		le := &LexError{
			Filename: cfg.Filename,
			Line:     ue.Pos.Line,
			Column:   ue.Pos.Column,
			Text:     ue.Text,
		}
		if cfg.Strict {
			return nil, le
		}
		fmt.Fprintf(cfg.Stderr, "warning: %v\n", le)
		warnings = append(warnings, le)
	}

	tree, err := parser.ParseProgram(tokens)
	if err != nil {
		return nil, &ParseError{Message: err.Error()}
	}

	listing, err := codegen.Generate(tree)
	if err != nil {
		var ce *codegen.CompileError
		if errors.As(err, &ce) {
			return nil, &CompileError{Message: ce.Message}
		}
		return nil, &CompileError{Message: err.Error()}
	}

	return &Program{
		source:   src,
		tokens:   tokens,
		tree:     tree,
		listing:  listing,
		text:     listing.Text(),
		warnings: warnings,
	}, nil
}

// MustCompile is like Compile but panics if the program cannot be compiled.
func MustCompile(src string) *Program {
	prog, err := Compile(src, nil)
	if err != nil {
		panic(err)
	}
	return prog
}
