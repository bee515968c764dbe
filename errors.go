package ucc

import (
	"fmt"

	"github.com/kolkov/ucc/internal/lexer"
)

// LexError reports source text that no lexer rule recognizes.
type LexError struct {
	Filename string // File name from Config, may be empty
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Text     string // Unrecognized remainder of the source
}

func (e *LexError) Error() string {
	pos := fmt.Sprintf("%d:%d", e.Line, e.Column)
	if e.Filename != "" {
		pos = e.Filename + ":" + pos
	}
	return fmt.Sprintf("%s: unrecognized input %q", pos, lexer.Excerpt(e.Text))
}

// ParseError reports that the tokens do not form a program.
type ParseError struct {
	Message string // Error description
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// CompileError represents an internal failure during code generation.
type CompileError struct {
	Message string // Error description
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile error: %s", e.Message)
}

// RuntimeError represents a fault while executing the listing.
type RuntimeError struct {
	Message string // Error description
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error: %s", e.Message)
}
