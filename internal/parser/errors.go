// Package parser provides a recursive descent parser for ucc programs.
package parser

import "errors"

// ErrNoParse is returned when the tokens do not form a program. It carries
// no position or cause; every syntax error yields this same value.
var ErrNoParse = errors.New("could not parse program")
