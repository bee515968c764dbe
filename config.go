package ucc

import "io"

// Config holds configuration options for compilation.
type Config struct {
	// Strict makes unrecognized input a fatal LexError instead of a warning.
	Strict bool

	// Stderr is the writer for warnings.
	// If nil, warnings are discarded (they are still kept in Program.Warnings).
	Stderr io.Writer

	// Filename prefixes diagnostic positions, as in "main.c:1:5".
	Filename string
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.Stderr == nil {
		c.Stderr = io.Discard
	}
}
