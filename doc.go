// Package ucc compiles a tiny subset of C to 32-bit x86 assembly.
//
// The accepted language is a single function returning one integer
// expression:
//
//	int main() {
//	    return (3 + 4) * 6 - 3;
//	}
//
// Expressions are built from non-negative integer literals, the unary
// operators -, ~ and !, the binary operators + - * / with the usual
// precedence and left associativity, and parentheses.
//
// # Quick Start
//
//	prog, err := ucc.Compile(src, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(prog.Assembly())
//
// The listing is AT&T syntax and can be assembled with "gcc -m32". It can
// also be executed without a native toolchain:
//
//	v, err := prog.Run() // value of %eax at ret
//
// # Error Handling
//
// Errors are returned as specific types:
//   - [LexError]: source text no lexer rule recognizes
//   - [ParseError]: the token stream is not a valid program
//   - [CompileError]: code generation invariant violation
//   - [RuntimeError]: fault while executing the listing
//
// A [LexError] is advisory unless [Config.Strict] is set: the tokens
// recognized before it are compiled and the error is reported through
// [Program.Warnings].
//
// # Thread Safety
//
// Compiled [Program] objects are immutable and safe for concurrent use.
package ucc
