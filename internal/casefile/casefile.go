// Package casefile reads compiler test cases written as Markdown.
//
// Each case starts at a heading "Test: <name>" and holds one source fence
// followed by any number of assertion fences:
//
//	## Test: return a constant
//
//	```c
//	int main() { return 2; }
//	```
//
//	```result
//	2
//	```
package casefile

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Kind is the info string of an assertion fence.
type Kind string

const (
	KindTokens Kind = "tokens" // token list, one per line
	KindAST    Kind = "ast"    // constructor notation of the tree
	KindAsm    Kind = "asm"    // exact assembly text
	KindResult Kind = "result" // value of %eax at ret
	KindError  Kind = "error"  // substring of the error from a strict compile
)

// sourceFence is the info string of the input fence.
const sourceFence = "c"

const headingPrefix = "Test: "

// Assertion is one expectation of a case.
type Assertion struct {
	Kind    Kind
	Content string
}

// Case is a single test case.
type Case struct {
	Name       string
	Line       int // line of the source fence, for messages
	Source     string
	Assertions []Assertion
}

// ReadFile parses the cases in the Markdown file at path.
func ReadFile(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cases, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

// Parse extracts all cases from a Markdown document.
func Parse(source []byte) ([]Case, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var cases []Case
	var cur *Case
	flush := func() error {
		if cur == nil {
			return nil
		}
		if err := validate(cur); err != nil {
			return err
		}
		cases = append(cases, *cur)
		return nil
	}

	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			heading := headingText(n, source)
			if !strings.HasPrefix(heading, headingPrefix) {
				return ast.WalkContinue, nil
			}
			if err := flush(); err != nil {
				return ast.WalkStop, err
			}
			cur = &Case{Name: strings.TrimPrefix(heading, headingPrefix)}

		case *ast.FencedCodeBlock:
			lang := string(n.Language(source))
			line := lineNumber(n, source)
			if lang == "" {
				return ast.WalkContinue, nil
			}
			if cur == nil {
				return ast.WalkStop, fmt.Errorf("line %d: %s fence outside of a test case", line, lang)
			}
			content := strings.TrimRight(blockContent(n, source), "\n")
			switch {
			case lang == sourceFence:
				if cur.Source != "" {
					return ast.WalkStop, fmt.Errorf("line %d: second source fence in test %q", line, cur.Name)
				}
				cur.Source = content
				cur.Line = line
			case isAssertion(Kind(lang)):
				cur.Assertions = append(cur.Assertions, Assertion{Kind: Kind(lang), Content: content})
			default:
				return ast.WalkStop, fmt.Errorf("line %d: unknown fence %q in test %q", line, lang, cur.Name)
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return cases, nil
}

func isAssertion(k Kind) bool {
	switch k {
	case KindTokens, KindAST, KindAsm, KindResult, KindError:
		return true
	}
	return false
}

func validate(c *Case) error {
	if c.Source == "" {
		return fmt.Errorf("test %q has no source fence", c.Name)
	}
	if len(c.Assertions) == 0 {
		return fmt.Errorf("test %q has no assertions", c.Name)
	}
	return nil
}

func headingText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			buf.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

func blockContent(block *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.String()
}

func lineNumber(node ast.Node, source []byte) int {
	if node.Lines().Len() == 0 {
		return 1
	}
	start := node.Lines().At(0).Start
	return bytes.Count(source[:min(start, len(source))], []byte{'\n'}) + 1
}
