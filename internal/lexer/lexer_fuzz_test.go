package lexer

import (
	"testing"
)

// FuzzLexer checks that the lexer never panics, that the tokens cover a
// prefix of the input, and that an error is reported exactly when part of
// the input is left over.
func FuzzLexer(f *testing.F) {
	seeds := []string{
		``,
		`int main() { return 2; }`,
		`int main() { return 3 * (3 + 5 * 2); }`,
		`~-!~!3`,
		`internal return_value int2`,
		`8 - 4 - 2`,
		`return 2 % 3;`,
		`99999999999999999999999`,
		"int\tmain\r\n(\n)",
		`"string"`,
		`привет`,
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		toks, err := Lex(src)

		end := 0
		for _, tok := range toks {
			if tok.Pos.Offset < end {
				t.Fatalf("token %v overlaps previous token", tok)
			}
			if src[tok.Pos.Offset:tok.Pos.Offset+len(tok.Value)] != tok.Value {
				t.Fatalf("token %v does not match source", tok)
			}
			end = tok.Pos.Offset + len(tok.Value)
		}

		if err != nil {
			ue, ok := err.(*UnrecognizedInputError)
			if !ok {
				t.Fatalf("unexpected error type %T", err)
			}
			if src[ue.Pos.Offset:] != ue.Text {
				t.Fatalf("remainder %q does not match source suffix", ue.Text)
			}
		}
	})
}
