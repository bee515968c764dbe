package token

import "testing"

func TestCategories(t *testing.T) {
	tests := []struct {
		tok      Token
		keyword  bool
		operator bool
	}{
		{INT, true, false},
		{RETURN, true, false},
		{COMPL, false, true},
		{MUL, false, true},
		{LBRACE, false, false},
		{SEMICOLON, false, false},
		{IDENT, false, false},
		{NUMBER, false, false},
		{WHITESPACE, false, false},
		{ILLEGAL, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.tok.String(), func(t *testing.T) {
			if got := tt.tok.IsKeyword(); got != tt.keyword {
				t.Errorf("IsKeyword() = %v, want %v", got, tt.keyword)
			}
			if got := tt.tok.IsOperator(); got != tt.operator {
				t.Errorf("IsOperator() = %v, want %v", got, tt.operator)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	if got := LookupKeyword("return"); got != RETURN {
		t.Errorf("LookupKeyword(return) = %v", got)
	}
	if got := LookupKeyword("internal"); got != ILLEGAL {
		t.Errorf("LookupKeyword(internal) = %v, want ILLEGAL", got)
	}
	for _, s := range []string{"~", "!", "-", "+", "/", "*"} {
		if got := LookupOperator(s); got.String() != s {
			t.Errorf("LookupOperator(%q) = %v", s, got)
		}
	}
	for _, s := range []string{"{", "}", "(", ")", ";"} {
		if got := LookupPunct(s); got.String() != s {
			t.Errorf("LookupPunct(%q) = %v", s, got)
		}
	}
	if got := LookupPunct("["); got != ILLEGAL {
		t.Errorf("LookupPunct([) = %v, want ILLEGAL", got)
	}
}

func TestStringUnknown(t *testing.T) {
	if got := Token(200).String(); got != "token(200)" {
		t.Errorf("got %q", got)
	}
}

func TestPositionAdvance(t *testing.T) {
	p := Start.Advance("ab\n  c")
	want := Position{Line: 2, Column: 4, Offset: 6}
	if p != want {
		t.Errorf("Advance = %+v, want %+v", p, want)
	}
	if p.String() != "2:4" {
		t.Errorf("String() = %q", p.String())
	}
}
