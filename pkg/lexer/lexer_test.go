package lexer

import (
	"reflect"
	"testing"
)

func TestLex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "simple addition",
			input: "(+ 1 2)",
			want: []Token{
				{Type: OP},
				{Type: SYMBOL, Sym: "+"},
				{Type: NUMBER, Num: 1},
				{Type: NUMBER, Num: 2},
				{Type: CP},
			},
		},
		{
			name:  "nested lists and whitespace",
			input: "(def x\n  (list 1 2 3))",
			want: []Token{
				{Type: OP},
				{Type: SYMBOL, Sym: "def"},
				{Type: SYMBOL, Sym: "x"},
				{Type: OP},
				{Type: SYMBOL, Sym: "list"},
				{Type: NUMBER, Num: 1},
				{Type: NUMBER, Num: 2},
				{Type: NUMBER, Num: 3},
				{Type: CP},
				{Type: CP},
			},
		},
		{
			name:  "multi-digit number flush at EOF",
			input: "12345",
			want:  []Token{{Type: NUMBER, Num: 12345}},
		},
		{
			name:  "symbol flush at EOF",
			input: "foo",
			want:  []Token{{Type: SYMBOL, Sym: "foo"}},
		},
		{
			name:  "single-char special symbols",
			input: "(> a b)",
			want: []Token{
				{Type: OP},
				{Type: SYMBOL, Sym: ">"},
				{Type: SYMBOL, Sym: "a"},
				{Type: SYMBOL, Sym: "b"},
				{Type: CP},
			},
		},
		{
			name:  "vararg suffix stays attached to its symbol",
			input: "(fn f (a b...) b)",
			want: []Token{
				{Type: OP},
				{Type: SYMBOL, Sym: "fn"},
				{Type: SYMBOL, Sym: "f"},
				{Type: OP},
				{Type: SYMBOL, Sym: "a"},
				{Type: SYMBOL, Sym: "b..."},
				{Type: CP},
				{Type: SYMBOL, Sym: "b"},
				{Type: CP},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lex(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lex(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Type: OP}, "("},
		{Token{Type: CP}, ")"},
		{Token{Type: NUMBER, Num: 7}, "7"},
		{Token{Type: SYMBOL, Sym: "foo"}, "foo"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("Token.String() = %q, want %q", got, tt.want)
		}
	}
}
