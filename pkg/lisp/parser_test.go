package lisp

import (
	"reflect"
	"testing"

	"github.com/korhonen/lispkit/pkg/lexer"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Value
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "single atom",
			input: "42",
			want:  []Value{Number(42)},
		},
		{
			name:  "simple application",
			input: "(+ 1 2)",
			want:  []Value{NewList(Symbol("+"), Number(1), Number(2))},
		},
		{
			name:  "nested lists",
			input: "(list (1 2) 3)",
			want: []Value{NewList(
				Symbol("list"),
				NewList(Number(1), Number(2)),
				Number(3),
			)},
		},
		{
			name:  "multiple top-level forms",
			input: "(* 10 20) (- 4 2)",
			want: []Value{
				NewList(Symbol("*"), Number(10), Number(20)),
				NewList(Symbol("-"), Number(4), Number(2)),
			},
		},
		{
			name:  "empty list literal",
			input: "()",
			want:  []Value{NewList()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(lexer.Lex(tt.input))
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"(+ 1 2",
		")",
		"(+ 1 2))",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(lexer.Lex(input))
			if err == nil {
				t.Fatalf("Parse(%q) expected an error, got none", input)
			}
			if _, ok := err.(*ParseError); !ok {
				t.Errorf("Parse(%q) error = %v (%T), want *ParseError", input, err, err)
			}
		})
	}
}
