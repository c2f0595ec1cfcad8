package lisp

import "github.com/korhonen/lispkit/pkg/lexer"

// Parse turns a token sequence into the ordered sequence of top-level
// forms it represents.
func Parse(tokens []lexer.Token) ([]Value, error) {
	forms, i, err := parseForms(tokens, 0, false)
	if err != nil {
		return nil, err
	}
	if i != len(tokens) {
		return nil, &ParseError{Message: "unexpected close paren"}
	}
	return forms, nil
}

// parseForms consumes tokens starting at i, appending parsed values to a
// slice, until either the input is exhausted (insideList == false) or a
// matching CP is found (insideList == true). It returns the index just
// past the consumed tokens (past the CP, for a list).
func parseForms(tokens []lexer.Token, i int, insideList bool) ([]Value, int, error) {
	var forms []Value
	for {
		if i >= len(tokens) {
			if insideList {
				return nil, 0, &ParseError{Message: "unbalanced parentheses: missing )"}
			}
			return forms, i, nil
		}

		tok := tokens[i]
		switch tok.Type {
		case lexer.CP:
			if !insideList {
				return nil, 0, &ParseError{Message: "unexpected close paren"}
			}
			return forms, i + 1, nil

		case lexer.OP:
			elems, next, err := parseForms(tokens, i+1, true)
			if err != nil {
				return nil, 0, err
			}
			forms = append(forms, NewList(elems...))
			i = next

		case lexer.SYMBOL:
			forms = append(forms, symbolOrBool(tok.Sym))
			i++

		case lexer.NUMBER:
			forms = append(forms, Number(tok.Num))
			i++
		}
	}
}

// symbolOrBool resolves the two reserved identifiers true/false to Bool
// literals; every other symbol text stays a Symbol to be looked up in the
// environment. There is no separate Bool token out of the lexer (it only
// produces OP/CP/NUMBER/SYMBOL) — the boolean literal syntax exists at this
// layer, since true/false never occur as bound names.
func symbolOrBool(s string) Value {
	switch s {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	default:
		return Symbol(s)
	}
}
