// Package lisp is a small tree-walking interpreter for a Lisp-like
// expression language. It bundles the value model, environment, parser,
// evaluator, special forms, built-ins and bootstrap prelude into a single
// package because they are mutually referential (a Native built-in needs
// to call back into Eval, the parser needs to build Values, and the
// bootstrap needs both) — the same shape the teacher's pkg/minimal uses to
// dodge the same import cycle. Tokenizing has no such dependency, so it
// stays its own package at pkg/lexer.
package lisp

import "github.com/korhonen/lispkit/pkg/lexer"

// Evaluate lexes, parses and evaluates source against a fresh environment
// seeded with InitEnvironmentWithPrelude. It returns the value of the last
// top-level form, evaluating every form before it purely for side effects
// (def, prn, dbg).
func Evaluate(source string) (Value, error) {
	env, err := InitEnvironmentWithPrelude()
	if err != nil {
		return nil, err
	}
	return EvaluateIn(source, env)
}

// EvaluateIn lexes, parses and evaluates source against env, returning the
// value of the last top-level form. Source with no forms evaluates to the
// empty list. Every form is evaluated, in order, so earlier forms' defs
// and side effects are visible to later ones and to whatever called this
// with env.
func EvaluateIn(source string, env *Environment) (Value, error) {
	tokens := lexer.Lex(source)
	forms, err := Parse(tokens)
	if err != nil {
		return nil, err
	}
	if len(forms) == 0 {
		return NewList(), nil
	}

	var result Value
	for _, form := range forms {
		v, err := Eval(form, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}
