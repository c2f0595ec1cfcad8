package lisp

import _ "embed"

//go:embed prelude.lisp
var preludeSource string

// native is a small helper so the registration table below reads as
// (name, impl) pairs rather than repeating &Native{...} boilerplate.
func native(name string, impl NativeImpl) *Function {
	return &Function{Fn: &Native{Name: name, Impl: impl}}
}

// InitEnvironment builds the base environment containing the built-in
// functions and special forms the language defines, one env.Set per
// builtin, using the (env, args) → Native calling convention this value
// model uses.
func InitEnvironment() *Environment {
	env := NewEnvironment()

	// Special forms.
	env.Set("def", native("def", specialDef))
	env.Set("let", native("let", specialLet))
	env.Set("if", native("if", specialIf))
	env.Set("quote", native("quote", specialQuote))
	env.Set("fn", native("fn", specialFn))
	env.Set("macro", native("macro", specialMacro))

	// Arithmetic.
	env.Set("+", native("+", builtinAdd))
	env.Set("*", native("*", builtinMul))
	env.Set("-", native("-", builtinSub))
	env.Set(">", native(">", builtinGt))

	// Equality and boolean.
	env.Set("eq", native("eq", builtinEq))
	env.Set("and", native("and", builtinAnd))
	env.Set("or", native("or", builtinOr))
	env.Set("not", native("not", builtinNot))

	// Lists.
	env.Set("list", native("list", builtinList))
	env.Set("car", native("car", builtinCar))
	env.Set("cdr", native("cdr", builtinCdr))
	env.Set("cons", native("cons", builtinCons))
	env.Set("push", native("push", builtinPush))
	env.Set("apply", native("apply", builtinApply))
	env.Set("is-list", native("is-list", builtinIsList))

	// Diagnostics.
	env.Set("prn", native("prn", builtinPrn))
	env.Set("dbg", native("dbg", builtinDbg))

	return env
}

// InitEnvironmentWithPrelude builds the base environment and layers the
// embedded Lisp-authored prelude on top of it, installing helpers such as
// defmacro, the chain threading macro, map, reduce, reverse, genlist and
// square.
func InitEnvironmentWithPrelude() (*Environment, error) {
	env := InitEnvironment()
	if _, err := EvaluateIn(preludeSource, env); err != nil {
		return nil, err
	}
	return env, nil
}
