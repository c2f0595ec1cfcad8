package lisp

import "strings"

// Special forms are registered as Natives like any other builtin (see
// bootstrap.go), but unlike the eager builtins in builtins.go, they decide
// for themselves which of their arguments (if any) to evaluate.

func specialDef(env *Environment, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, &ArityError{Name: "def", Want: 2, Got: len(args)}
	}
	name, ok := args[0].(Symbol)
	if !ok {
		return nil, &TypeMismatchError{Context: "def name", Expected: "symbol", Got: args[0]}
	}
	val, err := Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	env.Set(name, val)
	return val, nil
}

func specialLet(env *Environment, args []Value) (Value, error) {
	if len(args) < 2 {
		return nil, &ArityError{Name: "let", Want: 2, Got: len(args), Variadic: true}
	}
	bindings, ok := args[0].(*List)
	if !ok {
		return nil, &TypeMismatchError{Context: "let bindings", Expected: "list", Got: args[0]}
	}

	scope := env.Copy()
	for _, b := range bindings.Elems {
		pair, ok := b.(*List)
		if !ok || len(pair.Elems) != 2 {
			return nil, &TypeMismatchError{Context: "let binding", Expected: "(name expr) pair", Got: b}
		}
		name, ok := pair.Elems[0].(Symbol)
		if !ok {
			return nil, &TypeMismatchError{Context: "let binding name", Expected: "symbol", Got: pair.Elems[0]}
		}
		val, err := Eval(pair.Elems[1], scope)
		if err != nil {
			return nil, err
		}
		scope.Set(name, val)
	}

	var result Value
	for _, form := range args[1:] {
		r, err := Eval(form, scope)
		if err != nil {
			return nil, err
		}
		result = r
	}
	return result, nil
}

func specialIf(env *Environment, args []Value) (Value, error) {
	if len(args) != 3 {
		return nil, &ArityError{Name: "if", Want: 3, Got: len(args)}
	}
	cond, err := Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	b, ok := cond.(Bool)
	if !ok {
		return nil, &TypeMismatchError{Context: "if condition", Expected: "bool", Got: cond}
	}
	if b {
		return Eval(args[1], env)
	}
	return Eval(args[2], env)
}

func specialQuote(env *Environment, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, &ArityError{Name: "quote", Want: 1, Got: len(args)}
	}
	return args[0], nil
}

func specialFn(env *Environment, args []Value) (Value, error) {
	return makeUserFunction("fn", env, args, false)
}

func specialMacro(env *Environment, args []Value) (Value, error) {
	return makeUserFunction("macro", env, args, true)
}

// makeUserFunction parses (name (param1 ... paramN) body1 ... bodyk) into a
// UserFunction, splitting off a trailing `...`-suffixed parameter as the
// vararg.
func makeUserFunction(formName string, env *Environment, args []Value, isMacro bool) (Value, error) {
	if len(args) < 3 {
		return nil, &ArityError{Name: formName, Want: 3, Got: len(args), Variadic: true}
	}
	name, ok := args[0].(Symbol)
	if !ok {
		return nil, &TypeMismatchError{Context: formName + " name", Expected: "symbol", Got: args[0]}
	}
	paramList, ok := args[1].(*List)
	if !ok {
		return nil, &TypeMismatchError{Context: formName + " params", Expected: "list", Got: args[1]}
	}

	params := make([]Symbol, 0, len(paramList.Elems))
	var vararg Symbol
	hasVararg := false
	for i, p := range paramList.Elems {
		sym, ok := p.(Symbol)
		if !ok {
			return nil, &TypeMismatchError{Context: formName + " param", Expected: "symbol", Got: p}
		}
		raw := string(sym)
		if strings.HasSuffix(raw, "...") {
			if i != len(paramList.Elems)-1 {
				return nil, &ParseError{Message: "a vararg parameter may only appear last"}
			}
			vararg = Symbol(strings.TrimSuffix(raw, "..."))
			hasVararg = true
			continue
		}
		params = append(params, sym)
	}

	uf := &UserFunction{
		Name:      string(name),
		Params:    params,
		Vararg:    vararg,
		HasVararg: hasVararg,
		Body:      args[2:],
		IsMacro:   isMacro,
	}
	if !isMacro {
		uf.CapturedEnv = env.Copy()
	}
	return &Function{Fn: uf}, nil
}
