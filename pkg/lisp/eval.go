package lisp

// Eval evaluates v against env and returns the result. Numbers, bools and
// functions are self-evaluating; a symbol resolves by lookup; an empty list
// is nil; a non-empty list evaluates its head (which must resolve to a
// function) and invokes it on the unevaluated tail.
func Eval(v Value, env *Environment) (Value, error) {
	switch t := v.(type) {
	case Symbol:
		val, ok := env.Get(t)
		if !ok {
			return nil, &UnboundSymbolError{Name: t}
		}
		return val, nil

	case Number, Bool, *Function:
		return v, nil

	case *List:
		if t.Empty() {
			return t, nil
		}
		head, err := Eval(t.Head(), env)
		if err != nil {
			return nil, err
		}
		fn, ok := head.(*Function)
		if !ok {
			return nil, &TypeMismatchError{Context: "application head", Expected: "function", Got: head}
		}
		return Invoke(fn.Fn, env, t.Tail().Elems)

	default:
		return nil, &TypeMismatchError{Context: "eval", Expected: "a known value", Got: v}
	}
}

// Invoke calls fn with unevaluated argument forms args, in the environment
// the call occurred in (callerEnv).
func Invoke(fn FunctionValue, callerEnv *Environment, args []Value) (Value, error) {
	switch f := fn.(type) {
	case *Native:
		return f.Impl(callerEnv, args)
	case *UserFunction:
		return invokeUser(f, callerEnv, args)
	default:
		return nil, &TypeMismatchError{Context: "invoke", Expected: "function", Got: nil}
	}
}

// invokeUser implements the call-frame protocol: choose the starting
// environment (captured for a function, the caller's current scope for a
// macro), bind fixed params (evaluating args at the call site for a
// function, leaving them unevaluated for a macro), bind the vararg tail the
// same way, rebind the function's own name for recursion, run the body,
// and — for a macro only — evaluate the body's results a second time in the
// caller's environment.
func invokeUser(f *UserFunction, callerEnv *Environment, args []Value) (Value, error) {
	nParams := len(f.Params)
	if f.HasVararg {
		if len(args) < nParams {
			return nil, &ArityError{Name: callName(f), Want: nParams, Got: len(args), Variadic: true}
		}
	} else if len(args) != nParams {
		return nil, &ArityError{Name: callName(f), Want: nParams, Got: len(args)}
	}

	var frame *Environment
	if f.IsMacro {
		frame = callerEnv.Copy()
	} else {
		frame = f.CapturedEnv.Copy()
	}

	for i, name := range f.Params {
		argVal := args[i]
		if !f.IsMacro {
			v, err := Eval(args[i], callerEnv)
			if err != nil {
				return nil, err
			}
			argVal = v
		}
		frame.Set(name, argVal)
	}

	if f.HasVararg {
		rest := args[nParams:]
		collected := make([]Value, 0, len(rest))
		for _, a := range rest {
			if f.IsMacro {
				collected = append(collected, a)
				continue
			}
			v, err := Eval(a, callerEnv)
			if err != nil {
				return nil, err
			}
			collected = append(collected, v)
		}
		frame.Set(f.Vararg, NewList(collected...))
	}

	// Named lambdas: the function is visible under its own name inside its
	// own call frame, so a recursive call does not depend on the name
	// existing in the captured/caller environment.
	frame.Set(Symbol(f.Name), &Function{Fn: f})

	var results []Value
	for _, form := range f.Body {
		r, err := Eval(form, frame)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	last := Value(NewList())
	if len(results) > 0 {
		last = results[len(results)-1]
	}
	if !f.IsMacro {
		return last, nil
	}

	// Macro expansion: re-evaluate every form the macro body produced, in
	// the caller's scope. This is unhygienic by design.
	var expanded Value = NewList()
	for _, r := range results {
		v, err := Eval(r, callerEnv)
		if err != nil {
			return nil, err
		}
		expanded = v
	}
	return expanded, nil
}

func callName(f *UserFunction) string {
	if f.Name != "" {
		return f.Name
	}
	return "lambda"
}
