package lisp

import "fmt"

// evalAll evaluates every form in args against env, in order, stopping at
// the first error. Used by the eager (non-special-form) builtins that take
// their arguments as a batch; prn and dbg call Eval directly, and is-list
// does not evaluate its argument.
func evalAll(env *Environment, args []Value) ([]Value, error) {
	vals := make([]Value, len(args))
	for i, a := range args {
		v, err := Eval(a, env)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func asNumber(ctx string, v Value) (Number, error) {
	n, ok := v.(Number)
	if !ok {
		return 0, &TypeMismatchError{Context: ctx, Expected: "number", Got: v}
	}
	return n, nil
}

func asBool(ctx string, v Value) (Bool, error) {
	b, ok := v.(Bool)
	if !ok {
		return false, &TypeMismatchError{Context: ctx, Expected: "bool", Got: v}
	}
	return b, nil
}

func asList(ctx string, v Value) (*List, error) {
	l, ok := v.(*List)
	if !ok {
		return nil, &TypeMismatchError{Context: ctx, Expected: "list", Got: v}
	}
	return l, nil
}

func asFunction(ctx string, v Value) (*Function, error) {
	f, ok := v.(*Function)
	if !ok {
		return nil, &TypeMismatchError{Context: ctx, Expected: "function", Got: v}
	}
	return f, nil
}

func builtinAdd(env *Environment, args []Value) (Value, error) {
	vals, err := evalAll(env, args)
	if err != nil {
		return nil, err
	}
	var sum Number
	for _, v := range vals {
		n, err := asNumber("+", v)
		if err != nil {
			return nil, err
		}
		sum += n
	}
	return sum, nil
}

func builtinMul(env *Environment, args []Value) (Value, error) {
	vals, err := evalAll(env, args)
	if err != nil {
		return nil, err
	}
	product := Number(1)
	for _, v := range vals {
		n, err := asNumber("*", v)
		if err != nil {
			return nil, err
		}
		product *= n
	}
	return product, nil
}

func builtinSub(env *Environment, args []Value) (Value, error) {
	if len(args) == 0 {
		return nil, &ArityError{Name: "-", Want: 1, Got: 0, Variadic: true}
	}
	vals, err := evalAll(env, args)
	if err != nil {
		return nil, err
	}
	first, err := asNumber("-", vals[0])
	if err != nil {
		return nil, err
	}
	var rest Number
	for _, v := range vals[1:] {
		n, err := asNumber("-", v)
		if err != nil {
			return nil, err
		}
		rest += n
	}
	return first - rest, nil
}

func builtinGt(env *Environment, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, &ArityError{Name: ">", Want: 2, Got: len(args)}
	}
	vals, err := evalAll(env, args)
	if err != nil {
		return nil, err
	}
	a, err := asNumber(">", vals[0])
	if err != nil {
		return nil, err
	}
	b, err := asNumber(">", vals[1])
	if err != nil {
		return nil, err
	}
	return Bool(a > b), nil
}

func builtinEq(env *Environment, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, &ArityError{Name: "eq", Want: 2, Got: len(args)}
	}
	vals, err := evalAll(env, args)
	if err != nil {
		return nil, err
	}
	return Bool(Eq(vals[0], vals[1])), nil
}

func builtinAnd(env *Environment, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, &ArityError{Name: "and", Want: 2, Got: len(args)}
	}
	vals, err := evalAll(env, args)
	if err != nil {
		return nil, err
	}
	a, err := asBool("and", vals[0])
	if err != nil {
		return nil, err
	}
	b, err := asBool("and", vals[1])
	if err != nil {
		return nil, err
	}
	return a && b, nil
}

func builtinOr(env *Environment, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, &ArityError{Name: "or", Want: 2, Got: len(args)}
	}
	vals, err := evalAll(env, args)
	if err != nil {
		return nil, err
	}
	a, err := asBool("or", vals[0])
	if err != nil {
		return nil, err
	}
	b, err := asBool("or", vals[1])
	if err != nil {
		return nil, err
	}
	return a || b, nil
}

func builtinNot(env *Environment, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, &ArityError{Name: "not", Want: 1, Got: len(args)}
	}
	vals, err := evalAll(env, args)
	if err != nil {
		return nil, err
	}
	b, err := asBool("not", vals[0])
	if err != nil {
		return nil, err
	}
	return !b, nil
}

func builtinList(env *Environment, args []Value) (Value, error) {
	vals, err := evalAll(env, args)
	if err != nil {
		return nil, err
	}
	return NewList(vals...), nil
}

func builtinCar(env *Environment, args []Value) (Value, error) {
	if len(args) == 0 {
		return NewList(), nil
	}
	vals, err := evalAll(env, args)
	if err != nil {
		return nil, err
	}
	l, err := asList("car", vals[0])
	if err != nil {
		return nil, err
	}
	if l.Empty() {
		return NewList(), nil
	}
	return l.Head(), nil
}

func builtinCdr(env *Environment, args []Value) (Value, error) {
	if len(args) == 0 {
		return NewList(), nil
	}
	vals, err := evalAll(env, args)
	if err != nil {
		return nil, err
	}
	l, err := asList("cdr", vals[0])
	if err != nil {
		return nil, err
	}
	if l.Empty() {
		return NewList(), nil
	}
	return l.Tail(), nil
}

func builtinCons(env *Environment, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, &ArityError{Name: "cons", Want: 2, Got: len(args)}
	}
	vals, err := evalAll(env, args)
	if err != nil {
		return nil, err
	}
	l, err := asList("cons", vals[1])
	if err != nil {
		return nil, err
	}
	elems := make([]Value, 0, len(l.Elems)+1)
	elems = append(elems, vals[0])
	elems = append(elems, l.Elems...)
	return NewList(elems...), nil
}

// builtinPush implements `push x xs`, which — despite the usual cons-style
// convention — appends x after xs's existing elements rather than
// prepending it.
func builtinPush(env *Environment, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, &ArityError{Name: "push", Want: 2, Got: len(args)}
	}
	vals, err := evalAll(env, args)
	if err != nil {
		return nil, err
	}
	l, err := asList("push", vals[1])
	if err != nil {
		return nil, err
	}
	elems := make([]Value, 0, len(l.Elems)+1)
	elems = append(elems, l.Elems...)
	elems = append(elems, vals[0])
	return NewList(elems...), nil
}

func builtinApply(env *Environment, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, &ArityError{Name: "apply", Want: 2, Got: len(args)}
	}
	vals, err := evalAll(env, args)
	if err != nil {
		return nil, err
	}
	fn, err := asFunction("apply", vals[0])
	if err != nil {
		return nil, err
	}
	l, err := asList("apply", vals[1])
	if err != nil {
		return nil, err
	}
	// l.Elems are already-evaluated values, not forms — Invoke's calling
	// convention is "unevaluated forms in the caller's environment", so each
	// is wrapped in (quote v) to survive being evaluated again unchanged,
	// whether fn eagerly evaluates (a Native) or evaluates per-parameter (a
	// UserFunction).
	quoted := make([]Value, len(l.Elems))
	for i, v := range l.Elems {
		quoted[i] = NewList(Symbol("quote"), v)
	}
	return Invoke(fn.Fn, env, quoted)
}

// builtinIsList inspects args[0] as an unevaluated AST node rather than
// evaluating it: it answers "is this literal form a list?", not "does this
// expression evaluate to a list?".
func builtinIsList(env *Environment, args []Value) (Value, error) {
	if len(args) == 0 {
		return Bool(false), nil
	}
	_, ok := args[0].(*List)
	return Bool(ok), nil
}

func builtinPrn(env *Environment, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, &ArityError{Name: "prn", Want: 1, Got: len(args)}
	}
	v, err := Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	fmt.Println(v.String())
	return v, nil
}

func builtinDbg(env *Environment, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, &ArityError{Name: "dbg", Want: 1, Got: len(args)}
	}
	v, err := Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	fmt.Printf("%s => %s\n", args[0].String(), v.String())
	return v, nil
}
