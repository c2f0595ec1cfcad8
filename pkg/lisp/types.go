// Package lisp implements the value model, environment, parser and
// evaluator of a small Lisp-like expression language. Types, environment
// and evaluator share one package (rather than being split further) because
// they are mutually referential: native builtins call back into Eval, and
// special forms fork environments — splitting them apart would only buy an
// import cycle or an interface layer that exists purely to dodge one.
package lisp

import (
	"fmt"
	"reflect"
	"strings"
)

// Value is implemented by every member of the tagged union the evaluator
// operates on. String renders a value the way the REPL prints it.
type Value interface {
	String() string
	valueTag()
}

// Symbol is an identifier. Evaluated by name lookup in an Environment.
type Symbol string

func (Symbol) valueTag() {}

func (s Symbol) String() string { return string(s) }

// Bool is a boolean literal. Evaluates to itself.
type Bool bool

func (Bool) valueTag() {}

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Number is a non-negative integer literal, stored in 32 unsigned bits.
// Evaluates to itself.
type Number uint32

func (Number) valueTag() {}

func (n Number) String() string { return fmt.Sprintf("%d", uint32(n)) }

// List is an ordered, flat sequence of values. An empty list is the nil
// value. A non-empty list evaluates as a function application unless it
// occurs inside quote or is bound to a variable.
type List struct {
	Elems []Value
}

func (*List) valueTag() {}

// NewList builds a List from the given elements.
func NewList(elems ...Value) *List {
	return &List{Elems: elems}
}

// Empty reports whether the list has no elements.
func (l *List) Empty() bool { return len(l.Elems) == 0 }

// Head returns the first element, or nil if the list is empty.
func (l *List) Head() Value {
	if l.Empty() {
		return nil
	}
	return l.Elems[0]
}

// Tail returns a new list of all but the first element.
func (l *List) Tail() *List {
	if len(l.Elems) <= 1 {
		return NewList()
	}
	return NewList(l.Elems[1:]...)
}

func (l *List) String() string {
	parts := make([]string, len(l.Elems))
	for i, e := range l.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Function wraps a FunctionValue (native or user-defined) so it can flow
// through the Value interface. A function evaluates to itself.
type Function struct {
	Fn FunctionValue
}

func (*Function) valueTag() {}

func (f *Function) String() string { return f.Fn.String() }

// FunctionValue is the tagged union of callable things: built-ins/special
// forms (Native) and closures/macros produced by fn/macro (UserFunction).
type FunctionValue interface {
	String() string
	functionTag()
}

// NativeImpl is the calling convention shared by every built-in and special
// form: it receives the environment the call occurred in and the
// unevaluated argument forms, and decides for itself whether/when to
// evaluate them via Eval.
type NativeImpl func(env *Environment, args []Value) (Value, error)

// Native is a built-in or special form. Equality compares (Name, Impl)
// identity: two Native values are eq only if they carry the same name and
// the same underlying function pointer.
type Native struct {
	Name string
	Impl NativeImpl
}

func (*Native) functionTag() {}

func (n *Native) String() string { return "native(" + n.Name + ")" }

// UserFunction is a closure or macro produced by fn/macro. Params, Vararg,
// and Body are the parsed declaration; CapturedEnv is the snapshot taken at
// definition time (unused for macros, which instead start each call from
// the caller's current environment).
type UserFunction struct {
	Name        string
	Params      []Symbol
	Vararg      Symbol // zero value ("") if HasVararg is false
	HasVararg   bool
	Body        []Value
	CapturedEnv *Environment
	IsMacro     bool
}

func (*UserFunction) functionTag() {}

func (f *UserFunction) String() string {
	if f.Name != "" {
		return f.Name
	}
	return "lambda"
}

// Eq implements the structural/identity equality rules from the `eq`
// builtin (see builtins.go).
func Eq(a, b Value) bool {
	switch av := a.(type) {
	case Symbol:
		bv, ok := b.(Symbol)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !Eq(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case *Function:
		bv, ok := b.(*Function)
		return ok && fnEq(av.Fn, bv.Fn)
	default:
		return false
	}
}

func fnEq(a, b FunctionValue) bool {
	switch av := a.(type) {
	case *Native:
		bv, ok := b.(*Native)
		if !ok {
			return false
		}
		// Go forbids comparing non-nil func values directly; compare the
		// underlying code pointers instead, which is what "impl pointer"
		// identity means here.
		return av.Name == bv.Name && reflect.ValueOf(av.Impl).Pointer() == reflect.ValueOf(bv.Impl).Pointer()
	case *UserFunction:
		bv, ok := b.(*UserFunction)
		// Shared-record identity: two distinct fn/macro constructions are
		// never eq, even with identical source.
		return ok && av == bv
	default:
		return false
	}
}
