package lisp

import "fmt"

// ParseError reports an unbalanced or stray parenthesis, raised by the
// builder, which expects a matching close paren for every open paren. The
// fn and macro special forms also return it for a `...` vararg parameter
// that is not last. The lexer itself cannot fail (it is a total function
// over any input string).
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// UnboundSymbolError reports a symbol looked up in an environment that does
// not contain it.
type UnboundSymbolError struct {
	Name Symbol
}

func (e *UnboundSymbolError) Error() string {
	return fmt.Sprintf("unbound symbol: %s", e.Name)
}

// TypeMismatchError reports a value of the wrong variant reaching a builtin
// or special form that requires a specific one (a non-number argument to
// +, a non-Bool if-test, a non-Function application head, ...).
type TypeMismatchError struct {
	Context  string // e.g. "+", "if condition", "application head"
	Expected string
	Got      Value
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Context, e.Expected, describe(e.Got))
}

// ArityError reports a call with the wrong number of arguments.
type ArityError struct {
	Name     string
	Want     int
	Got      int
	Variadic bool
}

func (e *ArityError) Error() string {
	if e.Variadic {
		return fmt.Sprintf("%s: expected at least %d argument(s), got %d", e.Name, e.Want, e.Got)
	}
	return fmt.Sprintf("%s: expected %d argument(s), got %d", e.Name, e.Want, e.Got)
}

func describe(v Value) string {
	if v == nil {
		return "<nil>"
	}
	switch v.(type) {
	case Symbol:
		return fmt.Sprintf("symbol %q", v.String())
	case Bool:
		return "bool " + v.String()
	case Number:
		return "number " + v.String()
	case *List:
		return "list " + v.String()
	case *Function:
		return "function " + v.String()
	default:
		return fmt.Sprintf("%T", v)
	}
}
