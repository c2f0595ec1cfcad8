package lisp

import "testing"

func TestEvaluateFreshEnvironmentPerCall(t *testing.T) {
	got, err := Evaluate("(def x (+ 1 2))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Number(3) {
		t.Errorf("got %v, want 3", got)
	}

	// A second call to Evaluate must not see bindings from the first: each
	// call starts from a fresh InitEnvironmentWithPrelude.
	_, err = Evaluate("x")
	if _, ok := err.(*UnboundSymbolError); !ok {
		t.Errorf("expected a fresh environment with no leftover x binding, got err=%v", err)
	}
}

func TestEvaluateInPersistsAcrossCalls(t *testing.T) {
	env, err := InitEnvironmentWithPrelude()
	if err != nil {
		t.Fatalf("InitEnvironmentWithPrelude: %v", err)
	}

	if _, err := EvaluateIn("(def x 10)", env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := EvaluateIn("(+ x 5)", env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Number(15) {
		t.Errorf("got %v, want 15 (x should persist across EvaluateIn calls)", got)
	}
}

func TestEvaluateInEmptySourceReturnsEmptyList(t *testing.T) {
	env := InitEnvironment()
	got, err := EvaluateIn("", env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Eq(got, NewList()) {
		t.Errorf("got %s, want ()", got.String())
	}
}

func TestEvaluateInOnlyLastFormIsReturned(t *testing.T) {
	env := InitEnvironment()
	got, err := EvaluateIn("(def a 1) (def b 2) (+ a b)", env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Number(3) {
		t.Errorf("got %v, want 3", got)
	}
}
