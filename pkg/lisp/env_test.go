package lisp

import "testing"

func TestEnvironmentGetSet(t *testing.T) {
	env := NewEnvironment()
	if _, ok := env.Get("x"); ok {
		t.Fatal("fresh environment should not contain x")
	}

	env.Set("x", Number(1))
	v, ok := env.Get("x")
	if !ok {
		t.Fatal("expected x to be bound")
	}
	if v != Number(1) {
		t.Errorf("got %v, want 1", v)
	}

	env.Set("x", Number(2))
	v, _ = env.Get("x")
	if v != Number(2) {
		t.Errorf("rebinding x: got %v, want 2", v)
	}
}

func TestEnvironmentCopyIsIndependent(t *testing.T) {
	parent := NewEnvironment()
	parent.Set("a", Number(1))

	child := parent.Copy()
	child.Set("b", Number(2))
	child.Set("a", Number(99))

	if _, ok := parent.Get("b"); ok {
		t.Error("writes to a copy must not be visible in the original")
	}
	a, _ := parent.Get("a")
	if a != Number(1) {
		t.Errorf("original binding mutated through copy: got %v, want 1", a)
	}

	childA, _ := child.Get("a")
	if childA != Number(99) {
		t.Errorf("copy's own binding did not take: got %v, want 99", childA)
	}
}
