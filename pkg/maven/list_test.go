package maven

import (
	"testing"
)

func mustJar(t *testing.T, args ...any) *Dependency {
	t.Helper()
	d, err := NewJar(args...)
	if err != nil {
		t.Fatalf("NewJar(%v) error: %v", args, err)
	}
	return d
}

func TestDependencyListMergesVersions(t *testing.T) {
	var l DependencyList

	first := mustJar(t, "g:a:1.0")
	if got := l.Add(first); got != first {
		t.Fatal("Add() of a new dependency should return it")
	}

	second := mustJar(t, "g:a:2.0")
	if got := l.Add(second); got != first {
		t.Error("Add() of an equal dependency should return the stored entry")
	}

	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
	if first.Version != "2.0" {
		t.Errorf("stored version = %q, want last inserted %q", first.Version, "2.0")
	}
}

func TestDependencyListKeepsClassifiersApart(t *testing.T) {
	var l DependencyList

	l.Add(mustJar(t, "g:a", "1.0", "sources"))
	l.Add(mustJar(t, "g:a", "1.0", "javadoc"))
	l.Add(mustJar(t, "g:a", "1.0"))

	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
}

func TestDependencyListPreservesFirstPosition(t *testing.T) {
	var l DependencyList

	l.Add(mustJar(t, "g:a:1.0"))
	l.Add(mustJar(t, "g:b:1.0"))
	l.Add(mustJar(t, "g:c:1.0"))
	l.Add(mustJar(t, "g:a:3.0"))

	var ids []string
	for d := range l.All() {
		ids = append(ids, d.ID())
	}
	want := []string{"g:a", "g:b", "g:c"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("order = %v, want %v", ids, want)
		}
	}
	if got := l.Items()[0].Version; got != "3.0" {
		t.Errorf("first entry version = %q, want %q", got, "3.0")
	}
}

func TestDependencyListLookup(t *testing.T) {
	var l DependencyList

	if l.Contains(mustJar(t, "g:a")) {
		t.Error("empty list should contain nothing")
	}
	if l.Add(nil) != nil || l.Contains(nil) {
		t.Error("nil dependencies should be ignored")
	}

	d := mustJar(t, "g:a:1.0")
	l.Add(d)

	if !l.Contains(mustJar(t, "g:a:9.9")) {
		t.Error("Contains() should ignore version")
	}

	found, ok := l.Find(DependencyKey{GroupID: "g", ArtifactID: "a", Type: TypeJar})
	if !ok || found != d {
		t.Errorf("Find() = %v, %v", found, ok)
	}
	if _, ok := l.Find(DependencyKey{GroupID: "g", ArtifactID: "a", Type: TypePom}); ok {
		t.Error("Find() should respect type")
	}

	got, ok := l.Detect(func(d *Dependency) bool { return d.ArtifactID == "a" })
	if !ok || got != d {
		t.Errorf("Detect() = %v, %v", got, ok)
	}

	items := l.Items()
	items[0] = nil
	if l.Items()[0] != d {
		t.Error("Items() should return a copy")
	}
}
