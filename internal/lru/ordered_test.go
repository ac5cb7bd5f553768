package lru

import (
	"slices"
	"testing"
)

func keys(m *Map[string, int]) []string {
	var out []string
	for k := range m.All() {
		out = append(out, k)
	}
	return out
}

func TestGetOrCreateMovesToFront(t *testing.T) {
	m := New[string, int]()
	n := 0
	mk := func() int { n++; return n }

	m.GetOrCreate("a", mk)
	m.GetOrCreate("b", mk)
	m.GetOrCreate("c", mk)
	if got := keys(m); !slices.Equal(got, []string{"c", "b", "a"}) {
		t.Fatalf("order = %v", got)
	}

	v, created := m.GetOrCreate("a", mk)
	if created || v != 1 {
		t.Fatalf("GetOrCreate(a) = %d, %v", v, created)
	}
	if got := keys(m); !slices.Equal(got, []string{"a", "c", "b"}) {
		t.Fatalf("order after touch = %v", got)
	}
	if n != 3 || m.Len() != 3 {
		t.Fatalf("created %d values, len %d", n, m.Len())
	}
}

func TestPeekKeepsOrder(t *testing.T) {
	m := New[string, int]()
	m.GetOrCreate("a", func() int { return 1 })
	m.GetOrCreate("b", func() int { return 2 })
	if v, ok := m.Peek("a"); !ok || v != 1 {
		t.Fatalf("Peek(a) = %d, %v", v, ok)
	}
	if k, _, _ := m.Front(); k != "b" {
		t.Fatalf("Peek must not reorder, front = %q", k)
	}
	if _, ok := m.Peek("zz"); ok {
		t.Fatalf("Peek of missing key")
	}
}

func TestNext(t *testing.T) {
	m := New[string, int]()
	for _, k := range []string{"x", "y", "z"} {
		m.GetOrCreate(k, func() int { return 0 })
	}
	// order: z y x
	if k, _, ok := m.Next("z"); !ok || k != "y" {
		t.Fatalf("Next(z) = %q, %v", k, ok)
	}
	if _, _, ok := m.Next("x"); ok {
		t.Fatalf("Next of the last entry must fail")
	}
	if _, _, ok := m.Next("missing"); ok {
		t.Fatalf("Next of a missing key must fail")
	}
}

func TestEmptyFront(t *testing.T) {
	m := New[string, *int]()
	if _, v, ok := m.Front(); ok || v != nil {
		t.Fatalf("empty map front")
	}
}
