package observ

import (
	"strings"
	"sync"
	"testing"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	a := tm.Begin("load")
	tm.End(a, "2 files")
	b := tm.Begin("parse")
	tm.End(b, "")
	tm.End(42, "ignored")

	r := tm.Report()
	if len(r.Phases) != 2 || r.Phases[0].Name != "load" || r.Phases[0].Note != "2 files" {
		t.Fatalf("unexpected report %+v", r)
	}
	if r.WallMS < 0 {
		t.Fatalf("negative wall time %v", r.WallMS)
	}
	s := tm.Summary()
	if !strings.Contains(s, "load") || !strings.Contains(s, "// 2 files") || !strings.Contains(s, "wall") {
		t.Fatalf("summary missing fields:\n%s", s)
	}
}

func TestTimerConcurrent(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.End(tm.Begin("parse"), "")
		}()
	}
	wg.Wait()
	if n := len(tm.Report().Phases); n != 8 {
		t.Fatalf("expected 8 phases, got %d", n)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.End(tm.Begin("x"), "")
	if len(tm.Report().Phases) != 0 {
		t.Fatalf("nil timer should report nothing")
	}
}
