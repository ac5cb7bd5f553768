package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{"off": LevelOff, "PHASE": LevelPhase, "detail": LevelDetail, "debug": LevelDebug} {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		kind  Kind
		want  bool
	}{
		{LevelPhase, ScopePass, KindSpanBegin, true},
		{LevelPhase, ScopeDocument, KindSpanBegin, false},
		{LevelDetail, ScopeDocument, KindSpanEnd, true},
		{LevelDetail, ScopeDocument, KindPoint, false},
		{LevelDebug, ScopeDocument, KindPoint, true},
		{LevelError, ScopeDriver, KindSpanBegin, false},
	}
	for _, tc := range tests {
		if got := tc.level.ShouldEmit(tc.scope, tc.kind); got != tc.want {
			t.Fatalf("%v.ShouldEmit(%v, %v) = %v", tc.level, tc.scope, tc.kind, got)
		}
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)

	sp := Begin(tr, ScopePass, "parse", 0)
	Point(tr, ScopeDocument, "section", ".data", sp.ID())
	sp.WithExtra("file", "a.s").End("ok")

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected begin and end only, got:\n%s", out)
	}
	if !strings.Contains(lines[0], "→ parse") {
		t.Fatalf("begin line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "← parse") || !strings.Contains(lines[1], "(ok)") || !strings.Contains(lines[1], "{file=a.s}") {
		t.Fatalf("end line: %q", lines[1])
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	Point(tr, ScopeDocument, "section", ".bss", 7)

	var ev map[string]any
	if err := json.Unmarshal(buf.Bytes(), &ev); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if ev["name"] != "section" || ev["scope"] != "document" || ev["kind"] != "point" || ev["detail"] != ".bss" {
		t.Fatalf("unexpected event %v", ev)
	}
}

func TestDisabledSpanIsInert(t *testing.T) {
	sp := Begin(Nop, ScopeDriver, "diff", 0)
	if sp.ID() != 0 || sp.End("") != 0 {
		t.Fatalf("span from Nop tracer should be inert")
	}
}

func TestContextRoundTrip(t *testing.T) {
	ctx := context.Background()
	if FromContext(ctx) != Nop {
		t.Fatalf("expected Nop without a tracer")
	}
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)
	ctx = WithTracer(ctx, tr)
	if FromContext(ctx) != Tracer(tr) {
		t.Fatalf("tracer not propagated")
	}
	sp := Begin(tr, ScopeDriver, "diff", 0)
	ctx = WithSpan(ctx, sp)
	if SpanID(ctx) != sp.ID() {
		t.Fatalf("span id not propagated")
	}
}

func TestNewOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("New(off) = %v, %v", tr, err)
	}
}
