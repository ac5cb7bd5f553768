// Package trace records what asmdiff is doing while it works.
//
// Events are spans (begin/end pairs) or points, tagged with a scope:
//
//   - ScopeDriver: one per CLI command
//   - ScopePass: load, parse, finalize, compare
//   - ScopeDocument: builder activity inside one document (section
//     switches, symbol creation)
//
// The level chosen with --trace-level decides which scopes are written:
// phase keeps driver and pass events, detail adds document spans, debug
// adds every point event.
//
// A Tracer travels through the pipeline inside a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer span.End("")
package trace
