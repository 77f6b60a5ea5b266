// Package render composites positioned, depth-ordered glyph sprites into a
// double-buffered frame each tick, diffs the frame against the previous
// one, and serializes the changed cells into a minimal terminal op stream.
//
// Pipeline per tick: sprite snapshot -> spatial index -> compositor ->
// diff -> serializer -> terminal.Apply, then the buffers swap. The whole
// pass runs synchronously on the caller's goroutine; the only blocking
// call is the final device flush.
package render
