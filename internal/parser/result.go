package parser

import (
	"github.com/starlink/prologue/internal/foundation"
	"github.com/starlink/prologue/internal/prologue"
)

// PushResult is the outcome of feeding one line to the parser. Either
// field may be absent. Both are present exactly when a convention only
// discovers the end of its prologue by seeing the first following code
// line: the completed document and that code line come back together,
// and the line must still be written to the output stream.
//
// Line may span several source lines (joined with newlines) when a
// worker gives back text it had provisionally consumed.
type PushResult struct {
	Line     foundation.Option[string]
	Prologue foundation.Option[*prologue.Prologue]
}

// Single collapses the result for callers that treat the parser output
// as one stream of values: a completed document takes priority over an
// ordinary line. Callers interleaving documents with ordinary text must
// use the two fields directly instead.
func (r PushResult) Single() any {
	if doc, ok := r.Prologue.Get(); ok {
		return doc
	}
	if line, ok := r.Line.Get(); ok {
		return line
	}
	return nil
}

func lineOnly(line string) PushResult {
	return PushResult{Line: foundation.Some(line), Prologue: foundation.None[*prologue.Prologue]()}
}

func docOnly(doc *prologue.Prologue) PushResult {
	return PushResult{Line: foundation.None[string](), Prologue: foundation.Some(doc)}
}

func lineAndDoc(line string, doc *prologue.Prologue) PushResult {
	return PushResult{Line: foundation.Some(line), Prologue: foundation.Some(doc)}
}

func nothing() PushResult {
	return PushResult{Line: foundation.None[string](), Prologue: foundation.None[*prologue.Prologue]()}
}
