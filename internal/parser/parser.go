// Package parser recognizes prologue comment blocks in a stream of
// source lines. It is incremental: lines are pushed one at a time, and
// a completed document is handed back as soon as the active convention
// can tell the block has ended.
package parser

// Style identifies one of the fixed prologue-writing conventions. The
// set is closed; dispatch tries each style in declaration order.
type Style int

const (
	// StyleModern is the current convention: explicit open and close
	// markers with double-space section headers.
	StyleModern Style = iota
	// StyleAdam is the historic ADAM convention: a one-line header
	// carrying name and purpose, no close marker, termination inferred
	// from the first non-comment line.
	StyleAdam
)

// styleOrder fixes recognition priority.
var styleOrder = []Style{StyleModern, StyleAdam}

// Tag returns the style identifier recorded on parsed documents.
func (s Style) Tag() string {
	switch s {
	case StyleModern:
		return "modern"
	case StyleAdam:
		return "adam"
	}
	return "unknown"
}

// Recognizes reports whether a line looks like the start of this
// convention's prologue.
func (s Style) Recognizes(line string) bool {
	switch s {
	case StyleModern:
		return recognizesModernStart(line)
	case StyleAdam:
		return recognizesAdamStart(line)
	}
	return false
}

func (s Style) newWorker() worker {
	switch s {
	case StyleModern:
		return newModernWorker()
	case StyleAdam:
		return newAdamWorker()
	}
	return nil
}

// worker is the per-convention accumulator. PushLine reports whether the
// worker is still open; a closed worker may deliver a document, give
// back provisionally consumed text, or both.
type worker interface {
	PushLine(line string) (result PushResult, open bool)
	Finalize() PushResult
}

// Parser owns at most one active worker. Instances are independent and
// carry no shared state; use one per input stream.
type Parser struct {
	active worker
}

// New returns a parser with no active prologue.
func New() *Parser {
	return &Parser{}
}

// PushLine feeds one line. While a worker is active the line goes to
// it; otherwise each style is asked in priority order whether a new
// prologue starts here, and the matching style's worker consumes the
// line immediately. A line no style claims is ordinary source text.
func (p *Parser) PushLine(line string) PushResult {
	if p.active != nil {
		result, open := p.active.PushLine(line)
		if !open {
			p.active = nil
		}
		return result
	}
	for _, style := range styleOrder {
		if !style.Recognizes(line) {
			continue
		}
		w := style.newWorker()
		result, open := w.PushLine(line)
		if open {
			p.active = w
		}
		return result
	}
	return lineOnly(line)
}

// Flush finalizes a prologue still open at end of input. A truncated
// block is not an error: the document contains whatever sections were
// accumulated. A worker still holding provisionally consumed text and
// no document gives the text back as a line instead.
func (p *Parser) Flush() PushResult {
	if p.active == nil {
		return nothing()
	}
	res := p.active.Finalize()
	p.active = nil
	return res
}
