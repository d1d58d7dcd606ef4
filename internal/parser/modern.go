package parser

import (
	"regexp"
	"strings"

	"github.com/starlink/prologue/internal/prologue"
)

// The modern convention delimits the prologue explicitly:
//
//	*+
//	*  Name:
//	*     TASK
//	*-
//
// with '#' instead of '*' in shell-style files. In C sources the block
// may additionally be wrapped in /* and */ lines; the closing */ needs
// one line of lookahead after the end marker.
var (
	modernCommentOpen = regexp.MustCompile(`^\s*/\*\s*$`)
	modernStart       = regexp.MustCompile(`^\s*([*#])\+\s*$`)
	modernEnd         = regexp.MustCompile(`^\s*([*#])-\s*$`)
	modernCommentEnd  = regexp.MustCompile(`^\s*\*/\s*$`)
	modernHeader      = regexp.MustCompile(`^\s*[*#] {1,3}([A-Za-z][^:]*?)\s*:\s*$`)
	modernContent     = regexp.MustCompile(`^\s*[*#](.*)$`)
)

func recognizesModernStart(line string) bool {
	return modernStart.MatchString(line) || modernCommentOpen.MatchString(line)
}

type modernWorker struct {
	doc     *prologue.Prologue
	section string
	buffer  []string

	staged  string // a /* line provisionally consumed before the open marker
	hasOpen bool   // saw the comment opener
	started bool   // saw the open marker
	sawEnd  bool   // saw the close marker, awaiting a possible */
}

func newModernWorker() *modernWorker {
	return &modernWorker{doc: prologue.New()}
}

func (w *modernWorker) PushLine(line string) (PushResult, bool) {
	if w.sawEnd {
		if modernCommentEnd.MatchString(line) {
			w.doc.EndsEmbeddedComment = true
			return docOnly(w.finalize()), false
		}
		return lineAndDoc(line, w.finalize()), false
	}

	if !w.started {
		if !w.hasOpen && modernCommentOpen.MatchString(line) {
			w.hasOpen = true
			w.staged = line
			return nothing(), true
		}
		if m := modernStart.FindStringSubmatch(line); m != nil {
			w.started = true
			w.doc.CommentChar = m[1][0]
			w.doc.StartsEmbeddedComment = w.hasOpen
			return nothing(), true
		}
		// The /* was an ordinary block comment after all; give it back
		// together with the line that disproved the start.
		return lineOnly(w.staged + "\n" + line), false
	}

	if modernEnd.MatchString(line) {
		w.flushSection()
		if w.doc.StartsEmbeddedComment {
			w.sawEnd = true
			return nothing(), true
		}
		return docOnly(w.finalize()), false
	}
	if m := modernHeader.FindStringSubmatch(line); m != nil {
		w.flushSection()
		w.section = m[1]
		return nothing(), true
	}
	if m := modernContent.FindStringSubmatch(line); m != nil {
		if w.section != "" {
			w.buffer = append(w.buffer, stripIndent(m[1]))
		}
		return nothing(), true
	}
	if strings.TrimSpace(line) == "" {
		// Section separator; regenerated on serialization.
		return nothing(), true
	}

	// Source text before the close marker: treat the prologue as over.
	return lineAndDoc(line, w.finalize()), false
}

func (w *modernWorker) Finalize() PushResult {
	if !w.started {
		// Only a staged /* was consumed; give it back untouched.
		if w.staged != "" {
			return lineOnly(w.staged)
		}
		return nothing()
	}
	return docOnly(w.finalize())
}

func (w *modernWorker) finalize() *prologue.Prologue {
	w.flushSection()
	w.doc.StyleTag = StyleModern.Tag()
	return w.doc
}

func (w *modernWorker) flushSection() {
	if w.section == "" {
		return
	}
	_ = w.doc.SetContent(w.section, w.buffer)
	w.section = ""
	w.buffer = nil
}

// stripIndent removes the standard content indentation (up to five
// spaces) left after the comment marker. Deeper indentation is content
// and survives; the reduced four-space indent of continuation-marker
// lines round-trips because such lines start with ':' after the strip.
func stripIndent(rest string) string {
	trim := 0
	for trim < len(rest) && trim < 5 && rest[trim] == ' ' {
		trim++
	}
	content := rest[trim:]
	if strings.TrimSpace(content) == "" {
		return ""
	}
	return content
}
