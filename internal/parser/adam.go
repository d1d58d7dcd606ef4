package parser

import (
	"regexp"
	"strings"

	"github.com/starlink/prologue/internal/prologue"
)

// The historic ADAM convention opens with a combined name/purpose line
// and has no close marker:
//
//	*+  TASK - does one thing
//	      SUBROUTINE TASK (STATUS)
//	*    Description :
//	*     Frobnicates the doodad.
//	*    History :
//	*     01-JAN-1990: original (ABC)
//	*    endhistory
//	      INTEGER STATUS
//
// The declaration directly after the header is ordinary code and the
// block only ends when a non-comment line follows the sections, so the
// worker hands lines back while staying open and closes with one line
// of lookahead.
var (
	adamStart   = regexp.MustCompile(`^\*\+\s+(\S.*)$`)
	adamEnd     = regexp.MustCompile(`^\*-\s*$`)
	adamHistEnd = regexp.MustCompile(`^\*\s*(?i:endhistory)\s*$`)
	adamHeader  = regexp.MustCompile(`^\* {1,4}([A-Za-z][\w ]*?)\s*:\s*$`)
	adamContent = regexp.MustCompile(`^\*(.*)$`)
)

// adamInterludeLimit bounds how many code lines may sit between the
// header line and the first section before the block is considered over.
const adamInterludeLimit = 5

func recognizesAdamStart(line string) bool {
	return adamStart.MatchString(line)
}

type adamWorker struct {
	doc        *prologue.Prologue
	section    string
	buffer     []string
	started    bool
	sawSection bool
	interlude  int
}

func newAdamWorker() *adamWorker {
	return &adamWorker{doc: prologue.New()}
}

func (w *adamWorker) PushLine(line string) (PushResult, bool) {
	if !w.started {
		m := adamStart.FindStringSubmatch(line)
		w.started = true
		w.seedNamePurpose(m[1])
		return nothing(), true
	}

	if adamEnd.MatchString(line) || adamHistEnd.MatchString(line) {
		// Stray terminators some files carry; not content.
		return nothing(), true
	}
	if m := adamHeader.FindStringSubmatch(line); m != nil {
		w.flushSection()
		w.section = m[1]
		w.sawSection = true
		return nothing(), true
	}
	if m := adamContent.FindStringSubmatch(line); m != nil {
		if w.section != "" {
			w.buffer = append(w.buffer, stripIndent(m[1]))
		}
		return nothing(), true
	}

	// Not comment syntax. Immediately after the header this is the
	// routine declaration and the prologue continues around it; once
	// sections have appeared (or too much code has gone by) it marks
	// the end, and the line still belongs to the caller.
	if !w.sawSection && w.interlude < adamInterludeLimit {
		w.interlude++
		return lineOnly(line), true
	}
	return lineAndDoc(line, w.finalize()), false
}

func (w *adamWorker) Finalize() PushResult {
	return docOnly(w.finalize())
}

func (w *adamWorker) finalize() *prologue.Prologue {
	w.flushSection()
	w.doc.StyleTag = StyleAdam.Tag()
	return w.doc
}

func (w *adamWorker) flushSection() {
	if w.section == "" {
		return
	}
	_ = w.doc.SetContent(w.section, w.buffer)
	w.section = ""
	w.buffer = nil
}

// seedNamePurpose splits the "NAME - purpose" header text into the Name
// and Purpose sections. Without a separator the whole text is the name.
func (w *adamWorker) seedNamePurpose(text string) {
	w.doc.CommentChar = '*'
	name := strings.TrimSpace(text)
	purpose := ""
	if idx := strings.Index(text, " - "); idx >= 0 {
		name = strings.TrimSpace(text[:idx])
		purpose = strings.TrimSpace(text[idx+3:])
	}
	if name != "" {
		_ = w.doc.SetContent("Name", []string{name})
	}
	if purpose != "" {
		_ = w.doc.SetContent("Purpose", []string{purpose})
	}
}
