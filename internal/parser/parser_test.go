package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/starlink/prologue/internal/prologue"
)

func pushAll(t *testing.T, p *Parser, lines []string) []PushResult {
	t.Helper()
	results := make([]PushResult, 0, len(lines))
	for _, line := range lines {
		results = append(results, p.PushLine(line))
	}
	return results
}

func TestParser_OrdinaryLines_PassThrough(t *testing.T) {
	p := New()

	res := p.PushLine("      PROGRAM MAIN")
	require.True(t, res.Line.IsSome())
	require.Equal(t, "      PROGRAM MAIN", res.Line.Unwrap())
	require.True(t, res.Prologue.IsNone())
}

func TestParser_ModernPrologue_CompletesOnEndMarker(t *testing.T) {
	p := New()
	results := pushAll(t, p, []string{
		"*+",
		"*  Name:",
		"*     FROB",
		"",
		"*  Purpose:",
		"*     Frobnicates.",
		"",
		"*-",
	})

	for _, res := range results[:len(results)-1] {
		require.True(t, res.Line.IsNone())
		require.True(t, res.Prologue.IsNone())
	}

	last := results[len(results)-1]
	require.True(t, last.Line.IsNone(), "explicit terminator needs no lookahead")
	doc, ok := last.Prologue.Get()
	require.True(t, ok)
	require.Equal(t, "modern", doc.StyleTag)
	require.Equal(t, []string{"FROB"}, doc.Content("Name"))
	require.Equal(t, []string{"Frobnicates."}, doc.Content("Purpose"))
	require.Equal(t, byte('*'), doc.CommentChar)
}

func TestParser_ModernRoundTrip_ByteIdentical(t *testing.T) {
	canonical := strings.Join([]string{
		"*+",
		"*  Name:",
		"*     FROB",
		"",
		"*  Invocation:",
		"*     CALL FROB( STATUS )",
		"*    : CALL FROB2( STATUS )",
		"",
		"*  Authors:",
		"*     TJ: Tim (JACH)",
		"*     {enter_new_authors_here}",
		"",
		"*-",
		"",
	}, "\n")

	p := New()
	var doc *prologue.Prologue
	for _, line := range strings.Split(strings.TrimSuffix(canonical, "\n"), "\n") {
		res := p.PushLine(line)
		if d, ok := res.Prologue.Get(); ok {
			doc = d
		}
	}
	require.NotNil(t, doc)
	require.Equal(t, canonical, doc.Stringify())
}

func TestParser_HashMarkerPrologue_Parsed(t *testing.T) {
	p := New()
	results := pushAll(t, p, []string{
		"#+",
		"#  Name:",
		"#     frob_link",
		"#-",
	})

	doc, ok := results[len(results)-1].Prologue.Get()
	require.True(t, ok)
	require.Equal(t, byte('#'), doc.CommentChar)
	require.Equal(t, []string{"frob_link"}, doc.Content("Name"))
}

func TestParser_EmbeddedCComment_SetsBothFlags(t *testing.T) {
	p := New()
	results := pushAll(t, p, []string{
		"/*",
		"*+",
		"*  Name:",
		"*     frob",
		"*-",
		"*/",
	})

	doc, ok := results[len(results)-1].Prologue.Get()
	require.True(t, ok)
	require.True(t, doc.StartsEmbeddedComment)
	require.True(t, doc.EndsEmbeddedComment)
}

func TestParser_PlainBlockComment_GivenBackVerbatim(t *testing.T) {
	p := New()

	res := p.PushLine("/*")
	require.True(t, res.Line.IsNone())
	require.True(t, res.Prologue.IsNone())

	res = p.PushLine(" * just a comment")
	require.True(t, res.Prologue.IsNone())
	require.Equal(t, "/*\n * just a comment", res.Line.Unwrap())

	// The parser must be idle again.
	res = p.PushLine("int x;")
	require.Equal(t, "int x;", res.Line.Unwrap())
}

func TestFlush_NoActiveWorker_ReturnsNothing(t *testing.T) {
	p := New()
	res := p.Flush()
	require.True(t, res.Line.IsNone())
	require.True(t, res.Prologue.IsNone())
}

func TestFlush_StagedCommentOpener_GivenBack(t *testing.T) {
	p := New()
	res := p.PushLine("/*")
	require.True(t, res.Line.IsNone())
	require.True(t, res.Prologue.IsNone())

	res = p.Flush()
	require.Equal(t, "/*", res.Line.Unwrap())
	require.True(t, res.Prologue.IsNone())
}

func TestFlush_MidPrologue_ReturnsAccumulatedSections(t *testing.T) {
	p := New()
	pushAll(t, p, []string{
		"*+",
		"*  Name:",
		"*     TRUNC",
		"",
		"*  Description:",
		"*     Cut short",
	})

	doc, ok := p.Flush().Prologue.Get()
	require.True(t, ok)
	require.Equal(t, []string{"TRUNC"}, doc.Content("Name"))
	require.Equal(t, []string{"Cut short"}, doc.Content("Description"))

	// Flush cleared the worker.
	require.True(t, p.Flush().Prologue.IsNone())
}

func TestParser_CodeBeforeEndMarker_ClosesWithLineAndDocument(t *testing.T) {
	p := New()
	pushAll(t, p, []string{
		"*+",
		"*  Name:",
		"*     ODD",
	})

	res := p.PushLine("      END")
	line, hasLine := res.Line.Get()
	require.True(t, hasLine)
	require.Equal(t, "      END", line)
	doc, hasDoc := res.Prologue.Get()
	require.True(t, hasDoc)
	require.Equal(t, []string{"ODD"}, doc.Content("Name"))
}

func TestSingle_DocumentTakesPriority(t *testing.T) {
	p := New()
	pushAll(t, p, []string{"*+", "*  Name:", "*     X"})

	res := p.PushLine("      END")
	doc, ok := res.Single().(*prologue.Prologue)
	require.True(t, ok)
	require.Equal(t, []string{"X"}, doc.Content("Name"))
}

func TestSingle_OrdinaryLine_ReturnsString(t *testing.T) {
	p := New()
	res := p.PushLine("      END")
	require.Equal(t, "      END", res.Single())
}

func TestStyle_Tags(t *testing.T) {
	require.Equal(t, "modern", StyleModern.Tag())
	require.Equal(t, "adam", StyleAdam.Tag())
}
