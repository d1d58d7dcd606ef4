package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdam_HeaderLine_SeedsNameAndPurpose(t *testing.T) {
	p := New()
	p.PushLine("*+  FROB - frobnicates the doodad")

	doc, ok := p.Flush().Prologue.Get()
	require.True(t, ok)
	require.Equal(t, "adam", doc.StyleTag)
	require.Equal(t, []string{"FROB"}, doc.Content("Name"))
	require.Equal(t, []string{"frobnicates the doodad"}, doc.Content("Purpose"))
}

func TestAdam_HeaderWithoutSeparator_AllName(t *testing.T) {
	p := New()
	p.PushLine("*+  FROB")

	doc, ok := p.Flush().Prologue.Get()
	require.True(t, ok)
	require.Equal(t, []string{"FROB"}, doc.Content("Name"))
	require.Nil(t, doc.Content("Purpose"))
}

func TestAdam_DeclarationAfterHeader_ForwardedWhileOpen(t *testing.T) {
	p := New()
	p.PushLine("*+  FROB - frobnicates")

	res := p.PushLine("      SUBROUTINE FROB (STATUS)")
	line, ok := res.Line.Get()
	require.True(t, ok)
	require.Equal(t, "      SUBROUTINE FROB (STATUS)", line)
	require.True(t, res.Prologue.IsNone(), "prologue still open around the declaration")

	res = p.PushLine("*    Description :")
	require.True(t, res.Line.IsNone())
	require.True(t, res.Prologue.IsNone())
}

func TestAdam_LookaheadTermination_LineAndDocumentTogether(t *testing.T) {
	p := New()
	pushAll(t, p, []string{
		"*+  FROB - frobnicates",
		"*    Description :",
		"*     It frobs the doodad.",
	})

	res := p.PushLine("      INTEGER STATUS")
	line, hasLine := res.Line.Get()
	require.True(t, hasLine)
	require.Equal(t, "      INTEGER STATUS", line)

	doc, hasDoc := res.Prologue.Get()
	require.True(t, hasDoc)
	require.Equal(t, "adam", doc.StyleTag)
	require.Equal(t, []string{"It frobs the doodad."}, doc.Content("Description"))
}

func TestAdam_FullBlock_SectionsAccumulated(t *testing.T) {
	p := New()
	pushAll(t, p, []string{
		"*+  TRACE - traces a data structure",
		"      SUBROUTINE TRACE (STATUS)",
		"*    Description :",
		"*     Lists the contents of a structure.",
		"*    Invocation :",
		"*     CALL TRACE (STATUS)",
		"*    Method :",
		"*     Walk the structure recursively.",
		"*    History :",
		"*     01-JAN-1990: original (RAL::ABC)",
		"*    endhistory",
	})

	res := p.PushLine("      INTEGER STATUS")
	doc, ok := res.Prologue.Get()
	require.True(t, ok)
	require.Equal(t, []string{"Lists the contents of a structure."}, doc.Content("Description"))
	require.Equal(t, []string{"CALL TRACE (STATUS)"}, doc.Content("Invocation"))
	require.Equal(t, []string{"Walk the structure recursively."}, doc.Content("Method"))
	require.Equal(t, []string{"01-JAN-1990: original (RAL::ABC)"}, doc.Content("History"))
	require.NotContains(t, doc.Sections(), "Endhistory")
}

func TestAdam_StrayEndMarker_Ignored(t *testing.T) {
	p := New()
	pushAll(t, p, []string{
		"*+  FROB - frobnicates",
		"*    Bugs :",
		"*     None known.",
		"*-",
	})

	doc, ok := p.Flush().Prologue.Get()
	require.True(t, ok)
	require.Equal(t, []string{"None known."}, doc.Content("Bugs"))
}

func TestAdam_NonCatalogSection_LandsInMisc(t *testing.T) {
	p := New()
	pushAll(t, p, []string{
		"*+  FROB - frobnicates",
		"*    Type Definitions :",
		"*     IMPLICIT NONE",
	})

	doc, ok := p.Flush().Prologue.Get()
	require.True(t, ok)
	require.Contains(t, doc.MiscSections(), "Type Definitions")
}

func TestRecognizes_ModernBeforeAdam(t *testing.T) {
	require.True(t, StyleModern.Recognizes("*+"))
	require.False(t, StyleAdam.Recognizes("*+"))
	require.True(t, StyleAdam.Recognizes("*+  FROB - frobnicates"))
	require.False(t, StyleModern.Recognizes("*+  FROB - frobnicates"))
}
