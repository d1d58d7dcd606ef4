// Package rewrite runs the per-file pipeline: stream lines through the
// prologue parser, edit each recognized document, and reassemble the
// file with the canonical serialization in place of the original
// blocks. Ordinary lines pass through untouched.
package rewrite

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/starlink/prologue/internal/copyright"
	"github.com/starlink/prologue/internal/licence"
	"github.com/starlink/prologue/internal/parser"
	"github.com/starlink/prologue/internal/prologue"
)

// Options control the edits applied to each recognized prologue.
type Options struct {
	// WriteDefaults emits placeholder text for missing sections.
	WriteDefaults bool
	// EnsureLicence inserts the stock licence text when the section is
	// missing.
	EnsureLicence bool
	// EnsureCopyright fills the Copyright section from the History
	// years when the section is missing.
	EnsureCopyright bool
	// CopyrightOverride replaces the generated copyright attribution.
	CopyrightOverride string
	// FundingBodies overrides the default attribution table.
	FundingBodies []copyright.FundingBody
	// FilenameHint drives language and module-type guessing.
	FilenameHint string
}

// Result is the outcome of streaming one input through the pipeline.
type Result struct {
	Output      string
	Prologues   int
	StyleCounts map[string]int
}

// Rewritable reports whether the input may be written back in place:
// at least one prologue was found and every one of them used the
// modern convention. Legacy or mixed-style files are reported to the
// caller instead of rewritten.
func (r *Result) Rewritable() bool {
	if r.Prologues == 0 {
		return false
	}
	return r.StyleCounts[parser.StyleModern.Tag()] == r.Prologues
}

// Stream pushes every line of input through a fresh parser, applying
// the configured edits to each completed document. The input is never
// buffered whole; only the current prologue accumulates in memory.
func Stream(input io.Reader, opts Options) (*Result, error) {
	result := &Result{StyleCounts: make(map[string]int)}
	p := parser.New()
	var out strings.Builder

	emit := func(res parser.PushResult) {
		// A document and a trailing code line can arrive together; the
		// document textually precedes the line that terminated it.
		if doc, ok := res.Prologue.Get(); ok {
			applyEdits(doc, opts)
			out.WriteString(doc.Stringify())
			result.Prologues++
			result.StyleCounts[doc.StyleTag]++
		}
		if line, ok := res.Line.Get(); ok {
			out.WriteString(line)
			out.WriteByte('\n')
		}
	}

	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		emit(p.PushLine(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	emit(p.Flush())

	result.Output = out.String()
	return result, nil
}

// File runs Stream over a file, using its name as the guessing hint.
func File(path string, opts Options) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if opts.FilenameHint == "" {
		opts.FilenameHint = filepath.Base(path)
	}
	return Stream(f, opts)
}

// InPlace rewrites a file on disk when its prologues all use the modern
// convention. It returns whether the file was written along with the
// pipeline result; a file already in canonical form is left alone,
// which keeps watch mode from retriggering on its own writes.
func InPlace(path string, opts Options) (bool, *Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if opts.FilenameHint == "" {
		opts.FilenameHint = filepath.Base(path)
	}

	result, err := Stream(bytes.NewReader(data), opts)
	if err != nil {
		return false, nil, err
	}
	if !result.Rewritable() {
		slog.Warn("Skipping in-place rewrite",
			"path", path,
			"prologues", result.Prologues,
			"styles", result.StyleCounts)
		return false, result, nil
	}
	if result.Output == string(data) {
		return false, result, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, result, fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(result.Output), info.Mode().Perm()); err != nil {
		return false, result, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, result, nil
}

func applyEdits(doc *prologue.Prologue, opts Options) {
	doc.WriteDefaults = opts.WriteDefaults
	doc.GuessDefaults(opts.FilenameHint)

	if opts.EnsureLicence {
		if _, ok := doc.HasSection("Licence"); !ok {
			_ = doc.SetContent("Licence", licence.Lines())
		}
	}
	if opts.EnsureCopyright {
		_, present := doc.HasSection("Copyright")
		if !present || opts.CopyrightOverride != "" {
			_ = doc.SetContent("Copyright", copyrightLines(doc, opts))
		}
	}
}

func copyrightLines(doc *prologue.Prologue, opts Options) []string {
	years := doc.Years()
	if len(years) == 0 && opts.CopyrightOverride == "" {
		// The assembler never invents a year, so substitute the current
		// one here and say so.
		years = []int{time.Now().Year()}
		slog.Warn("No copyright year found in History, using current year",
			"file", opts.FilenameHint, "year", years[0])
	}
	return copyright.Lines(years, opts.FundingBodies, opts.CopyrightOverride)
}
