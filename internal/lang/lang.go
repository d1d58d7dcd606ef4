// Package lang maps file names to the source language and module type
// recorded in prologue headers. The tables cover the languages the
// Starlink collection was written in; anything unknown simply reports
// no match.
package lang

import (
	"path/filepath"
	"strings"
)

var bySuffix = map[string]string{
	".f":    "Starlink Fortran 77",
	".for":  "Starlink Fortran 77",
	".f77":  "Starlink Fortran 77",
	".gen":  "Starlink Fortran 77 (Generic)",
	".g":    "Starlink Fortran 77 (Generic)",
	".c":    "Starlink C",
	".h":    "Starlink C",
	".sh":   "Bourne shell",
	".csh":  "C-shell",
	".icl":  "ICL",
	".pl":   "Perl",
	".pm":   "Perl",
	".py":   "Python",
	".tcl":  "Tcl/Tk",
	".itcl": "[incr Tcl]",
}

var moduleTypeBySuffix = map[string]string{
	".h":  "Include file",
	".sh": "Shell script",
	".pl": "Perl script",
	".py": "Python script",
}

// BySuffix looks up the language for a file name by its extension.
func BySuffix(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	lang, ok := bySuffix[ext]
	return lang, ok
}

// ByConvention applies the Starlink file-naming conventions used for
// files that carry no extension: error, system, common-block and
// parameter include files are Fortran; link scripts are shell;
// makefiles are make descriptions.
func ByConvention(filename string) (string, bool) {
	base := filepath.Base(filename)
	switch {
	case hasAnySuffix(base, "_ERR", "_SYS", "_CMN", "_PAR"):
		return "Starlink Fortran 77", true
	case strings.HasSuffix(base, "_link"):
		return "Bourne shell", true
	case strings.HasPrefix(base, "Makefile") || strings.HasPrefix(base, "makefile"):
		return "Make", true
	}
	return "", false
}

// ModuleType guesses the "Type of Module" entry for a file name.
func ModuleType(filename string) (string, bool) {
	base := filepath.Base(filename)
	switch {
	case hasAnySuffix(base, "_ERR", "_SYS", "_CMN", "_PAR"):
		return "Include file", true
	case strings.HasSuffix(base, "_link"):
		return "Shell script", true
	case strings.HasPrefix(base, "Makefile") || strings.HasPrefix(base, "makefile"):
		return "Description file", true
	}
	ext := strings.ToLower(filepath.Ext(filename))
	typ, ok := moduleTypeBySuffix[ext]
	return typ, ok
}

// Recognized reports whether the file name looks like a source file this
// tool knows how to annotate. Used by watch mode to filter events.
func Recognized(filename string) bool {
	if _, ok := BySuffix(filename); ok {
		return true
	}
	_, ok := ByConvention(filename)
	return ok
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
