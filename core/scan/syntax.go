// Package scan walks a repository working tree and feeds file contents to
// pluggable per-file analyzers.
package scan

import "sort"

// CommentSyntax holds the comment delimiter rules for one language.
// LineMarker is always present; BlockStart and BlockEnd are either both
// set or both empty.
type CommentSyntax struct {
	Language   string
	LineMarker string
	BlockStart string
	BlockEnd   string
}

// HasBlock reports whether the language defines block comments.
func (s CommentSyntax) HasBlock() bool {
	return s.BlockStart != "" && s.BlockEnd != ""
}

// defaultSyntax is the fallback for unknown extensions.
var defaultSyntax = CommentSyntax{Language: "Unknown", LineMarker: "#"}

// SyntaxTable maps file extensions to comment syntax rules. It is immutable
// after construction and safe for concurrent reads.
type SyntaxTable struct {
	byExt map[string]CommentSyntax
}

// NewSyntaxTable builds the built-in language table.
func NewSyntaxTable() *SyntaxTable {
	cFamily := func(lang string) CommentSyntax {
		return CommentSyntax{Language: lang, LineMarker: "//", BlockStart: "/*", BlockEnd: "*/"}
	}
	hashOnly := func(lang string) CommentSyntax {
		return CommentSyntax{Language: lang, LineMarker: "#"}
	}

	byExt := map[string]CommentSyntax{
		".js":    cFamily("JavaScript"),
		".jsx":   cFamily("JavaScript"),
		".mjs":   cFamily("JavaScript"),
		".cjs":   cFamily("JavaScript"),
		".ts":    cFamily("TypeScript"),
		".tsx":   cFamily("TypeScript"),
		".java":  cFamily("Java"),
		".c":     cFamily("C"),
		".h":     cFamily("C"),
		".cpp":   cFamily("C++"),
		".cc":    cFamily("C++"),
		".hpp":   cFamily("C++"),
		".cs":    cFamily("C#"),
		".go":    cFamily("Go"),
		".rs":    cFamily("Rust"),
		".swift": cFamily("Swift"),
		".kt":    cFamily("Kotlin"),
		".kts":   cFamily("Kotlin"),
		".scala": cFamily("Scala"),
		".dart":  cFamily("Dart"),
		".php":   cFamily("PHP"),
		".css":   {Language: "CSS", LineMarker: "/*", BlockStart: "/*", BlockEnd: "*/"},
		".scss":  cFamily("SCSS"),
		".less":  cFamily("Less"),

		".py": {Language: "Python", LineMarker: "#", BlockStart: `"""`, BlockEnd: `"""`},
		".rb": {Language: "Ruby", LineMarker: "#", BlockStart: "=begin", BlockEnd: "=end"},

		".sh":   hashOnly("Shell"),
		".bash": hashOnly("Shell"),
		".pl":   hashOnly("Perl"),
		".r":    hashOnly("R"),
		".yaml": hashOnly("YAML"),
		".yml":  hashOnly("YAML"),
		".toml": hashOnly("TOML"),

		".sql": {Language: "SQL", LineMarker: "--", BlockStart: "/*", BlockEnd: "*/"},
		".lua": {Language: "Lua", LineMarker: "--", BlockStart: "--[[", BlockEnd: "]]"},

		".html": {Language: "HTML", LineMarker: "<!--", BlockStart: "<!--", BlockEnd: "-->"},
		".xml":  {Language: "XML", LineMarker: "<!--", BlockStart: "<!--", BlockEnd: "-->"},
		".vue":  {Language: "Vue", LineMarker: "//", BlockStart: "<!--", BlockEnd: "-->"},
	}

	return &SyntaxTable{byExt: byExt}
}

// SyntaxFor returns the comment syntax for a file extension, including the
// leading dot. Unknown extensions fall back to a single-line "#" rule.
func (t *SyntaxTable) SyntaxFor(ext string) CommentSyntax {
	if s, ok := t.byExt[ext]; ok {
		return s
	}
	return defaultSyntax
}

// SupportedExtensions returns the sorted set of extensions the table knows.
func (t *SyntaxTable) SupportedExtensions() []string {
	exts := make([]string, 0, len(t.byExt))
	for ext := range t.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
