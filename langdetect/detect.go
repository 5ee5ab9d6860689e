// Package langdetect classifies the language of code block bodies.
// It uses go-enry to detect programming languages from code snippets, so
// fences written without a language tag can still get a useful class.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Fallback is returned when no language can be detected with confidence.
const Fallback = "text"

// candidates narrows the classifier to languages that commonly appear in
// fenced code blocks.
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// Detect returns the detected language for code content, normalized to a
// fence-tag style identifier. It returns Fallback for empty content or when
// confidence is low.
func Detect(content []byte) string {
	if len(content) == 0 {
		return Fallback
	}

	// A shebang is the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return Fallback
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "C++":
		return "cpp"
	case "C#":
		return "csharp"
	}
	return strings.ToLower(lang)
}
