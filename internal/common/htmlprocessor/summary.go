package htmlprocessor

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/edgecomet/snippet/pkg/types"
)

var (
	// tagPattern matches start and end tags, comments and doctypes. A "<" followed
	// by a space is text, not markup.
	tagPattern       = regexp.MustCompile(`<[^ >][^>]*>`)
	lineBreakPattern = regexp.MustCompile(`[\r\n]+`)
)

// truncateRunes truncates a string to maxLen runes (not bytes).
// Returns the original string if it's already within the limit.
func truncateRunes(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen])
}

// StripMarkup converts editor content to plain text: tags are removed, line
// breaks become single spaces, entities are decoded and the result is trimmed.
func StripMarkup(content string) string {
	if content == "" {
		return ""
	}
	text := tagPattern.ReplaceAllString(content, "")
	text = lineBreakPattern.ReplaceAllString(text, " ")
	text = html.UnescapeString(text)
	return strings.TrimSpace(text)
}

// Summarize returns a plain-text description of content that fits
// types.DescriptionBudget runes, shortened on a word boundary when needed.
func Summarize(content string) string {
	summary, _ := SummarizeTruncated(content)
	return summary
}

// SummarizeTruncated is Summarize that also reports whether the text was shortened.
func SummarizeTruncated(content string) (string, bool) {
	text := StripMarkup(truncateRunes(content, types.PreviewBudget))

	if utf8.RuneCountInString(text) <= types.DescriptionBudget {
		return text, false
	}

	runes := []rune(text)
	core := strings.TrimRightFunc(string(cutAtBoundary(runes, types.DescriptionBudget)), unicode.IsSpace)
	return core + types.TruncationSuffix, true
}

// cutAtBoundary returns the longest prefix of runes no longer than budget whose
// last rune is a separator or punctuation. Without such a rune the text is cut
// at budget.
func cutAtBoundary(runes []rune, budget int) []rune {
	if len(runes) <= budget {
		return runes
	}
	cut := budget
	for cut > 0 && !isBoundary(runes[cut-1]) {
		cut--
	}
	if cut == 0 {
		return runes[:budget]
	}
	return runes[:cut]
}

// isBoundary reports whether r separates words: Unicode separators (Z),
// punctuation (P) and other whitespace such as tabs.
func isBoundary(r rune) bool {
	return unicode.In(r, unicode.Z, unicode.P) || unicode.IsSpace(r)
}
