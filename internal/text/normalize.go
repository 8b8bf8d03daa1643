// Package text prepares raw narration scripts for speech synthesis:
// normalization into plain spoken text and splitting into chunks small
// enough for the synthesis model.
package text

import (
	"regexp"
	"strings"
)

// The transforms form an ordered pipeline; reordering changes the output.
// Labels are stripped before newlines collapse (the anchor needs line
// starts), stray markers after emphasis unwrapping (unwrapping consumes
// the paired ones).
var (
	emphasisMarks  = regexp.MustCompile(`\*\*(.*?)\*\*|\*(.*?)\*`)
	headingLines   = regexp.MustCompile(`(?m)^#+\s.*`)
	parentheticals = regexp.MustCompile(`\(.*?\)`)
	speakerLabels  = regexp.MustCompile(`(?m)^\w+:`)
	newlineRuns    = regexp.MustCompile(`\n+`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

var strayMarkers = strings.NewReplacer("*", "", "-", "")

// Normalize turns a raw script into plain spoken text. Markdown emphasis
// is unwrapped to its inner text, heading lines and parentheticals and
// line-leading speaker labels are dropped, newlines collapse to spaces,
// stray * and - characters are removed, and whitespace runs shrink to a
// single space with the ends trimmed. The result may be empty.
func Normalize(raw string) string {
	s := emphasisMarks.ReplaceAllString(raw, "${1}${2}")
	s = headingLines.ReplaceAllString(s, "")
	s = parentheticals.ReplaceAllString(s, "")
	s = speakerLabels.ReplaceAllString(s, "")
	s = newlineRuns.ReplaceAllString(s, " ")
	s = strayMarkers.Replace(s)
	s = whitespaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
