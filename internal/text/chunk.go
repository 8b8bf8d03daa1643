package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxChunkChars bounds chunk length for the synthesis model; Bark
// output degrades sharply past roughly 300 characters of input.
const DefaultMaxChunkChars = 300

// Chunk splits normalized text into pieces of at most maxChars runes.
// Sentences are packed greedily in order; any piece still over the limit
// (a single oversized sentence, or text with no punctuation at all) is
// sliced into fixed-size rune windows, mid-word if necessary. Chunks come
// back trimmed, non-empty, and in original order. maxChars <= 0 falls
// back to DefaultMaxChunkChars.
func Chunk(text string, maxChars int) []string {
	if maxChars <= 0 {
		maxChars = DefaultMaxChunkChars
	}

	var packed []string
	var current strings.Builder
	currentLen := 0
	for _, sentence := range splitSentences(strings.ReplaceAll(text, "\n", " ")) {
		sentenceLen := utf8.RuneCountInString(sentence)
		if currentLen+sentenceLen+1 > maxChars {
			if currentLen > 0 {
				packed = append(packed, current.String())
				current.Reset()
			}
			current.WriteString(sentence)
			currentLen = sentenceLen
			continue
		}
		if currentLen > 0 {
			current.WriteByte(' ')
			currentLen++
		}
		current.WriteString(sentence)
		currentLen += sentenceLen
	}
	if currentLen > 0 {
		packed = append(packed, current.String())
	}

	var chunks []string
	for _, chunk := range packed {
		for _, piece := range hardCap(chunk, maxChars) {
			piece = strings.TrimSpace(piece)
			if piece != "" {
				chunks = append(chunks, piece)
			}
		}
	}
	return chunks
}

// splitSentences cuts after '.', '?' or '!' followed by whitespace,
// keeping the punctuation attached to the preceding sentence. The
// whitespace run itself is consumed. Abbreviations ("Dr. Smith") split
// early; known limitation of the heuristic.
func splitSentences(s string) []string {
	var sentences []string
	runes := []rune(s)
	start := 0
	for i := 0; i < len(runes); {
		r := runes[i]
		if (r == '.' || r == '?' || r == '!') && i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			sentences = append(sentences, string(runes[start:i+1]))
			i++
			for i < len(runes) && unicode.IsSpace(runes[i]) {
				i++
			}
			start = i
			continue
		}
		i++
	}
	if start < len(runes) {
		sentences = append(sentences, string(runes[start:]))
	}
	return sentences
}

// hardCap slices a chunk into fixed-size rune windows when greedy packing
// could not get it under the limit.
func hardCap(chunk string, maxChars int) []string {
	runes := []rune(chunk)
	if len(runes) <= maxChars {
		return []string{chunk}
	}
	pieces := make([]string, 0, (len(runes)+maxChars-1)/maxChars)
	for start := 0; start < len(runes); start += maxChars {
		end := start + maxChars
		if end > len(runes) {
			end = len(runes)
		}
		pieces = append(pieces, string(runes[start:end]))
	}
	return pieces
}
