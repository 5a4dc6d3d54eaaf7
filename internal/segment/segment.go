// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segment splits raw document text into sentences for the
// extraction engine. The splitter is deliberately simple: sentence-ending
// punctuation followed by whitespace (or end of text) closes a sentence.
// Contract prose is formal enough that this matches the upstream
// sentencizer's behavior on the documents the engine sees.
package segment

import "strings"

// terminators are the sentence-ending runes.
func isTerminator(r byte) bool {
	return r == '.' || r == '!' || r == '?'
}

// Split divides text into sentences in document order. Each returned
// sentence is trimmed of surrounding whitespace; blank fragments are
// dropped. The sentences are non-overlapping and cover all non-blank text.
func Split(text string) []string {
	var sentences []string
	start := 0

	for i := 0; i < len(text); i++ {
		if !isTerminator(text[i]) {
			continue
		}

		// Consume a run of terminators ("...", "?!").
		end := i + 1
		for end < len(text) && isTerminator(text[end]) {
			end++
		}

		// A terminator mid-token (e.g. "Rs.5" or "2.5") does not close a
		// sentence; only whitespace or end of text does.
		if end < len(text) && !isSpace(text[end]) {
			i = end - 1
			continue
		}

		if s := strings.TrimSpace(text[start:end]); s != "" {
			sentences = append(sentences, s)
		}
		start = end
		i = end - 1
	}

	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
