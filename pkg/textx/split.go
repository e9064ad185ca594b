// Package textx holds plain-text helpers shared by outbound messaging.
package textx

import (
	"strings"
	"unicode/utf8"
)

// SplitMessage cuts text into chunks of at most limit bytes, preferring to
// break on newlines and never inside a multi-byte rune.
func SplitMessage(text string, limit int) []string {
	if text == "" {
		return []string{""}
	}

	var chunks []string

	for len(text) > limit {
		cut := limit

		// Break on the last newline inside the window when there is one.
		if i := strings.LastIndexByte(text[:limit], '\n'); i > 0 {
			cut = i
		} else {
			for cut > 0 && !utf8.RuneStart(text[cut]) {
				cut--
			}

			// A limit smaller than one rune still has to make progress.
			if cut == 0 {
				cut = limit
			}
		}

		chunks = append(chunks, text[:cut])
		text = text[cut:]
		if len(text) > 0 && text[0] == '\n' {
			text = text[1:]
		}
	}

	if len(text) > 0 {
		chunks = append(chunks, text)
	}

	return chunks
}
