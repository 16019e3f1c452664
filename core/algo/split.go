package algo

import (
	"strings"
	"unicode/utf8"
)

// SplitSentences cuts text into the pieces handed to the tagger one at a time.
//
// Each line is split right after every sentence-ending mark (kuten, closing
// quote, exclamation and question marks); the mark stays with the piece it
// closes. Tooten is not a delimiter. Pieces that are blank after trimming are
// dropped.
func SplitSentences(text string) []string {
	var pieces []string
	var current strings.Builder

	flush := func() {
		piece := strings.TrimSpace(current.String())
		if piece != "" {
			pieces = append(pieces, piece)
		}
		current.Reset()
	}

	for line := range strings.Lines(text) {
		for _, r := range line {
			current.WriteRune(r)
			if Classify(r).IsSentenceEnding() {
				flush()
			}
		}
		flush()
	}
	return pieces
}

// EndsSentence reports whether piece ends with a sentence-ending mark.
func EndsSentence(piece string) bool {
	r, _ := utf8.DecodeLastRuneInString(piece)
	return r != utf8.RuneError && Classify(r).IsSentenceEnding()
}
