package algo

import (
	"strings"

	"github.com/huangsam/yomu/schema"
)

// SegmentOptions controls end-of-input handling in Segment.
type SegmentOptions struct {
	// FlushTrailing closes the open run and the open sentence at end of input.
	// The reference scores were produced without it: a text that does not end
	// on a category change loses its last run, and a trailing sentence without
	// a closing mark is not counted.
	FlushTrailing bool
}

// SegmentResult holds everything the Tateisi formula needs from one pass.
type SegmentResult struct {
	Runs            map[schema.CharCategory][]string
	SentenceLengths []int
	TootenCount     int
	KutenCount      int
	LetterCount     int
	CharCount       int
}

// RunCount returns the number of runs across all letter categories.
func (s *SegmentResult) RunCount() int {
	total := 0
	for _, c := range schema.LetterCategories {
		total += len(s.Runs[c])
	}
	return total
}

// segmenter is the state of one Segment pass.
type segmenter struct {
	result         *SegmentResult
	run            strings.Builder
	runCategory    schema.CharCategory
	runOpen        bool
	sentenceLength int
}

// closeRun appends the open run to its bucket if it is a letter run.
func (s *segmenter) closeRun() {
	if s.runOpen && s.runCategory.IsLetter() {
		s.result.Runs[s.runCategory] = append(s.result.Runs[s.runCategory], s.run.String())
	}
	s.run.Reset()
	s.runOpen = false
}

// closeSentence records the open sentence unless it has no letters.
func (s *segmenter) closeSentence() {
	if s.sentenceLength > 0 {
		s.result.SentenceLengths = append(s.result.SentenceLengths, s.sentenceLength)
		s.sentenceLength = 0
	}
}

// Segment splits text into same-category runs and counts sentence lengths in a
// single left-to-right pass.
//
// Runs of non-letter categories are discarded but still break adjacency.
// Sentence length counts letters only and is closed by any sentence-ending
// mark; a sentence with no letters is never recorded.
func Segment(text string, opts SegmentOptions) SegmentResult {
	result := SegmentResult{
		Runs: make(map[schema.CharCategory][]string, len(schema.LetterCategories)),
	}
	for _, c := range schema.LetterCategories {
		result.Runs[c] = []string{}
	}
	s := &segmenter{result: &result}

	for _, r := range text {
		result.CharCount++
		category := Classify(r)

		if s.runOpen && category == s.runCategory {
			s.run.WriteRune(r)
		} else {
			s.closeRun()
			s.runCategory = category
			s.runOpen = true
			s.run.WriteRune(r)
		}

		if category.IsLetter() {
			s.sentenceLength++
			result.LetterCount++
		}
		switch category {
		case schema.CategoryKuten:
			result.KutenCount++
		case schema.CategoryTooten:
			result.TootenCount++
		}
		if category.IsSentenceEnding() {
			s.closeSentence()
		}
	}

	if opts.FlushTrailing {
		s.closeRun()
		s.closeSentence()
	}
	return result
}
