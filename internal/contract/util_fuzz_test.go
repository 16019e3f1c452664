package contract

import (
	"strings"
	"testing"
)

// FuzzShouldIgnore fuzzes the ShouldIgnore function with random paths and exclude patterns.
func FuzzShouldIgnore(f *testing.F) {
	seeds := []struct {
		path     string
		excludes string // comma-separated
	}{
		{"momotaro.txt", "*.bak"},
		{"drafts/kaguya.txt", "drafts/"},
		{"urashima_old.txt", "*_old.txt"},
		{"", ""},
		{"very/long/path/to/story.txt", "**/temp/**"},
	}
	for _, seed := range seeds {
		f.Add(seed.path, seed.excludes)
	}

	f.Fuzz(func(_ *testing.T, path string, excludesStr string) {
		excludes := []string{}
		for ex := range strings.SplitSeq(excludesStr, ",") {
			if trimmed := strings.TrimSpace(ex); trimmed != "" {
				excludes = append(excludes, trimmed)
			}
		}
		_ = ShouldIgnore(path, excludes)
	})
}

// FuzzParseMeCabOutput checks that arbitrary tagger output never panics and
// that every token either has a part of speech or is reported as malformed.
func FuzzParseMeCabOutput(f *testing.F) {
	f.Add("猫\t名詞,普通名詞,一般,*,*,*,ネコ,猫,猫,ネコ,猫,ネコ,和\nEOS\n")
	f.Add("broken\n\n\tnoun\nEOS")
	f.Add("")

	f.Fuzz(func(t *testing.T, raw string) {
		for _, tok := range ParseMeCabOutput([]byte(raw)) {
			if tok.HasEtymology && tok.POS == "" {
				t.Fatalf("etymology without part of speech: %+v", tok)
			}
		}
	})
}
