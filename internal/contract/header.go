package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LogCorpusHeader prints a concise, 2-line header before a corpus run.
// It goes to stderr so piped csv and json output stays clean.
func LogCorpusHeader(cfg *Config, titleCount int) {
	names := make([]string, 0, len(cfg.CorpusPaths))
	for _, p := range cfg.CorpusPaths {
		names = append(names, filepath.Base(p))
	}
	corpus := strings.Join(names, ", ")
	if corpus == "" {
		corpus = "inline"
	}

	if cfg.UseEmojis {
		fmt.Fprintf(os.Stderr, "📚 Corpus: %s (%d titles)\n", corpus, titleCount)
		fmt.Fprintf(os.Stderr, "🔤 Tagger: %s (Lee sentences: %s)\n", cfg.Tagger, cfg.LeeSentenceSource)
		return
	}
	fmt.Fprintf(os.Stderr, "Corpus: %s (%d titles)\n", corpus, titleCount)
	fmt.Fprintf(os.Stderr, "Tagger: %s (Lee sentences: %s)\n", cfg.Tagger, cfg.LeeSentenceSource)
}
