// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/huangsam/yomu/internal/contract"
	"golang.org/x/term"
)

const (
	minTitleWidth = 12
	maxTitleWidth = 60
)

// GetMaxTableTitleWidth calculates the maximum width for titles in table output
// based on terminal width and table configuration.
func GetMaxTableTitleWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 {
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Rank + Tateisi + Lee + Level with borders/padding
	baseWidth := 45

	if cfg.Detail {
		baseWidth += 40 // Chars + Letters + Sentences + Tokens
	}
	if cfg.Explain {
		baseWidth += 50
	}

	// Table borders and separators
	baseWidth += 15

	// Titles are mostly wide characters, so each rune takes two columns
	available := (termWidth - baseWidth) / 2
	return max(minTitleWidth, min(available, maxTitleWidth))
}
