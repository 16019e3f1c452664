package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/yomu/schema"
)

// Color variables for console output.
var (
	AdvancedColor     = color.New(color.FgRed, color.Bold) // AdvancedColor marks the hardest texts.
	IntermediateColor = color.New(color.FgYellow)          // IntermediateColor marks mid-range texts.
	ElementaryColor   = color.New(color.FgGreen)           // ElementaryColor marks the easiest texts.
	UnclassifiedColor = color.New(color.FgHiBlack)         // UnclassifiedColor marks scores outside the scale.
	ErrorColor        = color.New(color.FgMagenta)         // ErrorColor marks formulas that could not be computed.
)

// GetColorLevel returns a colored Lee level for console output (table).
// It uses schema.GetLeeLevel to determine the string, and then applies the appropriate color.
func GetColorLevel(score float64) string {
	text := schema.GetLeeLevel(score)

	switch text {
	case schema.LowerAdvanced, schema.UpperAdvanced:
		return AdvancedColor.Sprint(text)
	case schema.LowerIntermediate, schema.UpperIntermediate:
		return IntermediateColor.Sprint(text)
	case schema.LowerElementary, schema.UpperElementary:
		return ElementaryColor.Sprint(text)
	default:
		return UnclassifiedColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path means os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// ShouldIgnore returns true if the given path matches any of the exclude patterns.
// It supports simple glob patterns (using filepath.Match) when the pattern
// contains wildcard characters (*, ?, [ ]). Patterns ending with '/' are treated
// as prefixes. Patterns starting with '.' are treated as suffix (extension) matches.
// A user can provide patterns like "drafts/", "*_old.txt", ".bak".
func ShouldIgnore(path string, excludes []string) bool {
	for _, ex := range excludes {
		ex = strings.TrimSpace(ex)
		if ex == "" {
			continue
		}

		if strings.ContainsAny(ex, "*?[") {
			pat := strings.ReplaceAll(ex, "**", "*")
			if ok, err := filepath.Match(pat, path); err == nil && ok {
				return true
			}
			// Also try matching against the base filename
			if ok, err := filepath.Match(pat, filepath.Base(path)); err == nil && ok {
				return true
			}
			continue
		}

		switch {
		case strings.HasSuffix(ex, "/"):
			if strings.HasPrefix(path, ex) || strings.Contains(path, "/"+ex) {
				return true
			}
		case strings.HasPrefix(ex, "."):
			if strings.HasSuffix(path, ex) {
				return true
			}
		case strings.Contains(path, ex):
			return true
		}
	}
	return false
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for the tag cache.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".yomu_cache.db"
	}
	return filepath.Join(homeDir, ".yomu_cache.db")
}

// GetAnalysisDBFilePath returns the path to the SQLite DB file for analysis storage.
func GetAnalysisDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".yomu_analysis.db"
	}
	return filepath.Join(homeDir, ".yomu_analysis.db")
}

// TruncateTitle truncates a title to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the ellipsis and one character.
func TruncateTitle(title string, maxWidth int) string {
	runes := []rune(title)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return title
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
