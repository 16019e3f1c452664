package cmd

import (
	"github.com/huangsam/yomu/core"
	"github.com/huangsam/yomu/internal/contract"
	"github.com/spf13/cobra"
)

// scoreCmd scores and ranks every title of a corpus.
var scoreCmd = &cobra.Command{
	Use:   "score [corpus-path...]",
	Short: "Score every text of a corpus and rank the titles.",
	Long: `Score each .txt file under the given directories with both readability formulas.

Every file is one title. Titles are segmented into character runs for the
Tateisi formula and tagged into tokens for the Lee formula. A title that is
too short for one formula still gets the other score.

Examples:
  # Rank a corpus by Lee score
  yomu score ./aozora --sort lee --limit 20

  # Show counts and the top Tateisi factors
  yomu score ./aozora --detail --explain

  # Use MeCab with a custom dictionary
  yomu score ./aozora --tagger mecab --mecab-args "-d /usr/lib/mecab/dic/unidic"

  # Export the ranking to Parquet
  yomu score ./aozora --output parquet --output-file ranking.parquet`,
	PreRunE: corpusSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScore(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot score corpus", err)
		}
	},
}
