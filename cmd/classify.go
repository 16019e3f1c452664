package cmd

import (
	"github.com/huangsam/yomu/core"
	"github.com/huangsam/yomu/internal/contract"
	"github.com/spf13/cobra"
)

// classifyCmd prints the category of every character of a text.
var classifyCmd = &cobra.Command{
	Use:   "classify [text]",
	Short: "Show the character category of every character.",
	Long: `Classify each character as hiragana, katakana, kanji, alphabet, digit,
punctuation or other, the way the Tateisi segmenter sees it.

Examples:
  yomu classify "ＡＢＣと漢字。"
  echo "ｱｲｳ" | yomu classify --output csv`,
	PreRunE: textSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteClassify(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot classify text", err)
		}
	},
}
