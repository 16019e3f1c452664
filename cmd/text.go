package cmd

import (
	"github.com/huangsam/yomu/core"
	"github.com/huangsam/yomu/internal/contract"
	"github.com/spf13/cobra"
)

// textCmd scores a single text given inline or on stdin.
var textCmd = &cobra.Command{
	Use:   "text [text]",
	Short: "Score one text and show the factor breakdown.",
	Long: `Score a single text with both formulas and print every factor with its weight.

The text is taken from the arguments, or from stdin when none are given.

Examples:
  yomu text "ゴジラはモスラと一所懸命に打ち合った。"
  cat 羅生門.txt | yomu text --output json`,
	PreRunE: textSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteText(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot score text", err)
		}
	},
}
