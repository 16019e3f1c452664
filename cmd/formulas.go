package cmd

import (
	"github.com/huangsam/yomu/core"
	"github.com/huangsam/yomu/internal/contract"
	"github.com/spf13/cobra"
)

// formulasCmd displays the weight tables of both formulas.
var formulasCmd = &cobra.Command{
	Use:   "formulas",
	Short: "Display the factors and weights of both readability formulas",
	Long: `Show the linear models behind the Tateisi and Lee scores.

No text is scored - this is purely informational.

Examples:
  yomu formulas
  yomu formulas --output json`,
	PreRunE: plainSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFormulas(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot display formulas", err)
		}
	},
}
