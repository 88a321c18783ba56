package cli

import (
	"fmt"

	"github.com/law-makers/selectorfinder/internal/utils/output"
	"github.com/spf13/cobra"
)

// findCmd represents the find command
var findCmd = &cobra.Command{
	Use:   "find <url>",
	Short: "Find selectors on one product page",
	Long: `Loads the page in a fresh browser session, waits for it to render and
guesses a CSS selector for every product-page element.

Roles without a plausible element are reported as "Not found". The command
exits with status 1 if the page cannot be loaded.`,
	Example: `  # Analyse a page with headless Chrome
  selectorfinder find https://shop.example/products/widget

  # Give client-side rendering two extra seconds
  selectorfinder find https://shop.example/products/widget --wait=2s

  # Use go-rod with stealth patches
  selectorfinder find https://shop.example/products/widget --engine=rod

  # Plain HTTP for server-rendered shops
  selectorfinder find https://shop.example/products/widget --engine=static

  # Save the report and show why each selector was chosen
  selectorfinder find https://shop.example/products/widget -o widget.md --explain`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
	registerAnalysisFlags(findCmd)
}

// registerAnalysisFlags adds the per-analysis flags shared by commands that
// analyse a page.
func registerAnalysisFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("explain", false, "Show which heuristic step produced each selector")
	cmd.Flags().StringP("output", "o", "", "File path to save the report (supports .json, .csv, .md)")
}

func runFind(cmd *cobra.Command, args []string) error {
	a := GetAppFromCmd(cmd)
	if a == nil {
		return fmt.Errorf("application not initialized")
	}

	explain, _ := cmd.Flags().GetBool("explain")
	outPath, _ := cmd.Flags().GetString("output")

	r := newRunner(a.Analyzer(explain), cmd.OutOrStdout(), cmd.ErrOrStderr(), a.Config.JSONLog)
	r.explain = explain

	report, err := r.analyze(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if err := r.render(report); err != nil {
		return err
	}

	if outPath != "" {
		if err := output.Save(report, outPath); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		a.Logger.Info().Str("file", outPath).Msg("Report saved")
		fmt.Fprintf(r.errOut, "%s\n", r.errPal.Success("✓ Saved to "+outPath))
	}
	return nil
}
