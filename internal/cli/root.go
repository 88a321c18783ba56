// internal/cli/root.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/law-makers/selectorfinder/internal/app"
	"github.com/law-makers/selectorfinder/internal/config"
	"github.com/law-makers/selectorfinder/internal/engine"
	"github.com/law-makers/selectorfinder/internal/ui"
)

// shutdownTimeout bounds Application.Close
const shutdownTimeout = 5 * time.Second

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "selectorfinder [url]",
	Short: "Guess CSS selectors for e-commerce product pages",
	Long: `SelectorFinder loads a product page in a headless browser and guesses CSS
selectors for the product name, price, SKU, quantity input, quantity buttons
and add-to-cart button.

Run it without arguments for an interactive prompt, or pass a URL to analyse
a single page.`,
	Example: `  # Interactive prompt
  selectorfinder

  # Analyse one page
  selectorfinder https://shop.example/products/widget`,
	Version:       "0.1.0",
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runFind(cmd, args)
		}
		return runInteractive(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, stderrPalette().Error(describeError(err)))
		}
		return 1
	}
	return 0
}

// errReported marks a failure whose message was already shown to the user
var errReported = errors.New("error already reported")

func init() {
	// Lazily initialize the application before running commands (avoid starting app for -h/help)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if GetAppFromCmd(cmd) != nil {
			return nil
		}

		cfg, err := config.Load(cmd)
		if err != nil {
			return err
		}

		a, err := app.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		SetApp(cmd, a)
		return nil
	}

	// Ensure app is closed after command runs
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		a := GetAppFromCmd(cmd)
		if a == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = a.Close(ctx)
		SetApp(cmd, nil)
	}
}

func init() {
	// Register centralized flags
	config.RegisterFlags(rootCmd)
	registerAnalysisFlags(rootCmd)

	// Customize help and version flag descriptions
	rootCmd.Flags().BoolP("help", "h", false, "Help for SelectorFinder")
	rootCmd.Flags().Bool("version", false, "Version for SelectorFinder")
}

func init() {
	// Disable the default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Set custom help function
	rootCmd.SetHelpFunc(customHelpFunc)
	rootCmd.SetUsageFunc(customUsageFunc)
}

// describeError turns a failure into the message shown to the user
func describeError(err error) string {
	if errors.Is(err, engine.ErrInvalidURL) {
		return "Please enter a valid URL"
	}
	return "Error occurred: " + err.Error()
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func stdoutPalette() ui.Palette {
	return ui.Palette{Enabled: isTerminal(os.Stdout)}
}

func stderrPalette() ui.Palette {
	return ui.Palette{Enabled: isTerminal(os.Stderr)}
}
