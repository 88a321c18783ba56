package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

const prompt = "Enter product page URL: "

// interactiveCmd represents the interactive command
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Prompt for product page URLs and analyse each one",
	Long: `Starts a prompt that analyses every URL entered. Each analysis runs when
Enter is pressed and uses its own browser session. Errors are shown and the
prompt continues.

Type quit or exit, or press Ctrl+D, to leave.`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
	interactiveCmd.Flags().Bool("explain", false, "Show which heuristic step produced each selector")
}

func runInteractive(cmd *cobra.Command, args []string) error {
	a := GetAppFromCmd(cmd)
	if a == nil {
		return fmt.Errorf("application not initialized")
	}

	explain, _ := cmd.Flags().GetBool("explain")
	r := newRunner(a.Analyzer(explain), cmd.OutOrStdout(), cmd.ErrOrStderr(), a.Config.JSONLog)
	r.explain = explain

	a.Logger.Debug().Str("engine", a.Fetcher.Name()).Msg("Starting interactive session")
	return r.session(cmd.Context(), cmd.InOrStdin())
}

// session reads one URL per line from in until quit, EOF, or ctx is done.
// Analysis failures are reported and never end the session.
func (r *runner) session(ctx context.Context, in io.Reader) error {
	lines := readLines(ctx, in)

	// in JSON mode stdout carries only reports
	promptOut := r.out
	if r.jsonOutput {
		promptOut = r.errOut
	}

	for {
		fmt.Fprint(promptOut, r.pal.Bold(prompt))

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(promptOut)
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(promptOut)
				return nil
			}
			line = strings.TrimSpace(l)
		}

		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			return nil
		}

		report, err := r.analyze(ctx, line)
		if err != nil {
			r.reportError(err)
			continue
		}
		if err := r.render(report); err != nil {
			return err
		}
		fmt.Fprintln(promptOut)
	}
}

// readLines delivers lines from in until EOF. A blocked read does not stop
// the session from ending when ctx is cancelled.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil && err != io.EOF {
			fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		}
	}()
	return lines
}
