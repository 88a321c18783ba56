package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/law-makers/selectorfinder/internal/ui"
	"github.com/law-makers/selectorfinder/internal/utils/output"
	"github.com/law-makers/selectorfinder/pkg/models"
)

// pageAnalyzer is the part of analyzer.Analyzer the commands depend on
type pageAnalyzer interface {
	Analyze(ctx context.Context, rawURL string) (*models.Report, error)
}

// runner runs analyses and renders their reports for one command
type runner struct {
	analyzer   pageAnalyzer
	out        io.Writer
	errOut     io.Writer
	pal        ui.Palette
	errPal     ui.Palette
	spinner    bool
	jsonOutput bool
	explain    bool
}

func newRunner(an pageAnalyzer, out, errOut io.Writer, jsonOutput bool) *runner {
	return &runner{
		analyzer:   an,
		out:        out,
		errOut:     errOut,
		pal:        ui.Palette{Enabled: isTerminal(out) && !jsonOutput},
		errPal:     ui.Palette{Enabled: isTerminal(errOut)},
		spinner:    isTerminal(errOut),
		jsonOutput: jsonOutput,
	}
}

// analyze runs one analysis behind the spinner. The spinner is stopped
// before anything else is written.
func (r *runner) analyze(ctx context.Context, rawURL string) (*models.Report, error) {
	sp := ui.StartSpinner(r.errOut, "Analyzing page...", r.spinner)
	report, err := r.analyzer.Analyze(ctx, rawURL)
	sp.Stop()
	return report, err
}

func (r *runner) render(report *models.Report) error {
	if r.jsonOutput {
		return output.WriteJSON(r.out, report)
	}

	fmt.Fprintf(r.out, "\n%s\n", r.pal.Heading("Found Selectors"))
	ui.RenderReport(r.out, report, r.pal)
	if r.explain {
		ui.RenderExplain(r.out, report.Matches, r.pal)
	}
	return nil
}

// reportError prints a failure without ending the session
func (r *runner) reportError(err error) {
	fmt.Fprintln(r.errOut, r.errPal.Error(describeError(err)))
}
