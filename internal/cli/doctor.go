package cli

import (
	"fmt"
	"io"

	"github.com/law-makers/selectorfinder/internal/config"
	"github.com/law-makers/selectorfinder/internal/engine/chrome"
	"github.com/law-makers/selectorfinder/internal/ui"
	"github.com/law-makers/selectorfinder/pkg/models"
	"github.com/spf13/cobra"
)

// doctorCmd represents the doctor command
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that a browser is available for the configured engine",
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	a := GetAppFromCmd(cmd)
	if a == nil {
		return fmt.Errorf("application not initialized")
	}

	out := cmd.OutOrStdout()
	pal := ui.Palette{Enabled: isTerminal(out)}
	if !writeDoctorReport(out, a.Config, chrome.Find(a.Config.ChromePath), pal) {
		return errReported
	}
	return nil
}

// writeDoctorReport prints the effective setup and reports whether the
// configured engine can run.
func writeDoctorReport(w io.Writer, cfg *config.Config, chromePath string, pal ui.Palette) bool {
	version := "not found"
	if chromePath != "" {
		version = chrome.Version(chromePath)
	}

	status := pal.Success("ok")
	ok := true
	needsBrowser := models.EngineName(cfg.Engine) != models.EngineStatic
	if needsBrowser && chromePath == "" {
		status = pal.Error("no Chrome or Chromium found; install one or set --chrome-path")
		ok = false
	}

	fmt.Fprintf(w, "%s\n", pal.Heading("SelectorFinder setup"))
	fmt.Fprintf(w, "  Engine:      %s\n", cfg.Engine)
	fmt.Fprintf(w, "  Chrome:      %s\n", displayPath(chromePath))
	fmt.Fprintf(w, "  Version:     %s\n", version)
	fmt.Fprintf(w, "  Headless:    %t\n", cfg.Headless)
	fmt.Fprintf(w, "  Timeout:     %s\n", cfg.Timeout)
	fmt.Fprintf(w, "  Proxies:     %d\n", len(cfg.Proxies))
	fmt.Fprintf(w, "  Status:      %s\n", status)
	return ok
}

func displayPath(p string) string {
	if p == "" {
		return "-"
	}
	return p
}
