package config

import "github.com/spf13/cobra"

// RegisterFlags registers common CLI flags on the provided root command
func RegisterFlags(cmd *cobra.Command) {
	if cmd == nil {
		return
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress all output except errors")
	cmd.PersistentFlags().Bool("json", false, "Print the report as JSON and log in JSON")
	cmd.PersistentFlags().StringP("engine", "e", "", "Page fetcher: dynamic, rod, or static (default dynamic)")
	cmd.PersistentFlags().String("proxy", "", "HTTP/SOCKS5 proxy, or a comma-separated list to rotate through")
	cmd.PersistentFlags().String("timeout", "", "Hard timeout for loading a page (default 30s)")
	cmd.PersistentFlags().String("wait", "", "Extra settle time after the page loads (e.g., 2s)")
	cmd.PersistentFlags().String("user-agent", "", "Custom user agent string")
	cmd.PersistentFlags().String("chrome-path", "", "Path to the Chrome/Chromium executable")
	cmd.PersistentFlags().Bool("headless", DefaultHeadless, "Run the browser headless")
	cmd.PersistentFlags().StringArrayP("header", "H", []string{}, "Extra request header (e.g., -H \"Cookie: region=eu\")")
	cmd.PersistentFlags().String("config", "", "Path to a YAML configuration file (optional)")
}
