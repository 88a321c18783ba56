// Package ui renders analysis results and progress for the terminal.
package ui

// ANSI color and style constants for CLI output
const (
	ColorReset = "\033[0m"
	ColorBold  = "\033[1m"
	ColorDim   = "\033[2m"

	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorWhite  = "\033[97m"
	ColorRed    = "\033[31m"
)

// Palette applies styles only when enabled, so the same renderer serves
// terminals and plain writers.
type Palette struct {
	Enabled bool
}

func (p Palette) paint(style, s string) string {
	if !p.Enabled || s == "" {
		return s
	}
	return style + s + ColorReset
}

func (p Palette) Bold(s string) string    { return p.paint(ColorBold+ColorWhite, s) }
func (p Palette) Heading(s string) string { return p.paint(ColorBold+ColorCyan, s) }
func (p Palette) Accent(s string) string  { return p.paint(ColorCyan, s) }
func (p Palette) Success(s string) string { return p.paint(ColorGreen, s) }
func (p Palette) Dim(s string) string     { return p.paint(ColorDim, s) }
func (p Palette) Warn(s string) string    { return p.paint(ColorYellow, s) }
func (p Palette) Error(s string) string   { return p.paint(ColorRed, s) }
