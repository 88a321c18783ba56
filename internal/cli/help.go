package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/law-makers/selectorfinder/internal/ui"
	"github.com/spf13/cobra"
)

// minFlagWidth is the narrowest flag column in help output
const minFlagWidth = 28

// customHelpFunc writes colorized help to the command's output. Colors are
// dropped when the output is not a terminal.
func customHelpFunc(cmd *cobra.Command, args []string) {
	w := cmd.OutOrStdout()
	pal := ui.Palette{Enabled: isTerminal(w)}

	fmt.Fprintf(w, "\n%s\n", pal.Heading(strings.ToUpper(cmd.Name())))
	if cmd.Short != "" {
		fmt.Fprintf(w, "%s\n", cmd.Short)
	}
	if cmd.Long != "" && cmd.Long != cmd.Short {
		fmt.Fprintf(w, "\n%s\n", wrapText(cmd.Long, 80))
	}

	writeUsageLines(w, cmd, pal)

	if cmd.HasExample() {
		fmt.Fprintf(w, "\n%s\n", pal.Bold("Examples"))
		lastWasCommand := false
		for _, example := range strings.Split(cmd.Example, "\n") {
			trimmed := strings.TrimSpace(example)
			if trimmed == "" {
				continue
			}
			if strings.HasPrefix(trimmed, "#") {
				if lastWasCommand {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "  %s\n", pal.Dim(trimmed))
				lastWasCommand = false
			} else {
				fmt.Fprintf(w, "  %s\n", pal.Success("$ "+trimmed))
				lastWasCommand = true
			}
		}
	}

	writeCommands(w, cmd, pal)

	if cmd.HasAvailableLocalFlags() {
		fmt.Fprintf(w, "\n%s\n", pal.Bold("Flags"))
		writeFlags(w, cmd.LocalFlags().FlagUsages(), pal)
	}
	if cmd.HasAvailableInheritedFlags() {
		fmt.Fprintf(w, "\n%s\n", pal.Bold("Global Flags"))
		writeFlags(w, cmd.InheritedFlags().FlagUsages(), pal)
	}

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(w, "\n%s%s%s %s%s\n",
			pal.Dim("Use \""),
			pal.Accent(cmd.CommandPath()),
			pal.Warn(" <command>"),
			pal.Success("--help"),
			pal.Dim("\" for more information about a command."))
	}
	fmt.Fprintln(w)
}

// customUsageFunc writes colorized usage to the command's error output
func customUsageFunc(cmd *cobra.Command) error {
	w := cmd.ErrOrStderr()
	pal := ui.Palette{Enabled: isTerminal(w)}

	writeUsageLines(w, cmd, pal)
	writeCommands(w, cmd, pal)

	if cmd.HasAvailableLocalFlags() {
		fmt.Fprintf(w, "\n%s\n", pal.Bold("Flags"))
		writeFlags(w, cmd.LocalFlags().FlagUsages(), pal)
	}

	fmt.Fprintf(w, "\n%s%s %s%s\n",
		pal.Dim("Use \""),
		pal.Accent(cmd.CommandPath()),
		pal.Success("--help"),
		pal.Dim("\" for more information."))
	return nil
}

func writeUsageLines(w io.Writer, cmd *cobra.Command, pal ui.Palette) {
	fmt.Fprintf(w, "\n%s\n", pal.Bold("Usage"))
	if cmd.Runnable() {
		fmt.Fprintf(w, "  %s\n", pal.Accent(cmd.UseLine()))
	}
	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(w, "  %s %s %s\n",
			pal.Accent(cmd.CommandPath()),
			pal.Warn("<command>"),
			pal.Dim("[flags]"))
	}
}

// writeCommands lists the available subcommands, help excluded
func writeCommands(w io.Writer, cmd *cobra.Command, pal ui.Palette) {
	if !cmd.HasAvailableSubCommands() {
		return
	}
	fmt.Fprintf(w, "\n%s\n", pal.Bold("Commands"))

	maxLen := 0
	var available []*cobra.Command
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() && c.Name() != "help" {
			available = append(available, c)
			maxLen = max(maxLen, len(c.Name()))
		}
	}
	for _, c := range available {
		padding := strings.Repeat(" ", maxLen-len(c.Name())+2)
		fmt.Fprintf(w, "  %s%s%s\n", pal.Accent(c.Name()), padding, pal.Dim(c.Short))
	}
}

// writeFlags aligns pflag usage lines into a flag column and a
// description column.
func writeFlags(w io.Writer, flagUsages string, pal ui.Palette) {
	lines := strings.Split(flagUsages, "\n")

	width := minFlagWidth
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		if strings.HasPrefix(trimmed, "-") {
			flagPart := strings.TrimSpace(strings.SplitN(trimmed, "  ", 2)[0])
			width = max(width, len(flagPart))
		}
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		trimmed := strings.TrimLeft(line, " ")

		if !strings.HasPrefix(trimmed, "-") {
			// continuation of the previous description
			fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", width+4), pal.Dim(trimmed))
			continue
		}
		parts := strings.SplitN(trimmed, "  ", 2)
		if len(parts) != 2 {
			fmt.Fprintf(w, "  %s\n", pal.Success(trimmed))
			continue
		}
		flagPart := strings.TrimSpace(parts[0])
		descPart := strings.TrimSpace(parts[1])
		padding := strings.Repeat(" ", width-len(flagPart)+2)
		fmt.Fprintf(w, "  %s%s%s\n", pal.Success(flagPart), padding, pal.Dim(descPart))
	}
}

// wrapText wraps text at the specified width while preserving paragraphs
func wrapText(text string, width int) string {
	// Split by double newlines to preserve paragraphs
	paragraphs := strings.Split(text, "\n\n")
	var wrappedParagraphs []string

	for _, para := range paragraphs {
		// Split by single newlines to preserve intentional line breaks
		lines := strings.Split(para, "\n")
		var wrappedLines []string

		for _, line := range lines {
			trimmedLine := strings.TrimSpace(line)
			if trimmedLine == "" {
				continue
			}

			// Check if this is a bullet point or list item
			if strings.HasPrefix(trimmedLine, "-") || strings.HasPrefix(trimmedLine, "•") || strings.HasPrefix(trimmedLine, "*") {
				// Don't wrap bullet points with previous content
				wrappedLines = append(wrappedLines, trimmedLine)
				continue
			}

			// Wrap regular lines
			words := strings.Fields(trimmedLine)
			if len(words) == 0 {
				continue
			}

			var currentLine strings.Builder
			for _, word := range words {
				if currentLine.Len() == 0 {
					currentLine.WriteString(word)
				} else if currentLine.Len()+1+len(word) <= width {
					currentLine.WriteString(" ")
					currentLine.WriteString(word)
				} else {
					wrappedLines = append(wrappedLines, currentLine.String())
					currentLine.Reset()
					currentLine.WriteString(word)
				}
			}

			if currentLine.Len() > 0 {
				wrappedLines = append(wrappedLines, currentLine.String())
			}
		}

		if len(wrappedLines) > 0 {
			wrappedParagraphs = append(wrappedParagraphs, strings.Join(wrappedLines, "\n"))
		}
	}

	return strings.Join(wrappedParagraphs, "\n\n")
}
