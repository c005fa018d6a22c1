package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abrezinsky/scorecards/internal/buildinfo"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorDim    = lipgloss.Color("240")
	colorWhite  = lipgloss.Color("255")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleKey     = lipgloss.NewStyle().Foreground(colorCyan)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)

	styleBanner = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorCyan).
			Foreground(colorYellow).
			Padding(0, 2)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
)

var logo = []string{
	"  ____                                          _      ",
	" / ___|  ___ ___  _ __ ___  ___ __ _ _ __ __| |___  ",
	" \\___ \\ / __/ _ \\| '__/ _ \\/ __/ _` | '__/ _` / __| ",
	"  ___) | (_| (_) | | |  __/ (_| (_| | | | (_| \\__ \\ ",
	" |____/ \\___\\___/|_|  \\___|\\___\\__,_|_|  \\__,_|___/ ",
}

// printBanner writes the startup logo and version
func printBanner(w io.Writer) {
	body := strings.Join(logo, "\n") + "\n" + styleDim.Render("four cards to an A4 page · "+buildinfo.Version)
	fmt.Fprintln(w)
	fmt.Fprintln(w, styleBanner.Render(body))
	fmt.Fprintln(w)
}

// printKeyboardHelp displays all available keyboard shortcuts
func printKeyboardHelp(w io.Writer) {
	fmt.Fprintln(w, styleTitle.Render("  Keyboard shortcuts:"))
	for _, k := range shortcuts {
		fmt.Fprintf(w, "    %s      - %s\n", styleKey.Render(k.key), k.help)
	}
	fmt.Fprintln(w)
}

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleWarning.Render(fmt.Sprintf(format, args...)))
}

func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}
