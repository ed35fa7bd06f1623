package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/buildcost/buildcost-go/core/notify"
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))
	styleSuccess = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46"))
	styleError = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
	styleWarning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226"))
	styleMuted = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	styleKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))
)

// newNotifier adapts session notifications to styled terminal lines.
func newNotifier(w io.Writer) notify.Notifier {
	return notify.Funcs{
		OnSuccess: func(msg string) {
			fmt.Fprintln(w, styleSuccess.Render("✓"), msg)
		},
		OnError: func(msg string) {
			fmt.Fprintln(w, styleError.Render("✗"), msg)
		},
	}
}

func printField(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "%s %v\n", styleKey.Render(key+":"), value)
}
