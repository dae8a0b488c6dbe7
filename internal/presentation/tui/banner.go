package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner followed by the version.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	// Warm gradient (Amber -> Rose)
	lines := []struct {
		text  string
		color string
	}{
		{"   __ _ _   _  ___  ___ ___  ___ _ __ ", "#fbbf24"},
		{"  / _` | | | |/ _ \\/ __/ __|/ _ \\ '__|", "#fb923c"},
		{" | (_| | |_| |  __/\\__ \\__ \\  __/ |   ", "#f87171"},
		{"  \\__, |\\__,_|\\___||___/___/\\___|_|   ", "#f472b6"},
		{"  |___/                               ", "#e879f9"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  v"+strings.TrimSpace(version)).Faint())
	fmt.Fprintln(w)
}
