package ui

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"unicode/utf8"
)

// Table displays data in a formatted table.
func Table(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(headers, "\t"))

	separator := make([]string, len(headers))
	for i := range separator {
		separator[i] = strings.Repeat("-", len(headers[i]))
	}
	fmt.Fprintln(w, strings.Join(separator, "\t"))

	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	_ = w.Flush()
}

// Box displays text in a box with borders.
func Box(title string, content string) {
	lines := strings.Split(content, "\n")
	maxWidth := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxWidth {
			maxWidth = n
		}
	}
	if maxWidth < 40 {
		maxWidth = 40
	}

	horizontal := strings.Repeat("─", maxWidth+2)
	row := func(s string) {
		pad := maxWidth - utf8.RuneCountInString(s)
		fmt.Printf("│ %s%s │\n", s, strings.Repeat(" ", pad))
	}

	headerColor.Printf("┌%s┐\n", horizontal)
	if title != "" {
		row(title)
		fmt.Printf("├%s┤\n", horizontal)
	}
	for _, line := range lines {
		row(line)
	}
	headerColor.Printf("└%s┘\n", horizontal)
}
