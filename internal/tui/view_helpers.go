// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"unicode/utf8"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	help := "ctrl+c: quit"
	if strings.TrimSpace(hotKeys) != "" {
		help = hotKeys + " │ " + help
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

// renderMessages appends the status and error lines, if any.
func renderMessages(b *strings.Builder, status, errMsg string) {
	if status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("OK: " + status))
		b.WriteString("\n")
	}
	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + errMsg))
		b.WriteString("\n")
	}
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// fitText truncates v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	if max <= 0 || utf8.RuneCountInString(v) <= max {
		return v
	}
	r := []rune(v)
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
