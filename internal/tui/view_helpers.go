package tui

import (
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

func divider(width int) string {
	if width <= 0 || width > len([]rune(uiDivider)) {
		return uiDivider
	}
	return string([]rune(uiDivider)[:width])
}

func renderMessages(messages []string) string {
	if len(messages) == 0 {
		return helpStyle.Render("no messages yet")
	}

	var b strings.Builder
	for i, text := range messages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(messageStyle.Render(text))
	}
	return b.String()
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
