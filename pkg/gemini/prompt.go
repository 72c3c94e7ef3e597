package gemini

import (
	"strings"
)

// BuildPrompt assembles the rewrite request for one article
func BuildPrompt(guidelines, title, body string) string {
	var b strings.Builder
	b.WriteString(guidelines)
	b.WriteString("\n\nTASK:\n")
	b.WriteString("Rewrite the following article. Keep the same information and structure, ")
	b.WriteString("but improve the tone as described above.\n\n")
	b.WriteString("ORIGINAL ARTICLE:\n")
	b.WriteString("Title: ")
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n\nREWRITTEN ARTICLE (Markdown format):")
	return b.String()
}

// trimReply removes surrounding whitespace and a ```markdown fence wrapping the whole reply
func trimReply(reply string) string {
	reply = strings.TrimSpace(reply)

	lines := strings.Split(reply, "\n")
	if len(lines) < 2 || !strings.HasPrefix(lines[0], "```") || strings.TrimSpace(lines[len(lines)-1]) != "```" {
		return reply
	}
	switch strings.TrimSpace(strings.TrimPrefix(lines[0], "```")) {
	case "", "markdown", "md":
	default:
		return reply
	}

	inner := lines[1 : len(lines)-1]
	for _, l := range inner {
		if strings.HasPrefix(strings.TrimSpace(l), "```") {
			return reply
		}
	}
	return strings.TrimSpace(strings.Join(inner, "\n"))
}
