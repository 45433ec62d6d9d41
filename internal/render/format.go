package render

import (
	"html"
	"regexp"
	"strings"
)

var headingMarker = regexp.MustCompile(`^#+\s+`)

var bulletPrefixes = []string{"- ", "* ", "• "}

// FormatAnalysis turns plain analysis text into an HTML fragment. Lines are
// classified independently: heading-like lines (trailing colon or leading #
// markers) become bold paragraphs, bullet lines become list items, everything
// else becomes a paragraph. Consecutive bullet lines are wrapped in a single
// list. Text already containing markup (any '<') is passed through unchanged;
// a literal '<' in plain text therefore skips formatting, which is an
// accepted limitation of the detector.
func FormatAnalysis(text string) string {
	if strings.Contains(text, "<") {
		return text
	}

	var b strings.Builder
	inList := false
	closeList := func() {
		if inList {
			b.WriteString("</ul>")
			inList = false
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if bullet, ok := bulletText(line); ok {
			if !inList {
				b.WriteString("<ul>")
				inList = true
			}
			b.WriteString("<li>")
			b.WriteString(html.EscapeString(bullet))
			b.WriteString("</li>")
			continue
		}

		closeList()
		if strings.HasSuffix(line, ":") || headingMarker.MatchString(line) {
			b.WriteString("<p><strong>")
			b.WriteString(html.EscapeString(headingMarker.ReplaceAllString(line, "")))
			b.WriteString("</strong></p>")
		} else {
			b.WriteString("<p>")
			b.WriteString(html.EscapeString(line))
			b.WriteString("</p>")
		}
	}
	closeList()

	return b.String()
}

// bulletText strips the marker-plus-space prefix from a bullet line
func bulletText(line string) (string, bool) {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(line[len(prefix):]), true
		}
	}
	return "", false
}
