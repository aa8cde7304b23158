package markdown

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

var wikiLinkPattern = regexp.MustCompile(`\[\[(.*?)\]\]`)

// rewriteWikiLinks converts [[Target]] and [[Target|Display]] references.
// Resolved targets become standard markdown links so Goldmark renders them;
// unresolved targets become a styled dead-link span, tokenized so Goldmark
// does not escape it. Unmatched brackets are left alone.
func (t *Transformer) rewriteWikiLinks(s string, p *protector) string {
	return wikiLinkPattern.ReplaceAllStringFunc(s, func(m string) string {
		inner := m[2 : len(m)-2]

		target := inner
		display := inner
		if idx := strings.Index(inner, "|"); idx >= 0 {
			target = inner[:idx]
			display = inner[idx+1:]
		}
		target = strings.TrimSpace(target)

		if t.opts.Resolver != nil {
			if href, ok := t.opts.Resolver(target); ok {
				return fmt.Sprintf("[%s](%s)", display, href)
			}
		}

		// Dead link: still render the display text, styled so the reader can
		// see the reference is unresolved.
		span := fmt.Sprintf(`<span class="dead-link" title="Missing: %s">%s</span>`,
			html.EscapeString(target), html.EscapeString(display))
		return p.addDeadLink(span)
	})
}
