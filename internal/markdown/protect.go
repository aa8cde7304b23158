package markdown

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

var (
	displayMathPattern = regexp.MustCompile(`(?s)\$\$(.+?)\$\$`)
	inlineMathPattern  = regexp.MustCompile(`\$([^$\n]+?)\$`)
	inlineCodePattern  = regexp.MustCompile("`[^`\n]+`")

	tagLineCache sync.Map // tag -> *regexp.Regexp
)

// tagLinePattern returns the (cached) pattern matching a "Tags:" marker line
// for the given tag, with or without bold markers around the label.
func tagLinePattern(tag string) *regexp.Regexp {
	if re, ok := tagLineCache.Load(tag); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`(?m)^(?:\*\*Tags:\*\*|Tags:)\s*` + regexp.QuoteMeta(tag) + `\s*\n?`)
	tagLineCache.Store(tag, re)
	return re
}

// protector swaps spans that must survive rendering untouched (math, inline
// code, dead-link fallbacks) for placeholder tokens, and restores them after
// Goldmark has produced HTML. Tokens are plain text to Goldmark.
type protector struct {
	math []string // raw math spans, delimiters included
	dead []string // rendered dead-link spans (already HTML)
	code []string // raw inline code spans
}

func newProtector() *protector {
	return &protector{}
}

func mathToken(i int) string { return fmt.Sprintf("«math:%d»", i) }
func deadToken(i int) string { return fmt.Sprintf("«dead:%d»", i) }
func codeToken(i int) string { return fmt.Sprintf("«code:%d»", i) }

// maskInlineCode replaces inline code spans with tokens so tag stripping,
// math extraction, and wiki-link rewriting never see their contents.
func (p *protector) maskInlineCode(s string) string {
	return inlineCodePattern.ReplaceAllStringFunc(s, func(m string) string {
		p.code = append(p.code, m)
		return codeToken(len(p.code) - 1)
	})
}

// unmaskInlineCode puts the raw inline code spans back so Goldmark renders
// them as code.
func (p *protector) unmaskInlineCode(s string) string {
	for i := len(p.code) - 1; i >= 0; i-- {
		s = strings.Replace(s, codeToken(i), p.code[i], 1)
	}
	p.code = p.code[:0]
	return s
}

// extractMath tokenizes display math before inline math so $$...$$ is never
// half-matched as two inline spans.
func (p *protector) extractMath(s string) string {
	s = displayMathPattern.ReplaceAllStringFunc(s, func(m string) string {
		p.math = append(p.math, m)
		return mathToken(len(p.math) - 1)
	})
	return inlineMathPattern.ReplaceAllStringFunc(s, func(m string) string {
		p.math = append(p.math, m)
		return mathToken(len(p.math) - 1)
	})
}

// addDeadLink stores a rendered dead-link span and returns its token.
func (p *protector) addDeadLink(html string) string {
	p.dead = append(p.dead, html)
	return deadToken(len(p.dead) - 1)
}

// restore replaces every token in the rendered HTML. Math spans are restored
// with their original delimiters, entity-escaped only, so the DOM text a
// client-side math renderer sees equals the source span.
func (p *protector) restore(html string) string {
	for i, m := range p.math {
		html = strings.Replace(html, mathToken(i), escapeText(m), 1)
	}
	for i, d := range p.dead {
		html = strings.Replace(html, deadToken(i), d, 1)
	}
	return html
}

// escapeText escapes the characters that would change HTML structure while
// leaving the text content identical after entity decoding.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
