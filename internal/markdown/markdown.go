// Package markdown converts a note body into an HTML fragment.
//
// Rendering is delegated to Goldmark. The non-CommonMark constructs the
// notes rely on (wiki links, math passthrough, tag marker lines) are handled
// as pre- and post-render rewrites with fenced code protected first, so
// nothing inside a code block or inline code span is ever rewritten.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// Options controls how a note body is transformed.
type Options struct {
	// Resolver maps a wiki-link target to an output href. A nil Resolver
	// renders every wiki link as a dead link.
	Resolver func(target string) (string, bool)

	// Tag is the literal tag marker whose "Tags:" lines are stripped from
	// the body (e.g. "#MA104"). Empty disables stripping.
	Tag string

	// Math keeps $...$ and $$...$$ spans intact for client-side rendering.
	Math bool
}

// Transformer converts markdown note bodies into HTML fragments.
type Transformer struct {
	opts Options
	md   goldmark.Markdown
}

// NewTransformer creates a transformer with the given options.
func NewTransformer(opts Options) *Transformer {
	return &Transformer{
		opts: opts,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
		),
	}
}

// Transform converts one note body into an HTML fragment. It never fails on
// malformed input (unmatched brackets, nested emphasis, empty bodies); the
// returned fragment is best effort.
func (t *Transformer) Transform(src []byte) (string, error) {
	text := strings.ReplaceAll(string(src), "\r\n", "\n")

	p := newProtector()
	var rewritten strings.Builder
	for _, seg := range splitFences(text) {
		if seg.fenced {
			rewritten.WriteString(seg.text)
			continue
		}
		s := p.maskInlineCode(seg.text)
		s = t.stripTagLines(s)
		if t.opts.Math {
			s = p.extractMath(s)
		}
		s = t.rewriteWikiLinks(s, p)
		s = p.unmaskInlineCode(s)
		rewritten.WriteString(s)
	}

	var out bytes.Buffer
	if err := t.md.Convert([]byte(rewritten.String()), &out); err != nil {
		return "", err
	}

	return p.restore(out.String()), nil
}

// segment is a run of source text that is either inside a fenced code block
// (left untouched) or ordinary text subject to rewrites.
type segment struct {
	fenced bool
	text   string
}

// splitFences splits source into fenced and non-fenced segments. Fences open
// with ``` or ~~~ and close with the same marker; an unclosed fence extends
// to the end of input.
func splitFences(text string) []segment {
	var segs []segment
	var current strings.Builder
	inFence := false
	marker := ""

	flush := func(fenced bool) {
		if current.Len() > 0 {
			segs = append(segs, segment{fenced: fenced, text: current.String()})
			current.Reset()
		}
	}

	lines := strings.SplitAfter(text, "\n")
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !inFence {
			if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
				flush(false)
				inFence = true
				marker = trimmed[:3]
				current.WriteString(line)
				continue
			}
			current.WriteString(line)
			continue
		}
		current.WriteString(line)
		if strings.HasPrefix(trimmed, marker) {
			inFence = false
			flush(true)
		}
	}
	flush(inFence)
	return segs
}

// stripTagLines removes "Tags: #MA104" marker lines (plain or bold) from the
// body so the tag used for selection does not appear in the rendered page.
func (t *Transformer) stripTagLines(s string) string {
	if t.opts.Tag == "" {
		return s
	}
	return tagLinePattern(t.opts.Tag).ReplaceAllString(s, "")
}
