package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testResolver(targets map[string]string) func(string) (string, bool) {
	return func(target string) (string, bool) {
		href, ok := targets[target]
		return href, ok
	}
}

func TestTransform_BasicConstructs(t *testing.T) {
	tr := NewTransformer(Options{})
	out, err := tr.Transform([]byte("# Heading\n\nSome *emphasis* and **bold**.\n\n- one\n- two\n"))
	require.NoError(t, err)
	require.Contains(t, out, "<h1")
	require.Contains(t, out, "Heading")
	require.Contains(t, out, "<em>emphasis</em>")
	require.Contains(t, out, "<strong>bold</strong>")
	require.Contains(t, out, "<li>one</li>")
}

func TestTransform_EmptyDocument(t *testing.T) {
	tr := NewTransformer(Options{Math: true, Tag: "#MA104"})
	out, err := tr.Transform(nil)
	require.NoError(t, err)
	require.Equal(t, "", strings.TrimSpace(out))
}

func TestTransform_WikiLinkResolved(t *testing.T) {
	tr := NewTransformer(Options{Resolver: testResolver(map[string]string{"B": "b.html"})})
	out, err := tr.Transform([]byte("See [[B]] for details.\n"))
	require.NoError(t, err)
	require.Contains(t, out, `<a href="b.html">B</a>`)
}

func TestTransform_WikiLinkWithDisplayText(t *testing.T) {
	tr := NewTransformer(Options{Resolver: testResolver(map[string]string{"Lecture 2": "lecture-2.html"})})
	out, err := tr.Transform([]byte("Continue with [[Lecture 2|the next lecture]].\n"))
	require.NoError(t, err)
	require.Contains(t, out, `<a href="lecture-2.html">the next lecture</a>`)
}

func TestTransform_WikiLinkUnresolved(t *testing.T) {
	tr := NewTransformer(Options{Resolver: testResolver(nil)})
	out, err := tr.Transform([]byte("See [[Ghost Note]].\n"))
	require.NoError(t, err)
	require.Contains(t, out, `<span class="dead-link" title="Missing: Ghost Note">Ghost Note</span>`)
	require.NotContains(t, out, "[[")
}

func TestTransform_UnmatchedBracketsDoNotFail(t *testing.T) {
	tr := NewTransformer(Options{Resolver: testResolver(nil)})
	out, err := tr.Transform([]byte("An unmatched [[bracket pair.\n"))
	require.NoError(t, err)
	require.Contains(t, out, "[[bracket")
}

func TestTransform_MathPassthrough(t *testing.T) {
	tr := NewTransformer(Options{Math: true})
	out, err := tr.Transform([]byte("Inline $a_1 + b_2$ and display:\n\n$$\\frac{dy}{dx} = y$$\n"))
	require.NoError(t, err)
	require.Contains(t, out, "$a_1 + b_2$")
	require.Contains(t, out, "$$\\frac{dy}{dx} = y$$")
	// Underscores inside math must not become emphasis.
	require.NotContains(t, out, "<em>1 + b</em>")
}

func TestTransform_MathEscapesEntities(t *testing.T) {
	tr := NewTransformer(Options{Math: true})
	out, err := tr.Transform([]byte("Bound: $x < y$\n"))
	require.NoError(t, err)
	require.Contains(t, out, "$x &lt; y$")
}

func TestTransform_FencedCodeIsProtected(t *testing.T) {
	src := "```python\nprint(\"[[Not A Link]]\")\ncost = 3  # $x$\n```\n"
	tr := NewTransformer(Options{Math: true, Resolver: testResolver(map[string]string{"Not A Link": "x.html"})})
	out, err := tr.Transform([]byte(src))
	require.NoError(t, err)
	require.Contains(t, out, "[[Not A Link]]")
	require.NotContains(t, out, "<a href")
	require.Contains(t, out, `<pre><code class="language-python">`)
}

func TestTransform_InlineCodeIsProtected(t *testing.T) {
	tr := NewTransformer(Options{Math: true, Resolver: testResolver(map[string]string{"B": "b.html"})})
	out, err := tr.Transform([]byte("Use `[[B]]` syntax, not [[B]] itself.\n"))
	require.NoError(t, err)
	require.Contains(t, out, "<code>[[B]]</code>")
	require.Contains(t, out, `<a href="b.html">B</a>`)
}

func TestTransform_StripsTagLines(t *testing.T) {
	tr := NewTransformer(Options{Tag: "#MA104"})
	out, err := tr.Transform([]byte("# Title\n\n**Tags:** #MA104\n\nBody text.\n"))
	require.NoError(t, err)
	require.NotContains(t, out, "MA104")
	require.Contains(t, out, "Body text.")

	out, err = tr.Transform([]byte("Tags: #MA104\nBody.\n"))
	require.NoError(t, err)
	require.NotContains(t, out, "MA104")
}

func TestTransform_UnclosedFence(t *testing.T) {
	tr := NewTransformer(Options{Math: true})
	out, err := tr.Transform([]byte("```\nunterminated [[x]]\n"))
	require.NoError(t, err)
	require.Contains(t, out, "unterminated [[x]]")
}

func TestTransform_GFMTable(t *testing.T) {
	tr := NewTransformer(Options{})
	out, err := tr.Transform([]byte("| a | b |\n|---|---|\n| 1 | 2 |\n"))
	require.NoError(t, err)
	require.Contains(t, out, "<table>")
	require.Contains(t, out, "<td>1</td>")
}
