// Package linkcheck verifies that internal references in generated HTML
// pages point at files that exist in the output directory.
package linkcheck

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// BrokenLink identifies one internal reference whose target file is missing.
type BrokenLink struct {
	Page string `json:"page"` // page the reference appears on
	Href string `json:"href"` // the unresolved reference
}

// VerifyDir checks every .html file in dir and returns the internal
// references that do not resolve to an existing file. External URLs,
// fragments, and absolute paths are ignored. Broken links are report
// material, not errors: the only error returned is a failure to read the
// directory itself.
func VerifyDir(dir string) ([]BrokenLink, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var broken []BrokenLink
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		f, err := os.Open(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		refs, perr := extractRefs(f)
		_ = f.Close()
		if perr != nil {
			continue
		}
		for _, ref := range refs {
			if !isInternal(ref) {
				continue
			}
			target := ref
			if i := strings.IndexAny(target, "#?"); i >= 0 {
				target = target[:i]
			}
			if target == "" {
				continue
			}
			if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(target))); err != nil {
				broken = append(broken, BrokenLink{Page: entry.Name(), Href: ref})
			}
		}
	}
	return broken, nil
}

// extractRefs parses HTML and collects href/src attribute values from the
// elements that reference other files.
func extractRefs(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var refs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "a", "link":
				if v := attr(n, "href"); v != "" {
					refs = append(refs, v)
				}
			case "img", "script":
				if v := attr(n, "src"); v != "" {
					refs = append(refs, v)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return refs, nil
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// isInternal reports whether ref is a relative reference into the output
// directory (as opposed to an external URL, an absolute path, or a
// same-page fragment).
func isInternal(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "/") {
		return false
	}
	if strings.Contains(ref, "://") || strings.HasPrefix(ref, "mailto:") || strings.HasPrefix(ref, "data:") {
		return false
	}
	return true
}
