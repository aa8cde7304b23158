package notes

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	tagPattern = regexp.MustCompile(`#(\w+)`)
	h1Pattern  = regexp.MustCompile(`(?m)^#\s+(.+)$`)

	titleCaser = cases.Title(language.English)
)

// ExtractTags returns the unique tag names found in content, without the
// leading '#', sorted for determinism.
func ExtractTags(content []byte) []string {
	matches := tagPattern.FindAllSubmatch(content, -1)
	seen := make(map[string]struct{}, len(matches))
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tag := string(m[1])
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// HasTag reports whether content carries the given tag. Matching is
// token-based: "#MA104" does not match inside "#MA1040".
func HasTag(content []byte, tag string) bool {
	want := strings.TrimPrefix(tag, "#")
	for _, t := range ExtractTags(content) {
		if t == want {
			return true
		}
	}
	return false
}

// ExtractTitle derives a note title from the first H1 heading, falling back
// to the file name with separators mapped to spaces and title-cased.
func ExtractTitle(content []byte, filename string) string {
	if m := h1Pattern.FindSubmatch(content); m != nil {
		return strings.TrimSpace(string(m[1]))
	}

	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	return titleCaser.String(name)
}
