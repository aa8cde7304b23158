package notes

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	lecturePattern = regexp.MustCompile(`(?i)lecture\s+(\d+)`)
	fileNumPattern = regexp.MustCompile(`(?i)lecture\s+(\d+(?:\s*&\s*\d+)?)`)

	nonSlugPattern = regexp.MustCompile(`[^\w\s-]`)
	slugSepPattern = regexp.MustCompile(`[-\s]+`)
)

// Manifest is the ordered set of notes for one build run. Ordering is
// deterministic and stable across runs for identical input so navigation
// links never change spuriously.
type Manifest struct {
	Notes []Note

	byName map[string]int // note Name -> index, for wiki-link resolution
}

// BuildManifest orders the notes, derives their output file names, and builds
// the title→path lookup used for wiki-link resolution. This is pass one of
// the two-pass design: the lookup is complete before any body is transformed.
func BuildManifest(scanned []Note) *Manifest {
	ordered := make([]Note, len(scanned))
	copy(ordered, scanned)
	sortNotes(ordered)

	m := &Manifest{Notes: ordered, byName: make(map[string]int, len(ordered))}
	for i := range m.Notes {
		m.Notes[i].OutputFile = outputFileName(m.Notes[i].Title, m.Notes[i].Name)
		m.byName[m.Notes[i].Name] = i
	}
	return m
}

// sortNotes orders notes the way the site presents them: the course overview
// first, then lectures by number, then everything else by collated title.
func sortNotes(ns []Note) {
	coll := collate.New(language.English, collate.IgnoreCase)

	rank := func(n Note) (int, int) {
		title := strings.ToLower(n.Title)
		if strings.Contains(title, "overview") {
			return 0, 0
		}
		if m := lecturePattern.FindStringSubmatch(n.Title); m != nil {
			num := 0
			fmt.Sscanf(m[1], "%d", &num)
			return 1, num
		}
		return 2, 0
	}

	sort.SliceStable(ns, func(i, j int) bool {
		ri, ki := rank(ns[i])
		rj, kj := rank(ns[j])
		if ri != rj {
			return ri < rj
		}
		if ri == 1 && ki != kj {
			return ki < kj
		}
		return coll.CompareString(ns[i].Title, ns[j].Title) < 0
	})
}

// outputFileName derives the generated file name for a note. Lecture notes
// become lecture-N.html (lecture-9-10.html for combined lectures), the
// overview becomes index.html, and everything else is a slug of the source
// file name.
func outputFileName(title, name string) string {
	if m := fileNumPattern.FindStringSubmatch(title); m != nil {
		num := strings.ReplaceAll(m[1], " ", "")
		num = strings.ReplaceAll(num, "&", "-")
		return "lecture-" + num + ".html"
	}
	if strings.Contains(strings.ToLower(title), "overview") {
		return "index.html"
	}
	return Slugify(name) + ".html"
}

// Slugify converts text to a URL-friendly slug.
func Slugify(text string) string {
	text = strings.ToLower(text)
	text = nonSlugPattern.ReplaceAllString(text, "")
	text = slugSepPattern.ReplaceAllString(text, "-")
	return strings.Trim(text, "-")
}

// Resolve maps a wiki-link target to an output file. Exact note-name match
// wins; otherwise the first case-insensitive match in manifest order is used.
// The second return value is false when no note matches.
func (m *Manifest) Resolve(target string) (string, bool) {
	target = strings.TrimSpace(target)
	if i, ok := m.byName[target]; ok {
		return m.Notes[i].OutputFile, true
	}
	for i := range m.Notes {
		if strings.EqualFold(m.Notes[i].Name, target) {
			return m.Notes[i].OutputFile, true
		}
	}
	return "", false
}

// Len returns the number of notes in the manifest.
func (m *Manifest) Len() int { return len(m.Notes) }
