// Package site assembles transformed notes into themed HTML pages and
// writes them to the output directory.
package site

import (
	"log/slog"
	"strings"
	"time"

	"github.com/RandomArtist22/MA104-Notes/internal/config"
	siterr "github.com/RandomArtist22/MA104-Notes/internal/errors"
	"github.com/RandomArtist22/MA104-Notes/internal/linkcheck"
	"github.com/RandomArtist22/MA104-Notes/internal/logfields"
	"github.com/RandomArtist22/MA104-Notes/internal/markdown"
	"github.com/RandomArtist22/MA104-Notes/internal/metrics"
	"github.com/RandomArtist22/MA104-Notes/internal/notes"
)

// StylesheetName is the file name the theme stylesheet is written under.
const StylesheetName = "style.css"

// Generator assembles and writes the site for one build run.
type Generator struct {
	cfg       *config.Config
	outputDir string
	recorder  metrics.Recorder
}

// NewGenerator creates a generator writing into outputDir.
func NewGenerator(cfg *config.Config, outputDir string) *Generator {
	return &Generator{cfg: cfg, outputDir: outputDir, recorder: metrics.NoopRecorder{}}
}

// SetRecorder injects a metrics recorder (optional). Returns the generator for chaining.
func (g *Generator) SetRecorder(r metrics.Recorder) *Generator {
	if r == nil {
		g.recorder = metrics.NoopRecorder{}
		return g
	}
	g.recorder = r
	return g
}

// Build renders every note in the manifest and writes the site. Template and
// output-directory failures are fatal; individual page write failures are
// collected in the report and the remaining pages are still written.
func (g *Generator) Build(m *notes.Manifest) (*BuildReport, error) {
	start := time.Now()
	report := newBuildReport(m.Len())
	g.recorder.SetNotesDiscovered(m.Len())

	hash, err := notes.ComputeManifestHash(m)
	if err != nil {
		return nil, siterr.Wrap(err, siterr.CategoryInternal, siterr.SeverityFatal, "manifest hash failed")
	}
	report.ManifestHash = hash

	tpl, err := loadTemplate(g.cfg.Site.TemplatePath)
	if err != nil {
		g.finish(report, start, false)
		return report, err
	}
	stylesheet, err := loadStylesheet(g.cfg.Site.StylesheetPath)
	if err != nil {
		g.finish(report, start, false)
		return report, err
	}

	transformer := markdown.NewTransformer(markdown.Options{
		Resolver: m.Resolve,
		Tag:      g.cfg.Source.Tag,
		Math:     g.cfg.Site.Math,
	})

	sidebar := g.sidebarItems(m)

	if err := prepareOutputDir(g.outputDir, g.cfg.Output.Clean); err != nil {
		g.finish(report, start, false)
		return report, err
	}

	for i := range m.Notes {
		note := &m.Notes[i]
		slog.Info("Processing note", logfields.Note(note.Name), logfields.File(note.OutputFile))

		fragment, err := transformer.Transform(note.Content)
		if err != nil {
			g.finish(report, start, false)
			return report, siterr.Wrap(err, siterr.CategoryInternal, siterr.SeverityFatal, "markdown transform failed").
				WithContext("note", note.Name)
		}
		note.HTML = fragment
		report.RenderedPages++

		page := g.pageFor(m, i, fragment, sidebar)
		rendered, err := renderPage(tpl, page)
		if err != nil {
			// Fatal: partial output stays on disk for inspection, the run
			// reports non-zero.
			g.finish(report, start, false)
			return report, err
		}

		if err := writePage(g.outputDir, note.OutputFile, rendered); err != nil {
			slog.Error("Page write failed", logfields.File(note.OutputFile), logfields.Error(err))
			report.WriteFailures = append(report.WriteFailures, WriteFailure{Path: note.OutputFile, Error: err.Error()})
			continue
		}
		report.WrittenPages++
	}

	if err := writePage(g.outputDir, StylesheetName, stylesheet); err != nil {
		slog.Error("Stylesheet write failed", logfields.Error(err))
		report.WriteFailures = append(report.WriteFailures, WriteFailure{Path: StylesheetName, Error: err.Error()})
	}

	if broken, err := linkcheck.VerifyDir(g.outputDir); err != nil {
		slog.Warn("Link verification skipped", logfields.Error(err))
	} else {
		report.BrokenLinks = broken
		for _, b := range broken {
			slog.Warn("Broken internal link", logfields.File(b.Page), slog.String("href", b.Href))
		}
	}

	g.finish(report, start, !report.Failed())
	slog.Info("Build complete",
		logfields.Output(g.outputDir),
		logfields.Count(report.WrittenPages),
		slog.Int("failures", len(report.WriteFailures)),
		logfields.DurationMS(float64(report.Duration.Milliseconds())))
	return report, nil
}

// finish stamps the report duration and records metrics.
func (g *Generator) finish(report *BuildReport, start time.Time, success bool) {
	report.Duration = time.Since(start)
	g.recorder.ObserveBuildDuration(report.Duration)
	g.recorder.AddPagesRendered(report.RenderedPages)
	g.recorder.AddWriteFailures(len(report.WriteFailures))
	if success {
		g.recorder.IncBuildOutcome(metrics.OutcomeSuccess)
	} else {
		g.recorder.IncBuildOutcome(metrics.OutcomeFailed)
	}
}

// sidebarItems lists every note except the index page, in manifest order.
func (g *Generator) sidebarItems(m *notes.Manifest) []NavItem {
	items := make([]NavItem, 0, m.Len())
	for _, n := range m.Notes {
		if n.OutputFile == "index.html" {
			continue
		}
		items = append(items, NavItem{Title: g.navTitle(n.Title), Href: n.OutputFile})
	}
	return items
}

// navTitle strips the configured course prefix from a title for navigation.
func (g *Generator) navTitle(title string) string {
	if p := g.cfg.Site.TitlePrefixStrip; p != "" {
		title = strings.TrimPrefix(title, p)
	}
	return strings.TrimSpace(title)
}

// pageFor builds the template data for the i-th note. Previous/next
// neighbors are ordinal-adjacent in manifest order; the first note has no
// previous and the last has no next.
func (g *Generator) pageFor(m *notes.Manifest, i int, fragment string, sidebar []NavItem) Page {
	note := m.Notes[i]

	items := make([]NavItem, len(sidebar))
	copy(items, sidebar)
	for j := range items {
		items[j].Active = items[j].Href == note.OutputFile
	}

	var prev, next *NavItem
	if i > 0 {
		p := m.Notes[i-1]
		prev = &NavItem{Title: g.navTitle(p.Title), Href: p.OutputFile}
	}
	if i < m.Len()-1 {
		n := m.Notes[i+1]
		next = &NavItem{Title: g.navTitle(n.Title), Href: n.OutputFile}
	}

	return Page{
		SiteTitle:   g.cfg.Site.Title,
		Description: g.cfg.Site.Description,
		Title:       note.Title,
		Content:     toHTML(fragment),
		Sidebar:     items,
		Prev:        prev,
		Next:        next,
		IsIndex:     note.OutputFile == "index.html",
		HomeHref:    m.Notes[0].OutputFile,
		Stylesheet:  StylesheetName,
		Math:        g.cfg.Site.Math,
	}
}
