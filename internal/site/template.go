package site

import (
	"bytes"
	"embed"
	"html/template"
	"os"
	"strings"

	siterr "github.com/RandomArtist22/MA104-Notes/internal/errors"
)

//go:embed assets/template.html assets/style.css
var builtinAssets embed.FS

// NavItem is one navigation target: a sidebar entry or a prev/next neighbor.
type NavItem struct {
	Title  string
	Href   string
	Active bool
}

// Page is the data interpolated into the page template for one note.
type Page struct {
	SiteTitle   string
	Description string
	Title       string
	Content     template.HTML
	Sidebar     []NavItem
	Prev        *NavItem
	Next        *NavItem
	IsIndex     bool
	HomeHref    string
	Stylesheet  string
	Math        bool
}

// loadTemplate parses the page template from the configured path, or the
// embedded default when none is configured. A template that cannot be read
// or parsed, or that never interpolates the page body, is a fatal
// TemplateError.
func loadTemplate(path string) (*template.Template, error) {
	var src []byte
	var err error
	if path != "" {
		src, err = os.ReadFile(path)
		if err != nil {
			return nil, siterr.TemplateError(err, "unreadable template").WithContext("path", path)
		}
	} else {
		src, err = builtinAssets.ReadFile("assets/template.html")
		if err != nil {
			return nil, siterr.TemplateError(err, "embedded template missing")
		}
	}

	// A page template that never places the body produces empty pages for
	// every note; treat the missing placeholder as a template error up front.
	if !strings.Contains(string(src), ".Content") {
		return nil, siterr.TemplateError(nil, "template does not reference .Content").WithContext("path", path)
	}

	tpl, err := template.New("page").Option("missingkey=error").Parse(string(src))
	if err != nil {
		return nil, siterr.TemplateError(err, "template parse failed").WithContext("path", path)
	}
	return tpl, nil
}

// renderPage executes the template for one page. Execution failures (e.g. a
// placeholder the data does not provide) are fatal TemplateErrors.
func renderPage(tpl *template.Template, page Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, page); err != nil {
		return nil, siterr.TemplateError(err, "template execution failed").WithContext("page", page.Title)
	}
	return buf.Bytes(), nil
}

// toHTML marks an already-rendered fragment as safe for interpolation.
func toHTML(fragment string) template.HTML { return template.HTML(fragment) }

// loadStylesheet returns the stylesheet content from the configured path or
// the embedded Kanagawa theme.
func loadStylesheet(path string) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, siterr.TemplateError(err, "unreadable stylesheet").WithContext("path", path)
		}
		return data, nil
	}
	return builtinAssets.ReadFile("assets/style.css")
}
