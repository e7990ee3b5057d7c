// Package markdown turns entry content into HTML for the web and into styled
// text for the terminal.
//
// Raw HTML inside an entry is passed through unchanged unless sanitising is
// enabled. Entries are user-editable, so the default leaves pages open to
// cross-site scripting; enable Options.Sanitize for untrusted editors.
package markdown

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// Options configures a Renderer.
type Options struct {
	// Sanitize scrubs the rendered HTML with a user-generated-content policy.
	Sanitize bool
	// HardWraps renders single newlines as <br>.
	HardWraps bool
	// Extensions names goldmark extensions to enable. Empty means GFM + linkify.
	Extensions []string
}

// Renderer converts Markdown to HTML. It is stateless after construction and
// safe for concurrent use.
type Renderer struct {
	engine goldmark.Markdown
	policy *bluemonday.Policy
}

// New builds a Renderer from opts.
func New(opts Options) *Renderer {
	rendererOptions := []renderer.Option{
		html.WithUnsafe(),
	}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}

	engine := goldmark.New(
		goldmark.WithExtensions(collectExtensions(opts.Extensions)...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(rendererOptions...),
	)

	r := &Renderer{engine: engine}
	if opts.Sanitize {
		r.policy = bluemonday.UGCPolicy()
	}
	return r
}

// Render converts Markdown source to HTML bytes.
func (r *Renderer) Render(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	if r.policy != nil {
		return r.policy.SanitizeBytes(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

// HTML renders content for direct inclusion in an html/template page.
func (r *Renderer) HTML(content string) (template.HTML, error) {
	out, err := r.Render([]byte(content))
	if err != nil {
		return "", err
	}
	return template.HTML(out), nil
}

// Sanitizing reports whether rendered output is scrubbed.
func (r *Renderer) Sanitizing() bool {
	return r.policy != nil
}

// Terminal renders content as styled text for a terminal of the given width.
func Terminal(content string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("terminal renderer: %w", err)
	}
	out, err := tr.Render(content)
	if err != nil {
		return "", fmt.Errorf("terminal render: %w", err)
	}
	return out, nil
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"tasklist":      extension.TaskList,
	"footnote":      extension.Footnote,
}

// collectExtensions resolves extension names; unknown names are ignored.
func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{extension.GFM, extension.Linkify}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, ok := seen[key]; ok {
			continue
		}
		if ext, ok := extensionRegistry[key]; ok {
			extenders = append(extenders, ext)
			seen[key] = struct{}{}
		}
	}
	return extenders
}
