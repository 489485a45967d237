package utils

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// md converts newlines to <br> and keeps raw HTML, matching how the
// site has always rendered experience descriptions. Safe only because
// every input is authored by the site admin.
var md = goldmark.New(
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
		html.WithUnsafe(),
	),
)

// RenderMarkdown converts markdown source to HTML trusted for direct
// embedding. Empty input yields an empty string.
func RenderMarkdown(source string) template.HTML {
	if source == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}
