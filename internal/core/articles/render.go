package articles

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)
	sanitizer = bluemonday.UGCPolicy()
)

func init() {
	sanitizer.AllowImages()
	sanitizer.AddTargetBlankToFullyQualifiedLinks(true)
	sanitizer.RequireNoReferrerOnLinks(true)
}

// RenderContent converts article markdown to sanitized HTML. On a
// conversion failure the raw source is sanitized and returned instead.
func RenderContent(source string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return sanitizer.Sanitize(source)
	}
	return string(sanitizer.SanitizeBytes(buf.Bytes()))
}
