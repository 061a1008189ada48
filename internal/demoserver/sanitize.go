package demoserver

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// strippedElements never survive into a preview.
const strippedElements = "script, noscript, style, iframe, embed, object"

// SanitizePreview makes an HTML fragment safe to drop into the preview
// pane: active elements are removed, inline event handlers are stripped
// and links are neutralised so clicking selects instead of navigating.
func SanitizePreview(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("parsing preview html: %w", err)
	}

	doc.Find(strippedElements).Remove()

	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		for _, node := range sel.Nodes {
			node.Attr = dropEventHandlers(node.Attr)
		}
	})

	doc.Find("a[href]").SetAttr("onclick", "return false;")

	out, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("rendering preview html: %w", err)
	}
	return strings.TrimSpace(out), nil
}

func dropEventHandlers(attrs []html.Attribute) []html.Attribute {
	kept := attrs[:0]
	for _, a := range attrs {
		if strings.HasPrefix(strings.ToLower(a.Key), "on") {
			continue
		}
		kept = append(kept, a)
	}
	return kept
}
