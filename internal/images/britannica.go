package images

import (
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/net/html"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png"}

// extractBritannicaImage walks the search result markup and returns the first
// image served from the Britannica CDN.
func extractBritannicaImage(body io.Reader) (string, error) {
	doc, err := html.Parse(body)
	if err != nil {
		return "", eris.Wrap(err, "parsing britannica html")
	}

	var found string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != "" {
			return
		}

		if n.Type == html.ElementNode && n.Data == "img" {
			for _, attr := range n.Attr {
				if attr.Key != "src" && attr.Key != "data-src" {
					continue
				}
				if isBritannicaImage(attr.Val) {
					found = attr.Val
					return
				}
			}
		}

		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return found, nil
}

func isBritannicaImage(src string) bool {
	if !strings.HasPrefix(src, britannicaCDNPrefix) {
		return false
	}

	lowered := strings.ToLower(src)
	if idx := strings.IndexAny(lowered, "?#"); idx >= 0 {
		lowered = lowered[:idx]
	}

	for _, ext := range imageExtensions {
		if strings.HasSuffix(lowered, ext) {
			return true
		}
	}

	return false
}
