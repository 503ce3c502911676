// Package ingest prepares raw article files for annotation by extracting
// plain text from HTML sources.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// ExtractText parses HTML and returns its visible text: text nodes joined
// with newlines, skipping script, style, noscript, and iframe subtrees.
// Block-level paragraphs become separate lines so the segmenter sees
// document structure.
func ExtractText(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			case "p", "div", "br", "li", "h1", "h2", "h3", "h4", "h5", "h6", "tr":
				if buf.Len() > 0 && !strings.HasSuffix(buf.String(), "\n") {
					buf.WriteString("\n")
				}
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(buf.String()), nil
}

// ConvertFile extracts the visible text of one HTML file and writes it as a
// .txt document into outDir, named after the source file's base name.
// Returns the path written.
func ConvertFile(htmlPath, outDir string) (string, error) {
	data, err := os.ReadFile(htmlPath)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", htmlPath, err)
	}

	text, err := ExtractText(strings.ToValidUTF8(string(data), "�"))
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", htmlPath, err)
	}

	base := strings.TrimSuffix(filepath.Base(htmlPath), filepath.Ext(htmlPath))
	outPath := filepath.Join(outDir, base+".txt")
	if err := os.WriteFile(outPath, []byte(text+"\n"), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", outPath, err)
	}
	return outPath, nil
}
