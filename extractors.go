package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery" // HTML parsing and DOM traversal
)

// loadArticle resolves source to an article. An empty source gives the
// built-in sample; http(s) sources are fetched; anything else is a local
// HTML or markdown file.
func loadArticle(ctx context.Context, source string, cfg Config) (article, error) {
	switch {
	case source == "":
		return sampleArticle(), nil
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		return fetchArticle(ctx, source, cfg)
	}

	f, err := os.Open(source)
	if err != nil {
		return article{}, fmt.Errorf("open article: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(source)) {
	case ".html", ".htm":
		return extractArticle(f, source)
	}
	return readMarkdown(f, source)
}

// fetchArticle downloads an HTML page and extracts its readable content
func fetchArticle(ctx context.Context, url string, cfg Config) (article, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return article{}, err
	}

	// Set realistic browser headers to avoid bot detection
	req.Header.Set("User-Agent", cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return article{}, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close() // Always close the response body

	if resp.StatusCode >= 400 {
		return article{}, fmt.Errorf("fetch %s: %s", url, resp.Status)
	}
	return extractArticle(resp.Body, url)
}

// extractArticle parses HTML and converts the main content to markdown
func extractArticle(r io.Reader, source string) (article, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return article{}, fmt.Errorf("parse html: %w", err)
	}

	// Remove unwanted elements that aren't part of main content
	doc.Find("script, style, meta, link, noscript, svg, iframe, nav, footer, aside").Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	var content strings.Builder
	findMainContent(doc).Find("h1, h2, h3, h4, h5, h6, p, li, blockquote").Each(func(i int, s *goquery.Selection) {
		text := strings.Join(strings.Fields(s.Text()), " ")
		if text == "" {
			return
		}

		switch goquery.NodeName(s) {
		case "h1":
			if text == title {
				return // Already shown as the title
			}
			content.WriteString("# " + text + "\n\n")
		case "h2":
			content.WriteString("## " + text + "\n\n")
		case "h3", "h4", "h5", "h6":
			content.WriteString("### " + text + "\n\n")
		case "li":
			content.WriteString("- " + text + "\n")
		case "blockquote":
			content.WriteString("> " + text + "\n\n")
		default: // paragraphs
			if s.ParentsFiltered("blockquote, li").Length() > 0 {
				return // Covered by the enclosing element
			}
			content.WriteString(text + "\n\n")
		}
	})

	if title == "" {
		title = source
	}
	return article{Title: title, Markdown: content.String(), Source: source}, nil
}

// findMainContent uses heuristics to locate the main article content
func findMainContent(doc *goquery.Document) *goquery.Selection {
	contentSelectors := []string{
		"article", "main", "[role='main']",
		".content", ".main-content", ".post-content", ".entry-content",
		"#content", "#main",
	}

	for _, selector := range contentSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			return sel.First()
		}
	}

	// Fallback: use text density analysis to find the best content
	return findBestContentByDensity(doc.Find("body"))
}

// findBestContentByDensity picks the container with the most prose
func findBestContentByDensity(sel *goquery.Selection) *goquery.Selection {
	bestScore := 0
	var bestElement *goquery.Selection

	sel.Find("div, section").Each(func(i int, s *goquery.Selection) {
		words := len(strings.Fields(s.Text()))
		linkCount := s.Find("a").Length()

		// Skip elements that are too short or have too many links (likely navigation)
		if words < 20 || float64(linkCount)/float64(words) > 0.3 {
			return
		}

		score := s.Find("p").Length()*10 + words
		if score > bestScore {
			bestScore = score
			bestElement = s
		}
	})

	if bestElement != nil {
		return bestElement
	}
	return sel
}

// readMarkdown reads a markdown file, lifting a leading "# " line into the title
func readMarkdown(r io.Reader, source string) (article, error) {
	var body strings.Builder
	title := ""

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if title == "" && strings.TrimSpace(body.String()) == "" && strings.HasPrefix(line, "# ") {
			title = strings.TrimSpace(strings.TrimPrefix(line, "# "))
			continue
		}
		body.WriteString(line + "\n")
	}
	if err := scanner.Err(); err != nil {
		return article{}, fmt.Errorf("read markdown: %w", err)
	}

	if title == "" {
		title = filepath.Base(source)
	}
	return article{Title: title, Markdown: strings.TrimLeft(body.String(), "\n"), Source: source}, nil
}
