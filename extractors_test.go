package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPage = `<!DOCTYPE html>
<html>
<head><title>Goats</title><script>var x = 1;</script></head>
<body>
<nav><a href="/">Home</a><a href="/about">About</a></nav>
<article>
  <h1>Goats</h1>
  <p>Mountain goats   climb
     steep slopes.</p>
  <h2>Hooves</h2>
  <p>Split in two.</p>
  <h4>Pads</h4>
  <blockquote><p>Look before you leap.</p></blockquote>
  <ul><li><p>Low center</p></li><li>One foot at a time</li></ul>
</article>
<footer>Copyright</footer>
</body>
</html>`

func TestExtractArticle(t *testing.T) {
	a, err := extractArticle(strings.NewReader(testPage), "goats.html")
	require.NoError(t, err)

	assert.Equal(t, "Goats", a.Title)
	assert.Equal(t, "goats.html", a.Source)
	assert.Equal(t, "Mountain goats climb steep slopes.\n\n"+
		"## Hooves\n\n"+
		"Split in two.\n\n"+
		"### Pads\n\n"+
		"> Look before you leap.\n\n"+
		"- Low center\n"+
		"- One foot at a time\n", a.Markdown)
	assert.NotContains(t, a.Markdown, "Home")
	assert.NotContains(t, a.Markdown, "Copyright")
}

func TestExtractArticleTitleFallbacks(t *testing.T) {
	a, err := extractArticle(strings.NewReader(`<html><body><main><h1>Only heading</h1><p>Text</p></main></body></html>`), "page.html")
	require.NoError(t, err)
	assert.Equal(t, "Only heading", a.Title)
	assert.Equal(t, "Text\n\n", a.Markdown)

	a, err = extractArticle(strings.NewReader(`<html><body><p>Text</p></body></html>`), "bare.html")
	require.NoError(t, err)
	assert.Equal(t, "bare.html", a.Title)
}

func TestFindBestContentByDensity(t *testing.T) {
	page := `<html><body>
<div class="links"><a>a</a> <a>b</a> <a>c</a></div>
<div class="story"><p>` + strings.Repeat("word ", 30) + `</p><p>More prose here.</p></div>
</body></html>`
	a, err := extractArticle(strings.NewReader(page), "density.html")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(a.Markdown, "word word"))
	assert.Contains(t, a.Markdown, "More prose here.")
}

func TestReadMarkdown(t *testing.T) {
	a, err := readMarkdown(strings.NewReader("\n# Title here\n\nBody text.\n"), "notes/post.md")
	require.NoError(t, err)
	assert.Equal(t, "Title here", a.Title)
	assert.Equal(t, "Body text.\n", a.Markdown)

	a, err = readMarkdown(strings.NewReader("No heading.\n# Not a title\n"), "notes/post.md")
	require.NoError(t, err)
	assert.Equal(t, "post.md", a.Title)
	assert.Contains(t, a.Markdown, "# Not a title")
}

func TestLoadArticleSources(t *testing.T) {
	cfg := DefaultConfig()
	ctx := context.Background()

	a, err := loadArticle(ctx, "", cfg)
	require.NoError(t, err)
	assert.Equal(t, sampleArticle(), a)

	dir := t.TempDir()
	md := filepath.Join(dir, "post.md")
	require.NoError(t, os.WriteFile(md, []byte("# From markdown\n\nHello.\n"), 0o644))
	a, err = loadArticle(ctx, md, cfg)
	require.NoError(t, err)
	assert.Equal(t, "From markdown", a.Title)

	page := filepath.Join(dir, "page.HTML")
	require.NoError(t, os.WriteFile(page, []byte(testPage), 0o644))
	a, err = loadArticle(ctx, page, cfg)
	require.NoError(t, err)
	assert.Equal(t, "Goats", a.Title)

	_, err = loadArticle(ctx, filepath.Join(dir, "missing.md"), cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFetchArticle(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(testPage))
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	a, err := loadArticle(context.Background(), srv.URL+"/goats", cfg)
	require.NoError(t, err)
	assert.Equal(t, "Goats", a.Title)
	assert.Equal(t, srv.URL+"/goats", a.Source)
	assert.Equal(t, cfg.UserAgent, gotUA)

	_, err = loadArticle(context.Background(), srv.URL+"/missing", cfg)
	assert.ErrorContains(t, err, "404")
}

func TestLoadArticleCmd(t *testing.T) {
	msg := loadArticleCmd("", DefaultConfig())()
	loaded, ok := msg.(articleLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, sampleSource, loaded.article.Source)

	msg = loadArticleCmd(filepath.Join(t.TempDir(), "missing.md"), DefaultConfig())()
	failed, ok := msg.(errorMsg)
	require.True(t, ok)
	assert.Error(t, failed.err)
}
