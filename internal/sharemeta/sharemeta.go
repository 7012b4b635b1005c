// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package sharemeta rewrites the share-page HTML shell before it is sent
// to a client. Social crawlers do not execute JavaScript, so the Open
// Graph and Twitter card tags must carry the article's real title,
// summary, and cover in the served markup. A server-rendered noscript
// body is injected as well so the article text is crawlable.
package sharemeta

import (
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strings"

	"polywise/internal/markdown"
	"polywise/internal/models"
)

const (
	defaultTitle   = "Polymarket start engine"
	defaultSummary = "多语言 Polymarket 学习教程"
	defaultCover   = "https://images.unsplash.com/photo-1482192505345-5655af888cc4?auto=format&fit=crop&w=1200&q=80"
	defaultAlt     = "文章封面"
)

// metaPatterns caches one compiled regexp per meta tag. The set of tags is
// fixed, so compilation happens once at init.
var metaPatterns = map[string]*regexp.Regexp{}

func init() {
	for _, m := range metaTags {
		metaPatterns[m.attr+":"+m.prop] = regexp.MustCompile(
			fmt.Sprintf(`(?i)(<meta\s+%s=["']%s["'][^>]*content=["'])[\s\S]*?(["'])`,
				m.attr, regexp.QuoteMeta(m.prop)))
	}
}

type metaTag struct {
	prop string
	attr string // "property" for Open Graph, "name" for Twitter
}

var metaTags = []metaTag{
	{"og:title", "property"},
	{"og:description", "property"},
	{"og:image", "property"},
	{"og:image:secure_url", "property"},
	{"og:image:alt", "property"},
	{"og:image:width", "property"},
	{"og:image:height", "property"},
	{"og:url", "property"},
	{"twitter:title", "name"},
	{"twitter:description", "name"},
	{"twitter:image", "name"},
	{"twitter:image:alt", "name"},
}

// PageData is the request-scoped context needed to absolutize URLs.
type PageData struct {
	Scheme string // "http" or "https", from the incoming request
	Host   string // request Host header
	Path   string // original request URI including the ?id= query
}

// Render rewrites the meta tags of the HTML shell for the given article
// and injects a noscript rendering of its content before </body>.
func Render(shell []byte, article *models.Article, page PageData) []byte {
	out := string(shell)

	cover := absoluteURL(article.Cover, page)
	if cover == "" {
		cover = defaultCover
	}
	summary := article.Summary
	if summary == "" {
		summary = defaultSummary
	}
	title := article.Title
	if title == "" {
		title = defaultTitle
	}
	alt := article.Title
	if alt == "" {
		alt = defaultAlt
	}
	shareURL := absoluteURL(page.Path, page)

	out = replaceMeta(out, "property", "og:title", title)
	out = replaceMeta(out, "property", "og:description", summary)
	out = replaceMeta(out, "property", "og:image", cover)
	out = replaceMeta(out, "property", "og:image:secure_url", cover)
	out = replaceMeta(out, "property", "og:image:alt", alt)
	out = replaceMeta(out, "property", "og:image:width", "1200")
	out = replaceMeta(out, "property", "og:image:height", "630")
	out = replaceMeta(out, "property", "og:url", shareURL)
	out = replaceMeta(out, "name", "twitter:title", title)
	out = replaceMeta(out, "name", "twitter:description", summary)
	out = replaceMeta(out, "name", "twitter:image", cover)
	out = replaceMeta(out, "name", "twitter:image:alt", alt)

	out = injectNoscript(out, article, title)

	return []byte(out)
}

// replaceMeta swaps the content attribute of one meta tag. Empty values
// leave the shell's placeholder untouched.
func replaceMeta(html, attr, prop, value string) string {
	if value == "" {
		return html
	}
	re, ok := metaPatterns[attr+":"+prop]
	if !ok {
		return html
	}
	return re.ReplaceAllString(html, "${1}"+escapeReplacement(value)+"${2}")
}

// escapeReplacement neutralizes $ signs so user content cannot reference
// regexp capture groups.
func escapeReplacement(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}

// injectNoscript renders the article body to HTML and places it inside a
// noscript block just before </body>. Shells without a closing body tag
// are returned unchanged.
func injectNoscript(page string, article *models.Article, title string) string {
	idx := strings.LastIndex(page, "</body>")
	if idx < 0 {
		return page
	}

	var b strings.Builder
	b.WriteString("<noscript><article>")
	b.WriteString("<h1>" + html.EscapeString(title) + "</h1>")
	if article.Summary != "" {
		b.WriteString("<p>" + html.EscapeString(article.Summary) + "</p>")
	}
	if body, err := markdown.ToHTML(article.Content); err == nil {
		b.WriteString(body)
	}
	b.WriteString("</article></noscript>")

	return page[:idx] + b.String() + page[idx:]
}

// absoluteURL resolves a possibly-relative URL against the request origin.
// Invalid or empty inputs yield "" so callers can fall back to defaults.
func absoluteURL(raw string, page PageData) string {
	if raw == "" {
		return ""
	}
	base := &url.URL{Scheme: page.Scheme, Host: page.Host}
	ref, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
