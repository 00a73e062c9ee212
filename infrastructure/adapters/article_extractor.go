package adapters

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/irademos/ai-news-song/application/ports/outbound"
)

const (
	minParagraphChars   = 60
	minCandidateChars   = 400
	minWholePageChars   = 200
	articleFetchAccept  = "text/html,application/xhtml+xml"
	articleFetcherAgent = "Mozilla/5.0 (compatible; ai-news-song/1.0; +https://github.com/irademos/ai-news-song)"
	noisySelector       = "script, style, noscript, iframe"
	errNoArticleContent = "unable to extract content"
)

type articleExtractor struct {
	fetcher ContentFetcher
	logger  outbound.LoggerPort
}

func NewArticleExtractor(fetcher ContentFetcher, logger outbound.LoggerPort) outbound.ArticleExtractorPort {
	return &articleExtractor{
		fetcher: fetcher,
		logger:  logger,
	}
}

// ExtractArticleContent fetches the page and walks candidate content blocks
// in priority order: <article>, then <main>, then <body>. The first block
// whose cleaned paragraph text is long enough wins; a whole-page second
// pass with a lower bar is the last resort.
func (a *articleExtractor) ExtractArticleContent(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", articleFetcherAgent)
	req.Header.Set("Accept", articleFetchAccept)

	payload, status, err := a.fetcher.FetchContent(req)
	if err != nil {
		return "", err
	}
	if status < 200 || status > 299 {
		return "", fmt.Errorf("article fetch returned status %d", status)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(payload))
	if err != nil {
		return "", err
	}

	for _, candidate := range candidateBlocks(doc) {
		text := joinParagraphs(extractParagraphs(candidate))
		if utf8.RuneCountInString(text) > minCandidateChars {
			return text, nil
		}
	}

	// Second pass: paragraph extraction across the entire document with a
	// lower acceptance bar.
	text := joinParagraphs(extractParagraphs(doc.Selection))
	if utf8.RuneCountInString(text) > minWholePageChars {
		return text, nil
	}

	a.logger.WarnWithFields("No readable content found", map[string]interface{}{
		"url": pageURL,
	})

	return "", fmt.Errorf("%s", errNoArticleContent)
}

// candidateBlocks lists the regions hypothesized to hold the main content,
// most specific first. <body> doubles as the whole-document fallback since
// the HTML parser synthesizes it even for fragment input.
func candidateBlocks(doc *goquery.Document) []*goquery.Selection {
	var candidates []*goquery.Selection
	for _, selector := range []string{"article", "main", "body"} {
		if block := doc.Find(selector).First(); block.Length() > 0 {
			candidates = append(candidates, block)
		}
	}
	if len(candidates) == 0 {
		candidates = append(candidates, doc.Selection)
	}
	return candidates
}

// extractParagraphs pulls qualifying <p> texts out of a candidate block,
// falling back to the block's own text as a single paragraph when no
// paragraph qualifies. Paragraphs are deduplicated case-insensitively,
// first seen wins.
func extractParagraphs(block *goquery.Selection) []string {
	cleaned := block.Clone()
	cleaned.Find(noisySelector).Remove()

	var paragraphs []string
	cleaned.Find("p").Each(func(_ int, p *goquery.Selection) {
		text := normalizeText(p.Text())
		if utf8.RuneCountInString(text) > minParagraphChars {
			paragraphs = append(paragraphs, text)
		}
	})

	if len(paragraphs) == 0 {
		if text := normalizeText(cleaned.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}

	seen := make(map[string]struct{}, len(paragraphs))
	deduped := paragraphs[:0]
	for _, p := range paragraphs {
		key := strings.ToLower(p)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, p)
	}

	return deduped
}

func joinParagraphs(paragraphs []string) string {
	return strings.Join(paragraphs, "\n\n")
}

func normalizeText(raw string) string {
	return strings.TrimSpace(whitespaceRegexp.ReplaceAllString(raw, " "))
}
