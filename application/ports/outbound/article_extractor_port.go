package outbound

import "context"

// ArticleExtractorPort fetches one web page and extracts its readable body
// text. Extraction is best effort; when no candidate region of the page
// yields enough text the call fails.
type ArticleExtractorPort interface {
	ExtractArticleContent(ctx context.Context, pageURL string) (string, error)
}
