package config

import (
	"fmt"
	"os"
	"strings"
)

// FeedSource is one syndication feed the aggregator pulls headlines from.
type FeedSource struct {
	Name string
	URL  string
}

// defaultFeedSources is the built-in source list. FEED_SOURCES overrides it
// with semicolon-separated "Name=URL" pairs.
var defaultFeedSources = []FeedSource{
	{Name: "BBC", URL: "https://feeds.bbci.co.uk/news/rss.xml"},
	{Name: "NPR", URL: "https://feeds.npr.org/1001/rss.xml"},
	{Name: "The Guardian", URL: "https://www.theguardian.com/world/rss"},
	{Name: "Al Jazeera", URL: "https://www.aljazeera.com/xml/rss/all.xml"},
}

type FeedConfig struct {
	Sources   []FeedSource
	UserAgent string
}

func GetFeedConfig() (*FeedConfig, error) {
	sources := defaultFeedSources

	if raw := os.Getenv("FEED_SOURCES"); raw != "" {
		sources = nil
		for _, pair := range strings.Split(raw, ";") {
			pair = strings.TrimSpace(pair)
			if pair == "" {
				continue
			}
			name, url, found := strings.Cut(pair, "=")
			if !found || strings.TrimSpace(name) == "" || strings.TrimSpace(url) == "" {
				return nil, fmt.Errorf("FEED_SOURCES entry %q is not of the form Name=URL", pair)
			}
			sources = append(sources, FeedSource{Name: strings.TrimSpace(name), URL: strings.TrimSpace(url)})
		}
		if len(sources) == 0 {
			return nil, fmt.Errorf("FEED_SOURCES contains no sources")
		}
	}

	userAgent := os.Getenv("FEED_USER_AGENT")
	if userAgent == "" {
		userAgent = "ai-news-song/1.0 (+https://github.com/irademos/ai-news-song)"
	}

	return &FeedConfig{
		Sources:   sources,
		UserAgent: userAgent,
	}, nil
}
