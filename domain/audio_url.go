package domain

import (
	"net/url"
	"strings"
)

// deprecatedAudioHosts maps retired audio CDN hostnames to their current
// equivalents. The rewrite is opt-in: applied when a URL is handed to a
// client for immediate playback, not when reconciling status.
var deprecatedAudioHosts = map[string]string{
	"audiopipe.suno.ai": "cdn1.suno.ai",
	"cdn.suno.ai":       "cdn1.suno.ai",
}

// NormalizeSunoAudioUrl leaves already-relative paths untouched and parses
// absolute URLs, optionally rewriting retired CDN hostnames. Input that
// does not parse is echoed back trimmed so a broken upstream value stays
// visible to the caller.
func NormalizeSunoAudioUrl(raw string, rewriteDeprecatedHosts bool) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.HasPrefix(trimmed, "/") {
		return trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return trimmed
	}

	if rewriteDeprecatedHosts {
		if replacement, ok := deprecatedAudioHosts[strings.ToLower(parsed.Hostname())]; ok {
			if port := parsed.Port(); port != "" {
				parsed.Host = replacement + ":" + port
			} else {
				parsed.Host = replacement
			}
		}
	}

	return parsed.String()
}
