package services

import (
	"strings"
	"unicode"

	"github.com/irademos/ai-news-song/domain"
)

// headlineMatchThreshold is the minimum token-overlap score for accepting
// a model-returned headline as one of the original candidates.
const headlineMatchThreshold = 0.35

// TokenSimilarity scores two strings by lowercased token-set overlap:
// intersection size over the larger set size. 1.0 means identical token
// sets, 0.0 means no shared tokens.
func TokenSimilarity(a, b string) float64 {
	tokensA := tokenSet(a)
	tokensB := tokenSet(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	shared := 0
	for token := range tokensA {
		if _, ok := tokensB[token]; ok {
			shared++
		}
	}

	larger := len(tokensA)
	if len(tokensB) > larger {
		larger = len(tokensB)
	}

	return float64(shared) / float64(larger)
}

// BestHeadlineMatch finds the candidate story whose headline best matches
// the given text. Returns the candidate index and its score; index is -1
// when the candidate list is empty.
func BestHeadlineMatch(headline string, candidates []domain.Story) (int, float64) {
	bestIndex := -1
	bestScore := 0.0

	for i, candidate := range candidates {
		score := TokenSimilarity(headline, candidate.Headline)
		if score > bestScore {
			bestScore = score
			bestIndex = i
		}
	}

	return bestIndex, bestScore
}

func tokenSet(text string) map[string]struct{} {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}
