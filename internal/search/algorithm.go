package search

import "strings"

// Algorithm identifies one ranking strategy.
type Algorithm string

const (
	Basic     Algorithm = "basic"
	TFIDF     Algorithm = "tfidf"
	Weighted  Algorithm = "weighted"
	BM25      Algorithm = "bm25"
	Hybrid    Algorithm = "hybrid"
	Semantic  Algorithm = "semantic"
	Sentiment Algorithm = "sentiment"
)

// Algorithms lists every supported algorithm in presentation order.
var Algorithms = []Algorithm{Basic, TFIDF, Weighted, BM25, Hybrid, Semantic, Sentiment}

// ParseAlgorithm maps an identifier to a known algorithm. Unknown identifiers resolve to Basic.
func ParseAlgorithm(id string) Algorithm {
	a := Algorithm(strings.ToLower(strings.TrimSpace(id)))
	for _, known := range Algorithms {
		if a == known {
			return a
		}
	}
	return Basic
}

// Description is a short human readable summary shown by the algorithms endpoint.
func (a Algorithm) Description() string {
	switch a {
	case Basic:
		return "Case-insensitive substring match on title, description and tags, newest first"
	case TFIDF:
		return "TF-IDF cosine similarity over title, description and tags"
	case Weighted:
		return "Substring match scored by field weights (title 3, tags 2, description 1)"
	case BM25:
		return "Boosted multi-field full-text relevance with typo tolerance"
	case Hybrid:
		return "Rank fusion of TF-IDF (0.4) and full-text relevance (0.6)"
	case Semantic:
		return "Similarity restricted to videos with title embeddings"
	case Sentiment:
		return "Substring match re-ranked by comment sentiment"
	default:
		return ""
	}
}
