package domain

import "strings"

// FieldWeights assigns a relevance weight to each searchable field of a video.
type FieldWeights struct {
	Title       float64
	Tags        float64
	Description float64
}

// DefaultFieldWeights are the weights shared by the weighted and the full-text strategies.
var DefaultFieldWeights = FieldWeights{
	Title:       3.0,
	Tags:        2.0,
	Description: 1.0,
}

// FieldMatch records which fields of a video contain a term.
type FieldMatch struct {
	Title       bool
	Description bool
	Tags        bool
}

// Any reports whether at least one field matched.
func (m FieldMatch) Any() bool {
	return m.Title || m.Description || m.Tags
}

// Score sums the weights of the matching fields.
func (w FieldWeights) Score(m FieldMatch) float64 {
	var score float64
	if m.Title {
		score += w.Title
	}
	if m.Tags {
		score += w.Tags
	}
	if m.Description {
		score += w.Description
	}
	return score
}

// MatchTerm checks title, description and every tag for a case-insensitive substring.
// An empty term matches every field.
func (v Video) MatchTerm(term string) FieldMatch {
	needle := strings.ToLower(term)
	m := FieldMatch{
		Title:       strings.Contains(strings.ToLower(v.Title), needle),
		Description: v.Description != nil && strings.Contains(strings.ToLower(*v.Description), needle),
	}
	for _, tag := range v.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			m.Tags = true
			break
		}
	}
	return m
}

// ScoredVideo is a video paired with a strategy-local relevance score.
type ScoredVideo struct {
	Video
	Score float64
}
