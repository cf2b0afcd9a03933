package tfidf

import (
	"errors"
	"math"
	"sort"
)

var ErrEmptyVocabulary = errors.New("tfidf: empty vocabulary")

type Options struct {
	// MaxFeatures keeps only the most frequent terms across the corpus. Zero keeps all.
	MaxFeatures int
	MinN        int
	MaxN        int
}

// DefaultOptions are unigrams and bigrams capped at 1000 terms.
var DefaultOptions = Options{
	MaxFeatures: 1000,
	MinN:        1,
	MaxN:        2,
}

type Option func(*Options)

func WithMaxFeatures(n int) Option {
	return func(o *Options) { o.MaxFeatures = n }
}

func WithNGramRange(minN, maxN int) Option {
	return func(o *Options) {
		o.MinN = minN
		o.MaxN = maxN
	}
}

// Vector is a sparse, l2-normalized term weight vector keyed by vocabulary index.
type Vector map[int]float64

// Dot is the cosine similarity of two normalized vectors.
func (v Vector) Dot(o Vector) float64 {
	if len(o) < len(v) {
		v, o = o, v
	}
	var sum float64
	for i, w := range v {
		sum += w * o[i]
	}
	return sum
}

// Model is a fitted term weighting vector space over a fixed document set.
type Model struct {
	opts  Options
	vocab map[string]int
	idf   []float64
	docs  []Vector
}

// Fit builds the vocabulary and the document vectors. Term frequency is the raw count,
// idf is smoothed as ln((1+n)/(1+df))+1, and every vector is l2-normalized.
func Fit(docs []string, opts ...Option) (*Model, error) {
	o := DefaultOptions
	for _, opt := range opts {
		opt(&o)
	}

	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)
	freq := make(map[string]int)
	for i, doc := range docs {
		c := make(map[string]int)
		for _, term := range NGrams(Tokenize(doc), o.MinN, o.MaxN) {
			c[term]++
		}
		for term, n := range c {
			df[term]++
			freq[term] += n
		}
		counts[i] = c
	}

	if len(df) == 0 {
		return nil, ErrEmptyVocabulary
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	if o.MaxFeatures > 0 && len(terms) > o.MaxFeatures {
		sort.SliceStable(terms, func(i, j int) bool { return freq[terms[i]] > freq[terms[j]] })
		terms = terms[:o.MaxFeatures]
		sort.Strings(terms)
	}

	n := float64(len(docs))
	m := &Model{
		opts:  o,
		vocab: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
		docs:  make([]Vector, len(docs)),
	}
	for i, term := range terms {
		m.vocab[term] = i
		m.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	for i, c := range counts {
		m.docs[i] = m.weigh(c)
	}

	return m, nil
}

// Transform projects text into the fitted space. Terms outside the vocabulary are ignored.
func (m *Model) Transform(text string) Vector {
	c := make(map[string]int)
	for _, term := range NGrams(Tokenize(text), m.opts.MinN, m.opts.MaxN) {
		c[term]++
	}
	return m.weigh(c)
}

func (m *Model) weigh(counts map[string]int) Vector {
	v := make(Vector, len(counts))
	var norm float64
	for term, n := range counts {
		idx, ok := m.vocab[term]
		if !ok {
			continue
		}
		w := float64(n) * m.idf[idx]
		v[idx] = w
		norm += w * w
	}
	if norm == 0 {
		return v
	}
	norm = math.Sqrt(norm)
	for idx := range v {
		v[idx] /= norm
	}
	return v
}

// Len is the number of fitted documents.
func (m *Model) Len() int {
	return len(m.docs)
}

// VocabularySize is the number of retained terms.
func (m *Model) VocabularySize() int {
	return len(m.vocab)
}

type Match struct {
	Index int
	Score float64
}

// Rank scores every document against text and keeps those strictly above threshold,
// ordered by score descending. Equal scores keep document order.
func (m *Model) Rank(text string, threshold float64) []Match {
	q := m.Transform(text)
	if len(q) == 0 {
		return nil
	}

	var matches []Match
	for i, doc := range m.docs {
		if s := q.Dot(doc); s > threshold {
			matches = append(matches, Match{Index: i, Score: s})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	return matches
}
