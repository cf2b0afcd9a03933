package tfidf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "ascii", in: "Hello, World! a b", want: []string{"hello", "world"}},
		{name: "hangul", in: "수원 화성행궁 야경", want: []string{"수원", "화성행궁", "야경"}},
		{name: "digits and underscore", in: "top_10 2024 x1", want: []string{"top_10", "2024", "x1"}},
		{name: "single runes dropped", in: "가 나 다라", want: []string{"다라"}},
		{name: "empty", in: "  ...  ", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestNGrams(t *testing.T) {
	got := NGrams([]string{"a1", "b2", "c3"}, 1, 2)
	assert.Equal(t, []string{"a1", "b2", "c3", "a1 b2", "b2 c3"}, got)
}

func TestFit_EmptyVocabulary(t *testing.T) {
	_, err := Fit(nil)
	assert.ErrorIs(t, err, ErrEmptyVocabulary)

	_, err = Fit([]string{"a", "!", ""})
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
}

func TestFit_SmoothIDF(t *testing.T) {
	m, err := Fit([]string{"alpha beta", "alpha gamma"}, WithNGramRange(1, 1))
	require.NoError(t, err)

	// alpha appears everywhere, beta in one of two documents.
	assert.InDelta(t, 1.0, m.idf[m.vocab["alpha"]], 1e-9)
	assert.InDelta(t, math.Log(3.0/2.0)+1, m.idf[m.vocab["beta"]], 1e-9)
}

func TestFit_VectorsAreNormalized(t *testing.T) {
	m, err := Fit([]string{"river night view river", "city night", "festival"})
	require.NoError(t, err)

	for i := 0; i < m.Len(); i++ {
		assert.InDelta(t, 1.0, m.docs[i].Dot(m.docs[i]), 1e-9)
	}
}

func TestFit_MaxFeaturesKeepsMostFrequent(t *testing.T) {
	m, err := Fit([]string{"aa aa aa bb bb cc", "aa dd"}, WithMaxFeatures(2), WithNGramRange(1, 1))
	require.NoError(t, err)

	assert.Equal(t, 2, m.VocabularySize())
	assert.Contains(t, m.vocab, "aa")
	assert.Contains(t, m.vocab, "bb")
}

func TestRank(t *testing.T) {
	docs := []string{
		"수원 화성행궁 야경",
		"서울 맛집 투어",
		"화성행궁 축제 현장",
		"화성행궁 축제 현장",
	}
	m, err := Fit(docs)
	require.NoError(t, err)

	got := m.Rank("화성행궁 축제", 0)
	require.Len(t, got, 3)
	assert.Equal(t, 2, got[0].Index)
	assert.Equal(t, 3, got[1].Index, "equal scores keep document order")
	assert.Equal(t, 0, got[2].Index)
	assert.InDelta(t, got[0].Score, got[1].Score, 1e-12)
	assert.Greater(t, got[1].Score, got[2].Score)
}

func TestRank_Threshold(t *testing.T) {
	m, err := Fit([]string{"apple banana cherry durian", "apple"})
	require.NoError(t, err)

	all := m.Rank("apple", 0)
	assert.Len(t, all, 2)

	strict := m.Rank("apple", 0.99)
	require.Len(t, strict, 1)
	assert.Equal(t, 1, strict[0].Index)
}

func TestRank_UnknownQuery(t *testing.T) {
	m, err := Fit([]string{"apple banana"})
	require.NoError(t, err)

	assert.Empty(t, m.Rank("zebra", 0))
}
