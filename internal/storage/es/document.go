package es

import (
	"time"

	"github.com/elastic/go-elasticsearch/v8/typedapi/types"

	"github.com/DjordjeVuckovic/video-hunter/internal/domain"
)

// VideoDocument is the indexed form of a video. Only ranking fields are stored;
// full records are hydrated from PostgreSQL.
type VideoDocument struct {
	VideoID      string            `json:"video_id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Tags         []string          `json:"tags"`
	ChannelTitle string            `json:"channel_title"`
	PublishedAt  *time.Time        `json:"published_at,omitempty"`
	Statistics   domain.Statistics `json:"statistics"`
	IndexedAt    time.Time         `json:"indexed_at"`
}

type IndexBuilder struct {
	analyzer string
}

func NewIndexBuilder() *IndexBuilder {
	return &IndexBuilder{
		analyzer: "multilingual_analyzer",
	}
}

func (b *IndexBuilder) mapToESDocument(v domain.Video) VideoDocument {
	tags := v.Tags
	if tags == nil {
		tags = []string{}
	}
	return VideoDocument{
		VideoID:      v.ID,
		Title:        v.Title,
		Description:  v.DescriptionText(),
		Tags:         tags,
		ChannelTitle: v.ChannelName,
		PublishedAt:  v.PublishedAt,
		Statistics:   v.Statistics,
		IndexedAt:    time.Now(),
	}
}

// buildSettings keeps stop words, the corpus is mostly not English.
func (b *IndexBuilder) buildSettings() types.IndexSettings {
	return types.IndexSettings{
		Analysis: &types.IndexSettingsAnalysis{
			Analyzer: map[string]types.Analyzer{
				b.analyzer: types.StandardAnalyzer{
					Stopwords: []string{"_none_"},
				},
			},
		},
	}
}

func (b *IndexBuilder) buildMapping() types.TypeMapping {
	return types.TypeMapping{
		Properties: map[string]types.Property{
			"video_id":      types.NewKeywordProperty(),
			"title":         b.createTextPropertyWithKeyword(b.analyzer),
			"description":   b.createTextProperty(b.analyzer),
			"tags":          b.createTextPropertyWithKeyword(b.analyzer),
			"channel_title": b.createTextPropertyWithKeyword(""),
			"published_at":  types.NewDateProperty(),
			"indexed_at":    types.NewDateProperty(),
			"statistics":    b.createStatisticsProperty(),
		},
	}
}

func (b *IndexBuilder) createStatisticsProperty() types.Property {
	obj := types.NewObjectProperty()
	obj.Properties = map[string]types.Property{
		"view_count":    types.NewLongNumberProperty(),
		"like_count":    types.NewLongNumberProperty(),
		"comment_count": types.NewLongNumberProperty(),
	}
	return obj
}

func (b *IndexBuilder) createTextProperty(analyzer string) types.Property {
	textProp := types.NewTextProperty()
	if analyzer != "" {
		textProp.Analyzer = &analyzer
	}
	return textProp
}

func (b *IndexBuilder) createTextPropertyWithKeyword(analyzer string) types.Property {
	textProp := types.NewTextProperty()
	if analyzer != "" {
		textProp.Analyzer = &analyzer
	}
	textProp.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}
	return textProp
}
