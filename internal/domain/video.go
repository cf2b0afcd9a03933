package domain

import (
	"strings"
	"time"
)

// Statistics holds the public counters of a video as reported by the platform.
type Statistics struct {
	ViewCount    int64 `json:"view_count" yaml:"view_count"`
	LikeCount    int64 `json:"like_count" yaml:"like_count"`
	CommentCount int64 `json:"comment_count" yaml:"comment_count"`
}

// Video is a read-only snapshot of one crawled video record.
// The ID is assigned by the video platform.
type Video struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description *string    `json:"description" yaml:"description"`
	PublishedAt *time.Time `json:"published_at" yaml:"published_at"`
	ChannelName string     `json:"channel_name" yaml:"channel_name"`
	Statistics  `yaml:",inline"`
	Tags        []string       `json:"tags" yaml:"tags"`
	Thumbnails  map[string]any `json:"thumbnails" yaml:"thumbnails"`

	PrivacyStatus     *string        `json:"privacy_status" yaml:"privacy_status"`
	License           *string        `json:"license" yaml:"license"`
	Embeddable        *bool          `json:"embeddable" yaml:"embeddable"`
	MadeForKids       *bool          `json:"made_for_kids" yaml:"made_for_kids"`
	RecordingLocation map[string]any `json:"recording_location" yaml:"recording_location"`
	RecordingDate     *time.Time     `json:"recording_date" yaml:"recording_date"`
	Localizations     map[string]any `json:"localizations" yaml:"localizations"`
	TopicCategories   []string       `json:"topic_categories" yaml:"topic_categories"`
	RelevantTopicIDs  []string       `json:"relevant_topic_ids" yaml:"relevant_topic_ids"`
}

// DescriptionText returns the description or an empty string when absent.
func (v Video) DescriptionText() string {
	if v.Description == nil {
		return ""
	}
	return *v.Description
}

// Document concatenates title, description and tags into one text used for lexical ranking.
func (v Video) Document() string {
	return v.Title + " " + v.DescriptionText() + " " + strings.Join(v.Tags, " ")
}

// TitleDocument concatenates title and description only.
func (v Video) TitleDocument() string {
	return v.Title + " " + v.DescriptionText()
}

// Normalize replaces absent collections with empty ones so the JSON shape is stable.
func (v Video) Normalize() Video {
	if v.Tags == nil {
		v.Tags = []string{}
	}
	if v.Thumbnails == nil {
		v.Thumbnails = map[string]any{}
	}
	if v.TopicCategories == nil {
		v.TopicCategories = []string{}
	}
	if v.RelevantTopicIDs == nil {
		v.RelevantTopicIDs = []string{}
	}
	return v
}

// PublishedBefore reports whether v sorts before o in "newest first" order.
// Videos without a publish time sort last.
func (v Video) PublishedBefore(o Video) bool {
	switch {
	case v.PublishedAt == nil && o.PublishedAt == nil:
		return false
	case v.PublishedAt == nil:
		return false
	case o.PublishedAt == nil:
		return true
	}
	return v.PublishedAt.After(*o.PublishedAt)
}
