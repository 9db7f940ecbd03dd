// Package post defines the read-only post view-model consumed by the thread
// components.
package post

import (
	"time"
)

// Author identifies who wrote a post.
type Author struct {
	Handle      string `yaml:"handle" validate:"required"`
	DisplayName string `yaml:"display_name"`
}

// Record is the post content.
type Record struct {
	Text string `yaml:"text"`
}

// Post is a single entry of a thread as the view sees it. Depth is the
// nesting level relative to the focal post; only its magnitude is used.
type Post struct {
	URI         string    `yaml:"uri" validate:"required,record_uri"`
	Author      Author    `yaml:"author"`
	Record      Record    `yaml:"record"`
	ReplyCount  int       `yaml:"reply_count" validate:"gte=0"`
	RepostCount int       `yaml:"repost_count" validate:"gte=0"`
	LikeCount   int       `yaml:"like_count" validate:"gte=0"`
	IndexedAt   time.Time `yaml:"indexed_at"`
	Depth       int       `yaml:"depth"`
	IsFocal     bool      `yaml:"focal"`
}

// Indent is the number of reply markers rendered before the post.
func (p Post) Indent() int {
	if p.Depth < 0 {
		return -p.Depth
	}
	return p.Depth
}

// HasEngagement reports whether the post was liked or reposted.
func (p Post) HasEngagement() bool {
	return p.LikeCount > 0 || p.RepostCount > 0
}

// ShowsEngagement reports whether the engagement summary is rendered.
func (p Post) ShowsEngagement() bool {
	return p.IsFocal && p.HasEngagement()
}

// RecordKey parses the post URI and returns its record key.
func (p Post) RecordKey() (string, error) {
	uri, err := ParseURI(p.URI)
	if err != nil {
		return "", err
	}
	return uri.RecordKey, nil
}
