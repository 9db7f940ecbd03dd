package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/threadkit/internal/post"
	apperrors "github.com/alexisbeaulieu97/threadkit/pkg/errors"
)

// Thread is the on-disk shape of a thread fixture.
type Thread struct {
	Posts []post.Post `yaml:"posts"`
}

// LoadThread reads a thread fixture and validates every post in it.
func LoadThread(path string) ([]post.Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}
	return ParseThread(data, path)
}

// ParseThread decodes and validates a thread fixture.
func ParseThread(data []byte, source string) ([]post.Post, error) {
	var thread Thread
	if err := yaml.Unmarshal(data, &thread); err != nil {
		return nil, apperrors.NewParseError(source, extractLine(err), err)
	}

	for i, p := range thread.Posts {
		if err := ValidatePost(p, fmt.Sprintf("posts[%d]", i)); err != nil {
			return nil, err
		}
	}
	return thread.Posts, nil
}
