package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/threadkit/internal/post"
	apperrors "github.com/alexisbeaulieu97/threadkit/pkg/errors"
)

const validThread = `posts:
  - uri: adx://alice.com/app.bsky.post/root1
    author:
      handle: alice.com
      display_name: Alice
    record:
      text: the root
    reply_count: 1
    indexed_at: 2024-03-01T10:00:00Z
    depth: -1
  - uri: adx://bob.com/app.bsky.post/abc123
    author:
      handle: bob.com
    record:
      text: focal reply
    like_count: 2
    repost_count: 1
    indexed_at: 2024-03-01T11:55:00Z
    focal: true
`

func TestLoadThread(t *testing.T) {
	path := writeFile(t, "thread.yaml", validThread)

	posts, err := LoadThread(path)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, post.Author{Handle: "alice.com", DisplayName: "Alice"}, posts[0].Author)
	assert.Equal(t, -1, posts[0].Depth)
	assert.Equal(t, 1, posts[0].ReplyCount)
	assert.True(t, posts[1].IsFocal)
	assert.Equal(t, 2, posts[1].LikeCount)
	assert.Equal(t, time.Date(2024, 3, 1, 11, 55, 0, 0, time.UTC), posts[1].IndexedAt.UTC())

	key, err := posts[1].RecordKey()
	require.NoError(t, err)
	assert.Equal(t, "abc123", key)
}

func TestParseThreadValidatesPosts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{
			name: "missing handle",
			input: `posts:
  - uri: adx://alice.com/app.bsky.post/1
`,
			field: "posts[0].author.handle",
		},
		{
			name: "malformed uri",
			input: `posts:
  - uri: adx://alice.com/1
    author:
      handle: alice.com
`,
			field: "posts[0].uri",
		},
		{
			name: "negative count",
			input: `posts:
  - uri: adx://alice.com/app.bsky.post/1
    author:
      handle: alice.com
  - uri: adx://bob.com/app.bsky.post/2
    author:
      handle: bob.com
    like_count: -4
`,
			field: "posts[1].like_count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseThread([]byte(tt.input), "thread.yaml")
			require.Error(t, err)

			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestParseThreadMalformedYAML(t *testing.T) {
	_, err := ParseThread([]byte("posts:\n  - uri: [\n"), "thread.yaml")

	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "thread.yaml", parseErr.Source)
}

func TestParseThreadEmpty(t *testing.T) {
	posts, err := ParseThread([]byte("posts: []\n"), "thread.yaml")
	require.NoError(t, err)
	assert.Empty(t, posts)
}
