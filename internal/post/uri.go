package post

import (
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/alexisbeaulieu97/threadkit/pkg/errors"
)

// Schemes accepted by ParseURI.
var uriSchemes = map[string]struct{}{"adx": {}, "at": {}}

// URI addresses a record: scheme://authority/collection/record-key.
type URI struct {
	Scheme     string
	Authority  string
	Collection string
	RecordKey  string
}

func (u URI) String() string {
	return fmt.Sprintf("%s://%s/%s/%s", u.Scheme, u.Authority, u.Collection, u.RecordKey)
}

// ParseURI splits a record URI into its parts. Every part is required.
func ParseURI(raw string) (URI, error) {
	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return URI{}, apperrors.NewParseError(raw, 0, errors.New("missing scheme separator"))
	}
	if _, known := uriSchemes[scheme]; !known {
		return URI{}, apperrors.NewParseError(raw, 0, fmt.Errorf("unsupported scheme %q", scheme))
	}

	parts := strings.Split(strings.TrimSuffix(rest, "/"), "/")
	if len(parts) != 3 {
		return URI{}, apperrors.NewParseError(raw, 0, fmt.Errorf("expected authority/collection/record-key, got %d segments", len(parts)))
	}
	for i, name := range []string{"authority", "collection", "record key"} {
		if parts[i] == "" {
			return URI{}, apperrors.NewParseError(raw, 0, fmt.Errorf("empty %s", name))
		}
	}

	return URI{
		Scheme:     scheme,
		Authority:  parts[0],
		Collection: parts[1],
		RecordKey:  parts[2],
	}, nil
}
