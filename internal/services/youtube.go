package services

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	youtubeURLPattern = regexp.MustCompile(`(?:youtu\.be/|youtube\.com/(?:embed/|v/|shorts/|watch\?(?:[^#]*&)?v=))([\w-]{11})`)
	youtubeIDPattern  = regexp.MustCompile(`^[\w-]{11}$`)
)

// NormalizeYoutubeID reduces a YouTube URL to its video id. A bare id is
// accepted as is. Blank input yields nil; anything that does not end up as
// an 11 character id is a validation error.
func NormalizeYoutubeID(raw string) (*string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	id := raw
	if m := youtubeURLPattern.FindStringSubmatch(raw); m != nil {
		id = m[1]
	}
	if !youtubeIDPattern.MatchString(id) {
		return nil, fmt.Errorf("%w: %q is not a YouTube video URL or 11 character id", ErrValidation, raw)
	}
	return &id, nil
}
