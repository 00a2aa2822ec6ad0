package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeYoutubeID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"short link", "https://youtu.be/abcdefghijk", "abcdefghijk"},
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch url with params", "https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ&t=10", "dQw4w9WgXcQ"},
		{"embed url", "https://www.youtube.com/embed/a_b-c_d-e_f", "a_b-c_d-e_f"},
		{"v url", "youtube.com/v/abcdefghijk", "abcdefghijk"},
		{"shorts url", "https://youtube.com/shorts/abcdefghijk", "abcdefghijk"},
		{"bare id", "abcdefghijk", "abcdefghijk"},
		{"padded id", "  abcdefghijk ", "abcdefghijk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeYoutubeID(tt.input)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestNormalizeYoutubeIDBlank(t *testing.T) {
	got, err := NormalizeYoutubeID("   ")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestNormalizeYoutubeIDRejectsUnknown(t *testing.T) {
	for _, input := range []string{"short", "https://vimeo.com/123456", "abcdefghijkl", "abc def ghij"} {
		_, err := NormalizeYoutubeID(input)
		assert.ErrorIs(t, err, ErrValidation, input)
	}
}
