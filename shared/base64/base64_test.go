package base64_test

import (
	"catering/shared/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "png", input: "data:image/png;base64,iVBORw0KGgo=", expected: "image/png"},
		{name: "jpeg", input: "data:image/jpeg;base64,/9j/4AAQ", expected: "image/jpeg"},
		{name: "missing marker", input: "data:image/png,abc", expected: ""},
		{name: "not a data url", input: "https://cdn.example.com/a.png", expected: ""},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base64.GetContentType(tt.input))
		})
	}
}

func TestDecode(t *testing.T) {
	contentType, data, err := base64.Decode("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)

	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, []byte("hello"), data)

	_, _, err = base64.Decode("hello")
	assert.ErrorIs(t, err, base64.ErrNotDataURL)

	_, _, err = base64.Decode("data:image/png;base64,@@@")
	assert.Error(t, err)
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".png", base64.Extension("image/png"))
	assert.Equal(t, ".jpg", base64.Extension("image/jpeg"))
	assert.Equal(t, "", base64.Extension("application/pdf"))
}
