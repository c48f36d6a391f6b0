package s3_test

import (
	"catering/infras/s3"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKeyFromURL(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		url    string
		key    string
	}{
		{name: "own url", domain: "https://cdn.example.com", url: "https://cdn.example.com/avatars/u-1.png", key: "avatars/u-1.png"},
		{name: "trailing slash domain", domain: "https://cdn.example.com/", url: "https://cdn.example.com/employees/e-1.jpg", key: "employees/e-1.jpg"},
		{name: "foreign url", domain: "https://cdn.example.com", url: "https://gravatar.com/a.png", key: ""},
		{name: "no domain configured", domain: "", url: "https://cdn.example.com/a.png", key: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.key, s3.ObjectKeyFromURL(tt.domain, tt.url))
		})
	}
}
