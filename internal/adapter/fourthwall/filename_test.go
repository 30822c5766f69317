package fourthwall

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilenameLabel(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"Regular", "https://cdn/x/photo.png", "photo"},
		{"NestedPath", "https://cdn/a/b/c/shirt-front.jpeg", "shirt-front"},
		{"DotsInName", "https://cdn/x/photo.v2.png", "photo.v2"},
		{"NoExtension", "https://cdn/x/photo", "image"},
		{"BareFilename", "photo.png", "image"},
		{"EmptyURL", "", "image"},
		{"TrailingSlash", "https://cdn/x/", "image"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, filenameLabel(tc.url))
		})
	}
}
