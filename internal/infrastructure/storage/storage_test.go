package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFolder(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "media"},
		{"doctors", "doctors"},
		{"/doctors/", "doctors"},
		{"//reviews//", "reviews"},
		{"gallery/interior/", "gallery/interior"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeFolder(tt.in), "folder %q", tt.in)
	}
}

func TestResolveNameDesired(t *testing.T) {
	tests := []struct {
		desired string
		want    string
	}{
		{"photo.jpg", "photo.jpg"},
		{"/photo.jpg/", "photo.jpg"},
		{"media/photo.jpg", "photo.jpg"},
		{"doctors/media/photo.jpg", "doctors/photo.jpg"},
		{"../secret.txt", "../secret.txt"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveName("ignored.png", tt.desired), "desired %q", tt.desired)
	}
}

func TestResolveNameSynthesised(t *testing.T) {
	first := ResolveName("scan.png", "")
	second := ResolveName("scan.png", "")

	assert.True(t, strings.HasSuffix(first, "_scan.png"))
	assert.True(t, strings.HasSuffix(second, "_scan.png"))
	assert.NotEqual(t, first, second)
	assert.Len(t, strings.TrimSuffix(first, "_scan.png"), 32)
}

func TestRelativePath(t *testing.T) {
	assert.Equal(t, "doctors/a.jpg", RelativePath("doctors", "a.jpg"))
	assert.Equal(t, "a.jpg", RelativePath("", "a.jpg"))
}

func TestCleanReference(t *testing.T) {
	const base = "http://localhost:8080/media"

	tests := []struct {
		ref  string
		want string
	}{
		{"doctors/a.jpg", "doctors/a.jpg"},
		{"/doctors/a.jpg", "doctors/a.jpg"},
		{"media/doctors/a.jpg", "doctors/a.jpg"},
		{"http://localhost:8080/media/doctors/a.jpg", "doctors/a.jpg"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanReference(tt.ref, base), "reference %q", tt.ref)
	}
}

func TestJoinURL(t *testing.T) {
	assert.Equal(t, "http://cdn/media/doctors/a.jpg", JoinURL("http://cdn/media/", "doctors/a.jpg"))
	assert.Equal(t, "http://cdn/media/doctors/a.jpg", JoinURL("http://cdn/media", "doctors/a.jpg"))
}
