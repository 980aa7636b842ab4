// Package storage maps logical (folder, name) pairs onto stored objects and
// the public URLs they are served from.
//
// Names are sanitised only by the narrow rules of the admin upload contract:
// separators are trimmed from both ends and any literal "media/" occurrence is
// removed. That is not general path traversal protection.
package storage

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"
)

// DefaultFolder is used when an upload does not name a folder.
const DefaultFolder = "media"

// StoredObject describes where an upload ended up.
type StoredObject struct {
	// URL is the public URL the object is served from.
	URL string `json:"url"`
	// Path is relative to the storage root; it is both the delete key and the URL suffix.
	Path string `json:"path"`
}

// FileStorage persists uploaded byte streams. No content validation is done:
// any stream is stored as given.
type FileStorage interface {
	// Save writes content under folder/name. An empty folder selects
	// DefaultFolder; an empty desiredName synthesises a collision-free name
	// from originalName.
	Save(ctx context.Context, content io.Reader, originalName, folder, desiredName string) (*StoredObject, error)
	// Remove deletes a previously stored object. Removing an object that does
	// not exist is not an error.
	Remove(ctx context.Context, reference string) error
}

// NormalizeFolder applies the folder default and trims separators from both ends.
func NormalizeFolder(folder string) string {
	if folder == "" {
		folder = DefaultFolder
	}
	return strings.Trim(folder, "/")
}

// ResolveName picks the stored file name. A desired name is used verbatim
// after trimming separators; otherwise a random token is prefixed to the
// original name so concurrent uploads of the same file never overwrite each
// other.
func ResolveName(originalName, desiredName string) string {
	var name string
	if desiredName != "" {
		name = strings.Trim(desiredName, "/")
	} else {
		name = newToken() + "_" + originalName
	}
	return stripDefaultFolder(name)
}

// RelativePath joins folder and name the way they are stored and addressed.
func RelativePath(folder, name string) string {
	return strings.TrimLeft(folder+"/"+name, "/")
}

// CleanReference turns a delete key back into a storage-root relative path.
// It accepts a bare relative path, a path with a leading separator, or a URL
// previously issued under publicBaseURL.
func CleanReference(reference, publicBaseURL string) string {
	base := strings.TrimRight(publicBaseURL, "/")
	if base != "" && strings.HasPrefix(reference, base+"/") {
		reference = strings.TrimPrefix(reference, base+"/")
	}
	return stripDefaultFolder(strings.TrimLeft(reference, "/"))
}

// JoinURL appends a relative path to a public base URL.
func JoinURL(publicBaseURL, relPath string) string {
	return strings.TrimRight(publicBaseURL, "/") + "/" + relPath
}

func stripDefaultFolder(name string) string {
	return strings.ReplaceAll(name, DefaultFolder+"/", "")
}

var newToken = func() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
