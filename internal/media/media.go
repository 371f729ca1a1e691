// Package media uploads and deletes property images and documents.
//
// The ledger stores only the returned URLs and never interprets file contents.
package media

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Folders used for property media.
const (
	FolderImages    = "properties/images"
	FolderDocuments = "properties/documents"
)

// ErrUnsupported is returned when a backend cannot store the given content.
var ErrUnsupported = errors.New("unsupported media type")

// File is an uploaded file held in memory.
type File struct {
	Name string
	Data []byte
}

// Store persists files and returns a public URL.
type Store interface {
	Upload(ctx context.Context, folder string, f File) (string, error)
	Delete(ctx context.Context, url string) error
}

// Detect returns the sniffed MIME type and canonical extension of data.
func Detect(data []byte) (mime, ext string) {
	m := mimetype.Detect(data)
	return m.String(), m.Extension()
}

// IsImage reports whether data sniffs as an image.
func IsImage(data []byte) bool {
	mime, _ := Detect(data)
	return strings.HasPrefix(mime, "image/")
}

// Router sends images to Images and everything else to Files.
type Router struct {
	Images Store
	Files  Store
}

// Upload picks a backend by content type.
func (r Router) Upload(ctx context.Context, folder string, f File) (string, error) {
	if len(f.Data) == 0 {
		return "", fmt.Errorf("%s: empty file", f.Name)
	}
	if r.Images != nil && IsImage(f.Data) {
		return r.Images.Upload(ctx, folder, f)
	}
	if r.Files == nil {
		return "", fmt.Errorf("%s: %w", f.Name, ErrUnsupported)
	}
	return r.Files.Upload(ctx, folder, f)
}

// Delete asks the backend owning url to remove it.
func (r Router) Delete(ctx context.Context, url string) error {
	if r.Images != nil && isImageDeliveryURL(url) {
		return r.Images.Delete(ctx, url)
	}
	if r.Files == nil {
		return fmt.Errorf("%s: %w", url, ErrUnsupported)
	}
	return r.Files.Delete(ctx, url)
}
