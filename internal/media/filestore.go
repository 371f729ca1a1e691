package media

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/oklog/ulid/v2"
)

// FileStore keeps files in a local directory served under BaseURL.
type FileStore struct {
	Dir     string
	BaseURL string
}

// Upload writes f under Dir/folder with a unique name.
func (s FileStore) Upload(ctx context.Context, folder string, f File) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ext := path.Ext(f.Name)
	if ext == "" {
		_, ext = Detect(f.Data)
	}
	name := strings.ToLower(ulid.Make().String()) + ext
	dir := filepath.Join(s.Dir, filepath.FromSlash(folder))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), f.Data, 0o644); err != nil {
		return "", fmt.Errorf("write media: %w", err)
	}
	return strings.TrimRight(s.BaseURL, "/") + "/" + path.Join(folder, name), nil
}

// Delete removes the file behind url.
func (s FileStore) Delete(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	base := strings.TrimRight(s.BaseURL, "/") + "/"
	rel, ok := strings.CutPrefix(url, base)
	if !ok || rel == "" || strings.Contains(rel, "..") {
		return fmt.Errorf("%q: not served by this store", url)
	}
	return os.Remove(filepath.Join(s.Dir, filepath.FromSlash(rel)))
}
