package media

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cloudflare/cloudflare-go"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type fakeCF struct {
	uploaded cloudflare.UploadImageParams
	deleted  string
	err      error
}

func (f *fakeCF) UploadImage(_ context.Context, rc *cloudflare.ResourceContainer, p cloudflare.UploadImageParams) (cloudflare.Image, error) {
	f.uploaded = p
	if f.err != nil {
		return cloudflare.Image{}, f.err
	}
	return cloudflare.Image{ID: "img-1", Variants: []string{"https://imagedelivery.net/hash/img-1/public"}}, nil
}

func (f *fakeCF) DeleteImage(_ context.Context, _ *cloudflare.ResourceContainer, id string) error {
	f.deleted = id
	return f.err
}

func TestDetect(t *testing.T) {
	mime, ext := Detect(pngHeader)
	require.Equal(t, "image/png", mime)
	require.Equal(t, ".png", ext)
	require.False(t, IsImage([]byte("%PDF-1.4\n")))
}

func TestCloudflareImages_UploadDelete(t *testing.T) {
	cf := &fakeCF{}
	s := NewCloudflareImages(cf, "acct")

	url, err := s.Upload(context.Background(), FolderImages, File{Name: "front", Data: pngHeader})
	require.NoError(t, err)
	require.Equal(t, "https://imagedelivery.net/hash/img-1/public", url)
	require.Equal(t, "front.png", cf.uploaded.Name)
	require.Equal(t, FolderImages, cf.uploaded.Metadata["folder"])

	require.NoError(t, s.Delete(context.Background(), url))
	require.Equal(t, "img-1", cf.deleted)

	require.Error(t, s.Delete(context.Background(), "https://example.com/x"))
}

func TestCloudflareImages_UploadError(t *testing.T) {
	cf := &fakeCF{err: errors.New("boom")}
	_, err := NewCloudflareImages(cf, "acct").Upload(context.Background(), FolderImages, File{Name: "a.png", Data: pngHeader})
	require.Error(t, err)
}

func TestFileStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := FileStore{Dir: dir, BaseURL: "http://localhost:8081/media/"}

	url, err := s.Upload(context.Background(), FolderDocuments, File{Name: "deed.pdf", Data: []byte("%PDF-1.4\n")})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "http://localhost:8081/media/properties/documents/"))
	require.True(t, strings.HasSuffix(url, ".pdf"))

	rel := strings.TrimPrefix(url, "http://localhost:8081/media/")
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
	require.NoError(t, err)

	require.NoError(t, s.Delete(context.Background(), url))
	require.Error(t, s.Delete(context.Background(), "http://elsewhere/x"))
}

func TestRouter(t *testing.T) {
	cf := &fakeCF{}
	files := FileStore{Dir: t.TempDir(), BaseURL: "http://files"}
	r := Router{Images: NewCloudflareImages(cf, "acct"), Files: files}

	img, err := r.Upload(context.Background(), FolderImages, File{Name: "a", Data: pngHeader})
	require.NoError(t, err)
	require.Contains(t, img, "imagedelivery.net")

	doc, err := r.Upload(context.Background(), FolderDocuments, File{Name: "a.pdf", Data: []byte("%PDF-1.4\n")})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(doc, "http://files/"))

	_, err = r.Upload(context.Background(), FolderDocuments, File{Name: "empty"})
	require.Error(t, err)

	require.NoError(t, r.Delete(context.Background(), img))
	require.Equal(t, "img-1", cf.deleted)
	require.NoError(t, r.Delete(context.Background(), doc))

	_, err = Router{}.Upload(context.Background(), FolderDocuments, File{Name: "a.pdf", Data: []byte("%PDF-1.4\n")})
	require.ErrorIs(t, err, ErrUnsupported)
}
