package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/cloudflare/cloudflare-go"
)

const imageDeliveryHost = "imagedelivery.net"

// CloudflareClient is the subset of the Cloudflare Images API used here.
type CloudflareClient interface {
	UploadImage(ctx context.Context, rc *cloudflare.ResourceContainer, params cloudflare.UploadImageParams) (cloudflare.Image, error)
	DeleteImage(ctx context.Context, rc *cloudflare.ResourceContainer, id string) error
}

// NewCloudflareClient builds an API client from a token.
func NewCloudflareClient(apiToken string) (CloudflareClient, error) {
	api, err := cloudflare.NewWithAPIToken(apiToken)
	if err != nil {
		return nil, err
	}
	return api, nil
}

// CloudflareImages stores images in Cloudflare Images.
type CloudflareImages struct {
	client CloudflareClient
	rc     *cloudflare.ResourceContainer
}

// NewCloudflareImages constructs the store for accountID.
func NewCloudflareImages(client CloudflareClient, accountID string) *CloudflareImages {
	return &CloudflareImages{
		client: client,
		rc: &cloudflare.ResourceContainer{
			Level:      cloudflare.AccountRouteLevel,
			Identifier: accountID,
		},
	}
}

// Upload sends f and returns its first delivery variant URL.
func (c *CloudflareImages) Upload(ctx context.Context, folder string, f File) (string, error) {
	name := f.Name
	if path.Ext(name) == "" {
		_, ext := Detect(f.Data)
		name += ext
	}
	img, err := c.client.UploadImage(ctx, c.rc, cloudflare.UploadImageParams{
		File:     io.NopCloser(bytes.NewReader(f.Data)),
		Name:     name,
		Metadata: map[string]any{"folder": folder},
	})
	if err != nil {
		return "", fmt.Errorf("upload image %s: %w", name, err)
	}
	if len(img.Variants) == 0 {
		return "", fmt.Errorf("upload image %s: no delivery variants", name)
	}
	return img.Variants[0], nil
}

// Delete removes the image referenced by a delivery URL.
func (c *CloudflareImages) Delete(ctx context.Context, rawURL string) error {
	id, err := imageIDFromURL(rawURL)
	if err != nil {
		return err
	}
	if err := c.client.DeleteImage(ctx, c.rc, id); err != nil {
		return fmt.Errorf("delete image %s: %w", id, err)
	}
	return nil
}

func isImageDeliveryURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Host == imageDeliveryHost
}

// imageIDFromURL extracts <id> from https://imagedelivery.net/<hash>/<id>/<variant>.
func imageIDFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Host != imageDeliveryHost {
		return "", fmt.Errorf("%q: not an image delivery url", raw)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[1] == "" {
		return "", fmt.Errorf("%q: missing image id", raw)
	}
	return parts[1], nil
}
