package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadResult is the identifier + URL pair the rest of the app stores on the
// meme document.
type UploadResult struct {
	PublicID string
	URL      string
}

// Cloudinary is the Media Store adapter. Uploads must succeed before any meme
// document referencing them is created; destroys are best effort.
type Cloudinary struct {
	cld *cloudinary.Cloudinary
	log *slog.Logger
}

// New builds the client from a cloudinary:// URL.
func New(url string, log *slog.Logger) (*Cloudinary, error) {
	if log == nil {
		log = slog.Default()
	}
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &Cloudinary{cld: cld, log: log}, nil
}

// Upload sends the image and returns its public id and serving URL. Any
// failure is reported to the caller synchronously so no document ever points
// at an image that never landed.
func (c *Cloudinary) Upload(ctx context.Context, file io.Reader) (UploadResult, error) {
	resp, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: "memes"})
	if err != nil {
		return UploadResult{}, fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.Error.Message != "" {
		return UploadResult{}, fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}
	return UploadResult{PublicID: resp.PublicID, URL: resp.SecureURL}, nil
}

// Destroy deletes the image by public id. A missing image counts as success;
// there is nothing left to clean up.
func (c *Cloudinary) Destroy(ctx context.Context, publicID string) error {
	resp, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	if resp.Result != "ok" && resp.Result != "not found" {
		return fmt.Errorf("cloudinary destroy: %s", resp.Result)
	}
	return nil
}
