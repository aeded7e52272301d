// Package blob uploads product images and store logos to Firebase
// Storage and hands back durable public URLs. Files are rejected
// locally (wrong mimetype, oversized) before any network call.
package blob

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go"
	"github.com/rs/zerolog"
)

// MaxUploadSize caps image payloads at 5 MiB.
const MaxUploadSize = 5 << 20

// Uploader writes objects to the store's bucket.
type Uploader struct {
	bucket     *gcs.BucketHandle
	bucketName string
	log        zerolog.Logger
}

// NewUploader opens the bucket configured on the firebase app.
func NewUploader(ctx context.Context, app *firebase.App, bucketName string, log zerolog.Logger) (*Uploader, error) {
	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage client: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("bucket %s: %w", bucketName, err)
	}
	return &Uploader{bucket: bucket, bucketName: bucketName, log: log}, nil
}

// ValidateImage rejects non-image or oversized files. It runs before
// any network call, so a bad file never leaves the process.
func ValidateImage(fh *multipart.FileHeader) error {
	if fh.Size > MaxUploadSize {
		return fmt.Errorf("%s exceeds the %d MB limit", fh.Filename, MaxUploadSize>>20)
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return fmt.Errorf("%s is not an image file", fh.Filename)
	}
	return nil
}

// objectName builds a collision-free object name: nanosecond prefix
// plus the sanitized original filename.
func objectName(dir string, fh *multipart.FileHeader) string {
	name := strings.ReplaceAll(filepath.Base(fh.Filename), " ", "_")
	return fmt.Sprintf("%s/%d_%s", dir, time.Now().UnixNano(), name)
}

// UploadProductImage stores one product image for a store and returns
// its public URL.
func (u *Uploader) UploadProductImage(ctx context.Context, storeID string, fh *multipart.FileHeader) (string, error) {
	return u.upload(ctx, objectName("products/"+storeID, fh), fh)
}

// UploadLogo stores a store's logo and returns its public URL.
func (u *Uploader) UploadLogo(ctx context.Context, storeID string, fh *multipart.FileHeader) (string, error) {
	return u.upload(ctx, objectName("stores/"+storeID+"/logo", fh), fh)
}

func (u *Uploader) upload(ctx context.Context, object string, fh *multipart.FileHeader) (string, error) {
	if err := ValidateImage(fh); err != nil {
		return "", err
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	w := u.bucket.Object(object).NewWriter(ctx)
	w.ContentType = fh.Header.Get("Content-Type")
	if _, err := io.Copy(w, f); err != nil {
		w.Close()
		return "", fmt.Errorf("write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finish object: %w", err)
	}

	if err := u.bucket.Object(object).ACL().Set(ctx, gcs.AllUsers, gcs.RoleReader); err != nil {
		return "", fmt.Errorf("publish object: %w", err)
	}

	url := fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucketName, object)
	u.log.Debug().Str("object", object).Msg("image uploaded")
	return url, nil
}
