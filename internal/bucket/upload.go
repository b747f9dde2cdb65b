package bucket

import (
	"context"
	"fmt"
	"io"

	"log/slog"

	"github.com/lkphuong/api-homepage/internal/entity"
	"github.com/minio/minio-go/v7"
)

// Upload puts a public object under folder and returns where it is served.
func (b *Bucket) Upload(ctx context.Context, folder, name, contentType string, r io.Reader, size int64) (*entity.StoredObject, error) {
	userMetaData := map[string]string{"x-amz-acl": "public-read"}
	cacheControl := "max-age=31536000"

	if contentType == "" {
		contentType = contentTypeFromName(name)
	}
	fp := b.constructFullPath(folder, name)

	ui, err := b.Client.PutObject(ctx, b.S3BucketName, fp, r, size,
		minio.PutObjectOptions{
			ContentType:  contentType,
			CacheControl: cacheControl,
			UserMetadata: userMetaData,
		})
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't upload object",
			slog.String("path", fp),
			slog.String("err", err.Error()))
		return nil, fmt.Errorf("can't upload object: %w", err)
	}

	return &entity.StoredObject{
		Path: ui.Key,
		URL:  b.getCDNURL(ui.Key),
	}, nil
}
