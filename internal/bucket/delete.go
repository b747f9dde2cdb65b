package bucket

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/minio/minio-go/v7"
)

// Remove deletes an object from the bucket.
func (b *Bucket) Remove(ctx context.Context, path string) error {
	err := b.Client.RemoveObject(ctx, b.Config.S3BucketName, path, minio.RemoveObjectOptions{})
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed to delete object from s3 bucket",
			slog.String("object_key", path),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("can't remove object: %w", err)
	}
	return nil
}
