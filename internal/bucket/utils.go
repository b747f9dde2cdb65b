package bucket

import (
	"fmt"
	"mime"
	"path"
	"strings"
)

const contentTypeOctetStream = "application/octet-stream"

func contentTypeFromName(name string) string {
	ext := strings.ToLower(path.Ext(name))
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return contentTypeOctetStream
}

func (b *Bucket) constructFullPath(folder, fileName string) string {
	return strings.TrimPrefix(path.Clean(path.Join(b.BaseFolder, folder, fileName)), "/")
}

func (b *Bucket) getCDNURL(filePath string) string {
	if b.SubdomainEndpoint != "" {
		return fmt.Sprintf("https://%s/%s", b.SubdomainEndpoint, filePath)
	}
	return fmt.Sprintf("https://%s.%s/%s", b.S3BucketName, b.S3Endpoint, filePath)
}
