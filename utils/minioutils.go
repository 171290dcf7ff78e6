package utils

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"

	"github.com/hrsuite/recruit-go/minio"
)

// NewObjectName builds a collision-free object name for an uploaded document,
// keeping the declared filename as a suffix for operator readability.
func NewObjectName(applicationID uint, filename string) string {
	return fmt.Sprintf("app-%d/%s-%s", applicationID, uuid.NewString(), filename)
}

// UploadObject stores content under objectName with the given content type.
// These are the only code paths that touch document bytes.
var UploadObject = func(ctx context.Context, objectName string, contentType string, contentReader io.Reader, contentSize int64) error {
	if strings.TrimSpace(objectName) == "" {
		return fmt.Errorf("object name cannot be empty")
	}

	_, err := minio.Client.PutObject(ctx, minio.BucketName, objectName, contentReader, contentSize, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

var DownloadObject = func(ctx context.Context, objectName string) ([]byte, error) {
	obj, err := minio.Client.GetObject(ctx, minio.BucketName, objectName, minioSDK.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	return io.ReadAll(obj)
}

var DeleteObject = func(ctx context.Context, objectName string) error {
	return minio.Client.RemoveObject(ctx, minio.BucketName, objectName, minioSDK.RemoveObjectOptions{})
}
