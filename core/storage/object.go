package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
)

// ErrObjectNotFound is returned when a requested object does not exist.
var ErrObjectNotFound = errors.New("storage: object not found")

// ReadObject downloads an object fully into memory.
// Missing objects are reported as ErrObjectNotFound.
func ReadObject(ctx context.Context, client Client, bucket, objectName string) ([]byte, error) {
	obj, err := client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, wrapObjectError(objectName, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, wrapObjectError(objectName, err)
	}
	return data, nil
}

// GetJSON downloads an object and decodes it as JSON into v.
func GetJSON(ctx context.Context, client Client, bucket, objectName string, v any) error {
	data, err := ReadObject(ctx, client, bucket, objectName)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", objectName, err)
	}
	return nil
}

// PutJSON encodes v as indented JSON and uploads it.
func PutJSON(ctx context.Context, client Client, bucket, objectName string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", objectName, err)
	}
	_, err = client.PutObject(ctx, bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", objectName, err)
	}
	return nil
}

// ListKeys returns the names of the objects directly under prefix that end with
// extension, with prefix and extension stripped, in listing order.
func ListKeys(ctx context.Context, client Client, bucket, prefix, extension string) ([]string, error) {
	prefix = strings.TrimSuffix(prefix, "/") + "/"

	var keys []string
	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
		}
		name := strings.TrimPrefix(obj.Key, prefix)
		if name == "" || strings.Contains(name, "/") || !strings.HasSuffix(name, extension) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, extension))
	}
	return keys, nil
}

// ObjectPath joins a folder and a file name into an object key.
func ObjectPath(parts ...string) string {
	return strings.TrimPrefix(path.Join(parts...), "/")
}

func wrapObjectError(objectName string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, objectName)
	}
	return fmt.Errorf("failed to read %s: %w", objectName, err)
}
