package s3

import (
	"context"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

const requestTimeout = 30 * time.Second

// Source exposes the objects of a bucket as a read-only filesystem.
// Only regular files can be opened.
type Source struct {
	client *minio.Client
	bucket string
	prefix string
}

// Open implements fs.FS.
func (s *Source) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}

	key := s.key(name)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)

	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		cancel()

		if isNotFound(err) {
			return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
		}

		return nil, errors.WithStack(err)
	}

	// The object body is read lazily, the context must outlive this call.
	object, err := s.client.GetObject(context.Background(), s.bucket, key, minio.GetObjectOptions{})
	cancel()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &File{
		Object: object,
		info:   fileInfo{name: path.Base(name), size: info.Size, modTime: info.LastModified},
	}, nil
}

func (s *Source) key(name string) string {
	return strings.TrimPrefix(path.Join(s.prefix, name), "/")
}

func NewSource(client *minio.Client, bucket, prefix string) *Source {
	return &Source{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

var _ fs.FS = &Source{}

func isNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" || resp.StatusCode == 404
}
