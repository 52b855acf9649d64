package s3

import (
	"io/fs"
	"time"

	"github.com/minio/minio-go/v7"
)

// File wraps a bucket object. minio.Object provides Read, Seek and Close.
type File struct {
	*minio.Object
	info fileInfo
}

// Stat implements fs.File.
func (f *File) Stat() (fs.FileInfo, error) {
	return f.info, nil
}

var _ fs.File = &File{}

type fileInfo struct {
	name    string
	size    int64
	modTime time.Time
}

func (i fileInfo) Name() string       { return i.name }
func (i fileInfo) Size() int64        { return i.size }
func (i fileInfo) Mode() fs.FileMode  { return 0o444 }
func (i fileInfo) ModTime() time.Time { return i.modTime }
func (i fileInfo) IsDir() bool        { return false }
func (i fileInfo) Sys() any           { return nil }

var _ fs.FileInfo = fileInfo{}
