// Package storage holds binary blobs: cached word audio and uploaded photos
// awaiting recognition.
package storage

import "io"

type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
	Delete(key string) error
	SignedURL(key string) (string, error) // fs returns "file://..." for dev
}
