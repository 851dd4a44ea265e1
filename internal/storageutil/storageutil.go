package storageutil

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	gojson "github.com/goccy/go-json"
)

// ErrObjectNotFound indicates an object was not found.
var ErrObjectNotFound = errors.New("object not found")

// CompressedWrite compresses and writes data to a bucket.
func CompressedWrite(ctx context.Context, b *blob.Bucket, objectName string, d interface{}) error {
	ow, err := NewCompressedWriter(ctx, b, objectName)
	if err != nil {
		return err
	}
	err = gojson.NewEncoder(ow).Encode(d)
	if err != nil {
		_ = ow.Close()
		return err
	}
	return ow.Close()
}

// UnmarshalCompressed reads compressed JSON data from a bucket and unmarshals it.
func UnmarshalCompressed(ctx context.Context, b *blob.Bucket, objectName string, d interface{}) error {
	or, err := NewCompressedReader(ctx, b, objectName)
	if err != nil {
		return err
	}
	defer or.Close()
	err = gojson.NewDecoder(or).Decode(d)
	if err != nil {
		return err
	}
	return nil
}

type compressedWriter struct {
	zw *lz4.Writer
	ow *blob.Writer
}

// NewCompressedWriter returns a writer compressing everything written to
// it into the object. Close flushes the compressor, then the object.
func NewCompressedWriter(ctx context.Context, b *blob.Bucket, objectName string) (io.WriteCloser, error) {
	ow, err := b.NewWriter(ctx, objectName, nil)
	if err != nil {
		return nil, err
	}
	zw := lz4.NewWriter(ow)
	_ = zw.Apply(lz4.CompressionLevelOption(lz4.Level9))
	return &compressedWriter{zw: zw, ow: ow}, nil
}

func (w *compressedWriter) Write(p []byte) (int, error) {
	return w.zw.Write(p)
}

func (w *compressedWriter) Close() error {
	err := w.zw.Close()
	if err != nil {
		_ = w.ow.Close()
		return err
	}
	return w.ow.Close()
}

type compressedReader struct {
	io.Reader
	or *blob.Reader
}

// NewCompressedReader opens the object and decompresses it on read. It
// returns ErrObjectNotFound when the object does not exist.
func NewCompressedReader(ctx context.Context, b *blob.Bucket, objectName string) (io.ReadCloser, error) {
	or, err := b.NewReader(ctx, objectName, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, fmt.Errorf("%s: %w", objectName, ErrObjectNotFound)
		}
		return nil, err
	}
	return &compressedReader{Reader: lz4.NewReader(or), or: or}, nil
}

func (r *compressedReader) Close() error {
	return r.or.Close()
}
