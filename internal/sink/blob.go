package sink

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"gocloud.dev/blob"

	"github.com/getsentry/otf2/internal/dump"
	"github.com/getsentry/otf2/internal/storageutil"

	gojson "github.com/goccy/go-json"
)

// Blob writes one envelope per line into a single compressed object.
type Blob struct {
	key string
	w   io.WriteCloser
	enc *gojson.Encoder
}

// NewBlob creates the object <prefix>/<uuid>.ndjson.lz4 in b.
func NewBlob(ctx context.Context, b *blob.Bucket, prefix string) (*Blob, error) {
	key := fmt.Sprintf("%s/%s.ndjson.lz4", prefix, uuid.New().String())
	w, err := storageutil.NewCompressedWriter(ctx, b, key)
	if err != nil {
		return nil, err
	}
	return &Blob{key: key, w: w, enc: gojson.NewEncoder(w)}, nil
}

// Key returns the name of the object being written.
func (s *Blob) Key() string {
	return s.key
}

func (s *Blob) Write(_ context.Context, e dump.Envelope) error {
	if s.w == nil {
		return ErrClosed
	}
	return s.enc.Encode(e)
}

func (s *Blob) Close() error {
	if s.w == nil {
		return nil
	}
	err := s.w.Close()
	s.w = nil
	return err
}
