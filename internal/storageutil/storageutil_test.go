package storageutil

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/getsentry/otf2/internal/testutil"
	"github.com/google/uuid"
	"github.com/pierrec/lz4/v4"
	"gocloud.dev/blob/memblob"

	gojson "github.com/goccy/go-json"
)

type fixture struct {
	Locations []uint64 `json:"locations"`
	Names     []string `json:"names"`
}

func TestCompressedWrite(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	objectName := uuid.New().String()
	originalData := fixture{
		Locations: []uint64{0, 1, 2},
		Names:     []string{"rank 0", "rank 1", "rank 2"},
	}
	err := CompressedWrite(ctx, bucket, objectName, originalData)
	if err != nil {
		t.Fatalf("we should be able to write: %v", err)
	}

	object, err := bucket.ReadAll(ctx, objectName)
	if err != nil {
		t.Fatalf("we should be able to read the object: %v", err)
	}
	uncompressedData, err := io.ReadAll(lz4.NewReader(bytes.NewReader(object)))
	if err != nil {
		t.Fatalf("we should be able to uncompress the data: %v", err)
	}
	b, err := gojson.Marshal(originalData)
	if err != nil {
		t.Fatalf("we should be able to marshal this: %v", err)
	}
	if !bytes.Equal(b, bytes.TrimSpace(uncompressedData)) {
		t.Fatal("data should be identical")
	}
}

func TestUnmarshalCompressed(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	var compressedData bytes.Buffer
	w := lz4.NewWriter(&compressedData)
	_, _ = w.Write([]byte(`{"locations":[3,4],"names":["gpu 0","gpu 1"]}`))
	if err := w.Close(); err != nil {
		t.Fatalf("we should be able to close the writer: %v", err)
	}
	objectName := uuid.New().String()
	if err := bucket.WriteAll(ctx, objectName, compressedData.Bytes(), nil); err != nil {
		t.Fatalf("we should be able to write the object: %v", err)
	}

	var got fixture
	if err := UnmarshalCompressed(ctx, bucket, objectName, &got); err != nil {
		t.Fatalf("we should be able to read the object: %v", err)
	}
	want := fixture{Locations: []uint64{3, 4}, Names: []string{"gpu 0", "gpu 1"}}
	if diff := testutil.Diff(got, want); diff != "" {
		t.Fatalf("Result mismatch: got - want +\n%s", diff)
	}
}

func TestUnmarshalCompressedNotFound(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	var got fixture
	err := UnmarshalCompressed(context.Background(), bucket, "missing", &got)
	if !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}
