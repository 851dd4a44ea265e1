// Package sink exports decoded trace records, as lz4-compressed NDJSON
// objects in a bucket or as messages on a Kafka topic.
package sink

import (
	"context"
	"errors"

	"github.com/getsentry/otf2/internal/dump"
)

var ErrClosed = errors.New("sink: closed")

// Sink receives envelopes in stream order. Close flushes what is pending.
type Sink interface {
	Write(ctx context.Context, e dump.Envelope) error
	Close() error
}

// Multi writes every envelope to each sink, stopping at the first error.
type Multi []Sink

func (m Multi) Write(ctx context.Context, e dump.Envelope) error {
	for _, s := range m {
		if err := s.Write(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) Close() error {
	var errs []error
	for _, s := range m {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
