package sink

import (
	"context"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/getsentry/otf2/internal/dump"

	gojson "github.com/goccy/go-json"
)

// MessageWriter is the part of *kafka.Writer the sink uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Kafka publishes one message per envelope. Messages are keyed by
// location so the events of a location stay ordered within a partition.
type Kafka struct {
	w         MessageWriter
	trace     string
	batchSize int
	pending   []kafka.Message
	closed    bool
}

// NewKafkaWriter returns a writer configured for event export.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     kafka.CRC32Balancer{},
		BatchSize:    100,
		Compression:  kafka.Lz4,
		ReadTimeout:  3 * time.Second,
		Topic:        topic,
		WriteTimeout: 3 * time.Second,
	}
}

// NewKafka sends envelopes of the given trace through w, batchSize
// messages at a time.
func NewKafka(w MessageWriter, trace string, batchSize int) *Kafka {
	if batchSize <= 0 {
		batchSize = 1
	}
	return &Kafka{w: w, trace: trace, batchSize: batchSize}
}

func (s *Kafka) Write(ctx context.Context, e dump.Envelope) error {
	if s.closed {
		return ErrClosed
	}
	b, err := gojson.Marshal(e)
	if err != nil {
		return err
	}
	m := kafka.Message{
		Value: b,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(e.Kind)},
			{Key: "trace", Value: []byte(s.trace)},
		},
	}
	if e.Location != nil {
		m.Key = []byte(strconv.FormatUint(uint64(*e.Location), 10))
	}
	s.pending = append(s.pending, m)
	if len(s.pending) >= s.batchSize {
		return s.Flush(ctx)
	}
	return nil
}

// Flush sends the pending messages.
func (s *Kafka) Flush(ctx context.Context) error {
	if len(s.pending) == 0 {
		return nil
	}
	err := s.w.WriteMessages(ctx, s.pending...)
	s.pending = nil
	return err
}

// Close flushes pending messages. The underlying writer is left open, it
// is shared between traces.
func (s *Kafka) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.Flush(context.Background())
}
