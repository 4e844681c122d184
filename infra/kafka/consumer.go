// Package kafka carries the broker-facing plumbing for the inbound
// action stream. Each Kafka message holds one action record in the
// replay text format; the server hands the payload to a handler that
// parses and applies it.
package kafka

import (
	"context"
	"log"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, topic, group string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    topic,
			GroupID:  group,
			MinBytes: 1,
			MaxBytes: 1 << 20,
		}),
	}
}

// Run fetches messages until the context is cancelled. Handler errors
// are logged and the message is committed anyway; a malformed action
// must not wedge the stream.
func (c *Consumer) Run(ctx context.Context, handle func(value []byte) error) error {
	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			return err
		}
		if err := handle(m.Value); err != nil {
			log.Printf("[ingest] dropping bad action at offset %d: %v", m.Offset, err)
		}
		if err := c.reader.CommitMessages(ctx, m); err != nil {
			return err
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
