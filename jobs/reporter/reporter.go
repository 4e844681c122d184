// Package reporter drains the execution journal and publishes each
// trade as an execution report. Publication is at-least-once: a
// record is marked SENT before the produce and ACKED only after the
// broker confirms, so an interrupted publish is retried on the next
// pass.
package reporter

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/IBM/sarama"

	"github.com/kc356/order-book/infra/journal"
)

// Report is the wire form of one execution report.
type Report struct {
	V          int    `json:"v"`
	Type       string `json:"type"`
	Seq        uint64 `json:"seq"`
	BidOrderID uint64 `json:"bidOrderId"`
	AskOrderID uint64 `json:"askOrderId"`
	BidPrice   int64  `json:"bidPrice"`
	AskPrice   int64  `json:"askPrice"`
	Quantity   uint64 `json:"quantity"`
	Time       int64  `json:"time"`
}

type Reporter struct {
	journal  *journal.Journal
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
}

func New(j *journal.Journal, brokers []string, topic string, interval time.Duration) (*Reporter, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Reporter{
		journal:  j,
		producer: producer,
		topic:    topic,
		interval: interval,
	}, nil
}

// Run publishes pending records on a ticker until the context ends.
func (r *Reporter) Run(ctx context.Context) {
	log.Println("[reporter] started")
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.publishPending()
		}
	}
}

func (r *Reporter) publishPending() {
	_ = r.journal.ScanPending(func(rec journal.Record) error {
		if err := r.journal.MarkSent(rec.Seq); err != nil {
			return err
		}

		payload, err := json.Marshal(Report{
			V:          1,
			Type:       "fill",
			Seq:        rec.Seq,
			BidOrderID: rec.BidOrderID,
			AskOrderID: rec.AskOrderID,
			BidPrice:   rec.BidPrice,
			AskPrice:   rec.AskPrice,
			Quantity:   rec.Quantity,
			Time:       rec.Time,
		})
		if err != nil {
			return err
		}

		msg := &sarama.ProducerMessage{
			Topic: r.topic,
			Key:   sarama.StringEncoder(strconv.FormatUint(rec.Seq, 10)),
			Value: sarama.ByteEncoder(payload),
		}
		if _, _, err := r.producer.SendMessage(msg); err != nil {
			// Stays SENT in the journal; retried on the next pass.
			log.Printf("[reporter] publish seq %d failed: %v", rec.Seq, err)
			return nil
		}

		return r.journal.MarkAcked(rec.Seq)
	})
}

func (r *Reporter) Close() error {
	return r.producer.Close()
}
