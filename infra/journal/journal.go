// Package journal persists executed trades in a pebble-backed outbox.
// Every trade is appended as a pending record and walks a small state
// machine (NEW → SENT → ACKED) as the reporter publishes it. The
// journal is an archive of executions; it is never read back to
// rebuild book state.
package journal

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
)

type State uint8

const (
	StateNew State = iota
	StateSent
	StateAcked
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateSent:
		return "SENT"
	case StateAcked:
		return "ACKED"
	default:
		return "UNKNOWN"
	}
}

// Record is one executed trade plus its publication state.
type Record struct {
	Seq        uint64
	State      State
	Retries    uint32
	Time       int64 // unix nanos of the last state change
	BidOrderID uint64
	AskOrderID uint64
	BidPrice   int64
	AskPrice   int64
	Quantity   uint64
}

// ErrCorruptRecord reports a stored value that does not decode.
var ErrCorruptRecord = errors.New("journal: corrupt record")

// binary encoding:
// [state:1][retries:4][time:8][bidID:8][askID:8][bidPrice:8][askPrice:8][qty:8]
const recordSize = 1 + 4 + 8 + 8 + 8 + 8 + 8 + 8

func encodeRecord(r Record) []byte {
	buf := make([]byte, recordSize)
	buf[0] = byte(r.State)
	binary.BigEndian.PutUint32(buf[1:5], r.Retries)
	binary.BigEndian.PutUint64(buf[5:13], uint64(r.Time))
	binary.BigEndian.PutUint64(buf[13:21], r.BidOrderID)
	binary.BigEndian.PutUint64(buf[21:29], r.AskOrderID)
	binary.BigEndian.PutUint64(buf[29:37], uint64(r.BidPrice))
	binary.BigEndian.PutUint64(buf[37:45], uint64(r.AskPrice))
	binary.BigEndian.PutUint64(buf[45:53], r.Quantity)
	return buf
}

func decodeRecord(seq uint64, b []byte) (Record, error) {
	if len(b) != recordSize {
		return Record{}, ErrCorruptRecord
	}
	return Record{
		Seq:        seq,
		State:      State(b[0]),
		Retries:    binary.BigEndian.Uint32(b[1:5]),
		Time:       int64(binary.BigEndian.Uint64(b[5:13])),
		BidOrderID: binary.BigEndian.Uint64(b[13:21]),
		AskOrderID: binary.BigEndian.Uint64(b[21:29]),
		BidPrice:   int64(binary.BigEndian.Uint64(b[29:37])),
		AskPrice:   int64(binary.BigEndian.Uint64(b[37:45])),
		Quantity:   binary.BigEndian.Uint64(b[45:53]),
	}, nil
}

// Journal is the pebble-backed execution outbox.
type Journal struct {
	db *pebble.DB
}

func Open(dir string) (*Journal, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &Journal{db: db}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

// Append stores a new pending record under its sequence number.
func (j *Journal) Append(r Record) error {
	r.State = StateNew
	r.Retries = 0
	r.Time = time.Now().UnixNano()
	return j.db.Set(keyFor(r.Seq), encodeRecord(r), pebble.Sync)
}

// Get returns the record at seq.
func (j *Journal) Get(seq uint64) (Record, error) {
	val, closer, err := j.db.Get(keyFor(seq))
	if err != nil {
		return Record{}, err
	}
	defer closer.Close()
	return decodeRecord(seq, val)
}

// MarkSent advances a record to SENT and bumps its retry count.
func (j *Journal) MarkSent(seq uint64) error {
	return j.update(seq, func(r *Record) {
		r.State = StateSent
		r.Retries++
	})
}

// MarkAcked advances a record to ACKED.
func (j *Journal) MarkAcked(seq uint64) error {
	return j.update(seq, func(r *Record) {
		r.State = StateAcked
	})
}

// Delete removes a record, such as an acked entry. The reporter does
// not call it; acked records stay in the journal until deleted.
func (j *Journal) Delete(seq uint64) error {
	return j.db.Delete(keyFor(seq), pebble.Sync)
}

// ScanPending visits every record not yet ACKED, in sequence order.
// SENT records are included so an interrupted publish is retried.
func (j *Journal) ScanPending(fn func(Record) error) error {
	return j.scan(func(r Record) error {
		if r.State == StateAcked {
			return nil
		}
		return fn(r)
	})
}

func (j *Journal) scan(fn func(Record) error) error {
	iter, err := j.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("trade/"),
		UpperBound: []byte("trade/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		seq, err := parseKey(iter.Key())
		if err != nil {
			return err
		}
		rec, err := decodeRecord(seq, iter.Value())
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

func (j *Journal) update(seq uint64, mutate func(*Record)) error {
	rec, err := j.Get(seq)
	if err != nil {
		return err
	}
	mutate(&rec)
	rec.Time = time.Now().UnixNano()
	return j.db.Set(keyFor(seq), encodeRecord(rec), pebble.Sync)
}

func keyFor(seq uint64) []byte {
	return []byte(fmt.Sprintf("trade/%020d", seq))
}

func parseKey(b []byte) (uint64, error) {
	var seq uint64
	if _, err := fmt.Sscanf(string(b), "trade/%d", &seq); err != nil {
		return 0, fmt.Errorf("journal: bad key %q: %w", b, err)
	}
	return seq, nil
}
