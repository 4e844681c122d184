package journal

import (
	"errors"
	"testing"

	"github.com/cockroachdb/pebble"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestAppendAndGet(t *testing.T) {
	j := openTestJournal(t)

	in := Record{
		Seq:        1,
		BidOrderID: 10,
		AskOrderID: 20,
		BidPrice:   105,
		AskPrice:   100,
		Quantity:   35,
	}
	if err := j.Append(in); err != nil {
		t.Fatalf("append: %v", err)
	}

	out, err := j.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.State != StateNew {
		t.Errorf("state = %v, want NEW", out.State)
	}
	if out.BidOrderID != 10 || out.AskOrderID != 20 || out.BidPrice != 105 || out.AskPrice != 100 || out.Quantity != 35 {
		t.Errorf("round trip mismatch: %+v", out)
	}
	if out.Time == 0 {
		t.Error("append should stamp a time")
	}
}

func TestGetMissing(t *testing.T) {
	j := openTestJournal(t)
	if _, err := j.Get(99); !errors.Is(err, pebble.ErrNotFound) {
		t.Errorf("expected pebble.ErrNotFound, got %v", err)
	}
}

func TestStateTransitions(t *testing.T) {
	j := openTestJournal(t)
	if err := j.Append(Record{Seq: 7, Quantity: 1}); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := j.MarkSent(7); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	rec, _ := j.Get(7)
	if rec.State != StateSent || rec.Retries != 1 {
		t.Errorf("after sent: state=%v retries=%d", rec.State, rec.Retries)
	}

	if err := j.MarkSent(7); err != nil {
		t.Fatalf("second mark sent: %v", err)
	}
	rec, _ = j.Get(7)
	if rec.Retries != 2 {
		t.Errorf("retries = %d, want 2", rec.Retries)
	}

	if err := j.MarkAcked(7); err != nil {
		t.Fatalf("mark acked: %v", err)
	}
	rec, _ = j.Get(7)
	if rec.State != StateAcked {
		t.Errorf("after ack: state=%v", rec.State)
	}
}

func TestScanPendingSkipsAcked(t *testing.T) {
	j := openTestJournal(t)
	for seq := uint64(1); seq <= 5; seq++ {
		if err := j.Append(Record{Seq: seq, Quantity: seq}); err != nil {
			t.Fatalf("append %d: %v", seq, err)
		}
	}
	if err := j.MarkSent(2); err != nil {
		t.Fatal(err)
	}
	if err := j.MarkAcked(3); err != nil {
		t.Fatal(err)
	}

	var seen []uint64
	err := j.ScanPending(func(r Record) error {
		seen = append(seen, r.Seq)
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	want := []uint64{1, 2, 4, 5} // 3 is acked; 2 stays pending until acked
	if len(seen) != len(want) {
		t.Fatalf("scanned %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("scanned %v, want %v", seen, want)
		}
	}
}

func TestScanOrderedBySequence(t *testing.T) {
	j := openTestJournal(t)
	for _, seq := range []uint64{300, 2, 41} {
		if err := j.Append(Record{Seq: seq}); err != nil {
			t.Fatal(err)
		}
	}
	var seen []uint64
	if err := j.ScanPending(func(r Record) error {
		seen = append(seen, r.Seq)
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	want := []uint64{2, 41, 300}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("scanned %v, want %v", seen, want)
		}
	}
}

func TestDelete(t *testing.T) {
	j := openTestJournal(t)
	if err := j.Append(Record{Seq: 1}); err != nil {
		t.Fatal(err)
	}
	if err := j.Delete(1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := j.Get(1); !errors.Is(err, pebble.ErrNotFound) {
		t.Errorf("record should be gone, got %v", err)
	}
}

func TestDecodeRejectsCorruptValue(t *testing.T) {
	if _, err := decodeRecord(1, []byte("short")); !errors.Is(err, ErrCorruptRecord) {
		t.Errorf("expected ErrCorruptRecord, got %v", err)
	}
}
