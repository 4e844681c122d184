package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kc356/order-book/domain/orderbook"
	"github.com/kc356/order-book/infra/journal"
	"github.com/kc356/order-book/infra/memory"
	"github.com/kc356/order-book/infra/sequence"
)

func newTestService(t *testing.T, j *journal.Journal) *OrderService {
	t.Helper()
	pool := memory.NewPool(func() *orderbook.Order { return &orderbook.Order{} })
	return NewOrderService(orderbook.New(), pool, sequence.New(0), j)
}

func TestAddCancelModify(t *testing.T) {
	s := newTestService(t, nil)

	trades := s.Add(orderbook.GoodTillCancel, 1, orderbook.Buy, 100, 50)
	if len(trades) != 0 || s.Size() != 1 {
		t.Fatalf("expected resting order, trades=%d size=%d", len(trades), s.Size())
	}

	trades = s.Modify(orderbook.OrderModify{OrderID: 1, Side: orderbook.Buy, Price: 101, Quantity: 50})
	if len(trades) != 0 || s.Size() != 1 {
		t.Fatalf("modify should keep one resting order, size=%d", s.Size())
	}
	snap := s.Snapshot()
	if len(snap.Bids) != 1 || snap.Bids[0].Price != 101 {
		t.Errorf("order should now rest at 101, got %+v", snap.Bids)
	}

	s.Cancel(1)
	if s.Size() != 0 {
		t.Errorf("expected empty book, size=%d", s.Size())
	}
}

func TestZeroQuantityRejected(t *testing.T) {
	s := newTestService(t, nil)
	if trades := s.Add(orderbook.GoodTillCancel, 1, orderbook.Buy, 100, 0); len(trades) != 0 {
		t.Errorf("zero quantity must not trade")
	}
	if s.Size() != 0 {
		t.Errorf("zero quantity must not rest, size=%d", s.Size())
	}
}

func TestMarketOrderPriceIgnored(t *testing.T) {
	s := newTestService(t, nil)
	s.Add(orderbook.GoodTillCancel, 1, orderbook.Sell, 200, 40)
	// Whatever price the submitter sends with a market order is
	// discarded; the book pegs to the best ask.
	trades := s.Add(orderbook.Market, 2, orderbook.Buy, 999, 30)
	if len(trades) != 1 || trades[0].Bid.Price != 200 {
		t.Fatalf("market buy should execute at 200, got %+v", trades)
	}
}

func TestTradesAreJournalled(t *testing.T) {
	j, err := journal.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	defer j.Close()

	s := newTestService(t, j)
	s.Add(orderbook.GoodTillCancel, 1, orderbook.Buy, 100, 50)
	s.Add(orderbook.GoodTillCancel, 2, orderbook.Buy, 100, 30)
	s.Add(orderbook.GoodTillCancel, 3, orderbook.Sell, 100, 60)

	var recs []journal.Record
	if err := j.ScanPending(func(r journal.Record) error {
		recs = append(recs, r)
		return nil
	}); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 journalled trades, got %d", len(recs))
	}
	if recs[0].Seq != 1 || recs[1].Seq != 2 {
		t.Errorf("sequence numbers wrong: %d, %d", recs[0].Seq, recs[1].Seq)
	}
	if recs[0].BidOrderID != 1 || recs[0].Quantity != 50 {
		t.Errorf("first record mismatch: %+v", recs[0])
	}
	if recs[1].BidOrderID != 2 || recs[1].Quantity != 10 {
		t.Errorf("second record mismatch: %+v", recs[1])
	}
}

func TestPreload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions.txt")
	data := "A B GoodTillCancel 100 50 1\nA S GoodTillCancel 105 20 2\nR 2 1 1\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s := newTestService(t, nil)
	n, err := s.Preload(path)
	if err != nil {
		t.Fatalf("preload: %v", err)
	}
	if n != 2 {
		t.Errorf("applied %d actions, want 2", n)
	}
	if s.Size() != 2 {
		t.Errorf("size = %d, want 2", s.Size())
	}
}

func TestPreloadMissingFile(t *testing.T) {
	s := newTestService(t, nil)
	if _, err := s.Preload(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
