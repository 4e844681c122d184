package service

import (
	"log"
	"sync"

	"github.com/kc356/order-book/domain/orderbook"
	"github.com/kc356/order-book/infra/journal"
	"github.com/kc356/order-book/infra/memory"
	"github.com/kc356/order-book/infra/sequence"
	"github.com/kc356/order-book/replay"
)

// OrderService serializes access to one book. The book requires
// external serialization; the mutex here is that serialization.
type OrderService struct {
	mu      sync.Mutex
	book    *orderbook.OrderBook
	pool    *memory.Pool[orderbook.Order]
	seq     *sequence.Sequencer
	journal *journal.Journal // nil disables journalling
}

// NewOrderService wires the service. journal may be nil for
// standalone use (tests).
func NewOrderService(
	book *orderbook.OrderBook,
	pool *memory.Pool[orderbook.Order],
	seq *sequence.Sequencer,
	j *journal.Journal,
) *OrderService {
	s := &OrderService{
		book:    book,
		pool:    pool,
		seq:     seq,
		journal: j,
	}
	book.Retire = func(o *orderbook.Order) { pool.Put(o) }
	return s
}

// Add submits an order and returns the trades it produced. Quantity
// must be positive; everything else follows the book's admission
// rules (silent rejection on duplicate id, unmatchable FillAndKill,
// market order with an empty opposite side).
func (s *OrderService) Add(
	orderType orderbook.OrderType,
	id orderbook.OrderID,
	side orderbook.Side,
	price orderbook.Price,
	qty orderbook.Quantity,
) []orderbook.Trade {
	if qty == 0 {
		return nil
	}
	if orderType == orderbook.Market {
		price = orderbook.InvalidPrice
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o := s.pool.Get()
	*o = orderbook.Order{
		ID:        id,
		Side:      side,
		Type:      orderType,
		Price:     price,
		Qty:       qty,
		Remaining: qty,
	}
	trades := s.book.Add(o)
	s.record(trades)
	return trades
}

// Cancel removes a resting order. Unknown ids are ignored.
func (s *OrderService) Cancel(id orderbook.OrderID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.book.Cancel(id)
}

// Modify replaces a resting order and returns any trades the
// replacement produced.
func (s *OrderService) Modify(m orderbook.OrderModify) []orderbook.Trade {
	if m.Quantity == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	trades := s.book.Modify(m)
	s.record(trades)
	return trades
}

// Size returns the number of resting orders.
func (s *OrderService) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.Size()
}

// Snapshot returns the aggregated per-level view of the book.
func (s *OrderService) Snapshot() orderbook.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.Snapshot()
}

// Preload replays an action file into the book, ignoring any expected
// result record. Returns the number of actions applied.
func (s *OrderService) Preload(path string) (int, error) {
	actions, _, err := replay.Load(path)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	trades := replay.Apply(s.book, actions)
	s.record(trades)
	return len(actions), nil
}

// record sequences trades and appends them to the journal. Journal
// failures are logged, not surfaced: the match already happened and
// must be reported to the submitter regardless.
func (s *OrderService) record(trades []orderbook.Trade) {
	for _, t := range trades {
		seq := s.seq.Next()
		if s.journal == nil {
			continue
		}
		err := s.journal.Append(journal.Record{
			Seq:        seq,
			BidOrderID: uint64(t.Bid.OrderID),
			AskOrderID: uint64(t.Ask.OrderID),
			BidPrice:   int64(t.Bid.Price),
			AskPrice:   int64(t.Ask.Price),
			Quantity:   uint64(t.Bid.Quantity),
		})
		if err != nil {
			log.Printf("[service] journal append failed for seq %d: %v", seq, err)
		}
	}
}
