package orderbook

// orderEntry is a directory slot: the resting order and the level it
// rests in. The level pointer is the cursor that makes cancel O(1).
type orderEntry struct {
	order *Order
	level *PriceLevel
}

// OrderBook holds the resting interest of one instrument and matches
// crossable orders continuously.
type OrderBook struct {
	bids   *levelTree
	asks   *levelTree
	orders map[OrderID]orderEntry

	// Retire, when set, is invoked for every order the book is done
	// with: filled, cancelled, or rejected at submission. The service
	// layer uses it to recycle order allocations.
	Retire func(*Order)
}

// New creates an empty book.
func New() *OrderBook {
	return &OrderBook{
		bids:   newLevelTree(),
		asks:   newLevelTree(),
		orders: make(map[OrderID]orderEntry),
	}
}

// LevelInfo is a one-level snapshot: the price and the sum of
// remaining quantities resting there.
type LevelInfo struct {
	Price    Price
	Quantity Quantity
}

// Snapshot is a read-only view of the book: bids from highest to
// lowest price, asks from lowest to highest.
type Snapshot struct {
	Bids []LevelInfo
	Asks []LevelInfo
}

// OrderModify describes a cancel-then-add request. The replacement
// keeps the original order's id and type; side, price, and quantity
// come from the request.
type OrderModify struct {
	OrderID  OrderID
	Side     Side
	Price    Price
	Quantity Quantity
}

// Add submits an order and returns the trades it produced.
//
// A duplicate id, a market order with an empty opposite side, and an
// unmatchable FillAndKill are all rejected silently with no trades
// and no book mutation. Market orders are pegged to the best opposite
// quote and converted to GoodTillCancel before insertion.
func (b *OrderBook) Add(o *Order) []Trade {
	if _, ok := b.orders[o.ID]; ok {
		b.retire(o)
		return nil
	}

	if o.Type == Market {
		var best *PriceLevel
		if o.Side == Buy {
			best = b.asks.Min()
		} else {
			best = b.bids.Max()
		}
		if best == nil {
			// No reference price to peg against; drop the order.
			b.retire(o)
			return nil
		}
		o.ToGoodTillCancel(best.Price)
	}

	if o.Type == FillAndKill && !b.canMatch(o.Side, o.Price) {
		b.retire(o)
		return nil
	}

	var lvl *PriceLevel
	if o.Side == Buy {
		lvl = b.bids.Upsert(o.Price)
	} else {
		lvl = b.asks.Upsert(o.Price)
	}
	lvl.Enqueue(o)
	b.orders[o.ID] = orderEntry{order: o, level: lvl}

	return b.matchOrders()
}

// Cancel removes a resting order. Unknown ids are ignored, so cancel
// is idempotent.
func (b *OrderBook) Cancel(id OrderID) {
	entry, ok := b.orders[id]
	if !ok {
		return
	}
	delete(b.orders, id)

	lvl := entry.level
	lvl.Unlink(entry.order)
	if lvl.Empty() {
		if entry.order.Side == Buy {
			b.bids.Delete(lvl.Price)
		} else {
			b.asks.Delete(lvl.Price)
		}
	}
	b.retire(entry.order)
}

// Modify replaces a resting order with a new one carrying the same id
// and type but the requested side, price, and quantity. The
// replacement joins the tail of its new level, losing time priority.
// Unknown ids produce no trades and no change.
func (b *OrderBook) Modify(m OrderModify) []Trade {
	entry, ok := b.orders[m.OrderID]
	if !ok {
		return nil
	}
	orderType := entry.order.Type
	b.Cancel(m.OrderID)
	return b.Add(NewOrder(orderType, m.OrderID, m.Side, m.Price, m.Quantity))
}

// Size returns the number of resting orders.
func (b *OrderBook) Size() int { return len(b.orders) }

// BestBid returns the highest resting buy level, or nil.
func (b *OrderBook) BestBid() *PriceLevel { return b.bids.Max() }

// BestAsk returns the lowest resting sell level, or nil.
func (b *OrderBook) BestAsk() *PriceLevel { return b.asks.Min() }

// Snapshot aggregates the book into per-level totals.
func (b *OrderBook) Snapshot() Snapshot {
	s := Snapshot{
		Bids: make([]LevelInfo, 0, b.bids.Size()),
		Asks: make([]LevelInfo, 0, b.asks.Size()),
	}
	b.bids.Descend(func(lvl *PriceLevel) bool {
		s.Bids = append(s.Bids, LevelInfo{Price: lvl.Price, Quantity: lvl.TotalQty()})
		return true
	})
	b.asks.Ascend(func(lvl *PriceLevel) bool {
		s.Asks = append(s.Asks, LevelInfo{Price: lvl.Price, Quantity: lvl.TotalQty()})
		return true
	})
	return s
}

// Walk visits every resting order: bids from best to worst, then asks
// from best to worst, FIFO within each level. The visitor must not
// mutate the book.
func (b *OrderBook) Walk(visit func(*Order)) {
	b.bids.Descend(func(lvl *PriceLevel) bool {
		for o := lvl.head; o != nil; o = o.next {
			visit(o)
		}
		return true
	})
	b.asks.Ascend(func(lvl *PriceLevel) bool {
		for o := lvl.head; o != nil; o = o.next {
			visit(o)
		}
		return true
	})
}

// canMatch reports whether an order at price on side would cross the
// current opposite best.
func (b *OrderBook) canMatch(side Side, price Price) bool {
	if side == Buy {
		best := b.asks.Min()
		return best != nil && price >= best.Price
	}
	best := b.bids.Max()
	return best != nil && price <= best.Price
}

// matchOrders crosses top-of-book until no further match is possible.
//
// Each pass consumes the best bid and best ask queues head-to-head in
// arrival order. After a pass, a partially filled FillAndKill order
// left at the head of either top level is dropped; if that exposes a
// still-crossable level the loop runs again. On return the book is
// never crossed.
func (b *OrderBook) matchOrders() []Trade {
	var trades []Trade

	for {
		bidLvl := b.bids.Max()
		askLvl := b.asks.Min()
		if bidLvl == nil || askLvl == nil {
			break
		}
		if bidLvl.Price < askLvl.Price {
			break
		}

		for !bidLvl.Empty() && !askLvl.Empty() {
			bid := bidLvl.Head()
			ask := askLvl.Head()

			qty := bid.Remaining
			if ask.Remaining < qty {
				qty = ask.Remaining
			}

			bid.Fill(qty)
			bidLvl.reduce(qty)
			ask.Fill(qty)
			askLvl.reduce(qty)

			// Capture both halves before a filled order is retired.
			tr := Trade{
				Bid: TradeInfo{OrderID: bid.ID, Price: bid.Price, Quantity: qty},
				Ask: TradeInfo{OrderID: ask.ID, Price: ask.Price, Quantity: qty},
			}

			if bid.IsFilled() {
				bidLvl.Unlink(bid)
				delete(b.orders, bid.ID)
				b.retire(bid)
			}
			if ask.IsFilled() {
				askLvl.Unlink(ask)
				delete(b.orders, ask.ID)
				b.retire(ask)
			}
			if bidLvl.Empty() {
				b.bids.Delete(bidLvl.Price)
			}
			if askLvl.Empty() {
				b.asks.Delete(askLvl.Price)
			}

			trades = append(trades, tr)
		}

		if lvl := b.bids.Max(); lvl != nil {
			if head := lvl.Head(); head.Type == FillAndKill {
				b.Cancel(head.ID)
			}
		}
		if lvl := b.asks.Min(); lvl != nil {
			if head := lvl.Head(); head.Type == FillAndKill {
				b.Cancel(head.ID)
			}
		}
	}

	return trades
}

func (b *OrderBook) retire(o *Order) {
	if b.Retire != nil {
		b.Retire(o)
	}
}
