package orderbook

// TradeInfo is one half of a match: the resting order's id, its own
// resting price, and the matched size.
type TradeInfo struct {
	OrderID  OrderID
	Price    Price
	Quantity Quantity
}

// Trade records a single match. Each half carries its participant's
// resting price, so the bid and ask halves may disagree on price when
// a taker crossed the spread; quantities are always equal.
type Trade struct {
	Bid TradeInfo
	Ask TradeInfo
}
