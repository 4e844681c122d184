package orderbook

// PriceLevel is the FIFO queue of resting orders at one price on one
// side. Orders are linked intrusively through their next/prev fields,
// so enqueue and unlink are O(1) and positions stay stable under
// insertions and removals elsewhere in the queue.
type PriceLevel struct {
	Price    Price
	head     *Order
	tail     *Order
	totalQty Quantity
	count    int
}

// Head returns the oldest order at this level.
func (p *PriceLevel) Head() *Order { return p.head }

// Empty reports whether no orders rest at this level.
func (p *PriceLevel) Empty() bool { return p.head == nil }

// TotalQty is the sum of remaining quantities at this level.
func (p *PriceLevel) TotalQty() Quantity { return p.totalQty }

// Count is the number of resting orders at this level.
func (p *PriceLevel) Count() int { return p.count }

// Enqueue appends an order at the tail, preserving arrival order.
func (p *PriceLevel) Enqueue(o *Order) {
	if p.head == nil {
		p.head = o
		p.tail = o
	} else {
		p.tail.next = o
		o.prev = p.tail
		p.tail = o
	}
	p.totalQty += o.Remaining
	p.count++
}

// Unlink splices an order out of the queue. The order must currently
// be linked into this level.
func (p *PriceLevel) Unlink(o *Order) {
	if o.prev != nil {
		o.prev.next = o.next
	} else {
		p.head = o.next
	}
	if o.next != nil {
		o.next.prev = o.prev
	} else {
		p.tail = o.prev
	}
	o.next = nil
	o.prev = nil
	p.totalQty -= o.Remaining
	p.count--
}

// reduce keeps the level aggregate in step with a fill applied to one
// of its orders.
func (p *PriceLevel) reduce(qty Quantity) {
	p.totalQty -= qty
}
