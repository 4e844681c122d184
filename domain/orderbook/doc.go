// Package orderbook implements the in-memory limit-order book and its
// continuous matching engine for a single instrument. It maintains two
// red-black trees of price levels (bids descending, asks ascending),
// an intrusive FIFO queue per level, and an order directory keyed by
// id for O(1) cancellation.
//
// The book is a single-writer structure with no internal locking and
// no I/O. Callers that share a book across goroutines must serialize
// access themselves; the service package does exactly that.
package orderbook
