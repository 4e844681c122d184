// Command obcli is an interactive shell around a single order book.
// It drives the book through the same five operations every other
// transport uses, plus Walk for the orders view; nothing here reaches
// into matching internals.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kc356/order-book/domain/orderbook"
	"github.com/kc356/order-book/replay"
)

type cli struct {
	book   *orderbook.OrderBook
	nextID orderbook.OrderID
	out    *bufio.Writer
}

func main() {
	c := &cli{
		book:   orderbook.New(),
		nextID: 1,
		out:    bufio.NewWriter(os.Stdout),
	}
	c.printHeader()
	c.printHelp()

	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(c.out, "> ")
		c.out.Flush()
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		args := strings.Fields(line)
		switch strings.ToLower(args[0]) {
		case "add":
			c.cmdAdd(args)
		case "modify":
			c.cmdModify(args)
		case "cancel":
			c.cmdCancel(args)
		case "preload":
			c.cmdPreload(args)
		case "book":
			c.cmdBook()
		case "orders":
			c.cmdOrders()
		case "help":
			c.printHelp()
		case "quit", "exit":
			fmt.Fprintln(c.out, "Goodbye!")
			c.out.Flush()
			return
		default:
			fmt.Fprintf(c.out, "Unknown command %q. Type 'help' for usage.\n", args[0])
		}
		c.out.Flush()
	}
	c.out.Flush()
}

func (c *cli) cmdAdd(args []string) {
	if len(args) != 5 {
		fmt.Fprintln(c.out, "Usage: add <side> <type> <price> <quantity>")
		return
	}
	side, err := parseSide(args[1])
	if err != nil {
		fmt.Fprintln(c.out, "Error:", err)
		return
	}
	orderType, err := parseOrderType(args[2])
	if err != nil {
		fmt.Fprintln(c.out, "Error:", err)
		return
	}
	price, err := parsePrice(args[3])
	if err != nil {
		fmt.Fprintln(c.out, "Error:", err)
		return
	}
	qty, err := parseQuantity(args[4])
	if err != nil {
		fmt.Fprintln(c.out, "Error:", err)
		return
	}

	if orderType != orderbook.Market && price == orderbook.InvalidPrice {
		fmt.Fprintln(c.out, "Error: price is required for non-market orders")
		return
	}

	id := c.nextID
	c.nextID++

	var o *orderbook.Order
	if orderType == orderbook.Market {
		o = orderbook.NewMarketOrder(id, side, qty)
	} else {
		o = orderbook.NewOrder(orderType, id, side, price, qty)
	}
	trades := c.book.Add(o)

	fmt.Fprintf(c.out, "Order added. ID: %d\n", id)
	c.printTrades(trades)
}

func (c *cli) cmdModify(args []string) {
	if len(args) != 5 {
		fmt.Fprintln(c.out, "Usage: modify <id> <side> <price> <quantity>")
		return
	}
	id, err := parseOrderID(args[1])
	if err != nil {
		fmt.Fprintln(c.out, "Error:", err)
		return
	}
	side, err := parseSide(args[2])
	if err != nil {
		fmt.Fprintln(c.out, "Error:", err)
		return
	}
	price, err := parsePrice(args[3])
	if err != nil {
		fmt.Fprintln(c.out, "Error:", err)
		return
	}
	qty, err := parseQuantity(args[4])
	if err != nil {
		fmt.Fprintln(c.out, "Error:", err)
		return
	}

	if price == orderbook.InvalidPrice {
		fmt.Fprintln(c.out, "Error: price is required for modify")
		return
	}

	trades := c.book.Modify(orderbook.OrderModify{OrderID: id, Side: side, Price: price, Quantity: qty})
	fmt.Fprintf(c.out, "Modify sent for order %d.\n", id)
	c.printTrades(trades)
}

func (c *cli) cmdCancel(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.out, "Usage: cancel <id>")
		return
	}
	id, err := parseOrderID(args[1])
	if err != nil {
		fmt.Fprintln(c.out, "Error:", err)
		return
	}
	c.book.Cancel(id)
	fmt.Fprintf(c.out, "Cancel sent for order %d.\n", id)
}

func (c *cli) cmdPreload(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.out, "Usage: preload <filename>")
		return
	}
	actions, result, err := replay.Load(args[1])
	if err != nil {
		fmt.Fprintln(c.out, "Error:", err)
		return
	}
	trades := replay.Apply(c.book, actions)
	fmt.Fprintf(c.out, "Applied %d actions, %d trades executed.\n", len(actions), len(trades))

	// Keep auto-assigned ids clear of preloaded ones.
	c.book.Walk(func(o *orderbook.Order) {
		if o.ID >= c.nextID {
			c.nextID = o.ID + 1
		}
	})

	if result != nil {
		snap := c.book.Snapshot()
		if c.book.Size() != result.AllCount ||
			len(snap.Bids) != result.BidLevels ||
			len(snap.Asks) != result.AskLevels {
			fmt.Fprintf(c.out, "Warning: expected %d orders / %d bid levels / %d ask levels, have %d/%d/%d\n",
				result.AllCount, result.BidLevels, result.AskLevels,
				c.book.Size(), len(snap.Bids), len(snap.Asks))
		}
	}
}

func (c *cli) cmdBook() {
	snap := c.book.Snapshot()

	fmt.Fprintln(c.out, strings.Repeat("-", 40))
	fmt.Fprintln(c.out, "              ORDER BOOK")
	fmt.Fprintln(c.out, strings.Repeat("-", 40))
	fmt.Fprintf(c.out, "%8s %10s %6s\n", "PRICE", "QUANTITY", "SIDE")

	// Asks print highest first so the spread sits in the middle.
	for i := len(snap.Asks) - 1; i >= 0; i-- {
		l := snap.Asks[i]
		fmt.Fprintf(c.out, "%8d %10d %6s\n", l.Price, l.Quantity, "SELL")
	}
	fmt.Fprintln(c.out, strings.Repeat("-", 26))
	for _, l := range snap.Bids {
		fmt.Fprintf(c.out, "%8d %10d %6s\n", l.Price, l.Quantity, "BUY")
	}
	fmt.Fprintf(c.out, "Total orders: %d\n", c.book.Size())
}

func (c *cli) cmdOrders() {
	fmt.Fprintf(c.out, "%8s %6s %16s %8s %10s %10s %10s\n",
		"ID", "SIDE", "TYPE", "PRICE", "INITIAL", "REMAINING", "FILLED")
	c.book.Walk(func(o *orderbook.Order) {
		fmt.Fprintf(c.out, "%8d %6s %16s %8d %10d %10d %10d\n",
			o.ID, strings.ToUpper(o.Side.String()), o.Type, o.Price, o.Qty, o.Remaining, o.Filled())
	})
	fmt.Fprintf(c.out, "Total orders: %d\n", c.book.Size())
}

func (c *cli) printTrades(trades []orderbook.Trade) {
	if len(trades) == 0 {
		return
	}
	fmt.Fprintf(c.out, "Trades executed: %d\n", len(trades))
	for _, t := range trades {
		fmt.Fprintf(c.out, "  %d -> %d @ %d x %d\n",
			t.Bid.OrderID, t.Ask.OrderID, t.Ask.Price, t.Bid.Quantity)
	}
}

func (c *cli) printHeader() {
	fmt.Fprintln(c.out, strings.Repeat("=", 40))
	fmt.Fprintln(c.out, "           ORDER BOOK CLI")
	fmt.Fprintln(c.out, strings.Repeat("=", 40))
}

func (c *cli) printHelp() {
	fmt.Fprint(c.out, `
Commands:
  add <side> <type> <price> <quantity>   Add a new order
  modify <id> <side> <price> <quantity>  Modify an existing order
  cancel <id>                            Cancel an order
  preload <filename>                     Load actions from a file
  book                                   Show the order book
  orders                                 Show all resting orders
  help                                   Show this help
  quit                                   Exit

Side:  B (buy) or S (sell)
Type:  GTC, FAK, or M (market)
Price: integer ticks; 0 for market orders
`)
}

func parseSide(tok string) (orderbook.Side, error) {
	switch strings.ToUpper(tok) {
	case "B":
		return orderbook.Buy, nil
	case "S":
		return orderbook.Sell, nil
	default:
		return 0, fmt.Errorf("invalid side %q: use B or S", tok)
	}
}

func parseOrderType(tok string) (orderbook.OrderType, error) {
	switch strings.ToUpper(tok) {
	case "GTC":
		return orderbook.GoodTillCancel, nil
	case "FAK":
		return orderbook.FillAndKill, nil
	case "M":
		return orderbook.Market, nil
	default:
		return 0, fmt.Errorf("invalid order type %q: use GTC, FAK, or M", tok)
	}
}

func parsePrice(tok string) (orderbook.Price, error) {
	if tok == "" || tok == "0" {
		return orderbook.InvalidPrice, nil
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid price %q: use a non-negative integer", tok)
	}
	return orderbook.Price(v), nil
}

func parseQuantity(tok string) (orderbook.Quantity, error) {
	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("invalid quantity %q: use a positive integer", tok)
	}
	return orderbook.Quantity(v), nil
}

func parseOrderID(tok string) (orderbook.OrderID, error) {
	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid order id %q", tok)
	}
	return orderbook.OrderID(v), nil
}
