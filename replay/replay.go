// Package replay reads the line-based action-file format used for
// test replay and book preloading. Files contain Add/Modify/Cancel
// records and may end with an expected-result record consumed by test
// drivers; the book never sees result records.
package replay

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kc356/order-book/domain/orderbook"
)

type ActionType int

const (
	ActionAdd ActionType = iota
	ActionModify
	ActionCancel
)

// Action is one parsed order-management record.
type Action struct {
	Type      ActionType
	OrderType orderbook.OrderType
	Side      orderbook.Side
	Price     orderbook.Price
	Quantity  orderbook.Quantity
	OrderID   orderbook.OrderID
}

// Result is the expected book shape asserted by a terminating R record.
type Result struct {
	AllCount  int
	BidLevels int
	AskLevels int
}

// Load reads an action file from disk. See Parse.
func Load(path string) ([]Action, *Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads actions until EOF or a terminating R record. Blank
// lines and lines starting with '#' are ignored. The returned Result
// is nil when the input carries no R record. Malformed records fail
// with the line number and offending token.
func Parse(r io.Reader) ([]Action, *Result, error) {
	var actions []Action
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Split(text, " ")
		switch fields[0] {
		case "A":
			a, err := parseAdd(fields)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", line, err)
			}
			actions = append(actions, a)
		case "M":
			a, err := parseModify(fields)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", line, err)
			}
			actions = append(actions, a)
		case "C":
			a, err := parseCancel(fields)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", line, err)
			}
			actions = append(actions, a)
		case "R":
			res, err := parseResult(fields)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", line, err)
			}
			return actions, res, nil
		default:
			return nil, nil, fmt.Errorf("line %d: unknown record %q", line, fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	return actions, nil, nil
}

// Apply drives a book through a sequence of actions and returns every
// trade produced along the way.
func Apply(b *orderbook.OrderBook, actions []Action) []orderbook.Trade {
	var trades []orderbook.Trade
	for _, a := range actions {
		switch a.Type {
		case ActionAdd:
			var o *orderbook.Order
			if a.OrderType == orderbook.Market {
				o = orderbook.NewMarketOrder(a.OrderID, a.Side, a.Quantity)
			} else {
				o = orderbook.NewOrder(a.OrderType, a.OrderID, a.Side, a.Price, a.Quantity)
			}
			trades = append(trades, b.Add(o)...)
		case ActionModify:
			trades = append(trades, b.Modify(orderbook.OrderModify{
				OrderID:  a.OrderID,
				Side:     a.Side,
				Price:    a.Price,
				Quantity: a.Quantity,
			})...)
		case ActionCancel:
			b.Cancel(a.OrderID)
		}
	}
	return trades
}

func parseAdd(fields []string) (Action, error) {
	if len(fields) != 6 {
		return Action{}, fmt.Errorf("add record needs 5 tokens, got %d", len(fields)-1)
	}
	side, err := parseSide(fields[1])
	if err != nil {
		return Action{}, err
	}
	orderType, err := parseOrderType(fields[2])
	if err != nil {
		return Action{}, err
	}
	price, err := parsePrice(fields[3])
	if err != nil {
		return Action{}, err
	}
	qty, err := parseQuantity(fields[4])
	if err != nil {
		return Action{}, err
	}
	id, err := parseOrderID(fields[5])
	if err != nil {
		return Action{}, err
	}
	return Action{Type: ActionAdd, Side: side, OrderType: orderType, Price: price, Quantity: qty, OrderID: id}, nil
}

func parseModify(fields []string) (Action, error) {
	if len(fields) != 5 {
		return Action{}, fmt.Errorf("modify record needs 4 tokens, got %d", len(fields)-1)
	}
	id, err := parseOrderID(fields[1])
	if err != nil {
		return Action{}, err
	}
	side, err := parseSide(fields[2])
	if err != nil {
		return Action{}, err
	}
	price, err := parsePrice(fields[3])
	if err != nil {
		return Action{}, err
	}
	qty, err := parseQuantity(fields[4])
	if err != nil {
		return Action{}, err
	}
	return Action{Type: ActionModify, OrderID: id, Side: side, Price: price, Quantity: qty}, nil
}

func parseCancel(fields []string) (Action, error) {
	if len(fields) != 2 {
		return Action{}, fmt.Errorf("cancel record needs 1 token, got %d", len(fields)-1)
	}
	id, err := parseOrderID(fields[1])
	if err != nil {
		return Action{}, err
	}
	return Action{Type: ActionCancel, OrderID: id}, nil
}

func parseResult(fields []string) (*Result, error) {
	if len(fields) != 4 {
		return nil, fmt.Errorf("result record needs 3 tokens, got %d", len(fields)-1)
	}
	var vals [3]int
	for i, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad result count %q", f)
		}
		vals[i] = n
	}
	return &Result{AllCount: vals[0], BidLevels: vals[1], AskLevels: vals[2]}, nil
}

func parseSide(tok string) (orderbook.Side, error) {
	switch tok {
	case "B":
		return orderbook.Buy, nil
	case "S":
		return orderbook.Sell, nil
	default:
		return 0, fmt.Errorf("unknown side %q", tok)
	}
}

func parseOrderType(tok string) (orderbook.OrderType, error) {
	switch tok {
	case "GoodTillCancel":
		return orderbook.GoodTillCancel, nil
	case "FillAndKill":
		return orderbook.FillAndKill, nil
	case "Market":
		return orderbook.Market, nil
	case "GoodForDay":
		return orderbook.GoodForDay, nil
	case "FillOrKill":
		return orderbook.FillOrKill, nil
	default:
		return 0, fmt.Errorf("unknown order type %q", tok)
	}
}

func parsePrice(tok string) (orderbook.Price, error) {
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("bad price %q", tok)
	}
	return orderbook.Price(v), nil
}

func parseQuantity(tok string) (orderbook.Quantity, error) {
	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("bad quantity %q", tok)
	}
	return orderbook.Quantity(v), nil
}

func parseOrderID(tok string) (orderbook.OrderID, error) {
	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad order id %q", tok)
	}
	return orderbook.OrderID(v), nil
}
