package replay

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/kc356/order-book/domain/orderbook"
)

func TestActionFiles(t *testing.T) {
	files := []string{
		"Match_GoodTillCancel.txt",
		"Match_FillAndKill.txt",
		"Match_FillOrKill_Hit.txt",
		"Match_Market.txt",
		"Match_PriceTime.txt",
		"Cancel_Success.txt",
		"Modify_Side.txt",
	}
	for _, name := range files {
		t.Run(name, func(t *testing.T) {
			actions, result, err := Load(filepath.Join("testdata", name))
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if result == nil {
				t.Fatal("file carries no result record")
			}

			book := orderbook.New()
			Apply(book, actions)

			if book.Size() != result.AllCount {
				t.Errorf("size = %d, want %d", book.Size(), result.AllCount)
			}
			snap := book.Snapshot()
			if len(snap.Bids) != result.BidLevels {
				t.Errorf("bid levels = %d, want %d", len(snap.Bids), result.BidLevels)
			}
			if len(snap.Asks) != result.AskLevels {
				t.Errorf("ask levels = %d, want %d", len(snap.Asks), result.AskLevels)
			}
		})
	}
}

func TestParseSkipsCommentsAndBlanks(t *testing.T) {
	input := "# header\n\nA B GoodTillCancel 100 10 1\n\n# trailing comment\nC 1\n"
	actions, result, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if result != nil {
		t.Error("no R record was present, result should be nil")
	}
	if len(actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(actions))
	}
	if actions[0].Type != ActionAdd || actions[1].Type != ActionCancel {
		t.Errorf("unexpected actions: %+v", actions)
	}
}

func TestParseStopsAtResult(t *testing.T) {
	input := "A B GoodTillCancel 100 10 1\nR 1 1 0\nC 1\n"
	actions, result, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(actions) != 1 {
		t.Errorf("records after R must be ignored, got %d actions", len(actions))
	}
	if result == nil || result.AllCount != 1 || result.BidLevels != 1 || result.AskLevels != 0 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestParseMarketOrderPrice(t *testing.T) {
	actions, _, err := Parse(strings.NewReader("A B Market 0 30 3\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if actions[0].OrderType != orderbook.Market {
		t.Fatalf("expected market order, got %v", actions[0].OrderType)
	}

	book := orderbook.New()
	book.Add(orderbook.NewOrder(orderbook.GoodTillCancel, 1, orderbook.Sell, 50, 30))
	trades := Apply(book, actions)
	if len(trades) != 1 || trades[0].Bid.Price != 50 {
		t.Errorf("market order should peg to the best ask, trades=%+v", trades)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"unknown record", "X B GoodTillCancel 100 10 1\n", `unknown record "X"`},
		{"bad side", "A Q GoodTillCancel 100 10 1\n", `unknown side "Q"`},
		{"bad type", "A B GoodTilCancel 100 10 1\n", `unknown order type "GoodTilCancel"`},
		{"bad price", "A B GoodTillCancel -5 10 1\n", `bad price "-5"`},
		{"zero quantity", "A B GoodTillCancel 100 0 1\n", `bad quantity "0"`},
		{"bad id", "C abc\n", `bad order id "abc"`},
		{"short add", "A B GoodTillCancel 100 10\n", "add record needs 5 tokens"},
		{"short result", "R 1 1\n", "result record needs 3 tokens"},
		{"line number", "A B GoodTillCancel 100 10 1\nA B GoodTillCancel 100 10\n", "line 2:"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(strings.NewReader(tc.input))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestApplyCollectsTrades(t *testing.T) {
	input := strings.Join([]string{
		"A B GoodTillCancel 100 50 1",
		"A B GoodTillCancel 100 30 2",
		"A S GoodTillCancel 100 60 3",
	}, "\n")
	actions, _, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	book := orderbook.New()
	trades := Apply(book, actions)
	if len(trades) != 2 {
		t.Fatalf("expected 2 trades, got %d", len(trades))
	}
	if trades[0].Bid.OrderID != 1 || trades[1].Bid.OrderID != 2 {
		t.Errorf("trades out of priority order: %+v", trades)
	}
}
