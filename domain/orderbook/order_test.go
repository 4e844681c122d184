package orderbook

import "testing"

func TestOrderFillAccounting(t *testing.T) {
	o := gtc(1, Buy, 100, 50)
	o.Fill(20)
	if o.Remaining != 30 || o.Filled() != 20 {
		t.Errorf("after fill: remaining=%d filled=%d", o.Remaining, o.Filled())
	}
	o.Fill(30)
	if !o.IsFilled() {
		t.Error("order should be filled")
	}
}

func TestFillBeyondRemainingPanics(t *testing.T) {
	o := gtc(1, Buy, 100, 10)
	defer func() {
		if recover() == nil {
			t.Error("expected panic when filling beyond remaining quantity")
		}
	}()
	o.Fill(11)
}

func TestRepriceNonMarketPanics(t *testing.T) {
	o := gtc(1, Buy, 100, 10)
	defer func() {
		if recover() == nil {
			t.Error("expected panic when repricing a non-market order")
		}
	}()
	o.ToGoodTillCancel(105)
}

func TestMarketOrderCarriesInvalidPriceUntilPegged(t *testing.T) {
	o := NewMarketOrder(1, Sell, 10)
	if o.Price != InvalidPrice {
		t.Errorf("unpegged market order price = %d, want InvalidPrice", o.Price)
	}
	o.ToGoodTillCancel(95)
	if o.Type != GoodTillCancel || o.Price != 95 {
		t.Errorf("after peg: type=%v price=%d", o.Type, o.Price)
	}
}
