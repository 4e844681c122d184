package orderbook

import "testing"

func BenchmarkAddResting(b *testing.B) {
	book := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		book.Add(gtc(OrderID(i+1), Buy, Price(100+i%64), 10))
	}
}

func BenchmarkAddAndCross(b *testing.B) {
	book := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := OrderID(2*i + 1)
		book.Add(gtc(id, Buy, 100, 10))
		book.Add(gtc(id+1, Sell, 100, 10))
	}
}

func BenchmarkCancel(b *testing.B) {
	book := New()
	for i := 0; i < b.N; i++ {
		book.Add(gtc(OrderID(i+1), Buy, Price(100+i%64), 10))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		book.Cancel(OrderID(i + 1))
	}
}

func BenchmarkSnapshot(b *testing.B) {
	book := New()
	for i := 0; i < 1024; i++ {
		book.Add(gtc(OrderID(i+1), Buy, Price(1+i%128), 10))
		book.Add(gtc(OrderID(100_000+i), Sell, Price(200+i%128), 10))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = book.Snapshot()
	}
}
