// Package grpcserver adapts the order service to the OrderEntry gRPC
// API. It translates wire discriminants, never touching the book
// directly.
package grpcserver

import (
	"context"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/kc356/order-book/api/pb"
	"github.com/kc356/order-book/domain/orderbook"
	"github.com/kc356/order-book/service"
)

type Server struct {
	pb.UnimplementedOrderEntryServer
	svc *service.OrderService
}

func NewServer(svc *service.OrderService) *Server {
	return &Server{svc: svc}
}

func (s *Server) AddOrder(ctx context.Context, req *pb.AddOrderRequest) (*pb.AddOrderResponse, error) {
	side, err := toSide(req.Side)
	if err != nil {
		return nil, err
	}
	orderType, err := toOrderType(req.Type)
	if err != nil {
		return nil, err
	}
	if req.Quantity == 0 {
		return nil, status.Error(codes.InvalidArgument, "quantity must be positive")
	}

	trades := s.svc.Add(
		orderType,
		orderbook.OrderID(req.OrderId),
		side,
		orderbook.Price(req.Price),
		orderbook.Quantity(req.Quantity),
	)

	log.Printf("[grpc] AddOrder id=%d side=%v type=%v price=%d qty=%d trades=%d",
		req.OrderId, side, orderType, req.Price, req.Quantity, len(trades))

	return &pb.AddOrderResponse{Trades: toTrades(trades)}, nil
}

func (s *Server) CancelOrder(ctx context.Context, req *pb.CancelOrderRequest) (*pb.CancelOrderResponse, error) {
	s.svc.Cancel(orderbook.OrderID(req.OrderId))
	log.Printf("[grpc] CancelOrder id=%d", req.OrderId)
	return &pb.CancelOrderResponse{}, nil
}

func (s *Server) ModifyOrder(ctx context.Context, req *pb.ModifyOrderRequest) (*pb.ModifyOrderResponse, error) {
	side, err := toSide(req.Side)
	if err != nil {
		return nil, err
	}
	if req.Quantity == 0 {
		return nil, status.Error(codes.InvalidArgument, "quantity must be positive")
	}

	trades := s.svc.Modify(orderbook.OrderModify{
		OrderID:  orderbook.OrderID(req.OrderId),
		Side:     side,
		Price:    orderbook.Price(req.Price),
		Quantity: orderbook.Quantity(req.Quantity),
	})

	log.Printf("[grpc] ModifyOrder id=%d side=%v price=%d qty=%d trades=%d",
		req.OrderId, side, req.Price, req.Quantity, len(trades))

	return &pb.ModifyOrderResponse{Trades: toTrades(trades)}, nil
}

func (s *Server) GetSnapshot(ctx context.Context, req *pb.SnapshotRequest) (*pb.SnapshotResponse, error) {
	snap := s.svc.Snapshot()
	resp := &pb.SnapshotResponse{
		Size: uint64(s.svc.Size()),
		Bids: make([]*pb.Level, 0, len(snap.Bids)),
		Asks: make([]*pb.Level, 0, len(snap.Asks)),
	}
	for _, l := range snap.Bids {
		resp.Bids = append(resp.Bids, &pb.Level{Price: int64(l.Price), Quantity: uint64(l.Quantity)})
	}
	for _, l := range snap.Asks {
		resp.Asks = append(resp.Asks, &pb.Level{Price: int64(l.Price), Quantity: uint64(l.Quantity)})
	}
	return resp, nil
}

func toSide(v int32) (orderbook.Side, error) {
	switch v {
	case 0:
		return orderbook.Buy, nil
	case 1:
		return orderbook.Sell, nil
	default:
		return 0, status.Errorf(codes.InvalidArgument, "unknown side %d", v)
	}
}

func toOrderType(v int32) (orderbook.OrderType, error) {
	switch v {
	case 0:
		return orderbook.GoodTillCancel, nil
	case 1:
		return orderbook.FillAndKill, nil
	case 2:
		return orderbook.Market, nil
	default:
		return 0, status.Errorf(codes.InvalidArgument, "unknown order type %d", v)
	}
}

func toTrades(trades []orderbook.Trade) []*pb.Trade {
	out := make([]*pb.Trade, 0, len(trades))
	for _, t := range trades {
		out = append(out, &pb.Trade{
			Bid: &pb.TradeSide{
				OrderId:  uint64(t.Bid.OrderID),
				Price:    int64(t.Bid.Price),
				Quantity: uint64(t.Bid.Quantity),
			},
			Ask: &pb.TradeSide{
				OrderId:  uint64(t.Ask.OrderID),
				Price:    int64(t.Ask.Price),
				Quantity: uint64(t.Ask.Quantity),
			},
		})
	}
	return out
}
