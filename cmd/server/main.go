package main

import (
	"context"
	"flag"
	"log"
	"net"
	"strings"
	"time"

	"google.golang.org/grpc"

	"github.com/kc356/order-book/api/grpcserver"
	pb "github.com/kc356/order-book/api/pb"
	"github.com/kc356/order-book/domain/orderbook"
	"github.com/kc356/order-book/infra/journal"
	"github.com/kc356/order-book/infra/kafka"
	"github.com/kc356/order-book/infra/memory"
	"github.com/kc356/order-book/infra/sequence"
	"github.com/kc356/order-book/jobs/reporter"
	"github.com/kc356/order-book/replay"
	"github.com/kc356/order-book/service"
)

func main() {
	var (
		listenAddr   = flag.String("listen", ":50051", "gRPC listen address")
		journalDir   = flag.String("journal", "./journal", "execution journal directory")
		preloadFile  = flag.String("preload", "", "action file to preload into the book")
		brokers      = flag.String("brokers", "", "comma-separated Kafka brokers (empty disables Kafka)")
		actionsTopic = flag.String("actions-topic", "orderbook.actions", "inbound action-stream topic")
		reportsTopic = flag.String("reports-topic", "orderbook.reports", "execution-reports topic")
		group        = flag.String("group", "orderbook-engine", "consumer group for the action stream")
	)
	flag.Parse()

	// ---------------- Journal ----------------

	jnl, err := journal.Open(*journalDir)
	if err != nil {
		log.Fatalf("journal init failed: %v", err)
	}
	defer jnl.Close()

	// ---------------- Domain ----------------

	book := orderbook.New()
	pool := memory.NewPool(func() *orderbook.Order { return &orderbook.Order{} })
	seqGen := sequence.New(0)

	// ---------------- Service ----------------

	svc := service.NewOrderService(book, pool, seqGen, jnl)

	if *preloadFile != "" {
		n, err := svc.Preload(*preloadFile)
		if err != nil {
			log.Fatalf("preload failed: %v", err)
		}
		log.Printf("preloaded %d actions, %d orders resting", n, svc.Size())
	}

	// ---------------- Background jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *brokers != "" {
		brokerList := strings.Split(*brokers, ",")

		rep, err := reporter.New(jnl, brokerList, *reportsTopic, 250*time.Millisecond)
		if err != nil {
			log.Fatalf("reporter init failed: %v", err)
		}
		defer rep.Close()
		go rep.Run(ctx)

		consumer := kafka.NewConsumer(brokerList, *actionsTopic, *group)
		defer consumer.Close()
		go func() {
			err := consumer.Run(ctx, func(value []byte) error {
				actions, _, err := replay.Parse(strings.NewReader(string(value)))
				if err != nil {
					return err
				}
				for _, a := range actions {
					applyAction(svc, a)
				}
				return nil
			})
			if err != nil && ctx.Err() == nil {
				log.Printf("action stream stopped: %v", err)
			}
		}()
	}

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", *listenAddr)
	if err != nil {
		log.Fatalf("listen failed: %v", err)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterOrderEntryServer(grpcSrv, grpcserver.NewServer(svc))

	log.Printf("order-book engine listening on %s", *listenAddr)

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("gRPC server exited: %v", err)
	}
}

func applyAction(svc *service.OrderService, a replay.Action) {
	switch a.Type {
	case replay.ActionAdd:
		svc.Add(a.OrderType, a.OrderID, a.Side, a.Price, a.Quantity)
	case replay.ActionModify:
		svc.Modify(orderbook.OrderModify{
			OrderID:  a.OrderID,
			Side:     a.Side,
			Price:    a.Price,
			Quantity: a.Quantity,
		})
	case replay.ActionCancel:
		svc.Cancel(a.OrderID)
	}
}
