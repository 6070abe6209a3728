package scheduler

import (
	"context"
	"log/slog"
	"time"

	"auction-market/internal/events"
	"auction-market/internal/infra/repository"
	"auction-market/internal/pkg/clock"
	"auction-market/internal/pkg/config"
)

// AuctionSweeper periodically closes expired auctions. Termination is a
// conditional update, so a sweep racing a last-moment bid or another sweeper
// instance resolves cleanly: exactly one writer flips the row.
type AuctionSweeper struct {
	products *repository.ProductRepository
	producer events.Producer
	clock    clock.Clock
	interval time.Duration
	done     chan struct{}
	stopped  chan struct{}
}

func NewAuctionSweeper(
	products *repository.ProductRepository,
	producer events.Producer,
	clk clock.Clock,
	cfg config.AuctionConfig,
) *AuctionSweeper {
	return &AuctionSweeper{
		products: products,
		producer: producer,
		clock:    clk,
		interval: cfg.SweepInterval,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

func (s *AuctionSweeper) Start() {
	go s.run()
}

func (s *AuctionSweeper) Stop() {
	close(s.done)
	<-s.stopped
}

func (s *AuctionSweeper) run() {
	defer close(s.stopped)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), s.interval)
			s.Sweep(ctx)
			cancel()
		}
	}
}

// Sweep closes every auction past its end time: bid-on auctions go SOLD and
// emit a termination event, bid-less ones lapse to INACTIVE.
func (s *AuctionSweeper) Sweep(ctx context.Context) {
	now := s.clock.Now()

	expired, err := s.products.ListExpiredAuctions(ctx, now)
	if err != nil {
		slog.Error("auction sweep failed to list expired auctions", "error", err)
		return
	}

	for _, p := range expired {
		if !p.HasWinner() {
			lapsed, err := s.products.LapseAuction(ctx, p.ID(), now)
			if err != nil {
				slog.Error("failed to lapse auction", "product_id", p.ID(), "error", err)
				continue
			}
			if lapsed {
				slog.Info("auction lapsed without bids", "product_id", p.ID())
			}
			continue
		}

		terminated, err := s.products.TerminateAuction(ctx, p.ID(), now)
		if err != nil {
			slog.Error("failed to terminate auction", "product_id", p.ID(), "error", err)
			continue
		}
		if !terminated {
			// A concurrent bid or another sweeper got there first; the next
			// sweep picks the row up again if it is still live.
			continue
		}

		slog.Info("auction terminated",
			"product_id", p.ID(),
			"winner_id", *p.HighestBidderID(),
			"final_price", p.NowHighestBid())

		if err := s.producer.Publish(ctx, events.TypeAuctionTerminated, p.ID(), events.AuctionTerminated{
			ProductID:  p.ID(),
			WinnerID:   *p.HighestBidderID(),
			FinalPrice: p.NowHighestBid(),
			EndedAt:    now,
		}); err != nil {
			slog.Warn("failed to publish auction event", "product_id", p.ID(), "error", err)
		}
	}
}
