package marketdata

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kmenon/coastfire/internal/pegy"
)

// SnapshotBuilder merges fetched prices with static fundamentals into
// dated valuation snapshots.
type SnapshotBuilder struct {
	Quotes *QuoteClient
	Logger *logrus.Logger
	Now    func() time.Time
}

// NewSnapshotBuilder creates a builder using the given quote client.
func NewSnapshotBuilder(quotes *QuoteClient, logger *logrus.Logger) *SnapshotBuilder {
	return &SnapshotBuilder{
		Quotes: quotes,
		Logger: logger,
		Now:    time.Now,
	}
}

// Build fetches the current price for every fundamental and assembles one
// snapshot per company. A failed price fetch is logged and recorded as a
// null price, the valuation ratio still comes from the fundamentals.
func (b *SnapshotBuilder) Build(ctx context.Context, fundamentals []Fundamental) ([]pegy.Snapshot, error) {
	day := b.now().Format("2006-01-02")

	snapshots := make([]pegy.Snapshot, 0, len(fundamentals))
	for _, f := range fundamentals {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		snapshot := pegy.Snapshot{
			Symbol:             f.Name,
			Date:               day,
			PERatio:            f.PE,
			NetProfitGrowthYoY: f.Growth,
			DividendYield:      f.Dividend,
		}

		price, err := b.Quotes.TodayPrice(ctx, f.Symbol)
		if err != nil {
			b.log().WithError(err).WithField("symbol", f.Symbol).Warn("price fetch failed")
		} else {
			snapshot.CurrentPrice = &price
		}

		snapshot.ComputePEGY()
		snapshots = append(snapshots, snapshot)
	}

	b.log().WithFields(logrus.Fields{
		"companies": len(snapshots),
		"date":      day,
	}).Debug("snapshot built")

	return snapshots, nil
}

func (b *SnapshotBuilder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

func (b *SnapshotBuilder) log() *logrus.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return logrus.StandardLogger()
}
