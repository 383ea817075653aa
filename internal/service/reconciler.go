package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dtroode/gophfeed-server/internal/logger"
	"github.com/dtroode/gophfeed-server/internal/model"
)

const sweepLeaseName = "reconcile"

// Reconciler recomputes denormalized aggregates from their derivations. It closes the
// windows left by interrupted like toggles, post adds and deletes, and user deletion.
type Reconciler struct {
	ledger   model.LedgerStore
	lease    model.Lease
	leaseTTL time.Duration
	logger   *logger.Logger
}

// NewReconciler creates a Reconciler. A nil lease sweeps without cross-replica exclusion.
func NewReconciler(ledger model.LedgerStore, lease model.Lease, leaseTTL time.Duration, logger *logger.Logger) *Reconciler {
	return &Reconciler{
		ledger:   ledger,
		lease:    lease,
		leaseTTL: leaseTTL,
		logger:   logger,
	}
}

// Sweep prunes dangling likes, then recounts post likes and user post counts.
// When another replica holds the lease the sweep is skipped and reported as such.
func (r *Reconciler) Sweep(ctx context.Context) (model.SweepReport, error) {
	var report model.SweepReport

	if r.lease != nil {
		acquired, err := r.lease.Acquire(ctx, sweepLeaseName, r.leaseTTL)
		if err != nil {
			return report, fmt.Errorf("failed to acquire sweep lease: %w", err)
		}
		if !acquired {
			report.LeaseSkipped = true
			return report, nil
		}
		defer func() {
			if err := r.lease.Release(context.WithoutCancel(ctx), sweepLeaseName); err != nil {
				r.logger.Warn("Reconciler service: failed to release lease",
					"error", err.Error())
			}
		}()
	}

	var err error
	if report.PrunedUsers, err = r.ledger.PruneDangling(ctx); err != nil {
		return report, fmt.Errorf("failed to prune dangling likes: %w", err)
	}
	if report.FixedPosts, err = r.ledger.RecountLikes(ctx); err != nil {
		return report, fmt.Errorf("failed to recount likes: %w", err)
	}
	if report.FixedUsers, err = r.ledger.RecountPosts(ctx); err != nil {
		return report, fmt.Errorf("failed to recount posts: %w", err)
	}

	return report, nil
}

// Run sweeps every interval until ctx is done.
func (r *Reconciler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.logger.Info("Reconciler service: started",
		"interval", interval.String())

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Reconciler service: stopped")
			return
		case <-ticker.C:
			start := time.Now()
			report, err := r.Sweep(ctx)
			if err != nil {
				r.logger.Error("Reconciler service: sweep failed",
					"error", err.Error())
				continue
			}
			if report.LeaseSkipped {
				r.logger.Debug("Reconciler service: sweep held by another replica")
				continue
			}
			r.logger.Info("Reconciler service: sweep completed",
				"pruned_users", report.PrunedUsers,
				"fixed_posts", report.FixedPosts,
				"fixed_users", report.FixedUsers,
				"duration_ms", time.Since(start).Milliseconds())
		}
	}
}
