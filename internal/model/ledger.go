package model

import "context"

// LedgerStore recomputes denormalized aggregates from their derivations.
type LedgerStore interface {
	// PruneDangling removes liked entries that reference deleted posts.
	PruneDangling(ctx context.Context) (int64, error)
	// RecountLikes sets every post's likes to the number of users that like it.
	RecountLikes(ctx context.Context) (int64, error)
	// RecountPosts sets every user's count_posts to the number of posts it owns.
	RecountPosts(ctx context.Context) (int64, error)
}

// SweepReport counts documents changed by one reconciliation sweep.
type SweepReport struct {
	PrunedUsers  int64
	FixedPosts   int64
	FixedUsers   int64
	LeaseSkipped bool
}
