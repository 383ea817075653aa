package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/gophfeed-server/internal/lease"
	"github.com/dtroode/gophfeed-server/internal/mocks"
	"github.com/dtroode/gophfeed-server/internal/model"
	"github.com/dtroode/gophfeed-server/internal/testutil"
)

// After a like whose ledger write never happened and a post whose counter credit never
// happened, one sweep restores both aggregates.
func TestReconciler_RestoresAfterPartialFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner, fan := f.user(t, "owner"), f.user(t, "fan")
	post := f.post(t, owner)

	_, err := f.posts.IncrementLikes(ctx, post.ID, 1)
	require.NoError(t, err)
	_, err = f.posts.Create(ctx, model.Post{OwnerID: owner.ID, Heading: "uncredited"})
	require.NoError(t, err)
	gone := f.post(t, fan)
	_, err = f.users.AddLiked(ctx, fan.ID, gone.ID)
	require.NoError(t, err)
	_, err = f.posts.DeleteOwned(ctx, gone.ID, fan.ID)
	require.NoError(t, err)

	r := NewReconciler(f.db.Ledger(), nil, 0, testutil.MakeNoopLogger())
	report, err := r.Sweep(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), report.PrunedUsers)
	assert.Equal(t, int64(1), report.FixedPosts)
	assert.Equal(t, int64(2), report.FixedUsers)
	assert.Equal(t, 0, f.reloadPost(t, post.ID).Likes)
	assert.Equal(t, 2, f.reloadUser(t, owner.ID).CountPosts)
	assert.Equal(t, 0, f.reloadUser(t, fan.ID).CountPosts)
	assert.Empty(t, f.reloadUser(t, fan.ID).Liked)

	report, err = r.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.SweepReport{}, report)
}

func TestReconciler_LeaseHeldElsewhereSkips(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	other := lease.NewRedis(client)
	ok, err := other.Acquire(ctx, sweepLeaseName, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	ledger := mocks.NewLedgerStore(t)
	r := NewReconciler(ledger, lease.NewRedis(client), time.Minute, testutil.MakeNoopLogger())

	report, err := r.Sweep(ctx)
	require.NoError(t, err)
	assert.True(t, report.LeaseSkipped)

	require.NoError(t, other.Release(ctx, sweepLeaseName))

	ledger.On("PruneDangling", mock.Anything).Return(int64(0), nil)
	ledger.On("RecountLikes", mock.Anything).Return(int64(0), nil)
	ledger.On("RecountPosts", mock.Anything).Return(int64(0), nil)

	report, err = r.Sweep(ctx)
	require.NoError(t, err)
	assert.False(t, report.LeaseSkipped)
	assert.False(t, mr.Exists("gophfeed:lease:"+sweepLeaseName))
}

func TestReconciler_Sweep_Errors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name      string
		mockSetup func(*mocks.LedgerStore, *mocks.Lease)
		wantErr   string
	}{
		{
			name: "lease unavailable",
			mockSetup: func(_ *mocks.LedgerStore, l *mocks.Lease) {
				l.On("Acquire", mock.Anything, sweepLeaseName, time.Minute).Return(false, boom)
			},
			wantErr: "failed to acquire sweep lease",
		},
		{
			name: "prune fails and lease released",
			mockSetup: func(ls *mocks.LedgerStore, l *mocks.Lease) {
				l.On("Acquire", mock.Anything, sweepLeaseName, time.Minute).Return(true, nil)
				l.On("Release", mock.Anything, sweepLeaseName).Return(nil)
				ls.On("PruneDangling", mock.Anything).Return(int64(0), boom)
			},
			wantErr: "failed to prune dangling likes",
		},
		{
			name: "recount likes fails",
			mockSetup: func(ls *mocks.LedgerStore, l *mocks.Lease) {
				l.On("Acquire", mock.Anything, sweepLeaseName, time.Minute).Return(true, nil)
				l.On("Release", mock.Anything, sweepLeaseName).Return(boom)
				ls.On("PruneDangling", mock.Anything).Return(int64(2), nil)
				ls.On("RecountLikes", mock.Anything).Return(int64(0), boom)
			},
			wantErr: "failed to recount likes",
		},
		{
			name: "recount posts fails",
			mockSetup: func(ls *mocks.LedgerStore, l *mocks.Lease) {
				l.On("Acquire", mock.Anything, sweepLeaseName, time.Minute).Return(true, nil)
				l.On("Release", mock.Anything, sweepLeaseName).Return(nil)
				ls.On("PruneDangling", mock.Anything).Return(int64(0), nil)
				ls.On("RecountLikes", mock.Anything).Return(int64(0), nil)
				ls.On("RecountPosts", mock.Anything).Return(int64(0), boom)
			},
			wantErr: "failed to recount posts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ls := mocks.NewLedgerStore(t)
			l := mocks.NewLease(t)
			tt.mockSetup(ls, l)

			r := NewReconciler(ls, l, time.Minute, testutil.MakeNoopLogger())
			_, err := r.Sweep(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReconciler_Run_StopsOnCancel(t *testing.T) {
	ls := mocks.NewLedgerStore(t)
	ls.On("PruneDangling", mock.Anything).Return(int64(0), nil).Maybe()
	ls.On("RecountLikes", mock.Anything).Return(int64(0), nil).Maybe()
	ls.On("RecountPosts", mock.Anything).Return(int64(0), nil).Maybe()

	r := NewReconciler(ls, nil, 0, testutil.MakeNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reconciler did not stop")
	}
}
