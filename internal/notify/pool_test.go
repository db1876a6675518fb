package notify

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/cabinetmed/cabinet_backend/internal/repo"
	"github.com/cabinetmed/cabinet_backend/internal/service/notification"
)

func TestPoolDispatchesSubmittedNotices(t *testing.T) {
	store := &fakeStore{}
	d := NewDispatcher(&fakeMail{}, store, &fakeDirectory{}, testLogger())

	p := NewPool(d, 2, 16, testLogger())
	p.Start()

	for i := 0; i < 5; i++ {
		ok := p.Submit(Notice{
			UserID:  uuid.New(),
			Channel: ChannelInApp,
			Title:   "t",
		})
		require.True(t, ok)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, p.Stop(ctx))

	store.mu.Lock()
	defer store.mu.Unlock()
	require.Len(t, store.created, 5)
}

func TestPoolDropsWhenQueueFull(t *testing.T) {
	d := NewDispatcher(&fakeMail{}, &fakeStore{}, &fakeDirectory{}, testLogger())

	// No workers started: the queue fills up and stays full.
	p := NewPool(d, 1, 2, testLogger())

	require.True(t, p.Submit(Notice{Channel: ChannelInApp}))
	require.True(t, p.Submit(Notice{Channel: ChannelInApp}))
	require.False(t, p.Submit(Notice{Channel: ChannelInApp}))
}

func TestPoolStopTimesOutOnStuckWorker(t *testing.T) {
	// A store that blocks forever simulates a stuck dispatch.
	block := make(chan struct{})
	defer close(block)

	d := NewDispatcher(&fakeMail{}, &blockingStore{block: block}, &fakeDirectory{}, testLogger())
	p := NewPool(d, 1, 4, testLogger())
	p.Start()

	require.True(t, p.Submit(Notice{Channel: ChannelInApp}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.Error(t, p.Stop(ctx))
}

type blockingStore struct {
	block chan struct{}
}

func (b *blockingStore) Create(ctx context.Context, _ notification.CreateRequest) (*repo.Notification, error) {
	<-b.block
	return nil, ctx.Err()
}
