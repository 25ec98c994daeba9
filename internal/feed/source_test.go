package feed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedAndItems(t *testing.T) {
	s := NewSource(0, 0)
	s.Seed("top", 3)

	items := s.Items("top")
	require.Len(t, items, 3)
	assert.Equal(t, "top #1", items[0].Title)
	assert.Equal(t, 0, s.Generation("top"))
	assert.Nil(t, s.Items("missing"))
	assert.Equal(t, 0, s.Generation("missing"))
}

func TestRefreshRegenerates(t *testing.T) {
	s := NewSource(0, 0)
	s.Seed("top", 2)
	before := s.Items("top")

	items, err := s.Refresh(context.Background(), "top")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Generation("top"))
	assert.Equal(t, items, s.Items("top"))
	assert.NotEqual(t, before[0].ID, items[0].ID)
	assert.Equal(t, "refreshed 1 times", items[1].Subtitle)
}

func TestRefreshFailsEveryNth(t *testing.T) {
	s := NewSource(0, 2)
	s.Seed("top", 1)

	_, err := s.Refresh(context.Background(), "top")
	require.NoError(t, err)
	_, err = s.Refresh(context.Background(), "top")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 1, s.Generation("top"), "failed refresh keeps old rows")
}

func TestRefreshUnknownFeed(t *testing.T) {
	s := NewSource(0, 0)
	_, err := s.Refresh(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestRefreshHonorsCancel(t *testing.T) {
	s := NewSource(time.Hour, 0)
	gate := make(chan time.Time)
	s.after = func(time.Duration) <-chan time.Time { return gate }
	s.Seed("top", 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Refresh(ctx, "top")
	assert.ErrorIs(t, err, context.Canceled)
	close(gate)
}

func TestRefreshSharesInFlightCall(t *testing.T) {
	s := NewSource(time.Hour, 0)
	gate := make(chan time.Time)
	s.after = func(time.Duration) <-chan time.Time { return gate }
	s.Seed("top", 1)

	first := s.start("top")
	second := s.start("top")
	close(gate)

	a, b := <-first, <-second
	require.NoError(t, a.Err)
	require.NoError(t, b.Err)
	assert.True(t, a.Shared)
	assert.Equal(t, a.Val, b.Val)
	assert.Equal(t, 1, s.Generation("top"))
}

func TestRefreshAll(t *testing.T) {
	s := NewSource(0, 0)
	s.Seed("top", 1)
	s.Seed("latest", 1)

	require.NoError(t, s.RefreshAll(context.Background(), "top", "latest"))
	assert.Equal(t, 1, s.Generation("top"))
	assert.Equal(t, 1, s.Generation("latest"))

	assert.ErrorIs(t, s.RefreshAll(context.Background(), "top", "ghost"), ErrUnavailable)
}

func TestReloadFunc(t *testing.T) {
	s := NewSource(0, 0)
	s.Seed("top", 4)

	done := s.ReloadFunc("top")(context.Background())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("reload did not finish")
	}
	assert.Equal(t, 1, s.Generation("top"))
}
