package sticky

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReloadControllerSingleFlight(t *testing.T) {
	rc := NewReloadController(context.Background())
	r := &fakeReload{}

	require.True(t, rc.Begin(r.start))
	assert.False(t, rc.Begin(r.start))
	assert.Equal(t, 1, r.calls)
	assert.Equal(t, ReloadLoading, rc.State())

	finished, err := rc.Poll()
	assert.False(t, finished)
	assert.NoError(t, err)
	assert.True(t, rc.Loading())
}

func TestReloadControllerNilSignal(t *testing.T) {
	rc := NewReloadController(context.Background())
	assert.False(t, rc.Begin(nil))
	assert.Equal(t, ReloadIdle, rc.State())
}

func TestReloadControllerSuccessReleasesTask(t *testing.T) {
	rc := NewReloadController(context.Background())
	r := &fakeReload{}
	require.True(t, rc.Begin(r.start))

	r.chans[0] <- nil
	finished, err := rc.Poll()
	require.True(t, finished)
	assert.NoError(t, err)
	assert.Equal(t, ReloadIdle, rc.State())
	assert.ErrorIs(t, r.ctxs[0].Err(), context.Canceled, "subscription released")

	finished, _ = rc.Poll()
	assert.False(t, finished)
}

func TestReloadControllerClosedChannelIsSuccess(t *testing.T) {
	rc := NewReloadController(context.Background())
	r := &fakeReload{}
	require.True(t, rc.Begin(r.start))

	close(r.chans[0])
	finished, err := rc.Poll()
	assert.True(t, finished)
	assert.NoError(t, err)
}

func TestReloadControllerFailure(t *testing.T) {
	rc := NewReloadController(context.Background())
	r := &fakeReload{}
	require.True(t, rc.Begin(r.start))

	boom := errors.New("boom")
	r.chans[0] <- boom
	finished, err := rc.Poll()
	assert.True(t, finished)
	assert.ErrorIs(t, err, boom)
	assert.False(t, rc.Loading())

	assert.True(t, rc.Begin(r.start), "a failed reload can be triggered again")
	assert.Equal(t, 2, r.calls)
}

func TestReloadControllerNilChannel(t *testing.T) {
	rc := NewReloadController(context.Background())
	require.True(t, rc.Begin(func(context.Context) <-chan error { return nil }))

	finished, err := rc.Poll()
	assert.True(t, finished)
	assert.ErrorIs(t, err, ErrNoReloadChannel)
	assert.False(t, rc.Loading())
}

func TestReloadControllerAbandon(t *testing.T) {
	rc := NewReloadController(context.Background())
	r := &fakeReload{}
	require.True(t, rc.Begin(r.start))

	rc.Abandon()
	assert.False(t, rc.Loading())
	assert.ErrorIs(t, r.ctxs[0].Err(), context.Canceled)

	r.chans[0] <- nil
	finished, _ := rc.Poll()
	assert.False(t, finished, "late completion of an abandoned reload is ignored")
}

func TestReloadControllerClose(t *testing.T) {
	rc := NewReloadController(context.Background())
	r := &fakeReload{}
	require.True(t, rc.Begin(r.start))

	rc.Close()
	assert.ErrorIs(t, r.ctxs[0].Err(), context.Canceled)
	assert.False(t, rc.Begin(r.start))
	assert.Equal(t, 1, r.calls)
}

func TestReloadStateString(t *testing.T) {
	assert.Equal(t, "idle", ReloadIdle.String())
	assert.Equal(t, "loading", ReloadLoading.String())
	assert.Equal(t, "unknown", ReloadState(42).String())
}

func TestReportFailuresForwardsErrors(t *testing.T) {
	failures := make(chan error, 1)
	r := &fakeReload{}
	fn := ReportFailures(r.start, failures)

	done := fn(context.Background())
	boom := errors.New("boom")
	r.chans[0] <- boom

	assert.ErrorIs(t, <-done, boom)
	assert.ErrorIs(t, <-failures, boom)
}

func TestReportFailuresSkipsSuccessAndCancel(t *testing.T) {
	failures := make(chan error, 1)
	r := &fakeReload{}
	fn := ReportFailures(r.start, failures)

	done := fn(context.Background())
	close(r.chans[0])
	assert.NoError(t, <-done)

	done = fn(context.Background())
	r.chans[1] <- context.Canceled
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Empty(t, failures)
}

func TestReportFailuresNil(t *testing.T) {
	assert.Nil(t, ReportFailures(nil, make(chan error, 1)))

	noChannel := func(context.Context) <-chan error { return nil }
	fn := ReportFailures(noChannel, make(chan error, 1))
	require.NotNil(t, fn)
	assert.Nil(t, fn(context.Background()))

	rc := NewReloadController(context.Background())
	require.True(t, rc.Begin(fn))
	finished, err := rc.Poll()
	assert.True(t, finished)
	assert.ErrorIs(t, err, ErrNoReloadChannel)
	assert.False(t, rc.Loading())
}
