package sticky

import (
	"context"
	"errors"
)

// ErrNoReloadChannel is reported when a ReloadFunc returns a nil channel.
var ErrNoReloadChannel = errors.New("reload signal returned no channel")

// ReloadState is the state of the pull-to-reload machine.
type ReloadState int

const (
	ReloadIdle ReloadState = iota
	ReloadLoading
)

func (s ReloadState) String() string {
	switch s {
	case ReloadIdle:
		return "idle"
	case ReloadLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// reloadTask is the single outstanding subscription to a reload signal.
type reloadTask struct {
	cancel context.CancelFunc
	done   <-chan error
}

// ReloadController runs at most one reload at a time. It is not safe for
// concurrent use; completion is observed by polling from the UI thread.
type ReloadController struct {
	ctx    context.Context
	stop   context.CancelFunc
	state  ReloadState
	task   *reloadTask
	closed bool
}

// NewReloadController returns an idle controller whose tasks derive from ctx.
func NewReloadController(ctx context.Context) *ReloadController {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := context.WithCancel(ctx)
	return &ReloadController{ctx: ctx, stop: stop}
}

// State returns the current state.
func (rc *ReloadController) State() ReloadState { return rc.state }

// Loading reports whether a reload is in flight.
func (rc *ReloadController) Loading() bool { return rc.state == ReloadLoading }

// Begin starts fn unless a reload is already in flight or fn is nil.
// It reports whether the controller entered the loading state.
func (rc *ReloadController) Begin(fn ReloadFunc) bool {
	if rc.closed || fn == nil || rc.state == ReloadLoading {
		return false
	}
	ctx, cancel := context.WithCancel(rc.ctx)
	rc.task = &reloadTask{cancel: cancel, done: fn(ctx)}
	rc.state = ReloadLoading
	return true
}

// Poll checks the outstanding task without blocking. When it has finished the
// subscription is released, the controller returns to idle and finished is
// true.
func (rc *ReloadController) Poll() (finished bool, err error) {
	if rc.task == nil {
		return false, nil
	}
	if rc.task.done == nil {
		rc.release()
		return true, ErrNoReloadChannel
	}
	select {
	case err = <-rc.task.done:
	default:
		return false, nil
	}
	rc.release()
	return true, err
}

// Abandon drops the in-flight reload without waiting for it.
func (rc *ReloadController) Abandon() {
	rc.release()
}

// Close abandons any reload and refuses new ones.
func (rc *ReloadController) Close() {
	rc.release()
	rc.closed = true
	rc.stop()
}

func (rc *ReloadController) release() {
	if rc.task != nil {
		rc.task.cancel()
		rc.task = nil
	}
	rc.state = ReloadIdle
}

// ReportFailures wraps fn so that failures other than cancellation are also
// offered to failures without blocking. A nil channel from fn is passed
// through unchanged so the controller can report it.
func ReportFailures(fn ReloadFunc, failures chan<- error) ReloadFunc {
	if fn == nil {
		return nil
	}
	return func(ctx context.Context) <-chan error {
		inner := fn(ctx)
		if inner == nil {
			return nil
		}
		out := make(chan error, 1)
		go func() {
			defer close(out)
			var err error
			select {
			case e, ok := <-inner:
				if ok {
					err = e
				}
			case <-ctx.Done():
				return
			}
			if err != nil && !errors.Is(err, context.Canceled) {
				select {
				case failures <- err:
				default:
				}
			}
			out <- err
		}()
		return out
	}
}
