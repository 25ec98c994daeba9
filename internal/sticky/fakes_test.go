package sticky

import (
	"context"

	"github.com/stretchr/testify/mock"
)

var testMetrics = HeaderMetrics{MinHeight: 64, MaxHeight: 200, MaxStretch: 60}

type fakeScrollView struct {
	offset    Point
	inset     Insets
	indicator Insets
}

func (s *fakeScrollView) ContentOffset() Point               { return s.offset }
func (s *fakeScrollView) SetContentOffset(p Point)           { s.offset = p }
func (s *fakeScrollView) ContentInset() Insets               { return s.inset }
func (s *fakeScrollView) SetContentInset(in Insets)          { s.inset = in }
func (s *fakeScrollView) SetScrollIndicatorInsets(in Insets) { s.indicator = in }

// fakeReload hands out one pending channel per call and remembers the
// contexts it was started with.
type fakeReload struct {
	calls int
	ctxs  []context.Context
	chans []chan error
}

func (r *fakeReload) start(ctx context.Context) <-chan error {
	r.calls++
	ch := make(chan error, 1)
	r.ctxs = append(r.ctxs, ctx)
	r.chans = append(r.chans, ch)
	return ch
}

type fakePage struct {
	sv       fakeScrollView
	delegate PageDelegate
	reload   *fakeReload
	entered  int
	exited   int
}

func newFakePage(reloadable bool) *fakePage {
	p := &fakePage{}
	if reloadable {
		p.reload = &fakeReload{}
	}
	return p
}

func (p *fakePage) ScrollView() ScrollView      { return &p.sv }
func (p *fakePage) SetDelegate(d PageDelegate) { p.delegate = d }
func (p *fakePage) OnEnter()                   { p.entered++ }
func (p *fakePage) OnExit()                    { p.exited++ }

func (p *fakePage) ReloadSignal() ReloadFunc {
	if p.reload == nil {
		return nil
	}
	return p.reload.start
}

type progressCall struct {
	progress float64
	animated bool
}

type fakeHeader struct {
	metrics  HeaderMetrics
	height   float64
	layouts  int
	progress []progressCall
}

func (h *fakeHeader) Metrics() HeaderMetrics { return h.metrics }
func (h *fakeHeader) SetHeight(v float64)    { h.height = v }
func (h *fakeHeader) SetNeedsLayout()        { h.layouts++ }

func (h *fakeHeader) SetCollapseProgress(progress float64, animated bool) {
	h.progress = append(h.progress, progressCall{progress, animated})
}

func (h *fakeHeader) lastProgress() progressCall {
	return h.progress[len(h.progress)-1]
}

type mockNavBar struct {
	mock.Mock
}

func (m *mockNavBar) SetCollapseProgress(progress float64, animated bool) {
	m.Called(progress, animated)
}

type fakeLayout struct{ requests int }

func (l *fakeLayout) SetNeedsLayout() { l.requests++ }

type pagerCall struct {
	index    int
	animated bool
}

type fakePager struct{ calls []pagerCall }

func (p *fakePager) ScrollToPage(index int, animated bool) {
	p.calls = append(p.calls, pagerCall{index, animated})
}
