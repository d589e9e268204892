package engine

import (
	"context"
	"time"

	c "github.com/eclypse-prime/pijersi-rs/common"
)

// timeManager tracks search elapsed time and node count; the actual
// stop signal is a context deadline/cancellation, set up by
// newSearchContext below, matching the teacher's split between "a
// context that fires" and "a struct that reports elapsed time/nodes".
type timeManager struct {
	start time.Time
	nodes int64
}

func newTimeManager() *timeManager {
	return &timeManager{start: time.Now()}
}

func (tm *timeManager) ElapsedMilliseconds() int64 {
	return int64(time.Since(tm.start) / time.Millisecond)
}

func (tm *timeManager) AddNodes(n int64) {
	tm.nodes += n
}

func (tm *timeManager) Nodes() int64 {
	return tm.nodes
}

// newSearchContext derives a context that is cancelled either by the
// caller's ctx or by limit.MoveTime, whichever fires first. Depth has
// no context equivalent: the iterative-deepening loop in
// searchserviceparallel.go stops issuing deeper iterations itself once limit.Depth is reached.
func newSearchContext(ctx context.Context, limit c.Limit) (context.Context, context.CancelFunc) {
	if limit.MoveTime <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, time.Duration(limit.MoveTime)*time.Millisecond)
}
