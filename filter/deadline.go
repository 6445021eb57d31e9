package filter

import (
	"context"
	"time"

	"github.com/rushteam/matchkit/core"
)

// DeadlineFilter 过滤申请截止日期已过的职位。截止日期当天仍可申请。
type DeadlineFilter struct {
	Now func() time.Time
}

func (f *DeadlineFilter) Name() string {
	return "filter.deadline"
}

func (f *DeadlineFilter) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	item *core.Item,
) (bool, error) {
	_, job := rctx.Pair(item)
	if job == nil {
		return false, nil
	}
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}
	return job.Expired(now()), nil
}
