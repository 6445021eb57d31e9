package filter

import (
	"context"
	"errors"
	"fmt"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/pipeline"
	"github.com/rushteam/matchkit/pkg/utils"
)

// FilterNode 是过滤 Node，可以组合多个过滤器进行过滤。
// 如果任何一个过滤器返回 true，该候选就会被过滤掉。
type FilterNode struct {
	// NodeName 为空时使用 "filter.node"
	NodeName string
	Filters  []Filter
}

func (n *FilterNode) Name() string {
	if n.NodeName != "" {
		return n.NodeName
	}
	return "filter.node"
}

func (n *FilterNode) Kind() pipeline.Kind {
	return pipeline.KindFilter
}

func (n *FilterNode) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if len(n.Filters) == 0 || len(items) == 0 {
		return items, nil
	}
	if err := Prepare(ctx, rctx, n.Filters); err != nil {
		return nil, err
	}

	out := make([]*core.Item, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		keep, reason := Keep(ctx, rctx, item, n.Filters)
		if !keep {
			// 记录过滤原因（用于调试/观测）
			item.PutLabel("filtered", utils.Label{Value: "true", Source: reason})
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

// Prepare 对实现了 Preparer 的过滤器做请求级准备。
// 某个过滤器出错不影响其余过滤器的准备，错误合并返回。
func Prepare(ctx context.Context, rctx *core.RecommendContext, filters []Filter) error {
	var errs []error
	for _, f := range filters {
		if p, ok := f.(Preparer); ok {
			if err := p.Prepare(ctx, rctx); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", f.Name(), err))
			}
		}
	}
	return errors.Join(errs...)
}
