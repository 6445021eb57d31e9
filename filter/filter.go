package filter

import (
	"context"

	"github.com/rushteam/matchkit/core"
)

// Filter 是过滤器的抽象接口，用于判断一个 Item 是否应该被过滤掉。
// 返回 true 表示应该过滤（移除），false 表示保留。
type Filter interface {
	// Name 返回过滤器名称
	Name() string

	// ShouldFilter 判断 item 是否应该被过滤
	ShouldFilter(ctx context.Context, rctx *core.RecommendContext, item *core.Item) (bool, error)
}

// Preparer 由需要在逐条判断前做一次请求级准备（如读取排除名单）的过滤器实现。
// 准备结果只能写入 rctx，过滤器本身跨请求共享，不保存请求状态。
type Preparer interface {
	Prepare(ctx context.Context, rctx *core.RecommendContext) error
}

// Keep 依次执行过滤器，返回 item 是否保留以及淘汰它的过滤器名称。
// 过滤器出错时跳过该过滤器，不中断判断。
func Keep(ctx context.Context, rctx *core.RecommendContext, item *core.Item, filters []Filter) (bool, string) {
	for _, f := range filters {
		drop, err := f.ShouldFilter(ctx, rctx, item)
		if err != nil {
			continue
		}
		if drop {
			return false, f.Name()
		}
	}
	return true, ""
}
