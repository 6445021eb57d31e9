package pipeline

import (
	"context"

	"github.com/rushteam/matchkit/core"
)

// Kind 标记 Node 所处阶段，用于日志与 Hook。
type Kind string

const (
	KindFilter  Kind = "filter"
	KindFeature Kind = "feature"
	KindRank    Kind = "rank"
	KindReRank  Kind = "rerank"
)

// Node 是 ML 路径上的一个阶段：接收候选、返回候选。
// 过滤阶段剔除，特征阶段写入 Item.Vector，排序阶段写 Score 并排序，重排阶段按门槛与数量截取。
type Node interface {
	Name() string
	Kind() Kind
	Process(ctx context.Context, rctx *core.RecommendContext, items []*core.Item) ([]*core.Item, error)
}
