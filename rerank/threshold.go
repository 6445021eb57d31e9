// Package rerank 提供排序后的重排节点：分数阈值与 Top-N 截断。
package rerank

import (
	"context"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/pipeline"
	"github.com/rushteam/matchkit/pkg/utils"
)

// 请求级 path 标签的取值。
const (
	PathML        = "ml"
	PathMLRelaxed = "ml_relaxed"
)

// LabelPath 请求级标签 key，记录结果来自哪条路径。
const LabelPath = "path"

// DefaultRelaxedLimit 放宽阈值时最多保留的条数。
const DefaultRelaxedLimit = 5

// ThresholdNode 按模型分数门槛保留候选，输入须已按分数降序。
//
// 保留 Score >= Threshold 的候选；若一个都没有而最高分 >= Floor，
// 则放宽为保留 Score >= Floor 的前 RelaxedLimit 个，并写入请求级标签 path=ml_relaxed。
// 两者都不满足时返回空，由上层决定是否回退。
type ThresholdNode struct {
	Threshold    float64
	Floor        float64
	RelaxedLimit int
}

func (n *ThresholdNode) Name() string        { return "rerank.threshold" }
func (n *ThresholdNode) Kind() pipeline.Kind { return pipeline.KindReRank }

func (n *ThresholdNode) Process(
	_ context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	out := make([]*core.Item, 0, len(items))
	for _, it := range items {
		if it != nil && it.Score >= n.Threshold {
			out = append(out, it)
		}
	}
	if len(out) > 0 || len(items) == 0 {
		return out, nil
	}

	if items[0] == nil || items[0].Score < n.Floor {
		return out, nil
	}
	limit := n.RelaxedLimit
	if limit <= 0 {
		limit = DefaultRelaxedLimit
	}
	for _, it := range items {
		if len(out) >= limit {
			break
		}
		if it != nil && it.Score >= n.Floor {
			it.PutLabel("relaxed", utils.Label{Value: "true", Source: "rerank"})
			out = append(out, it)
		}
	}
	if rctx != nil {
		rctx.PutLabel(LabelPath, utils.Label{Value: PathMLRelaxed, Source: "rerank"})
	}
	return out, nil
}
