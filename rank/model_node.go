// Package rank 提供基于打分模型的排序 Node。
package rank

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/pipeline"
	"github.com/rushteam/matchkit/pkg/utils"
)

var (
	// ErrNoModel 表示未配置打分模型
	ErrNoModel = core.NewDomainError(core.ModuleModel, core.ErrorCodeUnavailable, "rank: no scoring model")

	// ErrMalformedPredictions 表示模型输出个数不对、含 NaN 或超出 [0, 1]
	ErrMalformedPredictions = core.NewDomainError(core.ModuleModel, core.ErrorCodeInternalError, "rank: malformed predictions")

	// ErrMissingFeatures 表示候选尚未抽取特征
	ErrMissingFeatures = core.NewDomainError(core.ModuleFeature, core.ErrorCodeInvalidInput, "rank: item has no feature vector")
)

// ModelNode 用 ScoringModel 对候选打分并按分数降序排序。
// 整批候选只调用一次 PredictBatch。
//   - 写入 labels：rank_model
//   - 更新 item.Score
type ModelNode struct {
	Model core.ScoringModel
}

func (n *ModelNode) Name() string        { return "rank.model" }
func (n *ModelNode) Kind() pipeline.Kind { return pipeline.KindRank }

func (n *ModelNode) Process(
	ctx context.Context,
	_ *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if n.Model == nil {
		return nil, ErrNoModel
	}
	if len(items) == 0 {
		return items, nil
	}

	rows := make([][]float64, len(items))
	for i, it := range items {
		if it == nil || it.Vector == nil {
			return nil, fmt.Errorf("item %d: %w", i, ErrMissingFeatures)
		}
		rows[i] = it.Vector.Slice()
	}

	scores, err := n.Model.PredictBatch(ctx, rows)
	if err != nil {
		return nil, err
	}
	if err := validate(scores, len(rows)); err != nil {
		return nil, err
	}

	label := utils.Label{Value: n.Model.Name(), Source: "rank"}
	for i, it := range items {
		it.Score = scores[i]
		it.PutLabel("rank_model", label)
	}

	SortByScore(items)
	return items, nil
}

func validate(scores []float64, want int) error {
	if len(scores) != want {
		return fmt.Errorf("%w: got %d scores for %d rows", ErrMalformedPredictions, len(scores), want)
	}
	for i, s := range scores {
		if math.IsNaN(s) || s < 0 || s > 1 {
			return fmt.Errorf("%w: score[%d]=%v", ErrMalformedPredictions, i, s)
		}
	}
	return nil
}

// SortByScore 按分数降序稳定排序，同分保持输入顺序。
func SortByScore(items []*core.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i] == nil {
			return false
		}
		if items[j] == nil {
			return true
		}
		return items[i].Score > items[j].Score
	})
}
