package feature

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/pipeline"
)

// DefaultWorkers BuildBatch 的默认并发数。
const DefaultWorkers = 4

// EnrichNode 是特征注入节点：为每个候选构建 (seeker, job) 特征向量，写入 item.Vector。
// 锚点与候选的组合方式由 RecommendContext.Direction 决定。
type EnrichNode struct {
	Extractor *Extractor

	// Workers 并发构建的 goroutine 数，<=0 时使用 DefaultWorkers
	Workers int
}

func (n *EnrichNode) Name() string {
	return "feature.enrich"
}

func (n *EnrichNode) Kind() pipeline.Kind {
	return pipeline.KindFeature
}

func (n *EnrichNode) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	ext := n.Extractor
	if ext == nil {
		ext = NewExtractor()
	}
	if err := BuildBatch(ctx, ext, rctx, items, n.Workers); err != nil {
		return nil, err
	}
	return items, nil
}

// BuildBatch 并发为 items 构建特征向量。
// 每个 goroutine 只写自己下标的 item，结果顺序与输入一致。
func BuildBatch(
	ctx context.Context,
	ext *Extractor,
	rctx *core.RecommendContext,
	items []*core.Item,
	workers int,
) error {
	if len(items) == 0 {
		return nil
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for _, it := range items {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			seeker, job := rctx.Pair(it)
			v := ext.Extract(seeker, job)
			it.Vector = &v
			return nil
		})
	}
	return eg.Wait()
}
