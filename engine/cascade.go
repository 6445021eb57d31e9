package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/feature"
	"github.com/rushteam/matchkit/filter"
	"github.com/rushteam/matchkit/match"
	"github.com/rushteam/matchkit/pipeline"
	"github.com/rushteam/matchkit/rank"
	"github.com/rushteam/matchkit/rerank"
)

// 结果路径，写入 Recommendation.Path。
const (
	PathML            = rerank.PathML
	PathMLRelaxed     = rerank.PathMLRelaxed
	PathRule          = "rule"
	PathRuleColdStart = "rule_cold_start"
)

// outcome 是模型路径的结果：要么得到可返回的列表，要么需要规则兜底。
type outcome struct {
	items    []*core.Item
	path     string
	fallback bool
	reason   error
}

func ok(items []*core.Item, path string) outcome {
	return outcome{items: items, path: path}
}

func needsFallback(reason error) outcome {
	return outcome{fallback: true, reason: reason}
}

func (e *Engine) recommend(ctx context.Context, rctx *core.RecommendContext, items []*core.Item, req *request) []Recommendation {
	log := e.log.With(
		zap.String("request_id", rctx.RequestID),
		zap.String("direction", string(rctx.Direction)),
	)

	pool := e.pool(ctx, rctx, items, log)
	e.logParseFailures(rctx, pool, log)

	var result []*core.Item
	var path string
	switch {
	case e.coldStart(rctx):
		log.Info("cold start anchor, using rule matcher", zap.Int("pool", len(pool)))
		result, path = e.matcher.Rank(ctx, rctx, fresh(pool), req.topN), PathRuleColdStart
	default:
		out := e.scoreML(ctx, rctx, pool, req, log)
		if out.fallback {
			if out.reason != nil {
				log.Warn("model scoring failed, falling back to rule matcher",
					zap.String("failure", failureKind(out.reason)), zap.Error(out.reason))
			} else {
				log.Info("no prediction above threshold, falling back to rule matcher")
			}
			// 模型路径可能已改写 item，兜底使用未经预过滤的新候选
			result, path = e.matcher.Rank(ctx, rctx, fresh(pool), req.topN), PathRule
		} else {
			result, path = out.items, out.path
		}
	}

	if len(result) > req.topN {
		result = result[:req.topN]
	}
	log.Debug("recommend done", zap.String("path", path), zap.Int("results", len(result)))
	return e.recommendations(rctx, result, path, req.explain)
}

// failureKind 把模型路径的错误归类，用于日志检索。
func failureKind(err error) string {
	switch {
	case core.IsUnavailable(err):
		return "unavailable"
	case core.IsInvalidInput(err):
		return "invalid_input"
	case core.IsInternalError(err):
		return "malformed_output"
	default:
		return "error"
	}
}

// coldStart 锚点缺少结构化数据时不信任模型，只走规则匹配。
func (e *Engine) coldStart(rctx *core.RecommendContext) bool {
	if rctx.RankingCandidates() {
		return rctx.Job.IsMinimal()
	}
	return rctx.Seeker.IsMinimal()
}

// pool 构建候选池：可用性门槛加上配置的过滤器。模型路径与规则兜底都从这里出发。
// 过滤器准备失败只记录日志，不中断请求。
func (e *Engine) pool(ctx context.Context, rctx *core.RecommendContext, items []*core.Item, log *zap.Logger) []*core.Item {
	filters := append([]filter.Filter{&filter.AvailabilityFilter{}}, e.filters...)
	if err := filter.Prepare(ctx, rctx, filters); err != nil {
		log.Warn("prepare pool filters", zap.Error(err))
	}
	out := make([]*core.Item, 0, len(items))
	for _, it := range items {
		if keep, _ := filter.Keep(ctx, rctx, it, filters); keep {
			out = append(out, it)
		}
	}
	return out
}

// scoreML 执行 预过滤 → 特征 → 模型打分 → 阈值 → 截断。
func (e *Engine) scoreML(ctx context.Context, rctx *core.RecommendContext, pool []*core.Item, req *request, log *zap.Logger) (out outcome) {
	if e.model == nil {
		return needsFallback(rank.ErrNoModel)
	}
	defer func() {
		if r := recover(); r != nil {
			out = needsFallback(fmt.Errorf("model path panic: %v", r))
		}
	}()

	prefiltered, err := (&filter.FilterNode{NodeName: "filter.prefilter", Filters: filter.Gates(e.now)}).
		Process(ctx, rctx, fresh(pool))
	if err != nil {
		return needsFallback(err)
	}
	log.Debug("prefilter", zap.Int("pool", len(pool)), zap.Int("kept", len(prefiltered)))
	if len(prefiltered) == 0 {
		return ok([]*core.Item{}, PathML)
	}

	p := &pipeline.Pipeline{
		Nodes: []pipeline.Node{
			&feature.EnrichNode{Extractor: e.extractor, Workers: e.workers},
			&rank.ModelNode{Model: e.model},
			&rerank.ThresholdNode{Threshold: *req.threshold, Floor: *req.floor, RelaxedLimit: e.cfg.RelaxedLimit()},
			&rerank.TopNNode{N: req.topN},
		},
		Hooks: []pipeline.Hook{
			func(n pipeline.Node, in, out int) {
				log.Debug("node done", zap.String("node", n.Name()), zap.Int("in", in), zap.Int("out", out))
			},
		},
	}
	scored, err := p.Run(ctx, rctx, prefiltered)
	if err != nil {
		return needsFallback(err)
	}
	if len(scored) == 0 {
		return needsFallback(nil)
	}
	path := PathML
	if lbl, found := rctx.GetLabel(rerank.LabelPath); found && lbl.Value == rerank.PathMLRelaxed {
		log.Debug("threshold relaxed", zap.Float64("floor", *req.floor), zap.Int("kept", len(scored)))
		path = PathMLRelaxed
	}
	return ok(scored, path)
}

// logParseFailures 记录无法解析的经历时长，只在 Debug 级别开启时计算。
func (e *Engine) logParseFailures(rctx *core.RecommendContext, pool []*core.Item, log *zap.Logger) {
	if !log.Core().Enabled(zap.DebugLevel) {
		return
	}
	now := e.now()
	report := func(s *core.Seeker) {
		if s == nil {
			return
		}
		_, failures := match.ParseExperience(s.Experience, now)
		for _, f := range failures {
			log.Debug("skip experience entry",
				zap.String("seeker_id", s.ID),
				zap.Int("index", f.Index),
				zap.String("duration", f.Duration),
				zap.String("reason", f.Reason))
		}
	}
	if !rctx.RankingCandidates() {
		report(rctx.Seeker)
		return
	}
	for _, it := range pool {
		report(it.Seeker)
	}
}

// fresh 为同一批实体创建新的 Item，不带分数、特征与标签。
func fresh(items []*core.Item) []*core.Item {
	out := make([]*core.Item, 0, len(items))
	for _, it := range items {
		if it.Seeker != nil {
			out = append(out, core.NewSeekerItem(it.Seeker))
		} else {
			out = append(out, core.NewJobItem(it.Job))
		}
	}
	return out
}
