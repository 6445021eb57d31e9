package core

import "github.com/rushteam/matchkit/pkg/utils"

// Direction 推荐方向。
type Direction string

const (
	// DirectionJobs 为求职者推荐职位（锚点是 Seeker，候选是 Job）
	DirectionJobs Direction = "jobs_for_seeker"
	// DirectionCandidates 为职位推荐候选人（锚点是 Job，候选是 Seeker）
	DirectionCandidates Direction = "candidates_for_job"
)

// RecommendContext 承载一次推荐请求的锚点与上下文，贯穿整个 Pipeline 透传。
// 请求之间不共享，生命周期与单次请求一致。
type RecommendContext struct {
	// RequestID 用于日志关联；为空时由引擎生成
	RequestID string
	Direction Direction

	// 锚点实体：DirectionJobs 时为 Seeker，DirectionCandidates 时为 Job
	Seeker *Seeker
	Job    *Job

	// Labels 是请求级标签（如 cold_start、path）
	Labels map[string]utils.Label

	// Params 请求级参数（如 now、exclude_ids）
	Params map[string]any
}

// Pair 返回 item 对应的 (seeker, job) 组合，与推荐方向无关。
func (rctx *RecommendContext) Pair(it *Item) (*Seeker, *Job) {
	if rctx == nil || it == nil {
		return nil, nil
	}
	if rctx.Direction == DirectionCandidates {
		return it.Seeker, rctx.Job
	}
	return rctx.Seeker, it.Job
}

// RankingCandidates 是否在为职位推荐候选人。
func (rctx *RecommendContext) RankingCandidates() bool {
	return rctx != nil && rctx.Direction == DirectionCandidates
}

// PutLabel 写入请求级 Label。
func (rctx *RecommendContext) PutLabel(key string, lbl utils.Label) {
	if rctx.Labels == nil {
		rctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := rctx.Labels[key]; ok {
		rctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	rctx.Labels[key] = lbl
}

// GetLabel 获取请求级 Label。
func (rctx *RecommendContext) GetLabel(key string) (utils.Label, bool) {
	if rctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := rctx.Labels[key]
	return lbl, ok
}
