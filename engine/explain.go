package engine

import (
	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/pkg/utils"
)

// Recommendation 是一条推荐结果。Job 与 Seeker 只有一个非空，取决于推荐方向。
// Features 与 Labels 只在 Explain 时填充。
type Recommendation struct {
	Job      *core.Job          `json:"job,omitempty"`
	Seeker   *core.Seeker       `json:"seeker,omitempty"`
	Score    float64            `json:"score"`
	Path     string             `json:"path"`
	Features map[string]float64 `json:"features,omitempty"`
	Labels   map[string]string  `json:"labels,omitempty"`
}

// ID 返回被推荐实体的 ID。
func (r Recommendation) ID() string {
	if r.Job != nil {
		return r.Job.ID
	}
	if r.Seeker != nil {
		return r.Seeker.ID
	}
	return ""
}

// Jobs 取出推荐结果中的职位。
func Jobs(recs []Recommendation) []*core.Job {
	out := make([]*core.Job, 0, len(recs))
	for _, r := range recs {
		if r.Job != nil {
			out = append(out, r.Job)
		}
	}
	return out
}

// Seekers 取出推荐结果中的求职者。
func Seekers(recs []Recommendation) []*core.Seeker {
	out := make([]*core.Seeker, 0, len(recs))
	for _, r := range recs {
		if r.Seeker != nil {
			out = append(out, r.Seeker)
		}
	}
	return out
}

func (e *Engine) recommendations(rctx *core.RecommendContext, items []*core.Item, path string, explain bool) []Recommendation {
	out := make([]Recommendation, 0, len(items))
	for _, it := range items {
		rec := Recommendation{
			Job:    it.Job,
			Seeker: it.Seeker,
			Score:  it.Score,
			Path:   path,
		}
		if explain {
			if it.Vector == nil {
				seeker, job := rctx.Pair(it)
				v := e.extractor.Extract(seeker, job)
				it.Vector = &v
			}
			rec.Features = it.Features()
			rec.Labels = utils.LabelValues(it.Labels)
		}
		out = append(out, rec)
	}
	return out
}
