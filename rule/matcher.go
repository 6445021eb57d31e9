// Package rule 实现基于加权规则的匹配：不依赖训练模型，用于冷启动与模型失败后的兜底。
package rule

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/filter"
	"github.com/rushteam/matchkit/match"
	"github.com/rushteam/matchkit/pkg/utils"
)

// Weights 是各属性得分的权重。
type Weights struct {
	Skills     float64 `yaml:"skills" mapstructure:"skills"`
	Education  float64 `yaml:"education" mapstructure:"education"`
	Location   float64 `yaml:"location" mapstructure:"location"`
	Experience float64 `yaml:"experience" mapstructure:"experience"`
	JobType    float64 `yaml:"job_type" mapstructure:"job_type"`
}

var (
	// JobsWeights 为求职者推荐职位时的权重
	JobsWeights = Weights{Skills: 0.6, Education: 0.15, Location: 0.15, Experience: 0.1, JobType: 0.1}
	// CandidatesWeights 为职位推荐候选人时的权重
	CandidatesWeights = Weights{Skills: 0.6, Education: 0.2, Location: 0.1, Experience: 0.1, JobType: 0.1}
)

const (
	// DefaultMinScore 加权总分低于该值的组合被淘汰
	DefaultMinScore = 0.30
	// RatingBonusWeight 推荐候选人时按评分追加的奖励：rating/5 * 0.05
	RatingBonusWeight = 0.05
)

// Matcher 是规则匹配器，两个推荐方向共用。无状态，可被并发使用。
type Matcher struct {
	Jobs       Weights
	Candidates Weights
	MinScore   float64
	Now        func() time.Time
}

// Option 规则匹配器配置选项
type Option func(*Matcher)

// WithWeights 设置两个方向的权重
func WithWeights(jobs, candidates Weights) Option {
	return func(m *Matcher) {
		m.Jobs = jobs
		m.Candidates = candidates
	}
}

// WithMinScore 设置最低总分
func WithMinScore(min float64) Option {
	return func(m *Matcher) {
		m.MinScore = min
	}
}

// WithClock 设置时钟
func WithClock(now func() time.Time) Option {
	return func(m *Matcher) {
		m.Now = now
	}
}

// NewMatcher 创建规则匹配器
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{
		Jobs:       JobsWeights,
		Candidates: CandidatesWeights,
		MinScore:   DefaultMinScore,
		Now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Matcher) Name() string {
	return "rule.matcher"
}

func (m *Matcher) now() time.Time {
	if m.Now == nil {
		return time.Now()
	}
	return m.Now()
}

// gates 返回规则匹配的门槛，依次为可用性、技能、经验、职位类型。
func (m *Matcher) gates() []filter.Filter {
	return append([]filter.Filter{&filter.AvailabilityFilter{}}, filter.Gates(m.now)...)
}

// Rank 对候选逐个过门槛、加权打分，按分数降序稳定排序后返回前 topN 个（topN<=0 不截断）。
// 没有候选通过时返回空切片，这是正常结果而不是错误。
func (m *Matcher) Rank(ctx context.Context, rctx *core.RecommendContext, items []*core.Item, topN int) []*core.Item {
	gates := m.gates()
	out := make([]*core.Item, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		if keep, _ := filter.Keep(ctx, rctx, it, gates); !keep {
			continue
		}
		seeker, job := rctx.Pair(it)
		score, matched := m.Score(rctx.Direction, seeker, job)
		if score < m.MinScore {
			continue
		}
		if rctx.RankingCandidates() {
			score += seeker.RatingValue() / core.MaxRating * RatingBonusWeight
		}
		it.Score = score
		it.PutLabel("matched_skills", utils.Label{Value: strings.Join(matched, ","), Source: "rule"})
		out = append(out, it)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

// Score 计算 (seeker, job) 的加权分（不含门槛与评分奖励），并返回命中的技能。
func (m *Matcher) Score(dir core.Direction, seeker *core.Seeker, job *core.Job) (float64, []string) {
	if seeker == nil || job == nil {
		return 0, nil
	}
	w := m.Jobs
	if dir == core.DirectionCandidates {
		w = m.Candidates
	}
	skills := match.Skills(seeker.Skills, job.Skills)
	years := match.ExperienceYears(seeker.Experience, m.now())

	score := w.Skills*skills.Score +
		w.Education*match.Education(seeker.Education, job.Requirements) +
		w.Location*match.Location(seeker.Location, job.Location, seeker.WillingToRelocate) +
		w.Experience*match.ExperienceCredit(years, job.MinExperience) +
		w.JobType*match.JobType(seeker.PreferredJobTypes, job.JobType)
	return score, skills.Matched
}
