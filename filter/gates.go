package filter

import (
	"context"
	"time"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/match"
)

// 门槛过滤器：规则匹配与模型预过滤共用同一组判定，
// 保证模型路径永远不会推荐技能零重合的组合。

// AvailabilityFilter 过滤不可用的求职者，只在为职位推荐候选人时生效。
type AvailabilityFilter struct{}

func (f *AvailabilityFilter) Name() string { return "filter.availability" }

func (f *AvailabilityFilter) ShouldFilter(_ context.Context, rctx *core.RecommendContext, item *core.Item) (bool, error) {
	if item == nil {
		return true, nil
	}
	if !rctx.RankingCandidates() {
		return false, nil
	}
	return item.Seeker == nil || !item.Seeker.Available, nil
}

// SkillFilter 过滤规范化技能交集为空的组合。技能重合是必要条件。
type SkillFilter struct{}

func (f *SkillFilter) Name() string { return "filter.skill" }

func (f *SkillFilter) ShouldFilter(_ context.Context, rctx *core.RecommendContext, item *core.Item) (bool, error) {
	seeker, job := rctx.Pair(item)
	if seeker == nil || job == nil {
		return true, nil
	}
	return match.Skills(seeker.Skills, job.Skills).Empty(), nil
}

// ExperienceFilter 职位有最低年限要求，且求职者年限低于要求的 60% 时过滤。
type ExperienceFilter struct {
	// Now 用于解析 "present"，默认 time.Now
	Now func() time.Time
}

func (f *ExperienceFilter) Name() string { return "filter.experience" }

func (f *ExperienceFilter) ShouldFilter(_ context.Context, rctx *core.RecommendContext, item *core.Item) (bool, error) {
	seeker, job := rctx.Pair(item)
	if seeker == nil || job == nil {
		return true, nil
	}
	if job.MinExperience <= 0 {
		return false, nil
	}
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}
	years := match.ExperienceYears(seeker.Experience, now())
	return !match.MeetsExperience(years, job.MinExperience), nil
}

// JobTypeFilter 为有职位类型偏好的求职者推荐职位时，过滤类型得分为 0 的职位。
type JobTypeFilter struct{}

func (f *JobTypeFilter) Name() string { return "filter.job_type" }

func (f *JobTypeFilter) ShouldFilter(_ context.Context, rctx *core.RecommendContext, item *core.Item) (bool, error) {
	if rctx.RankingCandidates() {
		return false, nil
	}
	seeker, job := rctx.Pair(item)
	if seeker == nil || job == nil {
		return true, nil
	}
	if len(seeker.PreferredJobTypes) == 0 {
		return false, nil
	}
	return match.JobType(seeker.PreferredJobTypes, job.JobType) == 0, nil
}

// Gates 返回预过滤使用的门槛：技能、经验、职位类型。
// 可用性门槛在构建候选池时已经执行。
func Gates(now func() time.Time) []Filter {
	return []Filter{
		&SkillFilter{},
		&ExperienceFilter{Now: now},
		&JobTypeFilter{},
	}
}
