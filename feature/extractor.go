package feature

import (
	"time"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/match"
)

// Extractor 把属性匹配结果组合为定长、定序的特征向量。
//
// 特征顺序见 core.FeatureNames；模型按该顺序训练，不可调整。
// Extractor 无状态，可被并发使用。
type Extractor struct {
	// Now 用于解析 "present" 之类的时长，默认 time.Now
	Now func() time.Time
}

// ExtractorOption 抽取器配置选项
type ExtractorOption func(*Extractor)

// WithClock 设置时钟（测试中固定当前年份）
func WithClock(now func() time.Time) ExtractorOption {
	return func(e *Extractor) {
		e.Now = now
	}
}

// NewExtractor 创建特征抽取器
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{Now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Extractor) Name() string {
	return "feature.extractor"
}

// Extract 为 (seeker, job) 组合构建特征向量，nil 视为空画像。
func (e *Extractor) Extract(s *core.Seeker, j *core.Job) core.FeatureVector {
	if s == nil {
		s = &core.Seeker{}
	}
	if j == nil {
		j = &core.Job{}
	}

	skills := match.Skills(s.Skills, j.Skills)
	years := match.ExperienceYears(s.Experience, e.now())

	var v core.FeatureVector
	v[0] = skills.Jaccard
	v[1] = float64(len(skills.Matched))
	v[2] = match.Education(s.Education, j.Requirements)
	v[3] = years
	v[4] = j.MinExperience
	v[5] = years - j.MinExperience
	v[6] = match.JobType(s.PreferredJobTypes, j.JobType)
	v[7] = match.Location(s.Location, j.Location, s.WillingToRelocate)
	v[8] = match.Salary(s.SalaryExpectation, j.SalaryMin, j.SalaryMax)
	v[9] = s.RatingValue()
	if s.Available {
		v[10] = 1
	}
	return v
}

func (e *Extractor) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}
