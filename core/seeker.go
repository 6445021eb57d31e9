package core

import (
	"math"
	"strings"
)

// MaxRating 是求职者评分上限。
const MaxRating = 5.0

// Education 是一条教育经历（或职位要求中的学历要求）。
type Education struct {
	Level string `json:"level" yaml:"level"`
	Field string `json:"field" yaml:"field"`
	// Type 旧数据中的学历类型描述（如 "Bachelor of Science"），可为空
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Experience 是一条工作经历。
// Years 为显式年限；为空时尝试解析 Duration（"2019-2022"、"2021-present"、"3 years"）。
type Experience struct {
	Role     string   `json:"role" yaml:"role"`
	Years    *float64 `json:"years,omitempty" yaml:"years,omitempty"`
	Duration string   `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// Seeker 是求职者的只读快照。
//
// 在一次推荐请求内不可变；由 SeekerFromRecord 等适配函数构造，
// 引擎只处理这一规范形态，不直接接触原始存储对象。
type Seeker struct {
	ID                string       `json:"id" yaml:"id"`
	Name              string       `json:"name,omitempty" yaml:"name,omitempty"`
	Skills            []string     `json:"skills" yaml:"skills"`
	Education         []Education  `json:"education" yaml:"education"`
	Experience        []Experience `json:"experience" yaml:"experience"`
	PreferredJobTypes []string     `json:"preferred_job_types" yaml:"preferred_job_types"`
	Location          string       `json:"location" yaml:"location"`
	WillingToRelocate bool         `json:"willing_to_relocate" yaml:"willing_to_relocate"`
	SalaryExpectation *int64       `json:"salary_expectation,omitempty" yaml:"salary_expectation,omitempty"`
	Rating            *float64     `json:"average_rating,omitempty" yaml:"average_rating,omitempty"`
	Available         bool         `json:"is_available" yaml:"is_available"`
}

// RatingValue 返回评分（缺失为 0，限制在 [0, MaxRating]）。
func (s *Seeker) RatingValue() float64 {
	if s == nil || s.Rating == nil {
		return 0
	}
	return ClampRating(*s.Rating)
}

// IsMinimal 判断是否为冷启动画像：技能、地点、经历三者全部缺失。
func (s *Seeker) IsMinimal() bool {
	if s == nil {
		return true
	}
	return len(s.Skills) == 0 &&
		strings.TrimSpace(s.Location) == "" &&
		len(s.Experience) == 0
}

// ValidRating 评分是否为有限数值。NaN 与 ±Inf 视为缺失。
func ValidRating(r float64) bool {
	return !math.IsNaN(r) && !math.IsInf(r, 0)
}

// ClampRating 将评分限制在 [0, MaxRating]，非有限值按缺失处理返回 0。
func ClampRating(r float64) float64 {
	if !ValidRating(r) || r < 0 {
		return 0
	}
	if r > MaxRating {
		return MaxRating
	}
	return r
}
