package core

import (
	"strings"
	"time"
	"unicode/utf8"
)

// 职位类型枚举。
const (
	JobTypeFullTime   = "FULL_TIME"
	JobTypePartTime   = "PART_TIME"
	JobTypeContract   = "CONTRACT"
	JobTypeInternship = "INTERNSHIP"
	JobTypeTemporary  = "TEMPORARY"
)

// 经验等级标签。
const (
	ExperienceLevelEntry  = "ENTRY"
	ExperienceLevelMid    = "MID"
	ExperienceLevelSenior = "SENIOR"
)

// RequirementTypeEducation 是结构化学历要求的类型值。
const RequirementTypeEducation = "education"

// minDescriptionLen 职位描述超过该长度才算"有内容"（冷启动判定）。
const minDescriptionLen = 10

// Requirement 是一条职位要求。
// 结构化形式：{type: "education", level, field}；旧形式：Text 为自由文本。
type Requirement struct {
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
	Field string `json:"field,omitempty" yaml:"field,omitempty"`
	Text  string `json:"text,omitempty" yaml:"text,omitempty"`
}

// IsEducation 是否为结构化学历要求。
func (r Requirement) IsEducation() bool {
	return strings.EqualFold(strings.TrimSpace(r.Type), RequirementTypeEducation)
}

// Job 是职位的只读快照。
type Job struct {
	ID              string        `json:"id" yaml:"id"`
	Title           string        `json:"title,omitempty" yaml:"title,omitempty"`
	Description     string        `json:"description,omitempty" yaml:"description,omitempty"`
	Skills          []string      `json:"skills" yaml:"skills"`
	Requirements    []Requirement `json:"requirements" yaml:"requirements"`
	Location        string        `json:"location" yaml:"location"`
	JobType         string        `json:"job_type" yaml:"job_type"`
	SalaryMin       *int64        `json:"salary_min,omitempty" yaml:"salary_min,omitempty"`
	SalaryMax       *int64        `json:"salary_max,omitempty" yaml:"salary_max,omitempty"`
	MinExperience   float64       `json:"min_experience" yaml:"min_experience"`
	ExperienceLevel string        `json:"experience_level,omitempty" yaml:"experience_level,omitempty"`
	Deadline        time.Time     `json:"application_deadline,omitempty" yaml:"application_deadline,omitempty"`
}

// IsMinimal 判断是否为冷启动职位：没有技能，且描述不超过 10 个字符。
func (j *Job) IsMinimal() bool {
	if j == nil {
		return true
	}
	return len(j.Skills) == 0 &&
		utf8.RuneCountInString(strings.TrimSpace(j.Description)) <= minDescriptionLen
}

// Expired 判断申请截止日期是否早于 now（未设置截止日期的职位永不过期）。
// 截止日期当天仍可申请。
func (j *Job) Expired(now time.Time) bool {
	if j == nil || j.Deadline.IsZero() {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	dy, dm, dd := j.Deadline.Date()
	deadline := time.Date(dy, dm, dd, 0, 0, 0, 0, now.Location())
	return deadline.Before(today)
}
