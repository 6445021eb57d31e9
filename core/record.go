package core

import (
	"strings"
	"time"

	"github.com/rushteam/matchkit/pkg/conv"
)

// 记录适配：把任意来源（JSON、数据库 JSONB、YAML 快照）解析出的 map[string]any
// 转为规范的 Seeker/Job 形态。引擎只处理规范形态。
//
// 宽松解析：字段缺失或类型不符时取零值，不返回错误。

// SeekerFromRecord 把一条求职者记录转为 Seeker。
// is_available 缺失时视为 true；average_rating 限制在 [0, 5]；salary_expectation <= 0 视为缺失。
func SeekerFromRecord(rec map[string]any) *Seeker {
	if rec == nil {
		return nil
	}
	s := &Seeker{
		ID:                recordID(rec),
		Name:              conv.ConfigGet(rec, "name", ""),
		Skills:            conv.ToStringSlice(rec["skills"]),
		PreferredJobTypes: conv.ToStringSlice(rec["preferred_job_types"]),
		Location:          strings.TrimSpace(conv.ConfigGet(rec, "location", "")),
		SalaryExpectation: positiveInt(rec["salary_expectation"]),
		Available:         true,
	}
	if b, ok := conv.ToBool(rec["willing_to_relocate"]); ok {
		s.WillingToRelocate = b
	}
	if b, ok := conv.ToBool(rec["is_available"]); ok {
		s.Available = b
	}
	if r, ok := conv.ToFloat64(rec["average_rating"]); ok && ValidRating(r) {
		r = ClampRating(r)
		s.Rating = &r
	}
	for _, m := range conv.ToMapSlice(rec["education"]) {
		s.Education = append(s.Education, Education{
			Level: conv.ConfigGet(m, "level", ""),
			Field: conv.ConfigGet(m, "field", ""),
			Type:  conv.ConfigGet(m, "type", ""),
		})
	}
	for _, m := range conv.ToMapSlice(rec["experience"]) {
		s.Experience = append(s.Experience, experienceFromRecord(m))
	}
	return s
}

func experienceFromRecord(m map[string]any) Experience {
	e := Experience{
		Role:     conv.ConfigGet(m, "role", ""),
		Duration: conv.ConfigGet(m, "duration", ""),
	}
	switch v := m["years"].(type) {
	case nil:
	case string:
		// "3 years"、"2019-2022" 之类的文本年限交给时长解析
		if e.Duration == "" {
			e.Duration = v
		}
	default:
		if f, ok := conv.ToFloat64(v); ok {
			e.Years = &f
		}
	}
	return e
}

// JobFromRecord 把一条职位记录转为 Job。
// requirements 中的字符串元素按旧式自由文本要求处理；salary <= 0 视为缺失。
func JobFromRecord(rec map[string]any) *Job {
	if rec == nil {
		return nil
	}
	j := &Job{
		ID:              recordID(rec),
		Title:           conv.ConfigGet(rec, "title", ""),
		Description:     conv.ConfigGet(rec, "description", ""),
		Skills:          conv.ToStringSlice(rec["skills"]),
		Location:        strings.TrimSpace(conv.ConfigGet(rec, "location", "")),
		JobType:         conv.ConfigGet(rec, "job_type", ""),
		SalaryMin:       positiveInt(rec["salary_min"]),
		SalaryMax:       positiveInt(rec["salary_max"]),
		ExperienceLevel: experienceLevel(conv.ConfigGet(rec, "experience_level", "")),
		Deadline:        parseDate(rec["application_deadline"]),
	}
	if f, ok := conv.ToFloat64(rec["min_experience"]); ok && f > 0 {
		j.MinExperience = f
	}
	if raw, ok := rec["requirements"].([]any); ok {
		for _, r := range raw {
			switch v := r.(type) {
			case string:
				if strings.TrimSpace(v) != "" {
					j.Requirements = append(j.Requirements, Requirement{Text: v})
				}
			case map[string]any:
				j.Requirements = append(j.Requirements, Requirement{
					Type:  conv.ConfigGet(v, "type", ""),
					Level: conv.ConfigGet(v, "level", ""),
					Field: conv.ConfigGet(v, "field", ""),
					Text:  conv.ConfigGet(v, "text", ""),
				})
			}
		}
	}
	return j
}

// experienceLevel 规范为 ENTRY/MID/SENIOR，无法识别时为空。
func experienceLevel(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case ExperienceLevelEntry, "JUNIOR":
		return ExperienceLevelEntry
	case ExperienceLevelMid, "MIDDLE", "INTERMEDIATE":
		return ExperienceLevelMid
	case ExperienceLevelSenior, "LEAD":
		return ExperienceLevelSenior
	}
	return ""
}

func recordID(rec map[string]any) string {
	id, _ := conv.AnyToString(rec["id"])
	return id
}

func positiveInt(v any) *int64 {
	n, ok := conv.ToInt64(v)
	if !ok || n <= 0 {
		return nil
	}
	return &n
}

var dateLayouts = []string{time.DateOnly, time.RFC3339}

func parseDate(v any) time.Time {
	switch val := v.(type) {
	case time.Time:
		return val
	case string:
		val = strings.TrimSpace(val)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, val); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}
