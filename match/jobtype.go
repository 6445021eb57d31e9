package match

import (
	"strings"

	"github.com/rushteam/matchkit/core"
)

// relatedJobTypes 是偏好类型 → 相关职位类型的部分得分。
var relatedJobTypes = map[string]map[string]float64{
	core.JobTypeFullTime:   {core.JobTypePartTime: 0.5, core.JobTypeContract: 0.3},
	core.JobTypePartTime:   {core.JobTypeFullTime: 0.5, core.JobTypeTemporary: 0.7},
	core.JobTypeContract:   {core.JobTypeFullTime: 0.3, core.JobTypeTemporary: 0.5},
	core.JobTypeInternship: {core.JobTypePartTime: 0.5, core.JobTypeTemporary: 0.3},
	core.JobTypeTemporary:  {core.JobTypePartTime: 0.7, core.JobTypeContract: 0.5},
}

// NormalizeJobType 统一职位类型写法："full-time" / "Full Time" → "FULL_TIME"。
func NormalizeJobType(t string) string {
	t = strings.ToUpper(strings.TrimSpace(t))
	return strings.NewReplacer("-", "_", " ", "_").Replace(t)
}

// JobType 计算职位类型匹配。
// 职位类型为空得 0；求职者无偏好或直接命中得 1；否则取相关类型表中的最高分。
func JobType(prefs []string, jobType string) float64 {
	jt := NormalizeJobType(jobType)
	if jt == "" {
		return 0
	}
	if len(prefs) == 0 {
		return 1.0
	}
	best := 0.0
	for _, p := range prefs {
		p = NormalizeJobType(p)
		if p == jt {
			return 1.0
		}
		if s, ok := relatedJobTypes[p][jt]; ok && s > best {
			best = s
		}
	}
	return best
}
