package match

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rushteam/matchkit/core"
)

var (
	yearPattern   = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// presentWords 表示"至今"的结束词。
var presentWords = map[string]struct{}{"present": {}, "now": {}, "current": {}}

// ParseFailure 是一条无法解析的工作经历时长，会被跳过。
type ParseFailure struct {
	Index    int
	Duration string
	Reason   string
}

func (f ParseFailure) Error() string {
	return fmt.Sprintf("experience[%d]: cannot parse duration %q: %s", f.Index, f.Duration, f.Reason)
}

// ExperienceYears 计算工作年限合计，解析失败的条目被跳过。
func ExperienceYears(entries []core.Experience, now time.Time) float64 {
	years, _ := ParseExperience(entries, now)
	return years
}

// ParseExperience 计算工作年限合计（保留一位小数，≥0），并返回被跳过的条目。
//
// 每条经历优先使用 Years；否则解析 Duration：
//   - "2019-2022"、"Jan 2021 - present"（present/now/current 取 now 的年份）
//   - "3 years"、"2.5 years"
func ParseExperience(entries []core.Experience, now time.Time) (float64, []ParseFailure) {
	var total float64
	var failures []ParseFailure
	for i, e := range entries {
		if e.Years != nil {
			total += *e.Years
			continue
		}
		d := strings.TrimSpace(e.Duration)
		if d == "" {
			continue
		}
		years, reason := parseDuration(d, now.Year())
		if reason != "" {
			failures = append(failures, ParseFailure{Index: i, Duration: d, Reason: reason})
			continue
		}
		total += years
	}
	if total < 0 {
		total = 0
	}
	return math.Round(total*10) / 10, failures
}

func parseDuration(d string, currentYear int) (float64, string) {
	if strings.Contains(d, "-") {
		parts := strings.Split(d, "-")
		if len(parts) != 2 {
			return 0, "expected a single start-end range"
		}
		start, ok := findYear(parts[0])
		if !ok {
			return 0, "no start year"
		}
		end := currentYear
		if _, present := presentWords[strings.ToLower(strings.TrimSpace(parts[1]))]; !present {
			if end, ok = findYear(parts[1]); !ok {
				return 0, "no end year"
			}
		}
		return float64(max(0, end-start)), ""
	}
	if strings.Contains(strings.ToLower(d), "year") {
		m := numberPattern.FindString(d)
		if m == "" {
			return 0, "no number of years"
		}
		f, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return 0, err.Error()
		}
		return f, ""
	}
	return 0, "unrecognized format"
}

func findYear(s string) (int, bool) {
	m := yearPattern.FindString(s)
	if m == "" {
		return 0, false
	}
	y, err := strconv.Atoi(m)
	return y, err == nil
}

// ExperienceCredit 经验得分：职位无最低要求或已达到要求得 1，否则按比例给分。
func ExperienceCredit(years, required float64) float64 {
	if required <= 0 || years >= required {
		return 1.0
	}
	if years <= 0 {
		return 0
	}
	return years / required
}

// experienceTolerance 经验门槛的宽容系数：年限低于要求的 60% 才淘汰。
const experienceTolerance = 0.6

// MeetsExperience 经验门槛：职位要求 > 0 且年限低于要求的 60% 时不通过。
func MeetsExperience(years, required float64) bool {
	return required <= 0 || years >= experienceTolerance*required
}
