package match

import (
	"regexp"
	"strings"

	"github.com/rushteam/matchkit/core"
)

// 学历等级：none < ordinary < certificate < diploma < bachelor/degree < masters < phd/doctorate。
const (
	RankNone = iota
	RankOrdinary
	RankCertificate
	RankDiploma
	RankBachelor
	RankMasters
	RankDoctorate
)

// 结构化学历要求中等级与专业的权重。
const (
	structuredLevelWeight = 0.4
	structuredFieldWeight = 0.6
	legacyLevelWeight     = 0.5
	legacyFieldWeight     = 0.5

	partialFieldScore = 0.8
	// unusableRequirementsScore 有结构化学历要求但都缺少等级或专业时的中性分
	unusableRequirementsScore = 0.5
)

// rankKeywords 按等级从高到低排列，命中第一个即返回。
var rankKeywords = []struct {
	keywords []string
	rank     int
}{
	{[]string{"phd", "ph.d", "doctorate", "doctoral"}, RankDoctorate},
	{[]string{"master"}, RankMasters},
	{[]string{"bachelor", "degree"}, RankBachelor},
	{[]string{"diploma"}, RankDiploma},
	{[]string{"certificate"}, RankCertificate},
	{[]string{"ordinary"}, RankOrdinary},
}

// legacyFieldKeywords 旧式自由文本要求中识别的专业关键词。
var legacyFieldKeywords = []string{
	"engineering", "computer science", "it", "software",
	"business", "marketing", "finance", "accounting",
	"medicine", "healthcare", "data science",
}

var legacyFieldPatterns = compileWordPatterns(legacyFieldKeywords)

func compileWordPatterns(words []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		out[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return out
}

// EducationRank 从学历描述中识别等级，无法识别返回 RankNone。
func EducationRank(level string) int {
	l := strings.ToLower(level)
	if l == "" {
		return RankNone
	}
	for _, rk := range rankKeywords {
		for _, kw := range rk.keywords {
			if strings.Contains(l, kw) {
				return rk.rank
			}
		}
	}
	return RankNone
}

// Education 计算学历匹配，取值 [0,1]。
//
// 没有任何要求时得 1.0。存在 type=education 的结构化要求时，对每条要求取求职者
// 最匹配的一条教育经历（0.4*等级 + 0.6*专业），再对所有要求取平均。
// 否则按旧式自由文本要求识别等级与专业关键词计分。
func Education(edu []core.Education, reqs []core.Requirement) float64 {
	if len(reqs) == 0 {
		return 1.0
	}
	var typed []core.Requirement
	for _, r := range reqs {
		if r.IsEducation() {
			typed = append(typed, r)
		}
	}
	if len(typed) > 0 {
		return structuredEducation(edu, typed)
	}
	return legacyEducation(edu, reqs)
}

func structuredEducation(edu []core.Education, typed []core.Requirement) float64 {
	var sum float64
	var n int
	for _, req := range typed {
		if strings.TrimSpace(req.Level) == "" || strings.TrimSpace(req.Field) == "" {
			continue
		}
		required := EducationRank(req.Level)
		best := 0.0
		for _, e := range edu {
			if strings.TrimSpace(e.Level) == "" || strings.TrimSpace(e.Field) == "" {
				continue
			}
			score := structuredLevelWeight*levelScore(EducationRank(e.Level), required) +
				structuredFieldWeight*fieldScore(e.Field, req.Field)
			if score > best {
				best = score
			}
		}
		sum += best
		n++
	}
	if n == 0 {
		return unusableRequirementsScore
	}
	return sum / float64(n)
}

// levelScore 达到或超过要求得 1；双方等级都已知时按比例给分；否则 0。
func levelScore(have, required int) float64 {
	if have >= required {
		return 1.0
	}
	if have > 0 && required > 0 {
		return float64(have) / float64(required)
	}
	return 0
}

// fieldScore 去空格小写后完全一致得 1.0，互相包含得 0.8。
func fieldScore(have, required string) float64 {
	h := strings.ToLower(strings.ReplaceAll(have, " ", ""))
	r := strings.ToLower(strings.ReplaceAll(required, " ", ""))
	if h == "" || r == "" {
		return 0
	}
	if h == r {
		return 1.0
	}
	if strings.Contains(h, r) || strings.Contains(r, h) {
		return partialFieldScore
	}
	return 0
}

func legacyEducation(edu []core.Education, reqs []core.Requirement) float64 {
	required := RankNone
	var fields []*regexp.Regexp
	for _, r := range reqs {
		text := strings.ToLower(r.Text)
		if text == "" {
			continue
		}
		if rank := legacyRequiredRank(text); rank > required {
			required = rank
		}
		for _, p := range legacyFieldPatterns {
			if p.MatchString(text) {
				fields = append(fields, p)
			}
		}
	}
	if required == RankNone && len(fields) == 0 {
		return 1.0
	}

	have := RankNone
	for _, e := range edu {
		if r := EducationRank(e.Level); r > have {
			have = r
		}
		if r := EducationRank(e.Type); r > have {
			have = r
		}
	}

	level := 1.0
	if required > RankNone {
		level = levelScore(have, required)
	}

	field := 1.0
	if len(fields) > 0 {
		field = 0
	hit:
		for _, e := range edu {
			f := strings.ToLower(e.Field)
			if f == "" {
				continue
			}
			for _, p := range fields {
				if p.MatchString(f) {
					field = 1.0
					break hit
				}
			}
		}
	}
	return legacyLevelWeight*level + legacyFieldWeight*field
}

// legacyRequiredRank 只识别 bachelor/degree、master、phd/doctorate、diploma 四档。
func legacyRequiredRank(text string) int {
	switch {
	case strings.Contains(text, "phd") || strings.Contains(text, "doctorate"):
		return RankDoctorate
	case strings.Contains(text, "master"):
		return RankMasters
	case strings.Contains(text, "bachelor") || strings.Contains(text, "degree"):
		return RankBachelor
	case strings.Contains(text, "diploma"):
		return RankDiploma
	}
	return RankNone
}
