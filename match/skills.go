// Package match 提供求职者与职位之间各属性的相似度计算。
//
// 所有函数都是纯函数：不报错、不修改入参，对缺失输入返回中性值或 0。
package match

import "github.com/rushteam/matchkit/skill"

// 技能得分权重。
const (
	skillJaccardWeight  = 0.4
	skillCoverageWeight = 0.6
)

// SkillMatch 是技能匹配结果。
type SkillMatch struct {
	// Matched 规范化后的交集，按职位技能顺序排列
	Matched []string
	// Jaccard 规范化集合的 Jaccard 相似度
	Jaccard float64
	// Coverage 被覆盖的职位技能占比
	Coverage float64
	// Score = 0.4*Jaccard + 0.6*Coverage；交集为空时为 0
	Score float64
}

// Empty 交集是否为空。交集为空的组合在规则匹配与预过滤中都会被淘汰。
func (m SkillMatch) Empty() bool {
	return len(m.Matched) == 0
}

// Skills 计算技能匹配。
func Skills(seekerSkills, jobSkills []string) SkillMatch {
	s := skill.Normalize(seekerSkills)
	j := skill.Normalize(jobSkills)
	if len(s) == 0 || len(j) == 0 {
		return SkillMatch{}
	}

	seekerSet := make(map[string]struct{}, len(s))
	for _, v := range s {
		seekerSet[v] = struct{}{}
	}
	var matched []string
	for _, v := range j {
		if _, ok := seekerSet[v]; ok {
			matched = append(matched, v)
		}
	}
	if len(matched) == 0 {
		return SkillMatch{}
	}

	// Normalize 已去重，并集 = |s| + |j| - |交集|
	union := len(s) + len(j) - len(matched)
	m := SkillMatch{
		Matched:  matched,
		Jaccard:  float64(len(matched)) / float64(union),
		Coverage: float64(len(matched)) / float64(len(j)),
	}
	m.Score = skillJaccardWeight*m.Jaccard + skillCoverageWeight*m.Coverage
	return m
}
