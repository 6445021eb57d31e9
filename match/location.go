package match

import "strings"

// Location 计算地点匹配：
//   - 任一方缺失：0.5
//   - 完全一致（忽略大小写与空白）：1.0
//   - 一方包含另一方（如 "Dar" 与 "Dar es Salaam"）：0.9
//   - 愿意搬迁：0.7
//   - 否则：0
func Location(seekerLoc, jobLoc string, willingToRelocate bool) float64 {
	s := normalizeText(seekerLoc)
	j := normalizeText(jobLoc)
	if s == "" || j == "" {
		return 0.5
	}
	if s == j {
		return 1.0
	}
	if strings.Contains(j, s) || strings.Contains(s, j) {
		return 0.9
	}
	if willingToRelocate {
		return 0.7
	}
	return 0
}

// normalizeText 小写并折叠空白。
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
