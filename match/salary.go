package match

// salaryTolerance 求职者期望可以超出职位最低薪资的比例。
const salaryTolerance = 1.2

// Salary 计算薪资兼容度，取值 {0, 0.5, 1}：
//   - 求职者期望 ≤ 职位最高薪资：1.0
//   - 求职者期望 ≤ 1.2 × 职位最低薪资：1.0
//   - 任一方薪资数据缺失：0.5
//   - 否则：0
func Salary(seekerMin, jobMin, jobMax *int64) float64 {
	if seekerMin == nil || (jobMin == nil && jobMax == nil) {
		return 0.5
	}
	expect := float64(*seekerMin)
	if jobMax != nil && expect <= float64(*jobMax) {
		return 1.0
	}
	if jobMin != nil && expect <= salaryTolerance*float64(*jobMin) {
		return 1.0
	}
	return 0
}
