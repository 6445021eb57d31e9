package core

// 特征名。顺序即模型训练时的列顺序，属于契约的一部分，不可调整。
const (
	FeatureSkillsJaccard         = "skills_jaccard"
	FeatureSkillsOverlap         = "skills_overlap"
	FeatureEducationMatch        = "education_match"
	FeatureExperienceYears       = "experience_years"
	FeatureJobExperienceRequired = "job_experience_required"
	FeatureExperienceGap         = "experience_gap"
	FeaturePreferredJobTypeMatch = "preferred_job_type_match"
	FeatureLocationMatch         = "location_match"
	FeatureSalaryWithinRange     = "salary_within_range"
	FeatureSeekerRating          = "seeker_rating"
	FeatureIsAvailable           = "is_available"
)

// FeatureCount 特征向量长度。
const FeatureCount = 11

var featureNames = [FeatureCount]string{
	FeatureSkillsJaccard,
	FeatureSkillsOverlap,
	FeatureEducationMatch,
	FeatureExperienceYears,
	FeatureJobExperienceRequired,
	FeatureExperienceGap,
	FeaturePreferredJobTypeMatch,
	FeatureLocationMatch,
	FeatureSalaryWithinRange,
	FeatureSeekerRating,
	FeatureIsAvailable,
}

// FeatureNames 返回按契约顺序排列的特征名（副本）。
func FeatureNames() []string {
	out := make([]string, FeatureCount)
	copy(out, featureNames[:])
	return out
}

// FeatureIndex 返回特征名在向量中的下标。
func FeatureIndex(name string) (int, bool) {
	for i, n := range featureNames {
		if n == name {
			return i, true
		}
	}
	return -1, false
}

// FeatureVector 是 (seeker, job) 对的定长、定序特征向量。
// 数组为值类型，构造完成后不可被外部修改。
type FeatureVector [FeatureCount]float64

// Slice 按契约顺序返回特征值（副本），用于模型批量输入。
func (v FeatureVector) Slice() []float64 {
	out := make([]float64, FeatureCount)
	copy(out, v[:])
	return out
}

// Map 以特征名为 key 返回特征值，用于 explain。
func (v FeatureVector) Map() map[string]float64 {
	out := make(map[string]float64, FeatureCount)
	for i, n := range featureNames {
		out[n] = v[i]
	}
	return out
}

// Get 按特征名取值。
func (v FeatureVector) Get(name string) (float64, bool) {
	i, ok := FeatureIndex(name)
	if !ok {
		return 0, false
	}
	return v[i], true
}
