package core

// EngineConfig 是推荐引擎的阈值配置接口，用于提供默认值。
type EngineConfig interface {
	// JobsThreshold 为求职者推荐职位时的模型概率阈值
	JobsThreshold() float64

	// JobsFloor 职位方向的放宽阈值（无条目达到阈值时使用）
	JobsFloor() float64

	// CandidatesThreshold 为职位推荐候选人时的模型概率阈值
	CandidatesThreshold() float64

	// CandidatesFloor 候选人方向的放宽阈值
	CandidatesFloor() float64

	// TopN 默认返回条数
	TopN() int

	// RelaxedLimit 放宽阈值后最多保留的条数
	RelaxedLimit() int
}

// DefaultEngineConfig 是默认的引擎配置实现。
type DefaultEngineConfig struct{}

func (DefaultEngineConfig) JobsThreshold() float64       { return 0.5 }
func (DefaultEngineConfig) JobsFloor() float64           { return 0.3 }
func (DefaultEngineConfig) CandidatesThreshold() float64 { return 0.2 }
func (DefaultEngineConfig) CandidatesFloor() float64     { return 0.15 }
func (DefaultEngineConfig) TopN() int                    { return 10 }
func (DefaultEngineConfig) RelaxedLimit() int            { return 5 }
