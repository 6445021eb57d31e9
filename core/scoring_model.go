package core

import "context"

// ScoringModel 是预训练二分类打分模型的领域接口。
//
// 契约：给定 N 个特征向量（列顺序见 FeatureNames），返回 N 个 [0,1] 内的匹配概率，
// 顺序与输入一致。模型在进程启动时加载一次，之后只读，可被任意多个请求并发调用。
//
// 实现：
//   - model.LRModel：本地 JSON 产物
//   - model.RPCModel：外部 HTTP 模型服务
type ScoringModel interface {
	// Name 模型名称（用于日志）
	Name() string

	// Version 模型产物版本
	Version() string

	// PredictBatch 批量预测，一次请求只调用一次
	PredictBatch(ctx context.Context, rows [][]float64) ([]float64, error)
}

// ScoringModelFunc 把普通函数适配为 ScoringModel，常用于测试与规则桩。
type ScoringModelFunc func(ctx context.Context, rows [][]float64) ([]float64, error)

func (f ScoringModelFunc) Name() string    { return "func" }
func (f ScoringModelFunc) Version() string { return "" }

func (f ScoringModelFunc) PredictBatch(ctx context.Context, rows [][]float64) ([]float64, error) {
	return f(ctx, rows)
}
