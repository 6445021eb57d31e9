package model

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"slices"

	"github.com/rushteam/matchkit/core"
)

// LRModel 实现了逻辑回归 (Logistic Regression) 打分模型。
//
// 预测原理：
//  1. 标准化（可选）: x' = (x - Mean) / Scale
//  2. 线性加权求和: z = Bias + sum(Weight_i * x'_i)
//  3. Sigmoid 变换: P = 1 / (1 + exp(-z))
//
// 权重按 core.FeatureNames 的顺序排列。
type LRModel struct {
	version string
	Bias    float64   // 偏置项 (Bias / Intercept)
	Weights []float64 // 特征权重，长度为 core.FeatureCount
	Mean    []float64 // 标准化均值（可选）
	Scale   []float64 // 标准化尺度（可选）
}

// lrArtifact 是 LR 模型产物的 JSON 结构：
//
//	{
//	  "version": "2025-06-01",
//	  "feature_names": ["skills_jaccard", ...],
//	  "bias": -1.2,
//	  "weights": [2.1, ...],
//	  "mean": [...], "scale": [...]
//	}
type lrArtifact struct {
	Version      string    `json:"version"`
	FeatureNames []string  `json:"feature_names"`
	Bias         float64   `json:"bias"`
	Weights      []float64 `json:"weights"`
	Mean         []float64 `json:"mean,omitempty"`
	Scale        []float64 `json:"scale,omitempty"`
}

// LoadLRModel 从 JSON 产物加载 LR 模型，并校验特征顺序。
func LoadLRModel(path string) (*LRModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	return ParseLRModel(data)
}

// ParseLRModel 从 JSON 字节解析 LR 模型。
func ParseLRModel(data []byte) (*LRModel, error) {
	var raw lrArtifact
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedArtifact, err)
	}
	if !slices.Equal(raw.FeatureNames, core.FeatureNames()) {
		return nil, fmt.Errorf("%w: got %v", ErrFeatureOrder, raw.FeatureNames)
	}
	if len(raw.Weights) != core.FeatureCount {
		return nil, fmt.Errorf("%w: %d weights, want %d", ErrMalformedArtifact, len(raw.Weights), core.FeatureCount)
	}
	if (raw.Mean == nil) != (raw.Scale == nil) ||
		(raw.Mean != nil && (len(raw.Mean) != core.FeatureCount || len(raw.Scale) != core.FeatureCount)) {
		return nil, fmt.Errorf("%w: mean and scale must both have %d values", ErrMalformedArtifact, core.FeatureCount)
	}
	return &LRModel{
		version: raw.Version,
		Bias:    raw.Bias,
		Weights: raw.Weights,
		Mean:    raw.Mean,
		Scale:   raw.Scale,
	}, nil
}

func (m *LRModel) Name() string    { return TypeLR }
func (m *LRModel) Version() string { return m.version }

// PredictBatch 对每行特征计算匹配概率。
func (m *LRModel) PredictBatch(ctx context.Context, rows [][]float64) ([]float64, error) {
	if err := checkRows(rows); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]float64, len(rows))
	for i, row := range rows {
		z := m.Bias
		for j, x := range row {
			if m.Mean != nil && m.Scale[j] != 0 {
				x = (x - m.Mean[j]) / m.Scale[j]
			}
			z += m.Weights[j] * x
		}
		out[i] = 1 / (1 + math.Exp(-z))
	}
	return out, nil
}
