package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rushteam/matchkit/core"
)

// RPCModel 通过 HTTP 调用外部模型服务（如 CatBoost、XGBoost 推理服务）。
// 构造后只读，可被任意多个请求并发调用。
type RPCModel struct {
	name     string
	Endpoint string
	Client   *http.Client
}

// NewRPCModel timeout 为 0 时使用 5s。
func NewRPCModel(name, endpoint string, timeout time.Duration) *RPCModel {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &RPCModel{
		name:     name,
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: timeout},
	}
}

func (m *RPCModel) Name() string { return m.name }

// Version 远程模型的版本由服务端管理，这里以 endpoint 标识。
func (m *RPCModel) Version() string { return m.Endpoint }

type predictRequest struct {
	FeatureNames []string    `json:"feature_names"`
	Instances    [][]float64 `json:"instances"`
}

type predictResponse struct {
	Scores []float64 `json:"scores"`
}

// PredictBatch 一次 POST 完成整批预测：
//
//	请求 {"feature_names": ["skills_jaccard", ...], "instances": [[0.5, 1, ...], ...]}
//	响应 {"scores": [0.85, 0.72, ...]}
//
// 网络错误与非 200 状态码按 ErrUnavailable 返回。
func (m *RPCModel) PredictBatch(ctx context.Context, rows [][]float64) ([]float64, error) {
	if len(rows) == 0 {
		return []float64{}, nil
	}
	if err := checkRows(rows); err != nil {
		return nil, err
	}
	body, err := json.Marshal(predictRequest{FeatureNames: core.FeatureNames(), Instances: rows})
	if err != nil {
		return nil, fmt.Errorf("rpc model: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("rpc model: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := m.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, bytes.TrimSpace(msg))
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("rpc model: decode response: %w", err)
	}
	if len(out.Scores) != len(rows) {
		return nil, fmt.Errorf("rpc model: got %d scores for %d rows", len(out.Scores), len(rows))
	}
	return out.Scores, nil
}
