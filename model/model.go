// Package model 提供打分模型的实现：本地 LR 产物与外部 HTTP 模型服务。
//
// 模型在进程启动时通过 Open 加载一次，之后只读，可被并发调用。
package model

import (
	"fmt"
	"time"

	"github.com/rushteam/matchkit/core"
)

// 模型类型
const (
	TypeLR   = "lr"
	TypeRPC  = "rpc"
	TypeNone = "none"
)

var (
	// ErrMalformedArtifact 表示模型产物无法解析或缺少必要字段
	ErrMalformedArtifact = core.NewDomainError(core.ModuleModel, core.ErrorCodeInvalidInput, "model: malformed artifact")

	// ErrFeatureOrder 表示模型产物的特征列与 core.FeatureNames 不一致
	ErrFeatureOrder = core.NewDomainError(core.ModuleModel, core.ErrorCodeInvalidInput, "model: feature order mismatch")

	// ErrUnavailable 表示模型服务不可用
	ErrUnavailable = core.NewDomainError(core.ModuleModel, core.ErrorCodeUnavailable, "model: unavailable")
)

// Config 是模型的加载配置。
type Config struct {
	Type     string        `yaml:"type" mapstructure:"type"`
	Path     string        `yaml:"path" mapstructure:"path"`
	Endpoint string        `yaml:"endpoint" mapstructure:"endpoint"`
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// Open 按配置加载模型。type 为 none 或空时返回 (nil, nil)，引擎此时只走规则匹配。
func Open(cfg Config) (core.ScoringModel, error) {
	switch cfg.Type {
	case "", TypeNone:
		return nil, nil
	case TypeLR:
		if cfg.Path == "" {
			return nil, fmt.Errorf("model: lr requires path")
		}
		m, err := LoadLRModel(cfg.Path)
		if err != nil {
			return nil, err
		}
		return m, nil
	case TypeRPC:
		if cfg.Endpoint == "" {
			return nil, fmt.Errorf("model: rpc requires endpoint")
		}
		return NewRPCModel(TypeRPC, cfg.Endpoint, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("model: unknown type %q (supported: %s, %s, %s)", cfg.Type, TypeLR, TypeRPC, TypeNone)
	}
}

// checkRows 校验每行都是完整的特征向量。
func checkRows(rows [][]float64) error {
	for i, r := range rows {
		if len(r) != core.FeatureCount {
			return fmt.Errorf("row %d has %d features, want %d: %w",
				i, len(r), core.FeatureCount,
				core.NewDomainError(core.ModuleModel, core.ErrorCodeInvalidInput, "model: bad feature row"))
		}
	}
	return nil
}
