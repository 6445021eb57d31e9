// Package config 定义匹配引擎的配置结构与加载、校验逻辑。
//
// 使用配置中的 filters 时，需在入口处 import _ "github.com/rushteam/matchkit/config/builders"
// 以触发内置过滤器的 init 注册。
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rushteam/matchkit/model"
	"github.com/rushteam/matchkit/rule"
	"github.com/rushteam/matchkit/store"
)

// Config 是完整配置，可由 YAML 文件（Load）或 viper 解码得到。
type Config struct {
	Engine     Engine           `yaml:"engine" mapstructure:"engine"`
	Rule       Rule             `yaml:"rule" mapstructure:"rule"`
	Model      model.Config     `yaml:"model" mapstructure:"model"`
	Filters    []map[string]any `yaml:"filters" mapstructure:"filters"`
	Repository Repository       `yaml:"repository" mapstructure:"repository"`
	Cache      store.Config     `yaml:"cache" mapstructure:"cache"`
	Log        Log              `yaml:"log" mapstructure:"log"`
}

// Cutoff 是一个推荐方向的模型分数门槛与放宽下限。
type Cutoff struct {
	Threshold float64 `yaml:"threshold" mapstructure:"threshold"`
	Floor     float64 `yaml:"floor" mapstructure:"floor"`
}

// Engine 是引擎配置，实现 core.EngineConfig。
type Engine struct {
	Jobs           Cutoff `yaml:"jobs" mapstructure:"jobs"`
	Candidates     Cutoff `yaml:"candidates" mapstructure:"candidates"`
	DefaultTopN    int    `yaml:"top_n" mapstructure:"top_n"`
	Relaxed        int    `yaml:"relaxed_limit" mapstructure:"relaxed_limit"`
	FeatureWorkers int    `yaml:"feature_workers" mapstructure:"feature_workers"`
}

func (e Engine) JobsThreshold() float64       { return e.Jobs.Threshold }
func (e Engine) JobsFloor() float64           { return e.Jobs.Floor }
func (e Engine) CandidatesThreshold() float64 { return e.Candidates.Threshold }
func (e Engine) CandidatesFloor() float64     { return e.Candidates.Floor }
func (e Engine) TopN() int                    { return e.DefaultTopN }
func (e Engine) RelaxedLimit() int            { return e.Relaxed }

// Rule 是规则匹配的权重与最低分。
type Rule struct {
	Jobs       rule.Weights `yaml:"jobs" mapstructure:"jobs"`
	Candidates rule.Weights `yaml:"candidates" mapstructure:"candidates"`
	MinScore   float64      `yaml:"min_score" mapstructure:"min_score"`
}

// Matcher 按配置创建规则匹配器。
func (r Rule) Matcher(now func() time.Time) *rule.Matcher {
	return rule.NewMatcher(
		rule.WithWeights(r.Jobs, r.Candidates),
		rule.WithMinScore(r.MinScore),
		rule.WithClock(now),
	)
}

// 仓储类型
const (
	RepositoryFile     = "file"
	RepositoryPostgres = "postgres"
)

// Repository 是快照仓储配置。
type Repository struct {
	Type string `yaml:"type" mapstructure:"type"`
	Path string `yaml:"path" mapstructure:"path"`
	DSN  string `yaml:"dsn" mapstructure:"dsn"`
}

// Log 是日志配置。
type Log struct {
	JSON  bool `yaml:"json" mapstructure:"json"`
	Debug bool `yaml:"debug" mapstructure:"debug"`
}

// Default 返回默认配置。
func Default() Config {
	return Config{
		Engine: Engine{
			Jobs:           Cutoff{Threshold: 0.5, Floor: 0.3},
			Candidates:     Cutoff{Threshold: 0.2, Floor: 0.15},
			DefaultTopN:    10,
			Relaxed:        5,
			FeatureWorkers: 4,
		},
		Rule: Rule{
			Jobs:       rule.JobsWeights,
			Candidates: rule.CandidatesWeights,
			MinScore:   rule.DefaultMinScore,
		},
		Model:      model.Config{Type: model.TypeNone, Timeout: 5 * time.Second},
		Repository: Repository{Type: RepositoryFile, Path: "snapshot.yaml"},
		Cache:      store.Config{Type: store.TypeNone, TTL: 300},
	}
}

// Load 读取 YAML 配置文件，未出现的字段保留默认值。
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate 校验配置，返回所有问题的合并错误。
func (c Config) Validate() error {
	var errs []error
	check := func(name string, cut Cutoff) {
		if cut.Threshold < 0 || cut.Threshold > 1 {
			errs = append(errs, fmt.Errorf("engine.%s.threshold must be within [0, 1], got %v", name, cut.Threshold))
		}
		if cut.Floor < 0 || cut.Floor > cut.Threshold {
			errs = append(errs, fmt.Errorf("engine.%s.floor must be within [0, threshold], got %v", name, cut.Floor))
		}
	}
	check("jobs", c.Engine.Jobs)
	check("candidates", c.Engine.Candidates)
	if c.Engine.DefaultTopN <= 0 {
		errs = append(errs, fmt.Errorf("engine.top_n must be positive, got %d", c.Engine.DefaultTopN))
	}
	if c.Engine.Relaxed < 0 {
		errs = append(errs, fmt.Errorf("engine.relaxed_limit must not be negative"))
	}
	for name, w := range map[string]rule.Weights{"jobs": c.Rule.Jobs, "candidates": c.Rule.Candidates} {
		if w.Skills < 0 || w.Education < 0 || w.Location < 0 || w.Experience < 0 || w.JobType < 0 {
			errs = append(errs, fmt.Errorf("rule.%s weights must not be negative", name))
		}
	}
	switch c.Model.Type {
	case "", model.TypeNone:
	case model.TypeLR:
		if c.Model.Path == "" {
			errs = append(errs, errors.New("model.path is required for lr"))
		}
	case model.TypeRPC:
		if c.Model.Endpoint == "" {
			errs = append(errs, errors.New("model.endpoint is required for rpc"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown model.type %q", c.Model.Type))
	}
	switch c.Repository.Type {
	case RepositoryFile:
		if c.Repository.Path == "" {
			errs = append(errs, errors.New("repository.path is required for file"))
		}
	case RepositoryPostgres:
		if c.Repository.DSN == "" {
			errs = append(errs, errors.New("repository.dsn is required for postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown repository.type %q", c.Repository.Type))
	}
	switch c.Cache.Type {
	case "", store.TypeNone, store.TypeMemory, store.TypeRedis:
	default:
		errs = append(errs, fmt.Errorf("unknown cache.type %q", c.Cache.Type))
	}
	if err := ValidateFilters(c.Filters); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
