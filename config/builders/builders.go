// Package builders 在 init 中把内置过滤器注册到 config。
package builders

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/rushteam/matchkit/config"
	"github.com/rushteam/matchkit/filter"
	"github.com/rushteam/matchkit/pkg/conv"
)

func init() {
	config.Register("exclude", BuildExcludeFilter)
	config.Register("expr", BuildExprFilter)
	config.Register("deadline", BuildDeadlineFilter)
	config.Register("availability", BuildAvailabilityFilter)
	config.Register("skill", BuildSkillFilter)
	config.Register("experience", BuildExperienceFilter)
	config.Register("job_type", BuildJobTypeFilter)
}

// BuildExcludeFilter 配置：
//
//	- type: exclude
//	  ids: [j1, j2]
//	  key_prefix: applied   # 从 Store 读取 applied:{锚点 ID}
//	  use_store: true
func BuildExcludeFilter(cfg map[string]any, deps config.Deps) (filter.Filter, error) {
	var spec struct {
		IDs       []string `mapstructure:"ids"`
		KeyPrefix string   `mapstructure:"key_prefix"`
		UseStore  *bool    `mapstructure:"use_store"`
	}
	if err := mapstructure.Decode(cfg, &spec); err != nil {
		return nil, fmt.Errorf("exclude filter: %w", err)
	}
	if spec.UseStore != nil && !*spec.UseStore {
		return filter.NewExcludeFilter(spec.IDs, nil, ""), nil
	}
	return filter.NewExcludeFilter(spec.IDs, deps.Store, spec.KeyPrefix), nil
}

// BuildExprFilter 配置：
//
//	- type: expr
//	  expr: 'job.salary_max == 0 || job.salary_max >= 50000'
func BuildExprFilter(cfg map[string]any, _ config.Deps) (filter.Filter, error) {
	expr := conv.ConfigGet(cfg, "expr", "")
	if expr == "" {
		return nil, fmt.Errorf("expr filter: missing expr")
	}
	f, err := filter.NewExprFilter(expr)
	if err != nil {
		return nil, fmt.Errorf("expr filter: %w", err)
	}
	return f, nil
}

func BuildDeadlineFilter(_ map[string]any, deps config.Deps) (filter.Filter, error) {
	return &filter.DeadlineFilter{Now: deps.Now}, nil
}

func BuildAvailabilityFilter(_ map[string]any, _ config.Deps) (filter.Filter, error) {
	return &filter.AvailabilityFilter{}, nil
}

func BuildSkillFilter(_ map[string]any, _ config.Deps) (filter.Filter, error) {
	return &filter.SkillFilter{}, nil
}

func BuildExperienceFilter(_ map[string]any, deps config.Deps) (filter.Filter, error) {
	return &filter.ExperienceFilter{Now: deps.Now}, nil
}

func BuildJobTypeFilter(_ map[string]any, _ config.Deps) (filter.Filter, error) {
	return &filter.JobTypeFilter{}, nil
}
