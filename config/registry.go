package config

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/filter"
	"github.com/rushteam/matchkit/pkg/conv"
)

// Deps 是构建过滤器时可用的依赖。
type Deps struct {
	// Store 为 nil 时依赖存储的过滤器只使用静态配置
	Store core.Store
	Now   func() time.Time
}

// FilterBuilder 根据一条 filters 配置构建过滤器。
// 各过滤器在 init 中调用 Register(typeName, builder) 即可被配置驱动。
type FilterBuilder func(cfg map[string]any, deps Deps) (filter.Filter, error)

var (
	defaultBuilders   = make(map[string]FilterBuilder)
	defaultBuildersMu sync.RWMutex
)

// Register 注册一种过滤器的构建逻辑。
func Register(typeName string, builder FilterBuilder) {
	if typeName == "" || builder == nil {
		return
	}
	defaultBuildersMu.Lock()
	defer defaultBuildersMu.Unlock()
	defaultBuilders[typeName] = builder
}

// SupportedTypes 返回当前已注册的过滤器类型（排序），用于错误提示与校验。
func SupportedTypes() []string {
	defaultBuildersMu.RLock()
	defer defaultBuildersMu.RUnlock()
	types := make([]string, 0, len(defaultBuilders))
	for t := range defaultBuilders {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func lookup(typeName string) (FilterBuilder, bool) {
	defaultBuildersMu.RLock()
	defer defaultBuildersMu.RUnlock()
	b, ok := defaultBuilders[typeName]
	return b, ok
}

// ValidateFilters 校验所有过滤器类型均已注册；有未支持类型时返回包含已支持列表的错误。
func ValidateFilters(specs []map[string]any) error {
	for i, spec := range specs {
		t := conv.ConfigGet(spec, "type", "")
		if t == "" {
			return fmt.Errorf("filters[%d]: missing type", i)
		}
		if _, ok := lookup(t); !ok {
			return fmt.Errorf("filters[%d]: unsupported filter type %q (supported: %v)", i, t, SupportedTypes())
		}
	}
	return nil
}

// BuildFilters 按配置顺序构建过滤器。
func BuildFilters(specs []map[string]any, deps Deps) ([]filter.Filter, error) {
	if err := ValidateFilters(specs); err != nil {
		return nil, err
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	out := make([]filter.Filter, 0, len(specs))
	for i, spec := range specs {
		b, _ := lookup(conv.ConfigGet(spec, "type", ""))
		f, err := b(spec, deps)
		if err != nil {
			return nil, fmt.Errorf("filters[%d]: %w", i, err)
		}
		out = append(out, f)
	}
	return out, nil
}
