package filter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rushteam/matchkit/core"
)

// ExcludeFilter 是排除名单过滤器，过滤掉名单中的候选（如求职者已投递过的职位）。
//
// 名单来源：
//   - IDs：静态配置的 ID
//   - Store：按锚点读取，key 为 {KeyPrefix}:{锚点 ID}
//
// Store 为 core.KeyValueStore 时读取集合成员，否则按 JSON 字符串数组解析 Get 的结果。
type ExcludeFilter struct {
	IDs       []string
	Store     core.Store
	KeyPrefix string
}

// NewExcludeFilter 创建一个排除名单过滤器。
func NewExcludeFilter(ids []string, store core.Store, keyPrefix string) *ExcludeFilter {
	if keyPrefix == "" {
		keyPrefix = "exclude"
	}
	return &ExcludeFilter{IDs: ids, Store: store, KeyPrefix: keyPrefix}
}

func (f *ExcludeFilter) Name() string {
	return "filter.exclude"
}

// paramKey 是准备好的排除集合在 rctx.Params 中的 key
func (f *ExcludeFilter) paramKey() string {
	return "filter.exclude:" + f.KeyPrefix
}

// Prepare 读取本次请求锚点的排除名单，写入 rctx.Params。
// key 不存在视为空名单。Store 出错时仍写入静态 IDs 组成的集合，再返回错误，
// 同一请求内不会再次访问 Store。
func (f *ExcludeFilter) Prepare(ctx context.Context, rctx *core.RecommendContext) error {
	if rctx == nil {
		return nil
	}
	set := make(map[string]struct{}, len(f.IDs))
	for _, id := range f.IDs {
		set[id] = struct{}{}
	}
	if rctx.Params == nil {
		rctx.Params = make(map[string]any)
	}
	rctx.Params[f.paramKey()] = set

	if f.Store == nil {
		return nil
	}
	anchor := anchorID(rctx)
	if anchor == "" {
		return nil
	}
	ids, err := f.load(ctx, f.KeyPrefix+":"+anchor)
	if err != nil && !core.IsStoreNotFound(err) {
		return fmt.Errorf("load exclude list: %w", err)
	}
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return nil
}

func (f *ExcludeFilter) load(ctx context.Context, key string) ([]string, error) {
	if kv, ok := f.Store.(core.KeyValueStore); ok {
		return kv.SMembers(ctx, key)
	}
	data, err := f.Store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (f *ExcludeFilter) ShouldFilter(
	ctx context.Context,
	rctx *core.RecommendContext,
	item *core.Item,
) (bool, error) {
	if item == nil {
		return true, nil
	}
	set, ok := f.excluded(rctx)
	if !ok {
		// 未经 Prepare 时按需准备一次；Store 出错也已写入静态名单
		_ = f.Prepare(ctx, rctx)
		if set, ok = f.excluded(rctx); !ok {
			return false, nil
		}
	}
	_, hit := set[item.ID]
	return hit, nil
}

func (f *ExcludeFilter) excluded(rctx *core.RecommendContext) (map[string]struct{}, bool) {
	if rctx == nil || rctx.Params == nil {
		return nil, false
	}
	set, ok := rctx.Params[f.paramKey()].(map[string]struct{})
	return set, ok
}

func anchorID(rctx *core.RecommendContext) string {
	if rctx.RankingCandidates() {
		if rctx.Job != nil {
			return rctx.Job.ID
		}
		return ""
	}
	if rctx.Seeker != nil {
		return rctx.Seeker.ID
	}
	return ""
}
