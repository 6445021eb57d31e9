package repository

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/rushteam/matchkit/core"
)

// DefaultCachePrefix 缓存 key 前缀。
const DefaultCachePrefix = "matchkit"

// Cached 用 core.Store 缓存另一个仓储的读取结果，值为 JSON。
//
// 缓存后端出错（非 key 不存在）后进入旁路状态，之后的读写直接访问底层仓储，
// 缓存故障不会让读取失败。
type Cached struct {
	inner  core.Repository
	store  core.Store
	prefix string
	ttl    int

	bypass atomic.Bool
}

// NewCached 创建缓存仓储，ttl 单位为秒，<=0 不过期。
func NewCached(inner core.Repository, store core.Store, prefix string, ttl int) *Cached {
	if prefix == "" {
		prefix = DefaultCachePrefix
	}
	return &Cached{inner: inner, store: store, prefix: prefix, ttl: ttl}
}

func (c *Cached) Name() string {
	return "cached(" + c.inner.Name() + ")"
}

// Bypassed 缓存是否已因后端故障被旁路。
func (c *Cached) Bypassed() bool {
	return c.bypass.Load()
}

func (c *Cached) key(parts ...string) string {
	k := c.prefix
	for _, p := range parts {
		k += ":" + p
	}
	return k
}

// ListSeekers 未命中时除列表外还按 ID 回写每个求职者，之后的 GetSeeker 可直接命中。
func (c *Cached) ListSeekers(ctx context.Context) ([]*core.Seeker, error) {
	return cachedLoad(ctx, c, c.key("seekers"), func() ([]*core.Seeker, error) {
		seekers, err := c.inner.ListSeekers(ctx)
		if err == nil {
			fillByID(ctx, c, "seeker", seekers, func(s *core.Seeker) string { return s.ID })
		}
		return seekers, err
	})
}

func (c *Cached) ListJobs(ctx context.Context) ([]*core.Job, error) {
	return cachedLoad(ctx, c, c.key("jobs"), func() ([]*core.Job, error) {
		jobs, err := c.inner.ListJobs(ctx)
		if err == nil {
			fillByID(ctx, c, "job", jobs, func(j *core.Job) string { return j.ID })
		}
		return jobs, err
	})
}

func (c *Cached) GetSeeker(ctx context.Context, id string) (*core.Seeker, error) {
	return cachedLoad(ctx, c, c.key("seeker", id), func() (*core.Seeker, error) {
		return c.inner.GetSeeker(ctx, id)
	})
}

func (c *Cached) GetJob(ctx context.Context, id string) (*core.Job, error) {
	return cachedLoad(ctx, c, c.key("job", id), func() (*core.Job, error) {
		return c.inner.GetJob(ctx, id)
	})
}

// cachedLoad 先读缓存，未命中时读底层仓储并回写。底层仓储的错误不缓存；
// 无法解码的缓存值会被删除并按未命中处理，无法编码的值只是不写缓存。
func cachedLoad[T any](ctx context.Context, c *Cached, key string, load func() (T, error)) (T, error) {
	if !c.bypass.Load() {
		data, err := c.store.Get(ctx, key)
		switch {
		case err == nil:
			var v T
			if jsonErr := json.Unmarshal(data, &v); jsonErr == nil {
				return v, nil
			}
			if err := c.store.Delete(ctx, key); err != nil {
				c.bypass.Store(true)
			}
		case core.IsStoreNotFound(err):
		default:
			c.bypass.Store(true)
		}
	}

	v, err := load()
	if err != nil {
		return v, err
	}
	if !c.bypass.Load() {
		data, err := json.Marshal(v)
		if err != nil {
			return v, nil
		}
		if err := c.store.Set(ctx, key, data, c.ttl); err != nil {
			c.bypass.Store(true)
		}
	}
	return v, nil
}

// fillByID 用一次 BatchSet 按 ID 回写列表中的实体。
func fillByID[T any](ctx context.Context, c *Cached, kind string, items []T, id func(T) string) {
	if c.bypass.Load() || len(items) == 0 {
		return
	}
	kvs := make(map[string][]byte, len(items))
	for _, it := range items {
		data, err := json.Marshal(it)
		if err != nil {
			continue
		}
		kvs[c.key(kind, id(it))] = data
	}
	if err := c.store.BatchSet(ctx, kvs, c.ttl); err != nil {
		c.bypass.Store(true)
	}
}

var _ core.Repository = (*Cached)(nil)
