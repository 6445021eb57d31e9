package core

import "context"

// Store 是键值存储接口，由 store.MemoryStore 与 store.RedisStore 实现。
// repository.Cached 用它缓存快照，filter.ExcludeFilter 用它读取排除名单。
type Store interface {
	Name() string

	// Get 在 key 不存在或已过期时返回 ErrStoreNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set 写入单个 key-value，ttl 单位为秒
	Set(ctx context.Context, key string, value []byte, ttl ...int) error

	Delete(ctx context.Context, key string) error

	BatchSet(ctx context.Context, kvs map[string][]byte, ttl ...int) error

	Close() error
}

// KeyValueStore 是 Store 的扩展接口，支持集合操作。
type KeyValueStore interface {
	Store

	// SMembers 读取集合全部成员（如某求职者已投递的职位 ID）
	SMembers(ctx context.Context, key string) ([]string, error)

	// SAdd 向集合添加成员
	SAdd(ctx context.Context, key string, members ...string) error
}

// ErrStoreNotFound 表示 key 不存在。
var ErrStoreNotFound = NewDomainError(ModuleStore, ErrorCodeNotFound, "store: key not found")

// IsStoreNotFound 仅在错误来自 store 模块且为 NOT_FOUND 时返回 true。
func IsStoreNotFound(err error) bool {
	de := GetDomainError(err)
	return de != nil && de.Module == ModuleStore && de.Code == ErrorCodeNotFound
}
