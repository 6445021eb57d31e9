// Package store 提供 core.Store / core.KeyValueStore 的实现：内存与 Redis。
//
// 接口定义在 core 包：
//
//	var s core.Store = store.NewMemoryStore()
//	var kv core.KeyValueStore = store.NewMemoryStore()
package store

import (
	"fmt"

	"github.com/rushteam/matchkit/core"
)

// 后端类型
const (
	TypeNone   = "none"
	TypeMemory = "memory"
	TypeRedis  = "redis"
)

// Config 是存储后端配置。
type Config struct {
	Type     string `yaml:"type" mapstructure:"type"`
	Addr     string `yaml:"addr" mapstructure:"addr"`
	Password string `yaml:"password" mapstructure:"password"`
	DB       int    `yaml:"db" mapstructure:"db"`
	// TTL 缓存有效期（秒），<=0 不过期
	TTL int `yaml:"ttl" mapstructure:"ttl"`
}

// Open 按配置创建存储。type 为 none 或空时返回 (nil, nil)。
func Open(cfg Config) (core.KeyValueStore, error) {
	switch cfg.Type {
	case "", TypeNone:
		return nil, nil
	case TypeMemory:
		return NewMemoryStore(), nil
	case TypeRedis:
		s, err := NewRedisStore(cfg.Addr, cfg.Password, cfg.DB)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("store: unknown type %q", cfg.Type)
	}
}
