package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rushteam/matchkit/config"
	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/engine"
	"github.com/rushteam/matchkit/model"
	"github.com/rushteam/matchkit/pkg/logger"
	"github.com/rushteam/matchkit/repository"
	"github.com/rushteam/matchkit/store"
)

// appContext 是一次命令执行所需的全部依赖。
type appContext struct {
	cfg    config.Config
	log    *zap.Logger
	repo   core.Repository
	kv     core.KeyValueStore
	engine *engine.Engine

	closers []func() error
}

func (a *appContext) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warn("closing resource", zap.Error(err))
		}
	}
	_ = a.log.Sync()
}

// newApp 读取配置并组装仓储、缓存、模型与引擎。
// 缓存不可用时记录警告并继续，不影响推荐。
func newApp(ctx context.Context) (*appContext, error) {
	cfg, err := getConfig()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return nil, fmt.Errorf("creating a logger: %w", err)
	}
	a := &appContext{cfg: cfg, log: log}

	kv, err := store.Open(cfg.Cache)
	if err != nil {
		log.Warn("cache unavailable, continuing without it", zap.String("type", cfg.Cache.Type), zap.Error(err))
	} else if kv != nil {
		a.kv = kv
		a.closers = append(a.closers, kv.Close)
	}

	repo, err := openRepository(ctx, cfg.Repository)
	if err != nil {
		a.Close()
		return nil, err
	}
	if pg, ok := repo.(*repository.Postgres); ok {
		a.closers = append(a.closers, pg.Close)
	}
	if a.kv != nil {
		cached := repository.NewCached(repo, a.kv, "", cfg.Cache.TTL)
		a.closers = append(a.closers, func() error {
			if cached.Bypassed() {
				log.Warn("cache backend failed during this run, reads went to the repository",
					zap.String("cache", a.kv.Name()))
			}
			return nil
		})
		repo = cached
	}
	a.repo = repo

	m, err := model.Open(cfg.Model)
	if err != nil {
		// 模型加载失败不阻止启动，所有请求走规则匹配
		log.Warn("loading scoring model, using rule matcher only", zap.Error(err))
		m = nil
	} else if m != nil {
		log.Info("scoring model loaded", zap.String("name", m.Name()), zap.String("version", m.Version()))
	}

	deps := config.Deps{Now: time.Now}
	if a.kv != nil {
		deps.Store = a.kv
	}
	filters, err := config.BuildFilters(cfg.Filters, deps)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.engine = engine.New(
		engine.WithModel(m),
		engine.WithMatcher(cfg.Rule.Matcher(time.Now)),
		engine.WithFilters(filters...),
		engine.WithConfig(cfg.Engine),
		engine.WithWorkers(cfg.Engine.FeatureWorkers),
		engine.WithLogger(log),
	)
	return a, nil
}

func openRepository(ctx context.Context, cfg config.Repository) (core.Repository, error) {
	switch cfg.Type {
	case config.RepositoryPostgres:
		pg, err := repository.Connect(ctx, cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return pg, nil
	default:
		mem, err := repository.LoadSnapshotFile(cfg.Path)
		if err != nil {
			return nil, err
		}
		return mem, nil
	}
}
