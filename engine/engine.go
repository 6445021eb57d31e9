// Package engine 是匹配推荐的编排层：冷启动判定、预过滤、模型打分、阈值筛选与规则兜底。
//
// 两个入口对称：
//   - RecommendJobsForSeeker：为求职者推荐职位
//   - RecommendCandidatesForJob：为职位推荐候选人
//
// 入口从不返回错误。模型不可用或输出异常时转入规则匹配，空结果是合法的终态。
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/feature"
	"github.com/rushteam/matchkit/filter"
	"github.com/rushteam/matchkit/rule"
)

// Engine 无请求间可变状态，可被并发使用。模型在构造时注入，之后只读。
type Engine struct {
	model     core.ScoringModel
	matcher   *rule.Matcher
	extractor *feature.Extractor
	filters   []filter.Filter
	cfg       core.EngineConfig
	workers   int
	log       *zap.Logger
	now       func() time.Time
}

// Option 引擎配置选项
type Option func(*Engine)

// WithModel 设置打分模型。未设置时所有请求走规则匹配。
func WithModel(m core.ScoringModel) Option {
	return func(e *Engine) {
		e.model = m
	}
}

// WithMatcher 替换规则匹配器（如自定义权重）。
func WithMatcher(m *rule.Matcher) Option {
	return func(e *Engine) {
		e.matcher = m
	}
}

// WithFilters 追加候选池过滤器（排除名单、表达式、截止日期等），在模型与规则之前执行。
func WithFilters(filters ...filter.Filter) Option {
	return func(e *Engine) {
		e.filters = append(e.filters, filters...)
	}
}

// WithConfig 设置阈值与 TopN 默认值。
func WithConfig(cfg core.EngineConfig) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// WithWorkers 设置特征构建的并发数。
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithLogger 设置日志，默认不输出。
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// WithClock 设置时钟，影响经历年限里 "present" 的解析与截止日期判断。
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New 创建引擎。
func New(opts ...Option) *Engine {
	e := &Engine{
		cfg:     core.DefaultEngineConfig{},
		workers: feature.DefaultWorkers,
		log:     zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = zap.NewNop()
	}
	if e.cfg == nil {
		e.cfg = core.DefaultEngineConfig{}
	}
	if e.matcher == nil {
		e.matcher = rule.NewMatcher(rule.WithClock(e.now))
	}
	e.extractor = feature.NewExtractor(feature.WithClock(e.now))
	return e
}

// RequestOption 单次请求的选项。
type RequestOption func(*request)

type request struct {
	topN      int
	threshold *float64
	floor     *float64
	explain   bool
	requestID string
}

// TopN 返回条数上限，<=0 时使用配置默认值。
func TopN(n int) RequestOption {
	return func(r *request) {
		r.topN = n
	}
}

// Threshold 模型分数门槛。
func Threshold(t float64) RequestOption {
	return func(r *request) {
		r.threshold = &t
	}
}

// Floor 放宽阈值时的下限。
func Floor(f float64) RequestOption {
	return func(r *request) {
		r.floor = &f
	}
}

// Explain 在结果中附带特征值与标签。
func Explain() RequestOption {
	return func(r *request) {
		r.explain = true
	}
}

// RequestID 指定日志关联 ID，默认生成 UUID。
func RequestID(id string) RequestOption {
	return func(r *request) {
		r.requestID = id
	}
}

func (e *Engine) newRequest(dir core.Direction, opts []RequestOption) *request {
	r := &request{}
	for _, opt := range opts {
		opt(r)
	}
	if r.topN <= 0 {
		r.topN = e.cfg.TopN()
	}
	if r.threshold == nil {
		t := e.cfg.JobsThreshold()
		if dir == core.DirectionCandidates {
			t = e.cfg.CandidatesThreshold()
		}
		r.threshold = &t
	}
	if r.floor == nil {
		f := e.cfg.JobsFloor()
		if dir == core.DirectionCandidates {
			f = e.cfg.CandidatesFloor()
		}
		r.floor = &f
	}
	if r.requestID == "" {
		r.requestID = uuid.NewString()
	}
	return r
}

// RecommendJobsForSeeker 为求职者推荐职位，按分数降序返回。
func (e *Engine) RecommendJobsForSeeker(ctx context.Context, seeker *core.Seeker, jobs []*core.Job, opts ...RequestOption) []Recommendation {
	req := e.newRequest(core.DirectionJobs, opts)
	rctx := &core.RecommendContext{
		RequestID: req.requestID,
		Direction: core.DirectionJobs,
		Seeker:    seeker,
	}
	return e.recommend(ctx, rctx, core.JobItems(jobs), req)
}

// RecommendCandidatesForJob 为职位推荐候选人，按分数降序返回。
func (e *Engine) RecommendCandidatesForJob(ctx context.Context, job *core.Job, seekers []*core.Seeker, opts ...RequestOption) []Recommendation {
	req := e.newRequest(core.DirectionCandidates, opts)
	rctx := &core.RecommendContext{
		RequestID: req.requestID,
		Direction: core.DirectionCandidates,
		Job:       job,
	}
	return e.recommend(ctx, rctx, core.SeekerItems(seekers), req)
}
