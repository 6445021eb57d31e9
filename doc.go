// Package matchkit 是求职者与职位的双向匹配推荐工具包。
//
// 设计要点：
// - Pipeline-first: 模型路径通过 Node 串联（Filter → Feature → Rank → ReRank）
// - 级联兜底: 冷启动或模型失败时转入规则匹配，入口从不返回错误
// - Labels-first: 过滤原因、打分模型、命中技能等以 label 透传，支持 explain
package matchkit

import (
	"github.com/rushteam/matchkit/engine"
	"github.com/rushteam/matchkit/pipeline"
)

// 轻量 facade：便于用户直接 import "matchkit" 使用核心抽象。
type Engine = engine.Engine
type Recommendation = engine.Recommendation
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

// New 创建推荐引擎，见 engine.New。
var New = engine.New

const (
	KindFilter  = pipeline.KindFilter
	KindFeature = pipeline.KindFeature
	KindRank    = pipeline.KindRank
	KindReRank  = pipeline.KindReRank
)
