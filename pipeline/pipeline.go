package pipeline

import (
	"context"
	"fmt"

	"github.com/rushteam/matchkit/core"
)

// Hook 在每个 Node 执行后被调用，in/out 为该 Node 的输入输出条数。
type Hook func(node Node, in, out int)

// Pipeline 把推荐逻辑拆成可组合的 Node 链，按顺序执行。
type Pipeline struct {
	Nodes []Node
	Hooks []Hook
}

// Run 依次执行各 Node。任一 Node 出错立即返回，错误带上 Node 名称。
func (p *Pipeline) Run(
	ctx context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	cur := items
	for _, node := range p.Nodes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next, err := node.Process(ctx, rctx, cur)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", node.Name(), err)
		}
		for _, h := range p.Hooks {
			h(node, len(cur), len(next))
		}
		cur = next
	}
	return cur, nil
}
