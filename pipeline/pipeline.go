package pipeline

import (
	"context"
	"fmt"

	"github.com/rushteam/itemfeedback/core"
	"github.com/rushteam/itemfeedback/log"
)

// Pipeline 把反馈处理拆成可组合的 Node 链。
type Pipeline struct {
	Name  string
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	fctx *core.FeedbackContext,
	records core.Collection,
) (core.Collection, error) {
	cur := records
	for _, node := range p.Nodes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next, err := node.Process(ctx, fctx, cur)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", node.Name(), err)
		}
		log.Debugf("pipeline %s: node %s (%s) %d -> %d records", p.Name, node.Name(), node.Kind(), len(cur), len(next))
		cur = next
	}
	return cur, nil
}
