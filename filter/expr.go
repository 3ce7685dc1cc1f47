package filter

import (
	"context"

	"github.com/rushteam/itemfeedback/core"
	"github.com/rushteam/itemfeedback/pkg/dsl"
)

// ExprFilter 使用 CEL 表达式过滤。
// 默认保留表达式为 true 的记录；Drop 为 true 时反过来，移除表达式为 true 的记录。
type ExprFilter struct {
	eval *dsl.Eval
	Drop bool
}

// NewExprFilter 编译表达式并创建过滤器。
func NewExprFilter(expr string, drop bool) (*ExprFilter, error) {
	eval, err := dsl.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &ExprFilter{eval: eval, Drop: drop}, nil
}

func (f *ExprFilter) Name() string {
	return "filter.expr"
}

func (f *ExprFilter) ShouldFilter(
	_ context.Context,
	fctx *core.FeedbackContext,
	c Candidate,
) (bool, error) {
	matched, err := f.eval.Evaluate(fctx, c.Index, c.Record, c.Itemset)
	if err != nil {
		return false, err
	}
	if f.Drop {
		return matched, nil
	}
	return !matched, nil
}
