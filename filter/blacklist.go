package filter

import (
	"context"

	"github.com/rushteam/itemfeedback/core"
)

// ColumnBlacklist 过滤掉含有黑名单列的 itemset（例如不希望展示的噪声列）。
type ColumnBlacklist struct {
	Columns []string
}

func (f *ColumnBlacklist) Name() string {
	return "filter.column_blacklist"
}

func (f *ColumnBlacklist) ShouldFilter(
	_ context.Context,
	_ *core.FeedbackContext,
	c Candidate,
) (bool, error) {
	for _, col := range f.Columns {
		if _, ok := c.Itemset[col]; ok {
			return true, nil
		}
	}
	return false, nil
}
