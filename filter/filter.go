package filter

import (
	"context"

	"github.com/rushteam/itemfeedback/core"
)

// Candidate 是待过滤的一条记录及其派生的 itemset。
type Candidate struct {
	Index   int
	Record  core.Record
	Itemset core.Itemset
}

// Filter 是过滤器的抽象接口，用于判断一条记录是否应该被过滤掉。
// 返回 true 表示应该过滤（移除），false 表示保留。
type Filter interface {
	// Name 返回过滤器名称
	Name() string

	// ShouldFilter 判断 candidate 是否应该被过滤
	ShouldFilter(ctx context.Context, fctx *core.FeedbackContext, c Candidate) (bool, error)
}
