package pipeline

import (
	"context"

	"github.com/rushteam/itemfeedback/core"
)

// Kind 用于标记 Node 类型，方便观测/编排（例如按阶段打点）。
type Kind string

const (
	KindFilter      Kind = "filter"      // 过滤阶段：剔除不需要展示的 itemset
	KindFeedback    Kind = "feedback"    // 反馈阶段：收集用户排序/升降级并应用
	KindReRank      Kind = "rerank"      // 重排阶段：截断、按列组去重等
	KindPostProcess Kind = "postprocess" // 后处理阶段
)

// Node 是 Pipeline 的最小可扩展单元。
// 统一采用“输入 records -> 输出 records”的形态，方便过滤、重排、反馈等操作。
type Node interface {
	Name() string
	Kind() Kind

	Process(
		ctx context.Context,
		fctx *core.FeedbackContext,
		records core.Collection,
	) (core.Collection, error)
}
