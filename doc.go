// Package itemfeedback 是一个 itemset 反馈工具包。
//
// 设计要点：
// - Pipeline-first: 过滤、反馈重排、截断通过 Node 串联（Filter → Feedback → ReRank）
// - 反馈只做显式重排：用户输入完整排列，或逐条升级/降级（promote / demote）
// - 分组展示：按列组 key 对 itemset 分组，按组大小划分为三个兴趣层级
package itemfeedback

import (
	"github.com/rushteam/itemfeedback/core"
	"github.com/rushteam/itemfeedback/group"
	"github.com/rushteam/itemfeedback/pipeline"
)

// 轻量 facade：便于用户直接 import "itemfeedback" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

type Itemset = core.Itemset
type Collection = core.Collection
type Groups = group.Groups

const (
	KindFilter      = pipeline.KindFilter
	KindFeedback    = pipeline.KindFeedback
	KindReRank      = pipeline.KindReRank
	KindPostProcess = pipeline.KindPostProcess
)

// GroupByColumns 见 group.ByColumns。
func GroupByColumns(itemsets []core.Itemset, records core.Collection, rowIDColumn string) (very, mildly, uninteresting group.Groups) {
	return group.ByColumns(itemsets, records, rowIDColumn)
}
