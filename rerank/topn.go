package rerank

import (
	"context"

	"github.com/rushteam/itemfeedback/core"
	"github.com/rushteam/itemfeedback/pipeline"
)

// TopNNode 是一个 Top-N 截断节点，用于在反馈重排后只展示前 N 个 itemset。
//
// 示例：
//
//	p := &pipeline.Pipeline{
//	    Nodes: []pipeline.Node{
//	        &rerank.FeedbackNode{...}, // 用户反馈
//	        &rerank.TopNNode{N: 20},   // 截取 Top 20
//	    },
//	}
type TopNNode struct {
	// N 要保留的数量；N <= 0 或 N > len(records) 时不截断
	N int
}

func (n *TopNNode) Name() string {
	return "rerank.topn"
}

func (n *TopNNode) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *TopNNode) Process(
	_ context.Context,
	_ *core.FeedbackContext,
	records core.Collection,
) (core.Collection, error) {
	if n.N <= 0 || len(records) <= n.N {
		return records, nil
	}
	return records[:n.N], nil
}
