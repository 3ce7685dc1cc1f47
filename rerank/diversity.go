package rerank

import (
	"context"
	"slices"

	"github.com/rushteam/itemfeedback/core"
	"github.com/rushteam/itemfeedback/group"
	"github.com/rushteam/itemfeedback/pipeline"
)

// ColumnDiversity 按列组去重：每个列组 key 最多保留 MaxPerGroup 条（默认 1），保留先出现的。
// ExcludeColumns 中的列以及 FeedbackContext 中的行 ID 列不参与 key 计算。
type ColumnDiversity struct {
	MaxPerGroup    int
	ExcludeColumns []string
}

func (n *ColumnDiversity) Name() string {
	return "rerank.column_diversity"
}

func (n *ColumnDiversity) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *ColumnDiversity) Process(
	_ context.Context,
	fctx *core.FeedbackContext,
	records core.Collection,
) (core.Collection, error) {
	if len(records) == 0 {
		return records, nil
	}

	limit := n.MaxPerGroup
	if limit <= 0 {
		limit = 1
	}

	exclude := append(slices.Clone(n.ExcludeColumns), fctx.RowIDColumn())
	itemsets := records.Itemsets(exclude...)
	seen := make(map[string]int, 32)
	out := make(core.Collection, 0, len(records))
	for i, rec := range records {
		key := group.Key(itemsets[i])
		if seen[key] >= limit {
			continue
		}
		seen[key]++
		out = append(out, rec)
	}
	return out, nil
}
