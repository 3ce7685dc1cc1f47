package filter

import (
	"context"
	"slices"
	"sort"
	"strconv"

	"github.com/rushteam/itemfeedback/core"
	"github.com/rushteam/itemfeedback/log"
	"github.com/rushteam/itemfeedback/pipeline"
	"github.com/rushteam/itemfeedback/pkg/utils"
)

// FilterNode 是过滤 Node，可以组合多个过滤器进行过滤。
// 如果任何一个过滤器返回 true，该记录就会被过滤掉。
// ExcludeColumns 中的列以及 FeedbackContext 中的行 ID 列不会出现在派生的 itemset 中。
type FilterNode struct {
	Filters        []Filter
	ExcludeColumns []string
}

func (n *FilterNode) Name() string {
	return "filter.node"
}

func (n *FilterNode) Kind() pipeline.Kind {
	return pipeline.KindFilter
}

func (n *FilterNode) Process(
	ctx context.Context,
	fctx *core.FeedbackContext,
	records core.Collection,
) (core.Collection, error) {
	if len(n.Filters) == 0 || len(records) == 0 {
		return records, nil
	}

	exclude := append(slices.Clone(n.ExcludeColumns), fctx.RowIDColumn())
	itemsets := records.Itemsets(exclude...)
	out := make(core.Collection, 0, len(records))
	filtered := make(map[string]int)

	for i, rec := range records {
		if rec == nil {
			continue
		}
		c := Candidate{Index: i, Record: rec, Itemset: itemsets[i]}

		reason := ""
		for _, f := range n.Filters {
			ok, err := f.ShouldFilter(ctx, fctx, c)
			if err != nil {
				// 过滤器错误时记录但不中断流程
				log.Warnf("filter %s on record %d: %v", f.Name(), i, err)
				continue
			}
			if ok {
				reason = f.Name()
				break
			}
		}

		if reason != "" {
			filtered[reason]++
			continue
		}
		out = append(out, rec)
	}

	// 记录过滤原因（用于调试/观测）
	if fctx != nil && len(filtered) > 0 {
		reasons := make([]string, 0, len(filtered))
		for reason := range filtered {
			reasons = append(reasons, reason)
		}
		sort.Strings(reasons)
		for _, reason := range reasons {
			fctx.PutLabel("filtered", utils.Label{Value: strconv.Itoa(filtered[reason]), Source: reason})
		}
	}
	return out, nil
}
