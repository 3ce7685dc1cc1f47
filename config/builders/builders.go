package builders

import (
	"fmt"

	"github.com/rushteam/itemfeedback/config"
	"github.com/rushteam/itemfeedback/core"
	"github.com/rushteam/itemfeedback/feedback"
	"github.com/rushteam/itemfeedback/filter"
	"github.com/rushteam/itemfeedback/pipeline"
	"github.com/rushteam/itemfeedback/pkg/conv"
	"github.com/rushteam/itemfeedback/rerank"
)

func init() {
	config.Register("filter", BuildFilterNode)
	config.Register("rerank.topn", BuildTopNNode)
	config.Register("rerank.column_diversity", BuildColumnDiversityNode)
}

func BuildFilterNode(cfg map[string]interface{}) (pipeline.Node, error) {
	filtersConfig, ok := cfg["filters"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("filters not found or invalid")
	}
	filters := make([]filter.Filter, 0, len(filtersConfig))
	for _, fc := range filtersConfig {
		filterMap, ok := fc.(map[string]interface{})
		if !ok {
			continue
		}
		filterType := conv.ConfigGet(filterMap, "type", "")
		switch filterType {
		case "expr":
			expr := conv.ConfigGet(filterMap, "expr", "")
			if expr == "" {
				return nil, fmt.Errorf("expr filter: expr is required")
			}
			f, err := filter.NewExprFilter(expr, conv.ConfigGet(filterMap, "drop", false))
			if err != nil {
				return nil, fmt.Errorf("expr filter %q: %w", expr, err)
			}
			filters = append(filters, f)
		case "column_blacklist":
			cols := conv.SliceAnyToString(filterMap["columns"])
			filters = append(filters, &filter.ColumnBlacklist{Columns: cols})
		default:
			return nil, fmt.Errorf("unknown filter type: %s", filterType)
		}
	}
	return &filter.FilterNode{
		Filters:        filters,
		ExcludeColumns: conv.SliceAnyToString(cfg["exclude_columns"]),
	}, nil
}

func BuildTopNNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &rerank.TopNNode{N: int(conv.ConfigGetInt64(cfg, "n", 0))}, nil
}

func BuildColumnDiversityNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &rerank.ColumnDiversity{
		MaxPerGroup:    int(conv.ConfigGetInt64(cfg, "max_per_group", 1)),
		ExcludeColumns: conv.SliceAnyToString(cfg["exclude_columns"]),
	}, nil
}

// FeedbackBuilder 返回 rerank.feedback 的构建器。
// 节点配置 mode 可覆盖 defaultMode（ranking / itemset）；none 表示跳过反馈。
// 预览中不展示 rowIDColumn；节点配置 exclude_columns 可追加其他列。
func FeedbackBuilder(con feedback.Console, recorder rerank.Recorder, defaultMode feedback.Mode, rowIDColumn string) pipeline.NodeBuilder {
	return func(cfg map[string]interface{}) (pipeline.Node, error) {
		mode := feedback.Mode(conv.ConfigGet(cfg, "mode", string(defaultMode)))
		exclude := append([]string{rowIDColumn}, conv.SliceAnyToString(cfg["exclude_columns"])...)
		node := &rerank.FeedbackNode{
			Recorder: recorder,
			Preview: func(records core.Collection) {
				feedback.PrintItemsets(con, records, exclude...)
			},
		}
		switch mode {
		case feedback.ModeRanking:
			node.Collector = &feedback.RankingCollector{Console: con}
		case feedback.ModeItemset:
			node.Collector = &feedback.ItemsetCollector{Console: con}
		case "", "none":
		default:
			return nil, fmt.Errorf("unknown feedback mode: %s", mode)
		}
		return node, nil
	}
}
