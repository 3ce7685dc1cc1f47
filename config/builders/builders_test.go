package builders

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/itemfeedback/config"
	"github.com/rushteam/itemfeedback/core"
	"github.com/rushteam/itemfeedback/feedback"
	"github.com/rushteam/itemfeedback/filter"
	"github.com/rushteam/itemfeedback/rerank"
)

func TestRegistered(t *testing.T) {
	types := config.SupportedTypes()
	assert.Contains(t, types, "filter")
	assert.Contains(t, types, "rerank.topn")
	assert.Contains(t, types, "rerank.column_diversity")
}

func TestBuildFilterNode(t *testing.T) {
	node, err := BuildFilterNode(map[string]interface{}{
		"filters": []interface{}{
			map[string]interface{}{"type": "expr", "expr": `"city" in itemset`},
			map[string]interface{}{"type": "column_blacklist", "columns": []interface{}{"noise"}},
		},
		"exclude_columns": []interface{}{"ids"},
	})
	require.NoError(t, err)
	fn, ok := node.(*filter.FilterNode)
	require.True(t, ok)
	assert.Len(t, fn.Filters, 2)
	assert.Equal(t, []string{"ids"}, fn.ExcludeColumns)

	records := core.Collection{{"city": "NY"}, {"age": "1"}, {"city": "LA", "noise": "x"}}
	out, err := node.Process(context.Background(), nil, records)
	require.NoError(t, err)
	assert.Equal(t, core.Collection{records[0]}, out)
}

func TestBuildFilterNode_Errors(t *testing.T) {
	cases := []map[string]interface{}{
		{},
		{"filters": []interface{}{map[string]interface{}{"type": "expr"}}},
		{"filters": []interface{}{map[string]interface{}{"type": "expr", "expr": "itemset =="}}},
		{"filters": []interface{}{map[string]interface{}{"type": "unknown"}}},
	}
	for _, cfg := range cases {
		_, err := BuildFilterNode(cfg)
		assert.Error(t, err, "%v", cfg)
	}
}

func TestBuildRerankNodes(t *testing.T) {
	node, err := BuildTopNNode(map[string]interface{}{"n": 5})
	require.NoError(t, err)
	assert.Equal(t, 5, node.(*rerank.TopNNode).N)

	node, err = BuildColumnDiversityNode(nil)
	require.NoError(t, err)
	div := node.(*rerank.ColumnDiversity)
	assert.Equal(t, 1, div.MaxPerGroup)
	assert.Empty(t, div.ExcludeColumns)

	node, err = BuildColumnDiversityNode(map[string]interface{}{"max_per_group": 3, "exclude_columns": []interface{}{"ids"}})
	require.NoError(t, err)
	div = node.(*rerank.ColumnDiversity)
	assert.Equal(t, 3, div.MaxPerGroup)
	assert.Equal(t, []string{"ids"}, div.ExcludeColumns)
}

func TestFeedbackBuilder(t *testing.T) {
	var out bytes.Buffer
	con := feedback.NewConsole(strings.NewReader("2,1,0\n"), &out)
	build := FeedbackBuilder(con, nil, feedback.ModeItemset, "ids")

	node, err := build(map[string]interface{}{"mode": "ranking"})
	require.NoError(t, err)
	fn := node.(*rerank.FeedbackNode)
	assert.Equal(t, feedback.ModeRanking, fn.Collector.Mode())

	records := core.Collection{
		{"a": "x", "ids": []interface{}{1}},
		{"a": "y"},
		{"a": "z"},
	}
	res, err := node.Process(context.Background(), nil, records)
	require.NoError(t, err)
	assert.Equal(t, core.Collection{records[2], records[1], records[0]}, res)
	assert.Contains(t, out.String(), "[0] a=x\n")
	assert.NotContains(t, out.String(), "ids=")

	node, err = build(nil)
	require.NoError(t, err)
	assert.Equal(t, feedback.ModeItemset, node.(*rerank.FeedbackNode).Collector.Mode())

	node, err = build(map[string]interface{}{"mode": "none"})
	require.NoError(t, err)
	assert.Nil(t, node.(*rerank.FeedbackNode).Collector)

	_, err = build(map[string]interface{}{"mode": "bogus"})
	assert.Error(t, err)
}
