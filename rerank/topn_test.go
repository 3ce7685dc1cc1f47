package rerank

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/itemfeedback/core"
)

func TestTopNNode(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 4}, {-1, 4}, {2, 2}, {4, 4}, {10, 4},
	}
	for _, tt := range tests {
		out, err := (&TopNNode{N: tt.n}).Process(context.Background(), nil, records4())
		require.NoError(t, err)
		assert.Len(t, out, tt.want, "N=%d", tt.n)
	}
}

func TestColumnDiversity(t *testing.T) {
	records := core.Collection{
		{"a": "1", "ids": []any{1}},
		{"a": "2", "ids": []any{2}},
		{"a": "3", "b": "x"},
		{"a": "4"},
		{"b": "y", "a": "5"},
	}

	out, err := (&ColumnDiversity{ExcludeColumns: []string{"ids"}}).Process(context.Background(), nil, records)
	require.NoError(t, err)
	assert.Equal(t, core.Collection{records[0], records[2]}, out)

	out, err = (&ColumnDiversity{MaxPerGroup: 2, ExcludeColumns: []string{"ids"}}).Process(context.Background(), nil, records)
	require.NoError(t, err)
	assert.Equal(t, core.Collection{records[0], records[1], records[2], records[4]}, out)

	// 不排除 ids 时，带 ids 的记录形成独立列组
	out, err = (&ColumnDiversity{}).Process(context.Background(), nil, records)
	require.NoError(t, err)
	assert.Equal(t, core.Collection{records[0], records[2], records[3]}, out)
}

func TestColumnDiversity_ExcludesRowIDColumnFromContext(t *testing.T) {
	records := core.Collection{
		{"a": "1", "ids": []any{1}},
		{"a": "2"},
		{"a": "3", "ids": []any{3}},
	}
	fctx := &core.FeedbackContext{Params: map[string]any{core.ParamRowIDColumn: "ids"}}

	out, err := (&ColumnDiversity{}).Process(context.Background(), fctx, records)
	require.NoError(t, err)
	assert.Equal(t, core.Collection{records[0]}, out)
}
