package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rushteam/itemfeedback/pkg/utils"
)

func TestFeedbackContext_Labels(t *testing.T) {
	fctx := &FeedbackContext{}
	_, ok := fctx.GetLabel("filtered")
	assert.False(t, ok)

	fctx.PutLabel("filtered", utils.Label{Value: "2", Source: "filter.expr"})
	fctx.PutLabel("filtered", utils.Label{Value: "1", Source: "filter.column_blacklist"})

	lbl, ok := fctx.GetLabel("filtered")
	assert.True(t, ok)
	assert.Equal(t, "2|1", lbl.Value)
	assert.Equal(t, "filter.expr,filter.column_blacklist", lbl.Source)
}

func TestFeedbackContext_Param(t *testing.T) {
	var nilCtx *FeedbackContext
	_, ok := nilCtx.Param("x")
	assert.False(t, ok)

	fctx := &FeedbackContext{Params: map[string]any{"row_id_column": "ids"}}
	v, ok := fctx.Param("row_id_column")
	assert.True(t, ok)
	assert.Equal(t, "ids", v)
}

func TestFeedbackContext_RowIDColumn(t *testing.T) {
	var nilCtx *FeedbackContext
	assert.Empty(t, nilCtx.RowIDColumn())
	assert.Empty(t, (&FeedbackContext{Params: map[string]any{ParamRowIDColumn: 3}}).RowIDColumn())
	assert.Equal(t, "ids", (&FeedbackContext{Params: map[string]any{ParamRowIDColumn: "ids"}}).RowIDColumn())
}
