package core

import "github.com/rushteam/itemfeedback/pkg/utils"

// ParamRowIDColumn 是保存行 ID 列名的请求参数。
const ParamRowIDColumn = "row_id_column"

// FeedbackContext 承载会话/用户/场景信息，贯穿整个 Pipeline 透传。
type FeedbackContext struct {
	SessionID string
	UserID    string
	Scene     string

	// Labels 是会话级标签，记录各 Node 的处理痕迹（过滤原因、反馈模式等）
	Labels map[string]utils.Label

	// Params 请求级参数，例如 row_id_column
	Params map[string]any
}

// PutLabel 写入会话级 Label；同名 key 按默认 Merge 规则累积。
func (fctx *FeedbackContext) PutLabel(key string, lbl utils.Label) {
	if fctx.Labels == nil {
		fctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := fctx.Labels[key]; ok {
		fctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	fctx.Labels[key] = lbl
}

// GetLabel 获取会话级 Label。
func (fctx *FeedbackContext) GetLabel(key string) (utils.Label, bool) {
	if fctx == nil || fctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := fctx.Labels[key]
	return lbl, ok
}

// Param 读取请求参数。
func (fctx *FeedbackContext) Param(key string) (any, bool) {
	if fctx == nil || fctx.Params == nil {
		return nil, false
	}
	v, ok := fctx.Params[key]
	return v, ok
}

// RowIDColumn 返回行 ID 列名；未设置时为空。
func (fctx *FeedbackContext) RowIDColumn() string {
	v, _ := fctx.Param(ParamRowIDColumn)
	col, _ := v.(string)
	return col
}
