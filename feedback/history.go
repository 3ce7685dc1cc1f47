package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rushteam/itemfeedback/core"
)

const historyKeyPrefix = "feedback:"

// History 把反馈结果以 JSON 记录到 Store 中，key 为 feedback:<session_id>。
type History struct {
	Store core.Store
	// TTL 过期时间（秒），0 表示不过期
	TTL int
}

// NewHistory 创建反馈历史记录器。
func NewHistory(store core.Store, ttl int) *History {
	return &History{Store: store, TTL: ttl}
}

func historyKey(sessionID string) string {
	return historyKeyPrefix + sessionID
}

// Record 保存一次反馈结果。
func (h *History) Record(ctx context.Context, out *Outcome) error {
	if out == nil {
		return nil
	}
	if out.SessionID == "" {
		return core.NewDomainError(core.ModuleFeedback, core.ErrorCodeInvalidInput, "feedback: outcome without session id")
	}
	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("marshal outcome: %w", err)
	}
	if err := h.Store.Set(ctx, historyKey(out.SessionID), data, h.TTL); err != nil {
		return fmt.Errorf("store %s: %w", h.Store.Name(), err)
	}
	return nil
}

// Get 读取指定会话的反馈结果；不存在时返回 core.ErrStoreNotFound。
func (h *History) Get(ctx context.Context, sessionID string) (*Outcome, error) {
	data, err := h.Store.Get(ctx, historyKey(sessionID))
	if err != nil {
		return nil, err
	}
	var out Outcome
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("unmarshal outcome: %w", err)
	}
	return &out, nil
}

// Sessions 列出已记录的会话 id（按字典序）。
func (h *History) Sessions(ctx context.Context) ([]string, error) {
	keys, err := h.Store.Keys(ctx, historyKeyPrefix)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, historyKeyPrefix))
	}
	return ids, nil
}
