package feedback

import (
	"context"

	"github.com/rushteam/itemfeedback/core"
)

// Mode 反馈模式
type Mode string

const (
	ModeRanking Mode = "ranking" // 用户输入完整排列
	ModeItemset Mode = "itemset" // 用户逐条升级/降级
)

// Outcome 是一次反馈会话的结果。
type Outcome struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id,omitempty"`
	Mode      Mode   `json:"mode"`
	Ranking   []int  `json:"ranking"`
	Promoted  []int  `json:"promoted,omitempty"`
	Demoted   []int  `json:"demoted,omitempty"`
	Timestamp int64  `json:"timestamp"` // Unix 时间戳（秒）
}

// Collector 反馈收集器接口（阻塞于控制台输入）。
type Collector interface {
	Mode() Mode

	// Collect 收集一次反馈；用户未给出任何反馈时返回 (nil, nil)。
	// Outcome 只填充 Mode/Ranking/Promoted/Demoted，会话信息由调用方补齐。
	Collect(ctx context.Context, items core.Collection) (*Outcome, error)
}
