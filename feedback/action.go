package feedback

import (
	"fmt"
	"strings"
)

// Action 是单个 itemset 的反馈动作：升级或降级。
type Action int

const (
	ActionPromote Action = iota + 1 // 升级：排到最前
	ActionDemote                    // 降级：排到最后
)

// Actions 返回全部合法动作（按提示顺序）。
func Actions() []Action {
	return []Action{ActionPromote, ActionDemote}
}

func (a Action) String() string {
	switch a {
	case ActionPromote:
		return "promote"
	case ActionDemote:
		return "demote"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Title 返回首字母大写形式，用于控制台回显（"Promote" / "Demote"）。
func (a Action) Title() string {
	s := a.String()
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Opposite 返回相反动作。
func (a Action) Opposite() Action {
	if a == ActionPromote {
		return ActionDemote
	}
	return ActionPromote
}

// ParseAction 解析动作关键字（大小写不敏感）。
func ParseAction(s string) (Action, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "promote":
		return ActionPromote, true
	case "demote":
		return ActionDemote, true
	default:
		return 0, false
	}
}
