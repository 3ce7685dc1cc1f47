package group

import "fmt"

// Tier 是列组按成员数量划分的兴趣层级。阈值固定为 1 / 2 / >=3，不可配置。
type Tier int

const (
	TierVeryInteresting   Tier = iota + 1 // 组内仅 1 个 itemset
	TierMildlyInteresting                 // 组内 2 个 itemset
	TierUninteresting                     // 组内 3 个及以上
)

// Classify 按组大小返回层级。
func Classify(size int) Tier {
	switch {
	case size <= 1:
		return TierVeryInteresting
	case size == 2:
		return TierMildlyInteresting
	default:
		return TierUninteresting
	}
}

func (t Tier) String() string {
	switch t {
	case TierVeryInteresting:
		return "very_interesting"
	case TierMildlyInteresting:
		return "mildly_interesting"
	case TierUninteresting:
		return "uninteresting"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// ParseTier 解析层级名称。
func ParseTier(s string) (Tier, bool) {
	for _, t := range []Tier{TierVeryInteresting, TierMildlyInteresting, TierUninteresting} {
		if t.String() == s {
			return t, true
		}
	}
	return 0, false
}
