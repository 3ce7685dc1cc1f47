// Package group 按属性列集合对 itemset 分组，并按组大小划分兴趣层级。
package group

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/rushteam/itemfeedback/core"
	"github.com/rushteam/itemfeedback/pkg/conv"
)

// Key 返回 itemset 的列组 key：排序后的列名以 '|' 连接。
// 列名集合相同（与顺序无关）的 itemset 共享同一个 key。
func Key(is core.Itemset) string {
	return strings.Join(is.Columns(), "|")
}

// EnrichedItemset 是 itemset 与其行 ID 列表的组合。
// 行 ID 在 JSON 中以 Field 为 key（与 "itemset" 并列）。
type EnrichedItemset struct {
	Itemset core.Itemset
	Field   string
	RowIDs  core.RowIDs
}

func (e EnrichedItemset) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"itemset": e.Itemset,
		e.Field:   e.RowIDs,
	})
}

// Group 是一个列组：key 与按插入顺序排列的成员。
type Group struct {
	Key     string
	Members []EnrichedItemset
}

// Tier 返回该组的兴趣层级。
func (g Group) Tier() Tier { return Classify(len(g.Members)) }

// Groups 是按 key 首次出现顺序排列的列组。
type Groups []Group

// Len 返回组数量。
func (gs Groups) Len() int { return len(gs) }

// Keys 返回所有 key（首次出现顺序）。
func (gs Groups) Keys() []string {
	keys := make([]string, 0, len(gs))
	for _, g := range gs {
		keys = append(keys, g.Key)
	}
	return keys
}

// Lookup 按 key 查找组。
func (gs Groups) Lookup(key string) (Group, bool) {
	for _, g := range gs {
		if g.Key == key {
			return g, true
		}
	}
	return Group{}, false
}

// Size 返回所有组成员总数。
func (gs Groups) Size() int {
	n := 0
	for _, g := range gs {
		n += len(g.Members)
	}
	return n
}

// MarshalJSON 输出 {key: [members...]} 对象，key 保持首次出现顺序。
func (gs Groups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range gs {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(g.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		members := g.Members
		if members == nil {
			members = []EnrichedItemset{}
		}
		v, err := json.Marshal(members)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// rowIDs 查找第 i 个 itemset 的行 ID；任何查找失败都返回空列表，不报错。
func rowIDs(records core.Collection, i int, column string) core.RowIDs {
	if column == "" {
		return core.RowIDs{}
	}
	v, ok := records.Column(i, column)
	if !ok {
		return core.RowIDs{}
	}
	return core.RowIDs(conv.ToIDList(v))
}

// ByColumns 按列组 key 对 itemsets 分组，再按组大小拆成三个层级：
// (very_interesting, mildly_interesting, uninteresting)。
//
// records 与 itemsets 按位置对齐，用于按 rowIDColumn 查找行 ID；
// rowIDColumn 为空、位置越界或列不存在时行 ID 为空列表。
// 每个输入 itemset 恰好出现在一个层级的一个组中。纯计算，无副作用。
func ByColumns(itemsets []core.Itemset, records core.Collection, rowIDColumn string) (very, mildly, uninteresting Groups) {
	var all Groups
	index := make(map[string]int)

	for i, is := range itemsets {
		key := Key(is)
		enriched := EnrichedItemset{
			Itemset: is,
			Field:   rowIDColumn,
			RowIDs:  rowIDs(records, i, rowIDColumn),
		}

		pos, ok := index[key]
		if !ok {
			pos = len(all)
			index[key] = pos
			all = append(all, Group{Key: key})
		}
		all[pos].Members = append(all[pos].Members, enriched)
	}

	for _, g := range all {
		switch g.Tier() {
		case TierVeryInteresting:
			very = append(very, g)
		case TierMildlyInteresting:
			mildly = append(mildly, g)
		default:
			uninteresting = append(uninteresting, g)
		}
	}
	return very, mildly, uninteresting
}

// Tiered 是三个层级的组合，便于展示与序列化。
type Tiered struct {
	VeryInteresting   Groups `json:"very_interesting"`
	MildlyInteresting Groups `json:"mildly_interesting"`
	Uninteresting     Groups `json:"uninteresting"`
}

// Classified 对 records 派生的 itemsets 分组（行 ID 列本身不参与列组 key）。
func Classified(records core.Collection, rowIDColumn string) Tiered {
	very, mildly, un := ByColumns(records.Itemsets(rowIDColumn), records, rowIDColumn)
	return Tiered{VeryInteresting: very, MildlyInteresting: mildly, Uninteresting: un}
}

// Get 返回指定层级的组。
func (t Tiered) Get(tier Tier) Groups {
	switch tier {
	case TierVeryInteresting:
		return t.VeryInteresting
	case TierMildlyInteresting:
		return t.MildlyInteresting
	case TierUninteresting:
		return t.Uninteresting
	default:
		return nil
	}
}
