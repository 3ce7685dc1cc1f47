package core

import (
	"fmt"
	"sort"
)

// Itemset 是一条挖掘结果：列名 -> 列值。
// 代表排序列表中的一行候选结果。
type Itemset map[string]string

// Columns 返回排序后的列名。
func (s Itemset) Columns() []string {
	cols := make([]string, 0, len(s))
	for c := range s {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

// Record 是原始记录：除 Itemset 的属性列外，还可能携带行 ID 列等辅助列。
type Record map[string]any

// Collection 是有序的记录序列，下标 0..N-1，顺序即当前排序。
type Collection []Record

// Len 返回记录数量。
func (c Collection) Len() int { return len(c) }

// Column 读取第 i 条记录的 name 列；越界或列不存在时返回 (nil, false)。
func (c Collection) Column(i int, name string) (any, bool) {
	if i < 0 || i >= len(c) || c[i] == nil {
		return nil, false
	}
	v, ok := c[i][name]
	return v, ok
}

// Itemsets 把记录转换为 Itemset 列表（与记录按位置对齐）。
// exclude 中的列（例如行 ID 列）会被跳过；非字符串值用 fmt 格式化，nil 值跳过。
func (c Collection) Itemsets(exclude ...string) []Itemset {
	skip := make(map[string]bool, len(exclude))
	for _, col := range exclude {
		if col != "" {
			skip[col] = true
		}
	}

	out := make([]Itemset, 0, len(c))
	for _, rec := range c {
		is := make(Itemset, len(rec))
		for k, v := range rec {
			if skip[k] || v == nil {
				continue
			}
			if s, ok := v.(string); ok {
				is[k] = s
				continue
			}
			is[k] = fmt.Sprint(v)
		}
		out = append(out, is)
	}
	return out
}

// Indices 返回默认排序 [0, N)。
func (c Collection) Indices() []int {
	idx := make([]int, len(c))
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// RowIDs 是某个 Itemset 关联的底层记录 ID 列表，元素为 int64 或 string。
type RowIDs []any
