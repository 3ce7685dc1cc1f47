package feedback

import (
	"fmt"
	"io"
	"strings"

	"github.com/rushteam/itemfeedback/core"
)

// FormatItemset 以 "a=x, b=y" 的形式输出 itemset（按列名排序）。
func FormatItemset(is core.Itemset) string {
	cols := is.Columns()
	parts := make([]string, 0, len(cols))
	for _, c := range cols {
		parts = append(parts, c+"="+is[c])
	}
	return strings.Join(parts, ", ")
}

// PrintItemsets 按当前顺序输出带编号的 itemset，编号即反馈时使用的 itemset_id。
func PrintItemsets(w io.Writer, records core.Collection, exclude ...string) {
	fmt.Fprintf(w, "Current ranking (%d itemsets):\n", records.Len())
	for i, is := range records.Itemsets(exclude...) {
		fmt.Fprintf(w, "  [%d] %s\n", i, FormatItemset(is))
	}
}
