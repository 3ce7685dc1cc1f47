package feedback

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/rushteam/itemfeedback/core"
)

const feedbackPrompt = "Feedback: "

// Change 描述一条指令对 Directives 的影响。
type Change int

const (
	ChangeAdded    Change = iota // 新增
	ChangeRepeated               // 重复指令，无变化
	ChangeMoved                  // 从相反集合移入（后写覆盖）
)

// Directives 保存有序的升级/降级集合。
// 同一个 id 至多出现在一个集合中：相反动作会把 id 从原集合移出（后写覆盖）。
type Directives struct {
	promoted []int
	demoted  []int
}

func (d *Directives) set(a Action) *[]int {
	if a == ActionPromote {
		return &d.promoted
	}
	return &d.demoted
}

// Apply 对 id 应用动作。
func (d *Directives) Apply(id int, a Action) Change {
	target := d.set(a)
	if slices.Contains(*target, id) {
		return ChangeRepeated
	}

	change := ChangeAdded
	other := d.set(a.Opposite())
	if i := slices.Index(*other, id); i >= 0 {
		*other = slices.Delete(*other, i, i+1)
		change = ChangeMoved
	}
	*target = append(*target, id)
	return change
}

// Promoted 返回升级 id（插入顺序）。
func (d *Directives) Promoted() []int { return slices.Clone(d.promoted) }

// Demoted 返回降级 id（插入顺序）。
func (d *Directives) Demoted() []int { return slices.Clone(d.demoted) }

// Empty 是否没有任何指令。
func (d *Directives) Empty() bool { return len(d.promoted) == 0 && len(d.demoted) == 0 }

// Ranking 构造新排序：升级 id + 其余 id（原顺序）+ 降级 id。
func (d *Directives) Ranking(n int) []int {
	touched := make(map[int]bool, len(d.promoted)+len(d.demoted))
	for _, id := range d.promoted {
		touched[id] = true
	}
	for _, id := range d.demoted {
		touched[id] = true
	}

	out := make([]int, 0, n)
	out = append(out, d.promoted...)
	for i := 0; i < n; i++ {
		if !touched[i] {
			out = append(out, i)
		}
	}
	out = append(out, d.demoted...)
	return out
}

func printUsage(con Console) {
	fmt.Fprintln(con, "\nProvide feedback for individual itemsets:")
	fmt.Fprintln(con, "Format: <itemset_id> <action>")
	fmt.Fprintln(con, "Actions: promote, demote")
	fmt.Fprintln(con, "Example: 0 promote")
	fmt.Fprintln(con, "Example: 2 demote")
	fmt.Fprintln(con, "Type 'done' when finished, or press Enter to skip feedback.")
}

// collectDirectives 读取 "<itemset_id> <action>" 指令，直到 done（大小写不敏感）或空行。
// 非法输入打印诊断后丢弃，不限重试次数。
func collectDirectives(ctx context.Context, con Console, n int) (*Directives, error) {
	d := &Directives{}
	printUsage(con)

	for {
		line, err := nextLine(ctx, con, feedbackPrompt)
		if err != nil {
			return nil, err
		}
		if line == "" || strings.EqualFold(line, "done") {
			return d, nil
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			fmt.Fprintln(con, "Invalid format. Use: <itemset_id> <action>")
			continue
		}
		id, err := strconv.Atoi(parts[0])
		if errors.Is(err, strconv.ErrRange) {
			// 数字合法但超出 int 范围，同样按越界处理
			fmt.Fprintf(con, "Invalid itemset_id %s. Must be between 0 and %d\n", parts[0], n-1)
			continue
		}
		if err != nil {
			fmt.Fprintln(con, "Invalid itemset_id. Must be a number.")
			continue
		}
		if id < 0 || id >= n {
			fmt.Fprintf(con, "Invalid itemset_id %d. Must be between 0 and %d\n", id, n-1)
			continue
		}
		action, ok := ParseAction(parts[1])
		if !ok {
			fmt.Fprintf(con, "Invalid action '%s'. Use '%s' or '%s'\n",
				strings.ToLower(parts[1]), ActionPromote, ActionDemote)
			continue
		}

		switch d.Apply(id, action) {
		case ChangeAdded:
			fmt.Fprintf(con, "Added: %s itemset %d\n", action.Title(), id)
		case ChangeMoved:
			fmt.Fprintf(con, "Moved: %s itemset %d\n", action.Title(), id)
		case ChangeRepeated:
			fmt.Fprintf(con, "Itemset %d is already %sd\n", id, action)
		}
	}
}

func printSummary(con Console, d *Directives, ranking []int) {
	fmt.Fprintln(con, "\nRanking updated:")
	fmt.Fprintf(con, "Promoted items: %s\n", formatIndices(d.promoted))
	fmt.Fprintf(con, "Demoted items: %s\n", formatIndices(d.demoted))
	fmt.Fprintf(con, "New ranking: %s\n", formatIndices(ranking))
}

// CollectItemsetFeedback 收集逐条升级/降级反馈并返回新排序。
// 没有任何有效指令时返回 ok=false。
func CollectItemsetFeedback(ctx context.Context, con Console, items core.Collection) ([]int, bool, error) {
	d, err := collectDirectives(ctx, con, items.Len())
	if err != nil {
		return nil, false, err
	}
	if d.Empty() {
		return nil, false, nil
	}
	ranking := d.Ranking(items.Len())
	printSummary(con, d, ranking)
	return ranking, true, nil
}

// ItemsetCollector 以逐条升级/降级的方式收集反馈。
type ItemsetCollector struct {
	Console Console
}

func (c *ItemsetCollector) Mode() Mode { return ModeItemset }

func (c *ItemsetCollector) Collect(ctx context.Context, items core.Collection) (*Outcome, error) {
	d, err := collectDirectives(ctx, c.Console, items.Len())
	if err != nil || d.Empty() {
		return nil, err
	}
	ranking := d.Ranking(items.Len())
	printSummary(c.Console, d, ranking)
	return &Outcome{
		Mode:     ModeItemset,
		Ranking:  ranking,
		Promoted: d.Promoted(),
		Demoted:  d.Demoted(),
	}, nil
}
