package feedback

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rushteam/itemfeedback/core"
)

const rankingPrompt = "Your ranking: "

// CollectRanking 反复提示用户输入以逗号分隔的完整排序。
//
//   - 非纯数字的 token 会被静默丢弃；
//   - 解析结果为空（包括直接回车）时返回 ok=false，表示沿用默认排序；
//   - 解析出的数量等于 len(items) 时原样返回（不检查重复与越界，由调用方校验）；
//   - 数量不符时打印诊断并无限次重新提示。
func CollectRanking(ctx context.Context, con Console, items core.Collection) ([]int, bool, error) {
	n := items.Len()
	for {
		line, err := nextLine(ctx, con, rankingPrompt)
		if err != nil {
			return nil, false, err
		}

		ranking := parseRanking(line)
		if len(ranking) == 0 {
			return nil, false, nil
		}
		if len(ranking) == n {
			return ranking, true, nil
		}

		fmt.Fprintf(con, "Invalid ranking: You provided %d indices, but there are %d itemsets.\n", len(ranking), n)
		fmt.Fprintln(con, "Please try again. Note that you may hit <Enter> if the default ranking is satisfactory")
	}
}

// parseRanking 解析 "2, 0, 1"，只保留由 ASCII 数字组成的 token。
func parseRanking(line string) []int {
	var out []int
	for _, tok := range strings.Split(line, ",") {
		tok = strings.TrimSpace(tok)
		if !isDigits(tok) {
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			// 超出 int 范围
			continue
		}
		out = append(out, v)
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// RankingCollector 以完整排列的方式收集反馈。
type RankingCollector struct {
	Console Console
}

func (c *RankingCollector) Mode() Mode { return ModeRanking }

func (c *RankingCollector) Collect(ctx context.Context, items core.Collection) (*Outcome, error) {
	ranking, ok, err := CollectRanking(ctx, c.Console, items)
	if err != nil || !ok {
		return nil, err
	}
	return &Outcome{Mode: ModeRanking, Ranking: ranking}, nil
}
