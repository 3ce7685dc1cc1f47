package rerank

import (
	"fmt"

	"github.com/rushteam/itemfeedback/core"
)

func invalidRanking(format string, args ...any) error {
	return core.NewDomainError(core.ModuleRerank, core.ErrorCodeInvalidInput, fmt.Sprintf("rerank: "+format, args...))
}

// ValidateRanking 校验 ranking 是 [0, n) 的一个排列：长度一致、无越界、无重复。
func ValidateRanking(ranking []int, n int) error {
	if len(ranking) != n {
		return invalidRanking("ranking has %d indices, want %d", len(ranking), n)
	}
	seen := make([]bool, n)
	for pos, idx := range ranking {
		if idx < 0 || idx >= n {
			return invalidRanking("index %d at position %d out of range [0, %d)", idx, pos, n)
		}
		if seen[idx] {
			return invalidRanking("index %d appears more than once", idx)
		}
		seen[idx] = true
	}
	return nil
}

// Apply 按 ranking 重排 records，返回新的 Collection（记录本身共享）。
func Apply(records core.Collection, ranking []int) (core.Collection, error) {
	if err := ValidateRanking(ranking, records.Len()); err != nil {
		return nil, err
	}
	out := make(core.Collection, 0, len(ranking))
	for _, idx := range ranking {
		out = append(out, records[idx])
	}
	return out, nil
}
