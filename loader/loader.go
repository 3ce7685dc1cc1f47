// Package loader 从本地文件加载 itemset 记录。
// 文件内容为对象数组，YAML 与 JSON 均可（JSON 是 YAML 的子集，统一用 yaml.v3 解析）。
package loader

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rushteam/itemfeedback/core"
	"github.com/rushteam/itemfeedback/log"
)

// Parse 解析对象数组为 Collection。
func Parse(data []byte) (core.Collection, error) {
	var raw []map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, core.NewDomainError(core.ModuleLoader, core.ErrorCodeInvalidInput,
			fmt.Sprintf("loader: parse records: %v", err))
	}
	out := make(core.Collection, 0, len(raw))
	for _, r := range raw {
		if r == nil {
			r = map[string]any{}
		}
		out = append(out, core.Record(r))
	}
	return out, nil
}

// LoadFile 从单个文件加载记录。
func LoadFile(path string) (core.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	records, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// LoadFiles 并发加载多个文件，按参数顺序拼接；任一文件失败即返回错误。
func LoadFiles(ctx context.Context, paths ...string) (core.Collection, error) {
	parts := make([]core.Collection, len(paths))
	eg, ctx := errgroup.WithContext(ctx)

	for i, p := range paths {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			records, err := LoadFile(p)
			if err != nil {
				return err
			}
			parts[i] = records
			log.Debugf("loaded %d records from %s", len(records), p)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var out core.Collection
	for _, part := range parts {
		out = append(out, part...)
	}
	return out, nil
}
