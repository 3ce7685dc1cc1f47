package config

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rushteam/itemfeedback/pipeline"
)

// 内置节点（filter、rerank.topn、rerank.column_diversity）在 config/builders 的 init 中注册，
// 入口需 import 该包。rerank.feedback 绑定控制台与反馈历史，每次运行由入口重新注册。

var (
	registry   = make(map[string]pipeline.NodeBuilder)
	registryMu sync.RWMutex
)

// Register 注册节点类型；同名类型后注册的覆盖先注册的。
func Register(typeName string, builder pipeline.NodeBuilder) {
	if typeName == "" || builder == nil {
		return
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[typeName] = builder
}

func registered(typeName string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[typeName]
	return ok
}

// SupportedTypes 返回已注册的节点类型（排序）。
func SupportedTypes() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	types := make([]string, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// DefaultFactory 以当前注册表快照构建 NodeFactory。
func DefaultFactory() *pipeline.NodeFactory {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f := pipeline.NewNodeFactory()
	for typeName, builder := range registry {
		f.Register(typeName, builder)
	}
	return f
}

// ValidatePipelineConfig 一次性报告配置中所有未注册或缺少 type 的节点。
func ValidatePipelineConfig(cfg *pipeline.Config) error {
	if cfg == nil {
		return nil
	}
	var unknown []string
	for i, nc := range cfg.Pipeline.Nodes {
		switch {
		case nc.Type == "":
			unknown = append(unknown, fmt.Sprintf("#%d(<empty>)", i))
		case !registered(nc.Type):
			unknown = append(unknown, fmt.Sprintf("#%d(%s)", i, nc.Type))
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unsupported node types %v (supported: %v)", unknown, SupportedTypes())
	}
	return nil
}
