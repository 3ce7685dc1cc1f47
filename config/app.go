package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rushteam/itemfeedback/pipeline"
)

// StoreConfig 反馈历史存储配置。
type StoreConfig struct {
	Type string `yaml:"type"` // none / memory / redis
	Addr string `yaml:"addr"`
	DB   int    `yaml:"db"`
	TTL  int    `yaml:"ttl"` // 秒
}

// AppConfig 是命令行入口的配置（YAML）。
//
// 示例：
//
//	input: [itemsets.yaml]
//	row_id_column: row_ids
//	mode: itemset
//	store: {type: redis, addr: "127.0.0.1:6379"}
//	pipeline:
//	  name: default
//	  nodes:
//	    - type: filter
//	      config:
//	        filters: [{type: expr, expr: 'size(itemset) > 1'}]
//	    - type: rerank.feedback
type AppConfig struct {
	Input       []string    `yaml:"input"`
	RowIDColumn string      `yaml:"row_id_column"`
	Mode        string      `yaml:"mode"`
	LogLevel    string      `yaml:"log_level"`
	Store       StoreConfig `yaml:"store"`

	// Pipeline 与 pipeline.Config 中的 pipeline 段结构一致
	Pipeline pipeline.Config `yaml:",inline"`
}

// DefaultAppConfig 返回默认配置。
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Mode:     "itemset",
		LogLevel: "info",
		Store:    StoreConfig{Type: "none"},
	}
}

// LoadApp 从 YAML 文件加载入口配置，未设置的字段保留默认值。
func LoadApp(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return ParseApp(data)
}

// ParseApp 从 YAML 内容解析入口配置。
// 不校验 pipeline 节点类型：rerank.feedback 由入口在运行时注册，注册后再调用 ValidatePipelineConfig。
func ParseApp(data []byte) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}
