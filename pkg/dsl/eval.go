package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/itemfeedback/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvErr  error
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义变量
func initCELEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("itemset", cel.MapType(cel.StringType, cel.StringType)),
		cel.Variable("record", cel.MapType(cel.StringType, cel.DynType)),
		cel.Variable("index", cel.IntType),
		cel.Variable("params", cel.MapType(cel.StringType, cel.DynType)),
	)
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = initCELEnv()
	})
	return celEnv, celEnvErr
}

// Eval 是 Itemset 表达式解释器，使用 CEL (Common Expression Language) 实现。
//
// 可用变量：
//   - itemset：列名 -> 列值（string）
//   - record：原始记录（含行 ID 等辅助列）
//   - index：记录在当前集合中的位置
//   - params：FeedbackContext.Params
//
// 示例：
//   - `itemset.city == "NY"`
//   - `"city" in itemset && size(itemset) >= 2`
//   - `index < 10`
//
// 表达式在 Compile 时编译一次，Evaluate 可多次调用。
type Eval struct {
	expr string
	prg  cel.Program
}

// Compile 编译表达式，返回可复用的解释器。
func Compile(expr string) (*Eval, error) {
	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %w", issues.Err())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}
	return &Eval{expr: expr, prg: prg}, nil
}

// Expr 返回原始表达式。
func (e *Eval) Expr() string { return e.expr }

// Evaluate 对第 index 条记录执行表达式，返回布尔结果。
func (e *Eval) Evaluate(fctx *core.FeedbackContext, index int, rec core.Record, itemset core.Itemset) (bool, error) {
	out, _, err := e.prg.Eval(buildInput(fctx, index, rec, itemset))
	if err != nil {
		// 访问不存在的 key 会报错；用户应先用 "key" in itemset 判断存在性
		return false, fmt.Errorf("eval error: %w", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}
	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据
func buildInput(fctx *core.FeedbackContext, index int, rec core.Record, itemset core.Itemset) map[string]any {
	is := make(map[string]string, len(itemset))
	for k, v := range itemset {
		is[k] = v
	}
	r := make(map[string]any, len(rec))
	for k, v := range rec {
		r[k] = v
	}
	params := map[string]any{}
	if fctx != nil {
		for k, v := range fctx.Params {
			params[k] = v
		}
	}
	return map[string]any{
		"itemset": is,
		"record":  r,
		"index":   int64(index),
		"params":  params,
	}
}
