package macroexp

import "strings"

// Engine 宏展开引擎。
//
// 零值不可直接使用，通过 [New] 构造。Engine 自身无可变状态，
// 可在多个 goroutine 间共享；每次 [Engine.Process] 都是对单条
// 输入记录的纯变换。
type Engine struct {
	ranges Expander
	sep    string
}

// Option 引擎选项函数。
type Option func(*Engine)

// WithRangeExpander 注入节点区间展开器。
//
// 缺省为 [LiteralExpander]，即不解析任何区间语法。
func WithRangeExpander(exp Expander) Option {
	return func(e *Engine) {
		e.ranges = exp
	}
}

// WithSeparator 设置 EXPAND 结果写回字符串时的连接分隔符，缺省为 ","。
//
// 写回的分隔符在下游消费时同样遵循括号感知的切分规则。
func WithSeparator(sep string) Option {
	return func(e *Engine) {
		e.sep = sep
	}
}

// New 构造宏展开引擎。
func New(opts ...Option) *Engine {
	eng := &Engine{
		ranges: LiteralExpander,
		sep:    ",",
	}
	for _, opt := range opts {
		opt(eng)
	}

	return eng
}

// Process 完整处理一条记录：先复制，再逐值展开，最后去掉空值。
//
// 流程：[Engine.Duplicate] 产出克隆列表；对每个克隆的每个属性的每个值
// 运行 EXPAND 遍；展开后为空或仅含空白的值从属性的值列表中删除
// （保持其余值的相对顺序，变空的属性保留为空列表）。
//
// 记录中没有 DUPLICATE 宏时克隆列表就是 record 本身，值会被原地改写。
// 任何 [SyntaxError] 都会立即中止整条记录的处理。
func (e *Engine) Process(record Record) ([]Record, error) {
	clones, err := e.Duplicate(record)
	if err != nil {
		return nil, err
	}

	for _, clone := range clones {
		for prop, values := range clone {
			kept := make([]string, 0, len(values))
			for _, value := range values {
				expanded, err := e.Expand(value)
				if err != nil {
					return nil, err
				}
				// 空值对下游没有意义
				if strings.TrimSpace(expanded) == "" {
					continue
				}
				kept = append(kept, expanded)
			}
			clone[prop] = kept
		}
	}

	return clones, nil
}
