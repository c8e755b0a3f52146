package recload

import "github.com/lwmacct/260830-go-pkg-macroexp/pkg/macroexp"

// options 记录加载选项。
type options struct {
	engineOpts  []macroexp.Option
	noExpansion bool // 是否跳过宏展开（默认执行）
}

// Option 记录加载选项函数。
type Option func(*options)

// WithRangeExpander 注入节点区间展开器，透传给宏引擎。
//
// 缺省为 [macroexp.LiteralExpander]，即不解析任何区间语法。
func WithRangeExpander(exp macroexp.Expander) Option {
	return func(o *options) {
		o.engineOpts = append(o.engineOpts, macroexp.WithRangeExpander(exp))
	}
}

// WithSeparator 设置 EXPAND 结果的连接分隔符，透传给宏引擎。
func WithSeparator(sep string) Option {
	return func(o *options) {
		o.engineOpts = append(o.engineOpts, macroexp.WithSeparator(sep))
	}
}

// WithoutExpansion 跳过宏展开，返回文件中的原始记录。
func WithoutExpansion() Option {
	return func(o *options) {
		o.noExpansion = true
	}
}
