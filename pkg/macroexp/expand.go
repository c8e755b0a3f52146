package macroexp

import "strings"

// ═══════════════════════════════════════════════════════════════════════════
// 外部区间展开器
// ═══════════════════════════════════════════════════════════════════════════

// Expander 节点区间展开的外部契约。
//
// Expand 把一个紧凑区间 token（如 "h[0-2,5]"）展开为有序的字面量序列；
// 不含区间语法的 token 应原样作为单元素序列返回。括号语法非法
// （如括号不配对）时返回错误，本包会把它包装为 [ErrInvalidRange]。
//
// 区间文法本身不属于本包，通过该窄接口注入便于替换或在测试中打桩。
type Expander interface {
	Expand(token string) ([]string, error)
}

// ExpanderFunc 把普通函数适配为 [Expander]。
type ExpanderFunc func(token string) ([]string, error)

// Expand 实现 [Expander]。
func (f ExpanderFunc) Expand(token string) ([]string, error) {
	return f(token)
}

// LiteralExpander 不解析任何区间语法的缺省展开器：token 原样作为
// 单个字面量返回。
var LiteralExpander Expander = ExpanderFunc(func(token string) ([]string, error) {
	return []string{token}, nil
})

// ═══════════════════════════════════════════════════════════════════════════
// 通用替换遍
// ═══════════════════════════════════════════════════════════════════════════

// substitute 用 repl 的结果重写 value 中名为 name 的每个宏函数。
//
// 反复调用 [Scan]：没有参数组或名字不匹配的宏原样拷贝并跳过；
// 匹配的宏先拷贝其前的文本，再写入 repl(参数文本)，然后越过它。
// requireDollar 为 true 时，匹配的宏必须以 '$' 终结。
func substitute(value, name string, requireDollar bool, repl func(string) (string, error)) (string, error) {
	var buf strings.Builder
	buf.Grow(len(value))

	start := 0
	for start < len(value) {
		m, err := Scan(value[start:])
		if err != nil {
			return "", err
		}
		if m == nil {
			// 没有（更多）宏了
			buf.WriteString(value[start:])

			break
		}
		if !m.HasArgs || m.Name != name {
			// 不是我们要的宏
			buf.WriteString(value[start : start+m.End+1])
			start += m.End + 1

			continue
		}
		if requireDollar {
			if err := m.requireEndDollar(); err != nil {
				return "", err
			}
		}

		buf.WriteString(value[start : start+m.Start])

		rep, err := repl(m.Args)
		if err != nil {
			return "", err
		}
		buf.WriteString(rep)

		start += m.End + 1
	}

	return buf.String(), nil
}

// splitPreserveRange 在不嵌套于 [...] 或 (...) 之内的 sep 处切分 value。
//
// 区间语法自身使用可含逗号的方括号，切分必须感知括号深度。
func splitPreserveRange(value string, sep byte) []string {
	var (
		parts    []string
		brackets int
		parens   int
		start    int
	)
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '[':
			brackets++
		case ']':
			brackets--
		case '(':
			parens++
		case ')':
			parens--
		case sep:
			if brackets == 0 && parens == 0 {
				parts = append(parts, value[start:i])
				start = i + 1
			}
		}
	}

	return append(parts, value[start:])
}

// ═══════════════════════════════════════════════════════════════════════════
// EXPAND 遍
// ═══════════════════════════════════════════════════════════════════════════

// Expand 重写 value 中的每个 $EXPAND(...)$ 宏函数。
//
// 参数文本先按不在括号内的逗号切分，每个片段交给注入的 [Expander]
// 展开，所有序列按声明顺序拼接——保留重复值，下游可以依赖重复次数——
// 最后用分隔符连接后写回。EXPAND 宏函数必须以 '$' 结尾。
func (e *Engine) Expand(value string) (string, error) {
	return substitute(value, ExpandMacroName, true, e.expandRepl)
}

// expandRepl EXPAND 的替换函数：区间展开 + 保序连接。
func (e *Engine) expandRepl(args string) (string, error) {
	var nodes []string
	for _, chunk := range splitPreserveRange(args, ',') {
		expanded, err := e.ranges.Expand(chunk)
		if err != nil {
			return "", &SyntaxError{Kind: ErrInvalidRange, Text: chunk, err: err}
		}
		nodes = append(nodes, expanded...)
	}

	return strings.Join(nodes, e.sep), nil
}
