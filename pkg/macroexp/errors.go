package macroexp

import "fmt"

// ErrKind 标识宏语法错误的类别。
type ErrKind int

const (
	// ErrUnclosedParens 括号嵌套直到字符串末尾都没有归零。
	ErrUnclosedParens ErrKind = iota + 1
	// ErrEarlyClosingParen 在任何 '(' 之前出现了 ')'。
	ErrEarlyClosingParen
	// ErrMultipleParenGroups 一个宏里出现了第二组顶层括号。
	ErrMultipleParenGroups
	// ErrMissingEndDollar 宏函数必须以 '$' 结尾但没有。
	ErrMissingEndDollar
	// ErrInvalidRange 外部区间展开器拒绝了一个 token。
	ErrInvalidRange
)

// SyntaxError 宏语法错误，携带出错的子串。
//
// 任何一种语法错误都会立即中止当前值/记录的处理，没有部分输出。
type SyntaxError struct {
	Kind ErrKind
	Text string // 出错的子串
	err  error  // ErrInvalidRange 时为外部展开器的原始错误
}

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case ErrUnclosedParens:
		return fmt.Sprintf("macroexp: unclosed parentheses in macro at: %s", e.Text)
	case ErrEarlyClosingParen:
		return fmt.Sprintf("macroexp: closing parenthesis before opening one at: %s", e.Text)
	case ErrMultipleParenGroups:
		return fmt.Sprintf("macroexp: only one parenthesized block allowed inside a macro at: %s", e.Text)
	case ErrMissingEndDollar:
		return fmt.Sprintf("macroexp: macro %s does not end with '$'", e.Text)
	case ErrInvalidRange:
		return fmt.Sprintf("macroexp: invalid range expression %q: %v", e.Text, e.err)
	default:
		return fmt.Sprintf("macroexp: syntax error at: %s", e.Text)
	}
}

// Unwrap 返回底层错误（仅 [ErrInvalidRange] 有值）。
func (e *SyntaxError) Unwrap() error {
	return e.err
}
