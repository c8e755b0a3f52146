package macroexp

import "strings"

// 本包识别的宏函数名。其余名字的宏原样通过。
const (
	ExpandMacroName    = "EXPAND"
	DuplicateMacroName = "DUPLICATE"
)

// Macro 在字符串中匹配到的一个宏。
type Macro struct {
	Start int    // '$' 在输入中的偏移
	End   int    // 终结字符的偏移（含）
	Name  string // '$' 后的标识符
	Args  string // 顶层括号组的原始内容
	Raw   string // 输入中被匹配的完整子串

	// HasArgs 是否带括号参数组（宏函数）。Args 为空串时二者仍可区分。
	HasArgs bool

	// EndDollar 宏是否以第二个 '$' 终结，而不是空白或行尾。
	EndDollar bool
}

// requireEndDollar 断言宏函数以 '$' 结尾。
func (m *Macro) requireEndDollar() error {
	if !m.EndDollar {
		return &SyntaxError{Kind: ErrMissingEndDollar, Text: m.Raw}
	}

	return nil
}

// isSpace ASCII 空白。宏终结只看单字节空白字符。
func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

// Scan 在 value 中定位第一个宏。没有宏时返回 (nil, nil)。
//
// 从第一个 '$' 之后逐字节扫描，维护括号深度计数：
//   - '(' 加深；第一组顶层括号开启参数组，参数组闭合后再出现顶层 '(' 是错误
//   - ')' 变浅；深度为零时出现 ')' 是错误；使深度归零的 ')' 闭合参数组
//   - 深度为零时遇到空白，宏在此终结（EndDollar 为 false）——形如 "$foo "
//     的 token 也被当作宏识别，后续阶段才能保护它不被粗暴切分
//   - 深度为零时遇到第二个 '$'，宏终结且 EndDollar 为 true
//
// 扫描到行尾深度仍大于零时返回 [ErrUnclosedParens]。
func Scan(value string) (*Macro, error) {
	start := strings.IndexByte(value, '$')
	if start < 0 {
		return nil, nil
	}

	var (
		depth     int
		argsOpen  = -1 // 顶层 '(' 的偏移
		argsClose = -1 // 与之配对的 ')' 的偏移
		args      string
		hasArgs   bool
		endDollar bool
		end       = len(value) - 1
	)
scan:
	for i := start + 1; i < len(value); i++ {
		switch ch := value[i]; {
		case ch == '(':
			depth++
			if argsOpen < 0 {
				argsOpen = i
			} else if argsClose >= 0 {
				// 顶层只允许一组括号
				return nil, &SyntaxError{Kind: ErrMultipleParenGroups, Text: value}
			}
		case ch == ')':
			if depth == 0 {
				return nil, &SyntaxError{Kind: ErrEarlyClosingParen, Text: value}
			}
			depth--
			if depth == 0 && argsClose < 0 {
				argsClose = i
				args = value[argsOpen+1 : i]
				hasArgs = true
			}
		case isSpace(ch) && depth == 0:
			end = i

			break scan
		case ch == '$' && depth == 0:
			endDollar = true
			end = i

			break scan
		}
	}
	if argsOpen >= 0 && argsClose < 0 {
		return nil, &SyntaxError{Kind: ErrUnclosedParens, Text: value}
	}

	raw := value[start : end+1]

	return &Macro{
		Start:     start,
		End:       end,
		Name:      macroName(raw),
		Args:      args,
		Raw:       raw,
		HasArgs:   hasArgs,
		EndDollar: endDollar,
	}, nil
}

// macroName '$' 之后到第一个 '('、'$' 或空白为止的字符。
func macroName(raw string) string {
	for i := 1; i < len(raw); i++ {
		ch := raw[i]
		if ch == '(' || ch == '$' || isSpace(ch) {
			return raw[1:i]
		}
	}

	return raw[1:]
}
