package macroexp_test

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lwmacct/260830-go-pkg-macroexp/pkg/macroexp"
)

// expandNodeRange 测试用的最小区间展开器。
//
// 只认 "prefix[a-b,c]suffix" 这一种写法：方括号里是逗号分隔的数字或
// 数字区间。不含方括号的 token 原样作为单个字面量返回，方括号不配对
// 时报错。真实部署应注入完整的 NodeSet 风格实现。
func expandNodeRange(token string) ([]string, error) {
	open := strings.IndexByte(token, '[')
	if open < 0 {
		if strings.IndexByte(token, ']') >= 0 {
			return nil, fmt.Errorf("unbalanced ']' in %q", token)
		}

		return []string{token}, nil
	}

	closing := strings.IndexByte(token[open:], ']')
	if closing < 0 {
		return nil, fmt.Errorf("unbalanced '[' in %q", token)
	}
	closing += open

	prefix, suffix := token[:open], token[closing+1:]

	var out []string
	for _, part := range strings.Split(token[open+1:closing], ",") {
		lo, hi, isRange := strings.Cut(part, "-")
		if !isRange {
			out = append(out, prefix+part+suffix)

			continue
		}
		low, errLo := strconv.Atoi(lo)
		high, errHi := strconv.Atoi(hi)
		if errLo != nil || errHi != nil || high < low {
			return nil, fmt.Errorf("bad range %q in %q", part, token)
		}
		for n := low; n <= high; n++ {
			out = append(out, prefix+strconv.Itoa(n)+suffix)
		}
	}

	return out, nil
}

// newTestEngine 注入测试区间展开器的引擎。
func newTestEngine(opts ...macroexp.Option) *macroexp.Engine {
	base := []macroexp.Option{
		macroexp.WithRangeExpander(macroexp.ExpanderFunc(expandNodeRange)),
	}

	return macroexp.New(append(base, opts...)...)
}
