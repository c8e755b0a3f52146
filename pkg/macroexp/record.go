package macroexp

import "slices"

// Record 配置记录：属性名到一组有序原始值的映射。
//
// 属性内值的声明顺序贯穿所有变换保持不变，重复值也会保留。
// Record 是纯值对象，除内容外没有身份。
type Record map[string][]string

// Clone 返回记录的半深拷贝：属性表与每个值切片都被复制，
// 字符串本身按值共享。
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for prop, values := range r {
		out[prop] = slices.Clone(values)
	}

	return out
}
