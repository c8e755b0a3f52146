package macroexp

import "strings"

// Duplicate 按 $DUPLICATE(...)$ 宏把一条记录复制为多条。
//
// 记录中任何地方都没有 DUPLICATE 宏时原样返回只含 record 的列表。否则每个列出的
// 值对应一条克隆：克隆是源记录的结构完整拷贝，只有含宏的值被逐段重建。
// 同一记录上基数不同的多个 DUPLICATE 通过广播同步——较小组的最后一个
// 值被复制进它自己没有派生出的克隆，克隆列表只增不减。
//
// 宏参数先经过 EXPAND 遍（嵌套的 EXPAND-in-DUPLICATE 在此解析），再按
// 不在括号内的逗号切分为字面值，首尾空白被去掉。
func (e *Engine) Duplicate(record Record) ([]Record, error) {
	var clones []Record

	// template 只用来播种之后才创建的克隆
	template := record.Clone()

	for prop, values := range record {
		for idx, value := range values {
			grown, err := e.duplicateValue(clones, template, prop, idx, value)
			if err != nil {
				return nil, err
			}
			clones = grown
		}
	}

	if clones == nil {
		return []Record{record}, nil
	}

	return clones, nil
}

// duplicateValue 对单个属性值执行复制遍，返回（可能增长的）克隆列表。
func (e *Engine) duplicateValue(clones []Record, template Record, prop string, idx int, value string) ([]Record, error) {
	var (
		cursor   int  // 扫描位置
		segStart int  // 待拷贝字面前缀的起点
		inited   bool // 该值是否已被重置重建
	)
	for cursor < len(value) {
		m, err := Scan(value[cursor:])
		if err != nil {
			return nil, err
		}
		if m == nil {
			break
		}
		if !m.HasArgs || m.Name != DuplicateMacroName {
			// 别的宏属于字面前缀，越过即可
			cursor += m.End + 1

			continue
		}
		if err := m.requireEndDollar(); err != nil {
			return nil, err
		}

		if !inited {
			// 第一次命中：该值从零开始重建
			template[prop][idx] = ""
			for _, clone := range clones {
				clone[prop][idx] = ""
			}
			inited = true
		}

		prefix := value[segStart : cursor+m.Start]

		expanded, err := e.Expand(m.Args)
		if err != nil {
			return nil, err
		}
		literals := splitPreserveRange(expanded, ',')
		for i := range literals {
			literals[i] = strings.TrimSpace(literals[i])
		}

		clones = broadcastOrExtend(clones, template, prop, idx, prefix, literals)

		// 同一值上更靠后的宏要为之后才创建的克隆继续生效
		template[prop][idx] += prefix + literals[len(literals)-1]

		cursor += m.End + 1
		segStart = cursor
	}

	if inited {
		// 把值剩余的字面后缀补给每个克隆和模板
		tail := value[segStart:]
		template[prop][idx] += tail
		for _, clone := range clones {
			clone[prop][idx] += tail
		}
	}

	return clones, nil
}

// broadcastOrExtend 把一组字面值分发进克隆列表。
//
// 克隆不足时先用 template 的拷贝补齐；下标 j < len(literals) 的克隆追加
// prefix+literals[j]；其余克隆（本次宏没有派生出的）追加最后一个字面值，
// 这就是让不同基数的 DUPLICATE 保持同步的广播机制。
func broadcastOrExtend(clones []Record, template Record, prop string, idx int, prefix string, literals []string) []Record {
	for len(clones) < len(literals) {
		clones = append(clones, template.Clone())
	}

	last := literals[len(literals)-1]
	for j, clone := range clones {
		if j < len(literals) {
			clone[prop][idx] += prefix + literals[j]
		} else {
			clone[prop][idx] += prefix + last
		}
	}

	return clones
}
