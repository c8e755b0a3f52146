// Package macroexp 提供配置记录中 $EXPAND / $DUPLICATE 宏的展开。
//
// 该包面向多值配置属性：一条 Record 的每个属性持有一组有序的原始字符串，
// 字符串中可以出现两类宏函数。EXPAND 把紧凑的节点区间表达式替换为按声明
// 顺序排列的名称列表；DUPLICATE 把一条记录复制为多条，每个列出的值对应
// 一条克隆。处理结果是完全展开、去空值后的记录列表，可直接交给配置加载器。
//
// # 语义说明
//
//  1. 仅做字符串层面的替换，不做 I/O，也不校验展开后的值
//  2. 区间语法本身由外部实现（见 [Expander]），本包只消费其契约
//  3. EXPAND 结果保序且保留重复值（没有集合语义）
//  4. 同一记录上基数不同的多个 DUPLICATE 通过广播保持克隆同步：
//     较小组的最后一个值会被复制进它自己没有派生出的克隆
//
// # 宏语法
//
//   - 裸宏：$NAME，以空白、'$' 或行尾结束
//   - 宏函数：$NAME(ARGS)$，ARGS 内允许任意嵌套括号，但顶层只允许一组；
//     宏函数必须以 '$' 结尾
//   - 本包识别 EXPAND 与 DUPLICATE，其余名字原样保留
//
// # 快速开始
//
// 展开一条记录：
//
//	eng := macroexp.New(macroexp.WithRangeExpander(nodeset))
//	records, err := eng.Process(macroexp.Record{
//	    "host_name": {"$DUPLICATE($EXPAND(node[0-2])$)$"},
//	    "use":       {"generic-host"},
//	})
//
// 语法错误以 [SyntaxError] 报告，其中携带出错的子串，详见 [Scan] 与
// [Engine.Process] 文档。
package macroexp
