// Package recload 提供记录文件的读取与宏展开。
//
// 记录文件是 YAML 或 JSON，根对象携带一个 records 列表；列表中每个条目
// 是属性名到字符串（或字符串列表）的映射。每条记录会经过
// [github.com/lwmacct/260830-go-pkg-macroexp/pkg/macroexp] 的流水线：
// DUPLICATE 复制、EXPAND 展开、空值清理，返回摊平后的记录列表。
//
// # 文件格式
//
//	records:
//	  - host_name: "$DUPLICATE($EXPAND(node[0-2])$)$"
//	    use: generic-host
//	  - hostgroup_name: hg_0
//	    members: "$EXPAND(node[0-2])$"
//
// # 快速开始
//
// 读取并展开一个记录文件：
//
//	records, err := recload.LoadFile("hosts.yaml",
//	    recload.WithRangeExpander(nodeset),
//	)
//
// 把展开后的记录映射到结构体：
//
//	type Host struct {
//	    HostName string `json:"host_name"`
//	    Use      string `json:"use"`
//	}
//	var host Host
//	err := recload.Decode(records[0], &host)
//
// 区间语法由注入的展开器决定，详见 [WithRangeExpander]。
package recload
