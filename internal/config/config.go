// Package config 提供命令行工具的配置管理。
//
// 默认值是唯一来源，internal/command/command.go 中的 Defaults 变量
// 引用 DefaultConfig() 以保证 flag 默认值一致。
package config

// Config 工具配置。
type Config struct {
	Expand ExpandConfig `json:"expand" desc:"展开配置"`
}

// ExpandConfig 宏展开配置。
type ExpandConfig struct {
	Separator string `json:"separator" desc:"EXPAND 结果的连接分隔符"`
	Output    string `json:"output" desc:"输出格式 (yaml|json)"`
}

// DefaultConfig 返回默认配置。
func DefaultConfig() Config {
	return Config{
		Expand: ExpandConfig{
			Separator: ",",
			Output:    "yaml",
		},
	}
}
