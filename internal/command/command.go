// Package command 提供展开和校验记录文件的命令行功能。
package command

import "github.com/lwmacct/260830-go-pkg-macroexp/internal/config"

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()
