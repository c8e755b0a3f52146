// Package check 提供记录文件校验命令。
package check

import (
	"github.com/urfave/cli/v3"
)

// Command 校验命令
var Command = &cli.Command{
	Name:      "check",
	Usage:     "校验记录文件的宏语法",
	ArgsUsage: "<file>...",
	Action:    action,
}
