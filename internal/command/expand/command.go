// Package expand 提供记录文件展开命令。
package expand

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260830-go-pkg-macroexp/internal/command"
)

// Command 展开命令
var Command = &cli.Command{
	Name:      "expand",
	Usage:     "展开记录文件中的 EXPAND / DUPLICATE 宏",
	ArgsUsage: "<file>",
	Action:    action,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "separator",
			Aliases: []string{"s"},
			Value:   command.Defaults.Expand.Separator,
			Usage:   "EXPAND 结果的连接分隔符",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Value:   command.Defaults.Expand.Output,
			Usage:   "输出格式 (yaml|json)",
		},
		&cli.BoolFlag{
			Name:  "raw",
			Usage: "跳过宏展开，输出文件中的原始记录",
		},
	},
}
