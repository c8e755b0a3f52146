package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260830-go-pkg-macroexp/internal/command/check"
	"github.com/lwmacct/260830-go-pkg-macroexp/internal/command/expand"
)

func main() {
	app := &cli.Command{
		Name:    "macroexp",
		Usage:   "配置记录宏展开工具",
		Version: "0.1.0",
		Commands: []*cli.Command{
			expand.Command,
			check.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
