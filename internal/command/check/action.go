package check

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260830-go-pkg-macroexp/pkg/macroexp"
	"github.com/lwmacct/260830-go-pkg-macroexp/pkg/recload"
)

func action(_ context.Context, cmd *cli.Command) error {
	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return errors.New("missing record file argument")
	}

	failed := 0
	for _, path := range paths {
		records, err := recload.LoadFile(path)
		if err != nil {
			failed++

			var synErr *macroexp.SyntaxError
			if errors.As(err, &synErr) {
				slog.Error("Macro syntax error", "path", path, "error", synErr)

				continue
			}
			slog.Error("Record file rejected", "path", path, "error", err)

			continue
		}
		slog.Info("Record file is valid", "path", path, "records", len(records))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d record file(s) failed validation", failed, len(paths))
	}

	return nil
}
