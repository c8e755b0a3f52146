package expand

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/260830-go-pkg-macroexp/pkg/recload"
)

func action(_ context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return errors.New("missing record file argument")
	}

	opts := []recload.Option{
		recload.WithSeparator(cmd.String("separator")),
	}
	if cmd.Bool("raw") {
		opts = append(opts, recload.WithoutExpansion())
	}

	records, err := recload.LoadFile(path, opts...)
	if err != nil {
		return err
	}
	slog.Info("Expanded record file", "path", path, "records", len(records))

	out, err := marshalRecords(records, cmd.String("output"))
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)

	return err
}

func marshalRecords(records any, format string) ([]byte, error) {
	switch format {
	case "yaml":
		return yamlv3.Marshal(records)
	case "json":
		out, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return nil, err
		}

		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
