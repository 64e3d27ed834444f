package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/urfave/cli/v3"

	"github.com/geoapis/go-isogeo/pkg/config"
	"github.com/geoapis/go-isogeo/pkg/store"
)

// ExportCommand creates the export command
func ExportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the local snapshot as JSON lines, one record per line",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "output",
				Usage: "Output file (a .zst suffix enables zstd compression), stdout by default",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return exportSnapshot(c.String("config"), c.String("output"))
		},
	}
}

func exportSnapshot(configPath, output string) error {
	// exporting only needs the storage location, no credentials
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	dbPath, err := snapshotPath(cfg)
	if err != nil {
		return err
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening snapshot database: %w", err)
	}
	defer func() { _ = db.Close() }()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", output, err)
		}
		defer func() { _ = f.Close() }()
		w = f

		if strings.HasSuffix(output, ".zst") {
			zw, err := zstd.NewWriter(f)
			if err != nil {
				return fmt.Errorf("creating zstd writer: %w", err)
			}
			defer func() { _ = zw.Close() }()
			w = zw
		}
	}

	enc := json.NewEncoder(w)
	count := 0
	err = db.Each(func(rec store.Record) error {
		count++
		return enc.Encode(rec.Raw)
	})
	if err != nil {
		return fmt.Errorf("exporting records: %w", err)
	}

	if output != "" {
		fmt.Printf("Exported %d record(s) to %s\n", count, output)
	}
	return nil
}
