package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/geoapis/go-isogeo/pkg/config"
	"github.com/geoapis/go-isogeo/pkg/store"
)

// OfflineCommand creates the offline command
func OfflineCommand() *cli.Command {
	return &cli.Command{
		Name:  "offline",
		Usage: "Search the local snapshot without network access",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "query",
				Usage: "Full-text query over titles, abstracts and keywords",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of results",
				Value: 20,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return offlineSearch(c.String("config"), c.String("query"), c.Int("limit"))
		},
		Commands: []*cli.Command{
			{
				Name:  "stats",
				Usage: "Show snapshot size and freshness",
				Action: func(ctx context.Context, c *cli.Command) error {
					return offlineStats(c.String("config"))
				},
			},
		},
	}
}

func openSnapshot(configPath string) (*store.Store, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	dbPath, err := snapshotPath(cfg)
	if err != nil {
		return nil, err
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot database: %w", err)
	}
	return db, nil
}

func offlineSearch(configPath, query string, limit int) error {
	db, err := openSnapshot(configPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	records, err := db.Search(query, limit)
	if err != nil {
		return fmt.Errorf("searching snapshot: %w", err)
	}

	for _, rec := range records {
		fmt.Println(titleStyle.Render(rec.Title))
		line := []string{typeCaser.String(strings.ReplaceAll(rec.Type, "-", " "))}
		if rec.Modified != "" {
			line = append(line, "modified "+rec.Modified)
		}
		line = append(line, rec.ID)
		fmt.Println(metaStyle.Render("  " + strings.Join(line, " | ")))
	}
	fmt.Println(summaryStyle.Render(fmt.Sprintf("%d record(s)", len(records))))
	return nil
}

func offlineStats(configPath string) error {
	db, err := openSnapshot(configPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	count, err := db.Count()
	if err != nil {
		return err
	}
	lastSync, err := db.LastSync()
	if err != nil {
		return err
	}

	fmt.Printf("records:   %d\n", count)
	if lastSync.IsZero() {
		fmt.Println("last sync: never (run 'isogeo sync')")
	} else {
		fmt.Printf("last sync: %s (%s ago)\n",
			lastSync.Format(time.RFC3339), time.Since(lastSync).Round(time.Minute))
	}
	return nil
}
