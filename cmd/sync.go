package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v3"

	"github.com/geoapis/go-isogeo/pkg/isogeo"
	"github.com/geoapis/go-isogeo/pkg/log"
	"github.com/geoapis/go-isogeo/pkg/store"
)

// SyncCommand creates the sync command
func SyncCommand() *cli.Command {
	return &cli.Command{
		Name:  "sync",
		Usage: "Mirror the accessible records into the local snapshot database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "query",
				Usage: "Only mirror the records matching this search",
			},
			&cli.StringFlag{
				Name:  "group",
				Usage: "Only mirror the records of this workgroup UUID",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "Keep running and re-sync when the config file changes",
			},
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "Re-sync period while watching",
				Value: time.Hour,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Bool("watch") {
				return watchAndSync(ctx, c)
			}
			return syncOnce(ctx, c)
		},
	}
}

func syncOnce(ctx context.Context, c *cli.Command) error {
	l := log.For("sync")

	cfg, profile, err := loadProfile(c.String("config"), c.String("profile"))
	if err != nil {
		return err
	}
	client, err := newAPIClient(ctx, profile)
	if err != nil {
		return err
	}

	dbPath, err := snapshotPath(cfg)
	if err != nil {
		return err
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening snapshot database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			l.Warnf("closing snapshot database: %v", err)
		}
	}()

	start := time.Now()
	search, err := client.Search.Search(ctx, isogeo.SearchOptions{
		Query:        c.String("query"),
		Group:        c.String("group"),
		Include:      []string{"keywords", "contacts", "events"},
		WholeResults: true,
	})
	if err != nil {
		return fmt.Errorf("fetching records: %w", err)
	}
	l.Debugf("fetched %d records in %s", len(search.Results), time.Since(start).Round(time.Millisecond))

	if err := db.SaveRecords(search.Results); err != nil {
		return fmt.Errorf("saving records: %w", err)
	}
	if err := db.SetLastSync(time.Now()); err != nil {
		return fmt.Errorf("recording sync time: %w", err)
	}
	if err := db.Optimize(); err != nil {
		l.Warnf("optimizing snapshot database: %v", err)
	}

	fmt.Printf("Synced %d record(s) to %s\n", len(search.Results), dbPath)
	return nil
}

// watchAndSync re-syncs on a timer and whenever the config file changes,
// so credential or profile edits are picked up without a restart.
func watchAndSync(ctx context.Context, c *cli.Command) error {
	l := log.For("sync")
	configPath := c.String("config")

	if err := syncOnce(ctx, c); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating config file watcher: %w", err)
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			l.Warnf("closing config file watcher: %v", err)
		}
	}()

	if err := watcher.Add(configPath); err != nil {
		return fmt.Errorf("watching config file %s: %w", configPath, err)
	}
	l.Infof("watching config file for changes: %s", configPath)

	ticker := time.NewTicker(c.Duration("interval"))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			l.Infof("config file changed, re-syncing")
			if err := syncOnce(ctx, c); err != nil {
				l.Errorf("sync failed: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			l.Warnf("config file watcher: %v", err)
		case <-ticker.C:
			if err := syncOnce(ctx, c); err != nil {
				l.Errorf("sync failed: %v", err)
			}
		}
	}
}
