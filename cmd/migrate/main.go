// Command migrate applies migrations/ with the atlas CLI. The directory checksum
// (migrations/atlas.sum) must be refreshed with `atlas migrate hash` after edits.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"rental-backoffice/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dir := flag.String("dir", "file://migrations", "migration directory URL")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		slog.Error("failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: *dir,
		DryRun: *dryRun,
	})
	if err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	for _, f := range res.Applied {
		slog.Info("applied migration", "version", f.Version, "description", f.Description)
	}
	slog.Info("database is up to date", "current", res.Current, "target", res.Target, "dry_run", *dryRun)
}
