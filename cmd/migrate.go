package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"adpilot/internal/config"
	"adpilot/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	RunE:  runMigrate,
}

func runMigrate(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
		return err
	}
	fmt.Println("Migrations completed successfully")
	return nil
}
