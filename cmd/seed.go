package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"adpilot/internal/db"
)

var seedExternalID string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo campaigns and URL inventory",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedExternalID, "external-id", "", "platform campaign id to link to the first demo campaign")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	if err = db.Seed(cmd.Context(), a.pool, seedExternalID); err != nil {
		return err
	}
	fmt.Println("Seed data inserted")
	return nil
}
