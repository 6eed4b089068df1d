// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mbx92/entitlement-service/internal/db"
	"github.com/mbx92/entitlement-service/internal/logging"
	"github.com/mbx92/entitlement-service/internal/monitoring"
	"github.com/mbx92/entitlement-service/internal/storage"
	"github.com/mbx92/entitlement-service/internal/tracing"
	"github.com/mbx92/entitlement-service/pkg/plan"
)

// seedCmd loads the default plan catalog into the database. Existing plans
// are updated in place, keyed by slug.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the default plan catalog",
	Long:  `Insert or update the built-in plan catalog (free, starter, pro, enterprise).`,
	Run: func(cmd *cobra.Command, args []string) {
		dsn, _ := cmd.Flags().GetString("dsn")

		if err := seed(cmd, dsn); err != nil {
			cmd.PrintErr(err)
			os.Exit(1)
		}
	},
}

func init() {
	seedCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string")
	_ = seedCmd.MarkFlagRequired("dsn")

	rootCmd.AddCommand(seedCmd)
}

func seed(cmd *cobra.Command, dsn string) error {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor()

	dbClient, err := db.NewDBClient(db.Config{DSN: dsn, MaxConns: 2, MinConns: 1}, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()

	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	ctx := cmd.Context()
	for _, p := range plan.DefaultCatalog() {
		if _, err := s.UpsertPlan(ctx, p); err != nil {
			return fmt.Errorf("failed to seed plan %q: %w", p.Slug, err)
		}
		cmd.Printf("seeded plan %s\n", p.Slug)
	}

	return nil
}
