package main

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/eduplay/platform-api/internal/infrastructure/config"
	mongostore "github.com/eduplay/platform-api/internal/infrastructure/db/mongo"
)

// NewEnsureIndexesCmd creates the ensure-indexes subcommand.
func NewEnsureIndexesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ensure-indexes",
		Short: "Create MongoDB indexes and exit",
		Long: `Create the unique userName, email and gametitle indexes and the
auth event lookup index. Existing indexes are left untouched.`,
		RunE: runEnsureIndexes,
	}
}

func runEnsureIndexes(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return oops.Code("CONFIG_INVALID").Wrap(err)
	}

	cmd.Println("Connecting to MongoDB...")
	client, db, err := connectMongo(ctx, cfg, zerolog.New(cmd.ErrOrStderr()))
	if err != nil {
		return oops.Code("DB_CONNECT_FAILED").With("operation", "connect to database").Wrap(err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	cmd.Println("Creating indexes...")
	if err := mongostore.EnsureIndexes(ctx, db); err != nil {
		return oops.Code("INDEXES_FAILED").With("operation", "ensure indexes").Wrap(err)
	}

	cmd.Println("Indexes are up to date")
	return nil
}
