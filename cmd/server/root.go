package main

import (
	"github.com/joho/godotenv"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command of the platform API binary.
func NewRootCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "platform-api",
		Short: "Eduplay platform API",
		Long: `Eduplay platform API serves user registration, sessions and
physical game registration over HTTP. Configuration is read from the
environment, optionally seeded from a dotenv file with --env-file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if envFile == "" {
				return nil
			}
			// Variables already set in the environment take precedence.
			if err := godotenv.Load(envFile); err != nil {
				return oops.Code("ENV_FILE_INVALID").With("path", envFile).Wrap(err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", "", "load environment variables from this dotenv file")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewEnsureIndexesCmd())

	return cmd
}
