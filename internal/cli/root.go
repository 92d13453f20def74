package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"verify_gateway/internal/application"
	"verify_gateway/pkg/logx"
)

const flagLogLevel = "log-level"

// Задаётся через -ldflags при сборке.
var version = "dev" //nolint:gochecknoglobals

// NewRootCommand без подкоманды запускает сервер, как и serve.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "verify-gateway",
		Short:         "SMS verification gateway with a static pricing feed",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	rootCmd.PersistentFlags().String(flagLogLevel, os.Getenv("LOG_LEVEL"), "log level: debug, info, warn or error")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP gateway",
			Args:  cobra.NoArgs,
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "update-prices",
			Short: "Publish the current prices to PRICES_FILE and exit",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return application.UpdatePrices(cmd.Context(), newLogger(cmd))
			},
		},
	)

	return rootCmd
}

// Execute выполняет команду и логирует ошибку. Вызывающий решает про код выхода.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCommand()

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err != nil {
		newLogger(cmd).Error("command failed", slog.String("command", cmd.CommandPath()), logx.Error(err))
	}

	return err
}

func runServe(cmd *cobra.Command, _ []string) error {
	return application.Run(cmd.Context(), newLogger(cmd))
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString(flagLogLevel) //nolint:errcheck

	log := logx.NewLogger(cmd.ErrOrStderr(), level, false)
	slog.SetDefault(log)

	return log
}
