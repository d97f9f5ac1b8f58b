package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/bank-ledger/internal/config"
	"github.com/carson-networks/bank-ledger/internal/logging"
)

func Execute() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logging.SetupLogging(logrus.InfoLevel).WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	logger := logging.SetupLogging(envConfig.Level())

	rootCmd := NewRootCmd(envConfig, logger)
	if err := rootCmd.Execute(); err != nil {
		logger.WithError(err).Error("bank-ledger failed")
		os.Exit(1)
	}
}

func NewRootCmd(envConfig *config.Config, logger *logrus.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bank-ledger",
		Short:         "bank-ledger is an in-memory retail bank ledger",
		Long:          `bank-ledger keeps customers, accounts and their transaction ledgers in memory and accrues daily interest.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(NewServeCmd(envConfig, logger))
	rootCmd.AddCommand(NewSimulateCmd(envConfig, logger))

	return rootCmd
}
