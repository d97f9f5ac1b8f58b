package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/bank-ledger/api"
	"github.com/carson-networks/bank-ledger/internal/config"
	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/operator"
	"github.com/carson-networks/bank-ledger/internal/service"
)

func NewServeCmd(envConfig *config.Config, logger *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			serve(ctx, envConfig, logger)
			return nil
		},
	}

	cmd.Flags().StringVarP(&envConfig.Port, "port", "p", envConfig.Port, "listen port")

	return cmd
}

func serve(ctx context.Context, envConfig *config.Config, logger *logrus.Logger) {
	logger.WithField("bank", envConfig.BankName).Info("bank-ledger starting")

	bank := ledger.NewBank(envConfig.BankName)
	opener := ledger.NewOpener(ledger.NewSequence(), ledger.SystemClock{})

	delegator := operator.NewOperatorDelegator(bank, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	if envConfig.AccrualEnabled {
		scheduler := operator.NewAccrualScheduler(delegator, envConfig.AccrualInterval, logger)
		go scheduler.Run(ctx)
	}

	httpRest := api.Rest{
		Logger:   logger,
		Port:     envConfig.Port,
		Service:  service.NewService(bank, opener, delegator, envConfig.DefaultLocale),
		Operator: delegator,
	}
	httpRest.Serve(ctx)
}
