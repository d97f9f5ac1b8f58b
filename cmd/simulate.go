package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize/english"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/bank-ledger/internal/config"
	"github.com/carson-networks/bank-ledger/internal/ledger"
	"github.com/carson-networks/bank-ledger/internal/operator"
	"github.com/carson-networks/bank-ledger/internal/service"
)

type simulateOptions struct {
	name        string
	accountType string
	locale      string
	deposit     string
	withdraw    string
	withdrawDay int
	days        int
	dump        bool
}

// stepClock is a Clock that only moves when the simulation advances it.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	return c.now
}

func NewSimulateCmd(envConfig *config.Config, logger *logrus.Logger) *cobra.Command {
	opts := simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Open one account and accrue interest day by day",
		Long: `simulate opens a single account, deposits into it, optionally withdraws on a given day
and accrues one day of interest per simulated day. It prints the statements and interest totals.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return simulate(cmd.Context(), cmd.OutOrStdout(), envConfig, logger, opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "John", "customer full name")
	cmd.Flags().StringVar(&opts.accountType, "type", "checking", "account type: checking, savings or maxi-savings")
	cmd.Flags().StringVar(&opts.locale, "locale", envConfig.DefaultLocale, "locale selecting the account currency")
	cmd.Flags().StringVar(&opts.deposit, "deposit", "1000", "amount deposited on day 0")
	cmd.Flags().StringVar(&opts.withdraw, "withdraw", "0", "amount withdrawn on --withdraw-day, 0 for none")
	cmd.Flags().IntVar(&opts.withdrawDay, "withdraw-day", 1, "day of the withdrawal")
	cmd.Flags().IntVar(&opts.days, "days", 30, "number of days to accrue")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "dump the last accrual result")

	return cmd
}

func simulate(ctx context.Context, out io.Writer, envConfig *config.Config, logger *logrus.Logger, opts simulateOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	accountType, err := ledger.ParseAccountType(opts.accountType)
	if err != nil {
		return err
	}
	deposit, err := decimal.NewFromString(opts.deposit)
	if err != nil {
		return fmt.Errorf("--deposit: %w", err)
	}
	withdraw, err := decimal.NewFromString(opts.withdraw)
	if err != nil {
		return fmt.Errorf("--withdraw: %w", err)
	}
	if opts.days < 0 {
		return fmt.Errorf("--days: must not be negative")
	}

	clock := &stepClock{now: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)}
	bank := ledger.NewBank(envConfig.BankName)
	delegator := operator.NewOperatorDelegator(bank, 1)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(bank, ledger.NewOpener(ledger.NewSequence(), clock), delegator, envConfig.DefaultLocale)

	c, err := svc.Customer.CreateCustomer(ctx, opts.name, []service.AccountOpening{{Type: accountType, Locale: opts.locale}})
	if err != nil {
		return err
	}
	accountID := c.Accounts[0].ID

	if _, err = svc.Account.Deposit(ctx, accountID, deposit); err != nil {
		return err
	}

	var last ledger.AccrualResult
	for day := 1; day <= opts.days; day++ {
		clock.now = clock.now.Add(24 * time.Hour)

		if day == opts.withdrawDay && withdraw.IsPositive() {
			if _, err = svc.Account.Withdraw(ctx, accountID, withdraw); err != nil {
				return fmt.Errorf("day %d: %w", day, err)
			}
		}

		if last, err = svc.Bank.AccrueInterest(ctx); err != nil {
			return fmt.Errorf("day %d: %w", day, err)
		}
	}

	logger.WithFields(logrus.Fields{
		"days":      opts.days,
		"accountID": accountID,
	}).Debug("simulate.complete")

	statement, err := svc.Customer.Statement(ctx, c.ID)
	if err != nil {
		return err
	}
	info, err := svc.Account.Info(ctx, accountID)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Simulated %s\n\n", english.Plural(opts.days, "day", "days"))
	fmt.Fprintln(out, info.String())
	fmt.Fprintln(out, statement)
	fmt.Fprintln(out, svc.Bank.InterestReport(ctx))
	fmt.Fprintln(out, svc.Bank.Summary(ctx))

	if opts.dump {
		spew.Fdump(out, last)
	}

	return nil
}
