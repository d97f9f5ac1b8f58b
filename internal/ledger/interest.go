package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate tables. Rates are annual; one accrual adds rate/365 of the balance.
var (
	daysPerYear = decimal.NewFromInt(365)

	checkingRate = decimal.RequireFromString("0.001")

	savingsTierLimit = decimal.NewFromInt(1000)
	savingsBaseRate  = decimal.RequireFromString("0.001")
	// Flat daily amount paid on the first tier once the balance is above the limit.
	savingsTierDailyFlat = decimal.NewFromInt(1).Div(daysPerYear)
	savingsUpperRate     = decimal.RequireFromString("0.002")

	maxiSavingsRate        = decimal.RequireFromString("0.05")
	maxiSavingsPenaltyRate = decimal.RequireFromString("0.001")
)

// A withdrawal younger than this many days puts a maxi savings account on the penalty rate.
const maxiSavingsPenaltyDays = 10

type accrualInput struct {
	Balance        decimal.Decimal
	LastWithdrawal *Transaction
	Now            time.Time
}

type accrualPolicy func(in accrualInput) decimal.Decimal

var accrualPolicies = map[AccountType]accrualPolicy{
	AccountTypeChecking:    checkingInterest,
	AccountTypeSavings:     savingsInterest,
	AccountTypeMaxiSavings: maxiSavingsInterest,
}

func dailyInterest(amount, annualRate decimal.Decimal) decimal.Decimal {
	return amount.Mul(annualRate).Div(daysPerYear)
}

func checkingInterest(in accrualInput) decimal.Decimal {
	return dailyInterest(in.Balance, checkingRate)
}

func savingsInterest(in accrualInput) decimal.Decimal {
	if in.Balance.LessThanOrEqual(savingsTierLimit) {
		return dailyInterest(in.Balance, savingsBaseRate)
	}
	return savingsTierDailyFlat.Add(dailyInterest(in.Balance.Sub(savingsTierLimit), savingsUpperRate))
}

func maxiSavingsInterest(in accrualInput) decimal.Decimal {
	if in.LastWithdrawal == nil || in.LastWithdrawal.IsOlderThan(maxiSavingsPenaltyDays, in.Now) {
		return dailyInterest(in.Balance, maxiSavingsRate)
	}
	return dailyInterest(in.Balance, maxiSavingsPenaltyRate)
}
