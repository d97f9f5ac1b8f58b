package account

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-ledger/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	ID             int64  `json:"id" doc:"Account number"`
	Type           string `json:"type" doc:"Account type name"`
	Currency       string `json:"currency" doc:"ISO 4217 currency code"`
	Symbol         string `json:"symbol" doc:"Currency symbol"`
	Balance        string `json:"balance" doc:"Decimal balance, the sum of the ledger"`
	InterestEarned string `json:"interestEarned" doc:"Decimal interest accrued so far"`
	CreatedAt      string `json:"createdAt" doc:"RFC3339 opening time"`
}

// Transaction is the API response model for a ledger entry.
type Transaction struct {
	ID        string `json:"id" doc:"Transaction UUID"`
	AccountID int64  `json:"accountID" doc:"Account number"`
	Kind      string `json:"kind" doc:"deposit or withdrawal"`
	Amount    string `json:"amount" doc:"Decimal amount, always positive"`
	Timestamp string `json:"timestamp" doc:"RFC3339 time the entry was recorded"`
}

// FromService converts a service account to its API model.
func FromService(a service.Account) Account {
	return Account{
		ID:             a.ID,
		Type:           a.Type.String(),
		Currency:       a.CurrencyCode,
		Symbol:         a.CurrencySymbol,
		Balance:        a.Balance.String(),
		InterestEarned: a.InterestEarned.String(),
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
	}
}

func transactionFromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:        tx.ID.String(),
		AccountID: tx.AccountID,
		Kind:      tx.Kind.String(),
		Amount:    tx.Amount.String(),
		Timestamp: tx.Timestamp.Format(time.RFC3339),
	}
}

// ParseAmount parses a decimal request amount. Sign checks are left to the ledger.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	return amount, nil
}
