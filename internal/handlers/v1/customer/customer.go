package customer

import (
	"github.com/carson-networks/bank-ledger/internal/handlers/v1/account"
	"github.com/carson-networks/bank-ledger/internal/service"
)

// Customer is the API response model for a customer.
type Customer struct {
	ID       string            `json:"id" doc:"Customer UUID"`
	FullName string            `json:"fullName" doc:"Customer full name"`
	Accounts []account.Account `json:"accounts" doc:"Accounts in opening order"`
}

// AccountOpening is one account to open.
type AccountOpening struct {
	Type   string `json:"type" minLength:"1" doc:"checking, savings or maxi-savings"`
	Locale string `json:"locale,omitempty" doc:"BCP 47 locale selecting the currency, e.g. en-US. Defaults to the bank locale"`
}

func fromService(c service.Customer) Customer {
	out := Customer{
		ID:       c.ID.String(),
		FullName: c.FullName,
		Accounts: make([]account.Account, len(c.Accounts)),
	}
	for i, a := range c.Accounts {
		out.Accounts[i] = account.FromService(a)
	}
	return out
}
