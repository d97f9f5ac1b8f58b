package ledger

import (
	"fmt"
	"strings"
)

// AccountType selects the interest policy of an account.
type AccountType int8

const (
	AccountTypeChecking AccountType = iota
	AccountTypeSavings
	AccountTypeMaxiSavings
)

var accountTypeNames = map[AccountType]string{
	AccountTypeChecking:    "Checking Account",
	AccountTypeSavings:     "Savings Account",
	AccountTypeMaxiSavings: "Maxi Savings Account",
}

// Valid reports whether t is one of the three recognised account types.
func (t AccountType) Valid() bool {
	_, ok := accountTypeNames[t]
	return ok
}

func (t AccountType) String() string {
	if name, ok := accountTypeNames[t]; ok {
		return name
	}
	return "Account type not recognized"
}

// ParseAccountType accepts "checking", "savings" and "maxi-savings" (also "maxisavings", "maxi_savings"), any case.
func ParseAccountType(s string) (AccountType, error) {
	switch strings.ReplaceAll(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-"), "-", "") {
	case "checking":
		return AccountTypeChecking, nil
	case "savings":
		return AccountTypeSavings, nil
	case "maxisavings":
		return AccountTypeMaxiSavings, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAccountType, s)
	}
}
