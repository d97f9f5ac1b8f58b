package ledger

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by this package matches exactly one of them with errors.Is.
var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrNotFound             = errors.New("not found")
)

var (
	ErrNonPositiveAmount  = fmt.Errorf("%w: amount must be greater than zero", ErrInvalidArgument)
	ErrUnknownAccountType = fmt.Errorf("%w: account type not allowed", ErrInvalidArgument)
	ErrUnknownLocale      = fmt.Errorf("%w: locale has no currency", ErrInvalidArgument)
	ErrNoAccounts         = fmt.Errorf("%w: customer needs at least one account", ErrInvalidArgument)
	ErrNilAccount         = fmt.Errorf("%w: account is nil", ErrInvalidArgument)
	ErrNilCustomer        = fmt.Errorf("%w: customer is nil", ErrInvalidArgument)

	ErrInsufficientFunds = fmt.Errorf("%w: withdrawal amount is greater than the account balance", ErrUnsupportedOperation)
	ErrSameAccount       = fmt.Errorf("%w: sender account must be different than destination account", ErrUnsupportedOperation)

	ErrAccountNotFound  = fmt.Errorf("account %w", ErrNotFound)
	ErrCustomerNotFound = fmt.Errorf("customer %w", ErrNotFound)
)
