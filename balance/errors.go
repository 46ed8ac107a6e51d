package balance

import "errors"

// Sentinel errors for balance propagation.
var (
	// ErrDebitExceedsCapacity indicates a parent's negative balance (debit)
	// could not be fully covered by its children's combined mergeable
	// capacity.
	ErrDebitExceedsCapacity = errors.New("balance: children cannot cover parent's debit")

	// ErrCreditExceedsCapacity indicates a parent's positive balance
	// (credit) could not be fully absorbed by its children's combined
	// cloneable capacity.
	ErrCreditExceedsCapacity = errors.New("balance: children cannot absorb parent's credit")

	// ErrBalanceNotConserved indicates the sum of leaf balances did not
	// equal delta_walkers after propagation completed.
	ErrBalanceNotConserved = errors.New("balance: leaf balances do not sum to delta_walkers")
)
