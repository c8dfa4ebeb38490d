package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository defines the interface for account data access
// This interface is defined in the domain layer, but implemented in the infrastructure layer
type Repository interface {
	// Add appends an account to the collection. Owners need not be unique.
	Add(ctx context.Context, acc Account) error

	// List returns copies of all accounts in collection order
	List(ctx context.Context) ([]Account, error)

	// GetByID returns a copy of the account with the given ID
	GetByID(ctx context.Context, id uuid.UUID) (Account, error)

	// FindByOwner returns a copy of the first account whose owner matches exactly
	FindByOwner(ctx context.Context, owner string) (Account, error)

	// Deposit applies Account.Deposit to the stored account
	Deposit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (Account, error)

	// Withdraw applies Account.Withdraw to the stored account
	Withdraw(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (Account, error)
}
