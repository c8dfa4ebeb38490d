package memory

import (
	"context"
	"fmt"

	"accountdemo/internal/domain/account"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var _ account.Repository = (*AccountRepository)(nil)

// AccountRepository implements the account.Repository interface as an
// ordered in-memory arena. Accounts are addressed by ID and handed out as copies.
// It is not safe for concurrent use.
type AccountRepository struct {
	accounts []account.Account
	index    map[uuid.UUID]int
}

// NewAccountRepository creates an empty in-memory account repository
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{index: make(map[uuid.UUID]int)}
}

// LoadAccounts returns a repository holding the mock accounts the showcase
// runs against, in order: Alice and Bob.
func LoadAccounts() *AccountRepository {
	r := NewAccountRepository()
	r.insert(account.NewCheckingAccount("Alice", decimal.NewFromInt(100)))
	r.insert(account.NewCheckingAccountWithOverdraft("Bob", decimal.Zero, decimal.NewFromInt(-500)))
	return r
}

func (r *AccountRepository) insert(acc account.Account) {
	r.index[acc.ID()] = len(r.accounts)
	r.accounts = append(r.accounts, acc)
}

// Add appends an account to the end of the collection
func (r *AccountRepository) Add(ctx context.Context, acc account.Account) error {
	if _, ok := r.index[acc.ID()]; ok {
		return fmt.Errorf("failed to add account %s: duplicate id", acc.ID())
	}
	r.insert(acc)
	return nil
}

// List returns copies of all accounts in insertion order
func (r *AccountRepository) List(ctx context.Context) ([]account.Account, error) {
	out := make([]account.Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}

// GetByID retrieves a copy of an account by its ID
func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (account.Account, error) {
	i, ok := r.index[id]
	if !ok {
		return account.Account{}, account.ErrAccountNotFound
	}
	return r.accounts[i], nil
}

// FindByOwner retrieves a copy of the first account whose owner matches exactly
func (r *AccountRepository) FindByOwner(ctx context.Context, owner string) (account.Account, error) {
	for i := range r.accounts {
		if r.accounts[i].Owner() == owner {
			return r.accounts[i], nil
		}
	}
	return account.Account{}, account.ErrAccountNotFound
}

// Deposit deposits into the stored account and returns its new state
func (r *AccountRepository) Deposit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (account.Account, error) {
	i, ok := r.index[id]
	if !ok {
		return account.Account{}, fmt.Errorf("failed to deposit: %w", account.ErrAccountNotFound)
	}
	r.accounts[i].Deposit(amount)
	return r.accounts[i], nil
}

// Withdraw withdraws from the stored account and returns its new state
func (r *AccountRepository) Withdraw(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (account.Account, error) {
	i, ok := r.index[id]
	if !ok {
		return account.Account{}, fmt.Errorf("failed to withdraw: %w", account.ErrAccountNotFound)
	}
	r.accounts[i].Withdraw(amount)
	return r.accounts[i], nil
}
