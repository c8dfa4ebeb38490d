package cli

import (
	"context"
	"log"

	"accountdemo/internal/domain/account"

	"github.com/shopspring/decimal"
)

// Showcase demonstrates the account API: withdraw from several accounts,
// handle a nonexistent owner, and print the collection before and after.
type Showcase struct {
	accounts *account.Service
	verbose  bool
}

// NewShowcase creates a showcase over the given account service.
// When verbose is set, progress is logged through the standard logger.
func NewShowcase(accounts *account.Service, verbose bool) *Showcase {
	return &Showcase{accounts: accounts, verbose: verbose}
}

// Run executes the demonstration script.
func (s *Showcase) Run(ctx context.Context) error {
	s.logf("Printing accounts")
	if err := s.accounts.PrintAccounts(ctx); err != nil {
		return err
	}

	if err := s.withdraw(ctx, "Alice", decimal.NewFromInt(1000)); err != nil {
		return err
	}
	if err := s.withdraw(ctx, "Bob", decimal.NewFromInt(1000)); err != nil {
		return err
	}
	if err := s.withdraw(ctx, "Mr. X", decimal.NewFromInt(1)); err != nil {
		return err
	}

	s.logf("Printing accounts again")
	return s.accounts.PrintAccounts(ctx)
}

// withdraw looks up owner and, only if found, runs the reporting withdrawal.
func (s *Showcase) withdraw(ctx context.Context, owner string, amount decimal.Decimal) error {
	id, ok := s.accounts.FindAccount(ctx, owner)
	if !ok {
		s.logf("Skipping withdrawal for %s", owner)
		return nil
	}
	s.logf("Withdrawing %s from account %s", amount, id)
	return s.accounts.Withdraw(ctx, id, amount)
}

func (s *Showcase) logf(format string, args ...any) {
	if s.verbose {
		log.Printf(format, args...)
	}
}
