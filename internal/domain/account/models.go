package account

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind tags which withdrawal rule an account follows.
type Kind int

const (
	// KindUnrestricted accounts may be overdrawn without limit.
	KindUnrestricted Kind = iota
	// KindChecking accounts reject withdrawals that would reach the agreed overdraft.
	KindChecking
)

func (k Kind) String() string {
	switch k {
	case KindUnrestricted:
		return "unrestricted"
	case KindChecking:
		return "checking"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// DefaultAgreedOverdraft is the floor given to checking accounts opened
// without an explicit overdraft.
var DefaultAgreedOverdraft = decimal.NewFromInt(-1000)

// Domain errors
var (
	ErrAccountNotFound = errors.New("account not found")
)

// Account represents a bank account owned by someone.
// It is a plain value: copying an Account copies its balance, kind and overdraft.
type Account struct {
	id              uuid.UUID
	owner           string
	balance         decimal.Decimal
	kind            Kind
	agreedOverdraft decimal.Decimal
}

// NewAccount creates a basic account without any agreed overdraft.
func NewAccount(owner string, balance decimal.Decimal) Account {
	return Account{
		id:      uuid.New(),
		owner:   owner,
		balance: balance,
		kind:    KindUnrestricted,
	}
}

// NewCheckingAccount creates a checking account with DefaultAgreedOverdraft.
func NewCheckingAccount(owner string, balance decimal.Decimal) Account {
	return NewCheckingAccountWithOverdraft(owner, balance, DefaultAgreedOverdraft)
}

// NewCheckingAccountWithOverdraft creates a checking account whose balance
// may not fall to or below agreedOverdraft.
func NewCheckingAccountWithOverdraft(owner string, balance, agreedOverdraft decimal.Decimal) Account {
	return Account{
		id:              uuid.New(),
		owner:           owner,
		balance:         balance,
		kind:            KindChecking,
		agreedOverdraft: agreedOverdraft,
	}
}

func (a Account) ID() uuid.UUID {
	return a.id
}

func (a Account) Owner() string {
	return a.owner
}

func (a Account) Balance() decimal.Decimal {
	return a.balance
}

func (a Account) Kind() Kind {
	return a.kind
}

// AgreedOverdraft returns the overdraft floor and whether the account has one.
func (a Account) AgreedOverdraft() (decimal.Decimal, bool) {
	if a.kind != KindChecking {
		return decimal.Zero, false
	}
	return a.agreedOverdraft, true
}

// Deposit adds amount to the balance. The sign of amount is not checked.
func (a *Account) Deposit(amount decimal.Decimal) {
	a.balance = a.balance.Add(amount)
}

// Withdraw subtracts amount from the balance.
// Checking accounts silently ignore the request unless
// amount + agreedOverdraft < balance.
func (a *Account) Withdraw(amount decimal.Decimal) {
	if !a.canWithdraw(amount) {
		return
	}
	a.balance = a.balance.Sub(amount)
}

// canWithdraw reports whether Withdraw would apply amount.
func (a Account) canWithdraw(amount decimal.Decimal) bool {
	if a.kind != KindChecking {
		return true
	}
	return amount.Add(a.agreedOverdraft).LessThan(a.balance)
}

// Print writes the owner and balance, followed by the agreed overdraft for
// checking accounts.
func (a Account) Print(w io.Writer) {
	fmt.Fprintf(w, "%s\n  Balance : %s\n", a.owner, a.balance)
	if overdraft, ok := a.AgreedOverdraft(); ok {
		fmt.Fprintf(w, "  Agreed overdraft: %s\n", overdraft)
	}
}
