package account

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUnrestricted, "unrestricted"},
		{KindChecking, "checking"},
		{Kind(7), "Kind(7)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewCheckingAccount_DefaultOverdraft(t *testing.T) {
	acc := NewCheckingAccount("Alice", d("100"))

	overdraft, ok := acc.AgreedOverdraft()
	if !ok {
		t.Fatal("AgreedOverdraft() ok = false for checking account")
	}
	if !overdraft.Equal(d("-1000")) {
		t.Errorf("AgreedOverdraft() = %s, want -1000", overdraft)
	}
	if acc.Kind() != KindChecking {
		t.Errorf("Kind() = %v, want %v", acc.Kind(), KindChecking)
	}
	if acc.Owner() != "Alice" {
		t.Errorf("Owner() = %q, want %q", acc.Owner(), "Alice")
	}
}

func TestNewAccount_NoOverdraft(t *testing.T) {
	acc := NewAccount("Carol", d("5"))

	if _, ok := acc.AgreedOverdraft(); ok {
		t.Error("AgreedOverdraft() ok = true for unrestricted account")
	}
	if acc.ID() == NewAccount("Carol", d("5")).ID() {
		t.Error("accounts should get distinct IDs")
	}
}

func TestAccount_DepositAdditive(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		a, b    string
	}{
		{"positive", "100", "25.5", "74.5"},
		{"negative deposit", "0", "-10", "3"},
		{"zero", "-40", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split := NewCheckingAccount("A", d(tt.balance))
			split.Deposit(d(tt.a))
			split.Deposit(d(tt.b))

			whole := NewAccount("A", d(tt.balance))
			whole.Deposit(d(tt.a).Add(d(tt.b)))

			if !split.Balance().Equal(whole.Balance()) {
				t.Errorf("deposit(a)+deposit(b) = %s, deposit(a+b) = %s", split.Balance(), whole.Balance())
			}
		})
	}
}

func TestAccount_WithdrawUnrestricted(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		amount  string
		want    string
	}{
		{"within balance", "100", "30", "70"},
		{"overdrawn", "0", "1000", "-1000"},
		{"far overdrawn", "-5000", "1000000", "-1005000"},
		{"negative amount", "10", "-5", "15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := NewAccount("A", d(tt.balance))
			acc.Withdraw(d(tt.amount))
			if !acc.Balance().Equal(d(tt.want)) {
				t.Errorf("Balance() = %s, want %s", acc.Balance(), tt.want)
			}
		})
	}
}

func TestAccount_WithdrawChecking(t *testing.T) {
	tests := []struct {
		name      string
		balance   string
		overdraft string
		amount    string
		want      string
	}{
		{"alice scenario", "100", "-1000", "1000", "-900"},
		{"boundary is rejected", "100", "-1000", "1100", "100"},
		{"just inside boundary", "100", "-1000", "1099.99", "-999.99"},
		{"bob scenario rejected", "0", "-500", "1000", "0"},
		{"bob within overdraft", "0", "-500", "499", "-499"},
		{"bob exactly at floor", "0", "-500", "500", "0"},
		{"already below floor", "-600", "-500", "1", "-600"},
		{"zero amount at floor", "-500", "-500", "0", "-500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := NewCheckingAccountWithOverdraft("A", d(tt.balance), d(tt.overdraft))
			acc.Withdraw(d(tt.amount))
			if !acc.Balance().Equal(d(tt.want)) {
				t.Errorf("Balance() = %s, want %s", acc.Balance(), tt.want)
			}
		})
	}
}

func TestAccount_CopyIsIndependent(t *testing.T) {
	orig := NewCheckingAccount("Alice", d("100"))
	cp := orig

	cp.Withdraw(d("1000"))

	if !cp.Balance().Equal(d("-900")) {
		t.Errorf("copy Balance() = %s, want -900", cp.Balance())
	}
	if !orig.Balance().Equal(d("100")) {
		t.Errorf("original Balance() = %s, want 100", orig.Balance())
	}
	if cp.Kind() != KindChecking {
		t.Errorf("copy Kind() = %v, want %v", cp.Kind(), KindChecking)
	}
}

func TestAccount_Print(t *testing.T) {
	tests := []struct {
		name string
		acc  Account
		want string
	}{
		{
			name: "checking default overdraft",
			acc:  NewCheckingAccount("Alice", d("100")),
			want: "Alice\n  Balance : 100\n  Agreed overdraft: -1000\n",
		},
		{
			name: "checking custom overdraft",
			acc:  NewCheckingAccountWithOverdraft("Bob", decimal.Zero, d("-500")),
			want: "Bob\n  Balance : 0\n  Agreed overdraft: -500\n",
		},
		{
			name: "unrestricted",
			acc:  NewAccount("Carol", d("-12.5")),
			want: "Carol\n  Balance : -12.5\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.acc.Print(&buf)
			if got := buf.String(); got != tt.want {
				t.Errorf("Print() = %q, want %q", got, tt.want)
			}
		})
	}
}
