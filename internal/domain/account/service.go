package account

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"accountdemo/internal/shared/telemetry"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instruments are the metrics a Service records. They are created from the
// global meter provider when the service is built.
type instruments struct {
	lookupTotal      metric.Int64Counter
	withdrawalTotal  metric.Int64Counter
	withdrawalAmount metric.Float64Histogram
}

func newInstruments(meter metric.Meter) (instruments, error) {
	var inst instruments
	var errs [3]error
	inst.lookupTotal, errs[0] = meter.Int64Counter("account.lookup.total",
		metric.WithDescription("Account lookups by owner, by outcome"))
	inst.withdrawalTotal, errs[1] = meter.Int64Counter("account.withdrawal.total",
		metric.WithDescription("Wrapper withdrawals by outcome"))
	inst.withdrawalAmount, errs[2] = meter.Float64Histogram("account.withdrawal.amount",
		metric.WithDescription("Requested withdrawal amounts"))
	return inst, errors.Join(errs[:]...)
}

// Service contains the helper operations the showcase runs over a collection of accounts
type Service struct {
	repo   Repository
	out    io.Writer
	diag   *log.Logger
	tracer trace.Tracer
	inst   instruments
}

// NewService creates a new account service.
// out receives the human-readable reports, diag the lookup diagnostics.
// A nil out defaults to stdout and a nil diag to a bare stderr logger.
func NewService(repo Repository, out io.Writer, diag *log.Logger) *Service {
	if out == nil {
		out = os.Stdout
	}
	if diag == nil {
		diag = log.New(os.Stderr, "", 0)
	}
	inst, err := newInstruments(telemetry.Meter("account"))
	if err != nil {
		// The API hands back usable no-op instruments alongside the error.
		log.Printf("account metrics unavailable: %v", err)
	}
	return &Service{
		repo:   repo,
		out:    out,
		diag:   diag,
		tracer: telemetry.Tracer("account"),
		inst:   inst,
	}
}

// PrintAccounts prints every account in collection order.
func PrintAccounts(w io.Writer, accounts []Account) {
	for i := range accounts {
		accounts[i].Print(w)
	}
}

// PrintAccounts prints all stored accounts to the service's output.
func (s *Service) PrintAccounts(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "account.PrintAccounts")
	defer span.End()

	accounts, err := s.repo.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetAttributes(attribute.Int("account.count", len(accounts)))

	PrintAccounts(s.out, accounts)
	return nil
}

// FindAccount returns the ID of the first account owned by owner.
// When none matches it writes "Could not find <owner>'s account!" to the
// diagnostic logger and returns false; callers must check before using the ID.
// Any other repository failure is also reported as absent, with the cause
// logged instead of the not-found message.
func (s *Service) FindAccount(ctx context.Context, owner string) (uuid.UUID, bool) {
	ctx, span := s.tracer.Start(ctx, "account.FindAccount")
	defer span.End()

	acc, err := s.repo.FindByOwner(ctx, owner)
	switch {
	case errors.Is(err, ErrAccountNotFound):
		s.inst.lookupTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "missing")))
		s.diag.Printf("Could not find %s's account!", owner)
		return uuid.Nil, false
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.inst.lookupTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "error")))
		s.diag.Printf("Lookup of %s's account failed: %v", owner, err)
		return uuid.Nil, false
	}

	s.inst.lookupTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "found")))
	return acc.ID(), true
}

// Withdraw reports the balance before and after withdrawing amount from a
// copy of the account. The stored account is not modified.
func (s *Service) Withdraw(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	ctx, span := s.tracer.Start(ctx, "account.Withdraw")
	defer span.End()

	acc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("withdraw: %w", err)
	}

	fmt.Fprintf(s.out, "Withdraw %s from %s's account...\n", amount, acc.Owner())
	fmt.Fprintf(s.out, "  Balance before: %s\n", acc.Balance())

	outcome := "rejected"
	if acc.canWithdraw(amount) {
		outcome = "applied"
	}

	acc.Withdraw(amount)

	fmt.Fprintf(s.out, "  Balance after: %s\n", acc.Balance())

	attrs := metric.WithAttributes(
		attribute.String("account.kind", acc.Kind().String()),
		attribute.String("outcome", outcome),
	)
	s.inst.withdrawalTotal.Add(ctx, 1, attrs)
	s.inst.withdrawalAmount.Record(ctx, amount.InexactFloat64(), attrs)
	span.SetAttributes(attribute.String("outcome", outcome))
	return nil
}
