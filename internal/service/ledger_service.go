package service

import (
	"context"
	"fmt"

	"offpay/internal/core/domain"
	"offpay/internal/core/ports"
	"offpay/pkg/apperror"

	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.LedgerService with pessimistic
// per-holder locking: every mutation locks the holder's account row for
// the duration of one database transaction.
type LedgerServiceImpl struct {
	accounts   ports.AccountRepository
	assets     ports.AssetRepository
	facts      ports.FactRepository
	pool       ports.CustodialPool
	transactor ports.DBTransactor
	clock      ports.Clock
	log        zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	accounts ports.AccountRepository,
	assets ports.AssetRepository,
	facts ports.FactRepository,
	pool ports.CustodialPool,
	transactor ports.DBTransactor,
	clock ports.Clock,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		accounts:   accounts,
		assets:     assets,
		facts:      facts,
		pool:       pool,
		transactor: transactor,
		clock:      clock,
		log:        log,
	}
}

// Deposit credits the holder's balance, auto-creating the account on
// first use, and optionally installs a new authorization tail. The tail
// update on deposit is not gated by max_tail_updates; only refresh_tail
// enforces that limit.
func (s *LedgerServiceImpl) Deposit(ctx context.Context, req ports.DepositRequest) (*domain.DepositReceipt, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.Holder == "" {
		return nil, apperror.Validation("holder address required")
	}
	if err := s.requireSupported(ctx, req.Asset); err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	now := s.clock.Now()

	account, err := s.accounts.GetForUpdate(ctx, dbTx, req.Holder)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if account == nil {
		account = &domain.Account{
			Address:   req.Holder,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.accounts.Create(ctx, dbTx, account); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("create account: %w", err))
		}
	}

	balance, err := s.accounts.GetBalanceForUpdate(ctx, dbTx, req.Holder, req.Asset)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock balance: %w", err))
	}

	newBalance := balance + req.Amount
	if err := s.accounts.SetBalance(ctx, dbTx, req.Holder, req.Asset, newBalance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("credit balance: %w", err))
	}

	tailUpdated := false
	if req.TailCandidate != "" && req.TailCandidate != account.Tail {
		if err := s.accounts.UpdateTail(ctx, dbTx, req.Holder, req.TailCandidate, account.TailUpdateCount+1); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("set tail: %w", err))
		}
		tailUpdated = true
	}

	if err := s.pool.FundPool(ctx, dbTx, req.Holder, req.Asset, req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("fund pool: %w", err))
	}

	if err := s.assets.AddDeposited(ctx, dbTx, req.Asset, req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("track deposit volume: %w", err))
	}

	fact := &domain.Fact{
		Kind:      domain.FactDeposit,
		Actor:     req.Holder,
		Asset:     req.Asset,
		Amount:    req.Amount,
		CreatedAt: now,
	}
	if err := s.facts.Record(ctx, dbTx, fact); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("record deposit fact: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("holder", string(req.Holder)).
		Str("asset", string(req.Asset)).
		Int64("amount", req.Amount).
		Int64("new_balance", newBalance).
		Bool("tail_updated", tailUpdated).
		Msg("deposit processed")

	return &domain.DepositReceipt{
		Holder:      req.Holder,
		Asset:       req.Asset,
		Amount:      req.Amount,
		NewBalance:  newBalance,
		TailUpdated: tailUpdated,
		ProcessedAt: now,
	}, nil
}

// Withdraw debits the holder's balance and pays the amount back out to
// the holder's external account.
func (s *LedgerServiceImpl) Withdraw(ctx context.Context, req ports.WithdrawRequest) (*domain.WithdrawReceipt, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if err := s.requireSupported(ctx, req.Asset); err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	account, err := s.accounts.GetForUpdate(ctx, dbTx, req.Holder)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrAccountNotInitialized()
	}

	balance, err := s.accounts.GetBalanceForUpdate(ctx, dbTx, req.Holder, req.Asset)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock balance: %w", err))
	}
	if balance < req.Amount {
		return nil, apperror.ErrInsufficientBalance()
	}

	newBalance := balance - req.Amount
	if err := s.accounts.SetBalance(ctx, dbTx, req.Holder, req.Asset, newBalance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("debit balance: %w", err))
	}

	if err := s.pool.Payout(ctx, dbTx, req.Holder, req.Asset, req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("pool payout: %w", err))
	}

	if err := s.assets.AddWithdrawn(ctx, dbTx, req.Asset, req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("track withdrawal volume: %w", err))
	}

	now := s.clock.Now()
	fact := &domain.Fact{
		Kind:      domain.FactWithdraw,
		Actor:     req.Holder,
		Asset:     req.Asset,
		Amount:    req.Amount,
		CreatedAt: now,
	}
	if err := s.facts.Record(ctx, dbTx, fact); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("record withdraw fact: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("holder", string(req.Holder)).
		Str("asset", string(req.Asset)).
		Int64("amount", req.Amount).
		Int64("new_balance", newBalance).
		Msg("withdrawal processed")

	return &domain.WithdrawReceipt{
		Holder:      req.Holder,
		Asset:       req.Asset,
		Amount:      req.Amount,
		NewBalance:  newBalance,
		ProcessedAt: now,
	}, nil
}

// RefreshTail replaces the holder's authorization tail, enforcing the
// holder-configured update limit.
func (s *LedgerServiceImpl) RefreshTail(ctx context.Context, holder domain.Address, newTail string) (*domain.Account, error) {
	if newTail == "" {
		return nil, apperror.Validation("new tail required")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	account, err := s.accounts.GetForUpdate(ctx, dbTx, holder)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrAccountNotInitialized()
	}
	if !account.CanRefreshTail() {
		return nil, apperror.ErrTailUpdateLimitExceeded()
	}

	if err := s.accounts.UpdateTail(ctx, dbTx, holder, newTail, account.TailUpdateCount+1); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update tail: %w", err))
	}

	now := s.clock.Now()
	fact := &domain.Fact{
		Kind:      domain.FactTailRefresh,
		Actor:     holder,
		CreatedAt: now,
	}
	if err := s.facts.Record(ctx, dbTx, fact); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("record refresh fact: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	account.Tail = newTail
	account.TailUpdateCount++
	account.UpdatedAt = now

	s.log.Info().
		Str("holder", string(holder)).
		Int64("tail_update_count", account.TailUpdateCount).
		Msg("tail refreshed")

	return account, nil
}

// SetPaymentLimit overwrites the holder's per-payment cap (0 = unlimited).
func (s *LedgerServiceImpl) SetPaymentLimit(ctx context.Context, holder domain.Address, limit int64) error {
	if limit < 0 {
		return apperror.Validation("limit must not be negative")
	}
	if err := s.requireAccount(ctx, holder); err != nil {
		return err
	}
	if err := s.accounts.SetPaymentLimit(ctx, holder, limit); err != nil {
		return apperror.InternalError(fmt.Errorf("set payment limit: %w", err))
	}
	s.log.Info().Str("holder", string(holder)).Int64("limit", limit).Msg("payment limit set")
	return nil
}

// SetTailUpdateLimit overwrites the holder's tail-update cap (0 = unlimited).
func (s *LedgerServiceImpl) SetTailUpdateLimit(ctx context.Context, holder domain.Address, limit int64) error {
	if limit < 0 {
		return apperror.Validation("limit must not be negative")
	}
	if err := s.requireAccount(ctx, holder); err != nil {
		return err
	}
	if err := s.accounts.SetTailUpdateLimit(ctx, holder, limit); err != nil {
		return apperror.InternalError(fmt.Errorf("set tail update limit: %w", err))
	}
	s.log.Info().Str("holder", string(holder)).Int64("limit", limit).Msg("tail update limit set")
	return nil
}

// GetBalance returns the holder's balance for an asset (0 when absent).
func (s *LedgerServiceImpl) GetBalance(ctx context.Context, holder domain.Address, asset domain.AssetID) (int64, error) {
	balance, err := s.accounts.GetBalance(ctx, holder, asset)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get balance: %w", err))
	}
	return balance, nil
}

// GetAccount returns the holder's account record.
func (s *LedgerServiceImpl) GetAccount(ctx context.Context, holder domain.Address) (*domain.Account, error) {
	account, err := s.accounts.GetByAddress(ctx, holder)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrAccountNotInitialized()
	}
	return account, nil
}

func (s *LedgerServiceImpl) requireSupported(ctx context.Context, asset domain.AssetID) error {
	a, err := s.assets.Get(ctx, asset)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get asset: %w", err))
	}
	if a == nil || !a.Supported {
		return apperror.ErrAssetNotSupported()
	}
	return nil
}

func (s *LedgerServiceImpl) requireAccount(ctx context.Context, holder domain.Address) error {
	account, err := s.accounts.GetByAddress(ctx, holder)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if account == nil {
		return apperror.ErrAccountNotInitialized()
	}
	return nil
}
