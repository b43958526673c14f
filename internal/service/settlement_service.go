package service

import (
	"context"
	"fmt"
	"time"

	"offpay/internal/core/domain"
	"offpay/internal/core/ports"
	"offpay/pkg/apperror"

	"github.com/rs/zerolog"
)

// SettlementServiceImpl implements ports.SettlementService.
//
// Completion validates the ledger preconditions under the payer's row
// lock first and spends the precommit entry (non-paymaster path) as the
// last gate before any mutation. A precondition failure therefore leaves
// the precommit intact for a retry, while the atomic consume still
// elects a single winner among concurrent completions.
type SettlementServiceImpl struct {
	accounts   ports.AccountRepository
	assets     ports.AssetRepository
	params     ports.ParamsRepository
	facts      ports.FactRepository
	precommits ports.PrecommitStore
	pool       ports.CustodialPool
	transactor ports.DBTransactor
	authorizer ports.ChainAuthorizer
	clock      ports.Clock
	paymaster  domain.Address
	window     time.Duration
	log        zerolog.Logger
}

// NewSettlementService creates a new SettlementServiceImpl.
func NewSettlementService(
	accounts ports.AccountRepository,
	assets ports.AssetRepository,
	params ports.ParamsRepository,
	facts ports.FactRepository,
	precommits ports.PrecommitStore,
	pool ports.CustodialPool,
	transactor ports.DBTransactor,
	authorizer ports.ChainAuthorizer,
	clock ports.Clock,
	paymaster domain.Address,
	window time.Duration,
	log zerolog.Logger,
) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		accounts:   accounts,
		assets:     assets,
		params:     params,
		facts:      facts,
		precommits: precommits,
		pool:       pool,
		transactor: transactor,
		authorizer: authorizer,
		clock:      clock,
		paymaster:  paymaster,
		window:     window,
		log:        log,
	}
}

// Precommit derives the commit hash from the payment parameters and
// registers it for the merchant with the configured validity window.
// Re-registering the same hash resets the window.
func (s *SettlementServiceImpl) Precommit(ctx context.Context, req ports.PrecommitRequest) (*domain.PrecommitReceipt, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.Merchant == "" || req.Payer == "" || req.Recipient == "" {
		return nil, apperror.Validation("merchant, payer and recipient addresses required")
	}
	if len(req.Secret) == 0 {
		return nil, apperror.Validation("secret required")
	}
	if err := s.requireSupported(ctx, req.Asset); err != nil {
		return nil, err
	}

	commitHash := s.authorizer.CommitHash(req.Payer, req.Recipient, req.Amount, req.Secret, req.Asset)
	expiresAt := s.clock.Now().Add(s.window)

	entry := domain.Precommit{
		CommitHash: commitHash,
		Merchant:   req.Merchant,
		ExpiresAt:  expiresAt,
	}
	if err := s.precommits.Save(ctx, entry, s.window); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save precommit: %w", err))
	}

	fact := &domain.Fact{
		Kind:         domain.FactPrecommit,
		Actor:        req.Merchant,
		Counterparty: req.Payer,
		Asset:        req.Asset,
		Amount:       req.Amount,
		CommitHash:   commitHash,
		CreatedAt:    s.clock.Now(),
	}
	if err := s.facts.Record(ctx, nil, fact); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("record precommit fact: %w", err))
	}

	s.log.Info().
		Str("merchant", string(req.Merchant)).
		Str("commit_hash", commitHash).
		Time("expires_at", expiresAt).
		Msg("payment precommitted")

	return &domain.PrecommitReceipt{
		CommitHash: commitHash,
		Merchant:   req.Merchant,
		ExpiresAt:  expiresAt,
	}, nil
}

// Complete settles a payment: it debits the payer, advances the payer's
// authorization tail, retains the fee in the custodial pool and pays the
// remainder out to the recipient. Non-paymaster callers need a live
// precommit for the derived commit hash; it is spent only once every
// ledger precondition holds, so a rejected completion can be retried
// against the same precommit. The paymaster bypasses the precommit gate
// entirely.
func (s *SettlementServiceImpl) Complete(ctx context.Context, req ports.CompleteRequest) (*domain.SettlementReceipt, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.Payer == "" || req.Recipient == "" {
		return nil, apperror.Validation("payer and recipient addresses required")
	}
	if len(req.Secret) == 0 {
		return nil, apperror.Validation("secret required")
	}
	if err := s.requireSupported(ctx, req.Asset); err != nil {
		return nil, err
	}

	feeRate, err := s.params.GetFeeRate(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get fee rate: %w", err))
	}

	receiptHash := ""
	if req.Caller != s.paymaster {
		receiptHash = s.authorizer.CommitHash(req.Payer, req.Recipient, req.Amount, req.Secret, req.Asset)
		if req.CommitHash != "" && req.CommitHash != receiptHash {
			return nil, apperror.ErrInvalidPrecommit()
		}
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	account, err := s.accounts.GetForUpdate(ctx, dbTx, req.Payer)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock payer account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrAccountNotInitialized()
	}

	if !s.authorizer.Verify(account.Tail, req.Secret) {
		return nil, apperror.ErrInvalidSecret()
	}

	balance, err := s.accounts.GetBalanceForUpdate(ctx, dbTx, req.Payer, req.Asset)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock payer balance: %w", err))
	}
	if balance < req.Amount {
		return nil, apperror.ErrInsufficientBalance()
	}
	if !account.WithinPaymentLimit(req.Amount) {
		return nil, apperror.ErrPaymentLimitExceeded()
	}

	// All preconditions hold; spending the precommit is the last gate
	// before mutation.
	if req.Caller != s.paymaster {
		if err := s.consumePrecommit(ctx, receiptHash); err != nil {
			return nil, err
		}
	}

	params := domain.SystemParams{FeeRateBps: feeRate}
	fee := params.FeeFor(req.Amount)
	recipientAmount := req.Amount - fee

	if err := s.accounts.SetBalance(ctx, dbTx, req.Payer, req.Asset, balance-req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("debit payer: %w", err))
	}

	nextTail := s.authorizer.NextTail(req.Secret)
	if err := s.accounts.UpdateTail(ctx, dbTx, req.Payer, nextTail, account.TailUpdateCount+1); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("advance tail: %w", err))
	}

	if recipientAmount > 0 {
		if err := s.pool.Payout(ctx, dbTx, req.Recipient, req.Asset, recipientAmount); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("pool payout: %w", err))
		}
	}

	// The full settled amount counts as withdrawn volume; the retained
	// fee is reconciled out of the pool separately.
	if err := s.assets.AddWithdrawn(ctx, dbTx, req.Asset, req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("track settlement volume: %w", err))
	}

	now := s.clock.Now()
	fact := &domain.Fact{
		Kind:         domain.FactSettlement,
		Actor:        req.Payer,
		Counterparty: req.Recipient,
		Asset:        req.Asset,
		Amount:       req.Amount,
		Fee:          fee,
		CommitHash:   receiptHash,
		CreatedAt:    now,
	}
	if err := s.facts.Record(ctx, dbTx, fact); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("record settlement fact: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("payer", string(req.Payer)).
		Str("recipient", string(req.Recipient)).
		Str("asset", string(req.Asset)).
		Int64("amount", req.Amount).
		Int64("fee", fee).
		Str("commit_hash", receiptHash).
		Msg("payment settled")

	return &domain.SettlementReceipt{
		Payer:           req.Payer,
		Recipient:       req.Recipient,
		Asset:           req.Asset,
		Amount:          req.Amount,
		Fee:             fee,
		RecipientAmount: recipientAmount,
		CommitHash:      receiptHash,
		ProcessedAt:     now,
	}, nil
}

// consumePrecommit spends the precommit entry for commitHash. The
// atomic removal means a losing concurrent caller and any later replay
// both observe an absent entry. Any precommitted payment can be settled
// by whoever reveals a valid secret; the stored merchant identifies who
// registered it, it does not restrict the caller.
func (s *SettlementServiceImpl) consumePrecommit(ctx context.Context, commitHash string) error {
	entry, err := s.precommits.Consume(ctx, commitHash)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("consume precommit: %w", err))
	}
	if entry == nil {
		return apperror.ErrInvalidPrecommit()
	}
	if entry.Expired(s.clock.Now()) {
		return apperror.ErrInvalidPrecommit()
	}
	return nil
}

func (s *SettlementServiceImpl) requireSupported(ctx context.Context, asset domain.AssetID) error {
	a, err := s.assets.Get(ctx, asset)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get asset: %w", err))
	}
	if a == nil || !a.Supported {
		return apperror.ErrAssetNotSupported()
	}
	return nil
}
