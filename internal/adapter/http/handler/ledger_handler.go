package handler

import (
	"offpay/internal/adapter/http/dto"
	"offpay/internal/core/domain"
	"offpay/internal/core/ports"
	"offpay/pkg/apperror"
	"offpay/pkg/response"

	"github.com/gin-gonic/gin"
)

// LedgerHandler handles holder balance, tail and limit endpoints.
type LedgerHandler struct {
	ledgerSvc ports.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerSvc ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

// Deposit handles POST /api/v1/ledger/deposit.
func (h *LedgerHandler) Deposit(c *gin.Context) {
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	receipt, err := h.ledgerSvc.Deposit(c.Request.Context(), ports.DepositRequest{
		Holder:        domain.Address(req.Holder),
		Asset:         domain.AssetID(req.Asset),
		Amount:        req.Amount,
		TailCandidate: req.Tail,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, receipt)
}

// Withdraw handles POST /api/v1/ledger/withdraw.
func (h *LedgerHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	receipt, err := h.ledgerSvc.Withdraw(c.Request.Context(), ports.WithdrawRequest{
		Holder: domain.Address(req.Holder),
		Asset:  domain.AssetID(req.Asset),
		Amount: req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, receipt)
}

// RefreshTail handles POST /api/v1/ledger/tail/refresh.
func (h *LedgerHandler) RefreshTail(c *gin.Context) {
	var req dto.RefreshTailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	account, err := h.ledgerSvc.RefreshTail(c.Request.Context(), domain.Address(req.Holder), req.NewTail)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toAccountResponse(account))
}

// SetPaymentLimit handles PUT /api/v1/ledger/limits/payment.
func (h *LedgerHandler) SetPaymentLimit(c *gin.Context) {
	var req dto.PaymentLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.ledgerSvc.SetPaymentLimit(c.Request.Context(), domain.Address(req.Holder), req.Limit); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"holder": req.Holder, "payment_limit": req.Limit})
}

// SetTailUpdateLimit handles PUT /api/v1/ledger/limits/tail-updates.
func (h *LedgerHandler) SetTailUpdateLimit(c *gin.Context) {
	var req dto.TailUpdateLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.ledgerSvc.SetTailUpdateLimit(c.Request.Context(), domain.Address(req.Holder), req.Limit); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"holder": req.Holder, "max_tail_updates": req.Limit})
}

func toAccountResponse(a *domain.Account) dto.AccountResponse {
	return dto.AccountResponse{
		Address:         string(a.Address),
		Tail:            a.Tail,
		PaymentLimit:    a.PaymentLimit,
		TailUpdateCount: a.TailUpdateCount,
		MaxTailUpdates:  a.MaxTailUpdates,
	}
}
