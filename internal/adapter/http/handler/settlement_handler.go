package handler

import (
	"offpay/internal/adapter/http/dto"
	"offpay/internal/core/domain"
	"offpay/internal/core/ports"
	"offpay/pkg/apperror"
	"offpay/pkg/response"

	"github.com/gin-gonic/gin"
)

// SettlementHandler handles the two-phase payment endpoints.
type SettlementHandler struct {
	settlementSvc ports.SettlementService
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(settlementSvc ports.SettlementService) *SettlementHandler {
	return &SettlementHandler{settlementSvc: settlementSvc}
}

// Precommit handles POST /api/v1/settlement/precommit.
func (h *SettlementHandler) Precommit(c *gin.Context) {
	var req dto.PrecommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	receipt, err := h.settlementSvc.Precommit(c.Request.Context(), ports.PrecommitRequest{
		Merchant:  domain.Address(req.Merchant),
		Payer:     domain.Address(req.Payer),
		Recipient: domain.Address(req.Recipient),
		Amount:    req.Amount,
		Asset:     domain.AssetID(req.Asset),
		Secret:    []byte(req.Secret),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, receipt)
}

// Complete handles POST /api/v1/settlement/complete.
func (h *SettlementHandler) Complete(c *gin.Context) {
	var req dto.CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	receipt, err := h.settlementSvc.Complete(c.Request.Context(), ports.CompleteRequest{
		Caller:     domain.Address(req.Caller),
		Secret:     []byte(req.Secret),
		Payer:      domain.Address(req.Payer),
		Recipient:  domain.Address(req.Recipient),
		Amount:     req.Amount,
		Asset:      domain.AssetID(req.Asset),
		CommitHash: req.CommitHash,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, receipt)
}
