package handler

import (
	"time"

	"offpay/internal/adapter/http/dto"
	"offpay/internal/core/domain"
	"offpay/internal/core/ports"
	"offpay/pkg/response"

	"github.com/gin-gonic/gin"
)

// QueryHandler serves the public read-only endpoints.
type QueryHandler struct {
	ledgerSvc ports.LedgerService
	assetSvc  ports.AssetService
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(ledgerSvc ports.LedgerService, assetSvc ports.AssetService) *QueryHandler {
	return &QueryHandler{ledgerSvc: ledgerSvc, assetSvc: assetSvc}
}

// GetAccount handles GET /api/v1/accounts/:address.
func (h *QueryHandler) GetAccount(c *gin.Context) {
	account, err := h.ledgerSvc.GetAccount(c.Request.Context(), domain.Address(c.Param("address")))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toAccountResponse(account))
}

// GetBalance handles GET /api/v1/accounts/:address/balance/:asset.
// Uninitialized accounts read as zero.
func (h *QueryHandler) GetBalance(c *gin.Context) {
	addr := domain.Address(c.Param("address"))
	asset := domain.AssetID(c.Param("asset"))

	balance, err := h.ledgerSvc.GetBalance(c.Request.Context(), addr, asset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		Address: string(addr),
		Asset:   string(asset),
		Balance: balance,
	})
}

// GetAsset handles GET /api/v1/assets/:id.
func (h *QueryHandler) GetAsset(c *gin.Context) {
	stats, err := h.assetSvc.Stats(c.Request.Context(), domain.AssetID(c.Param("id")))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AssetResponse{
		Asset:          string(stats.AssetID),
		Supported:      true,
		TotalDeposited: stats.TotalDeposited,
		TotalWithdrawn: stats.TotalWithdrawn,
		FeeRateBps:     stats.FeeRateBps,
	})
}

func toFactResponse(f domain.Fact) dto.FactResponse {
	return dto.FactResponse{
		ID:           f.ID,
		Kind:         string(f.Kind),
		Actor:        string(f.Actor),
		Counterparty: string(f.Counterparty),
		Asset:        string(f.Asset),
		Amount:       f.Amount,
		Fee:          f.Fee,
		CommitHash:   f.CommitHash,
		CreatedAt:    f.CreatedAt.Format(time.RFC3339),
	}
}
