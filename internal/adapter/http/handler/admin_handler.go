package handler

import (
	"strconv"

	"offpay/internal/adapter/http/dto"
	"offpay/internal/core/domain"
	"offpay/internal/core/ports"
	"offpay/pkg/apperror"
	"offpay/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultFactLimit = 50

// AdminHandler handles JWT-protected operator endpoints. The JWT gates
// access; the service layer additionally checks the admin ledger
// address the operator acts as.
type AdminHandler struct {
	assetSvc ports.AssetService
	facts    ports.FactRepository
	pool     ports.CustodialPool
	admin    domain.Address
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(assetSvc ports.AssetService, facts ports.FactRepository, pool ports.CustodialPool, admin domain.Address) *AdminHandler {
	return &AdminHandler{assetSvc: assetSvc, facts: facts, pool: pool, admin: admin}
}

// AddAsset handles POST /api/v1/admin/assets.
func (h *AdminHandler) AddAsset(c *gin.Context) {
	var req dto.AddAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	asset, err := h.assetSvc.AddAsset(c.Request.Context(), h.admin, domain.AssetID(req.Asset))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.AssetResponse{
		Asset:     string(asset.ID),
		Supported: asset.Supported,
	})
}

// SetFeeRate handles PUT /api/v1/admin/fee-rate.
func (h *AdminHandler) SetFeeRate(c *gin.Context) {
	var req dto.FeeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.assetSvc.SetFeeRate(c.Request.Context(), h.admin, req.FeeRateBps); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"fee_rate_bps": req.FeeRateBps})
}

// ListFacts handles GET /api/v1/admin/facts.
func (h *AdminHandler) ListFacts(c *gin.Context) {
	limit := defaultFactLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 500 {
			response.Error(c, apperror.Validation("limit must be an integer in [1,500]"))
			return
		}
		limit = parsed
	}

	facts, err := h.facts.ListRecent(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	out := make([]dto.FactResponse, 0, len(facts))
	for _, f := range facts {
		out = append(out, toFactResponse(f))
	}
	response.OK(c, out)
}

// PoolBalance handles GET /api/v1/admin/pool/:asset. The pool balance
// includes retained fees.
func (h *AdminHandler) PoolBalance(c *gin.Context) {
	asset := domain.AssetID(c.Param("asset"))

	balance, err := h.pool.Balance(c.Request.Context(), domain.PoolAddress, asset)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, dto.PoolBalanceResponse{
		Asset:   string(asset),
		Balance: balance,
	})
}
