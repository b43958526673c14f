package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"offpay/internal/adapter/http/dto"
	"offpay/internal/core/domain"
	"offpay/internal/core/ports"
	"offpay/internal/core/ports/mocks"
	"offpay/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(t *testing.T, handler gin.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")

	handler(c)
	return w
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has a data object")
	return data
}

// --- Auth Handler Tests ---

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	expiry := time.Now().Add(time.Hour)
	mockAuth.EXPECT().Login(gomock.Any(), "admin", "s3cret").Return("jwt-token", expiry, nil)

	w := postJSON(t, h.Login, dto.LoginRequest{Username: "admin", Password: "s3cret"})

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "jwt-token", data["token"])
}

func TestLogin_BadCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Login(gomock.Any(), "admin", "wrong").
		Return("", time.Time{}, apperror.ErrInvalidCredentials())

	w := postJSON(t, h.Login, dto.LoginRequest{Username: "admin", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAuthHandler(mocks.NewMockAuthService(ctrl))

	w := postJSON(t, h.Login, map[string]string{"username": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Ledger Handler Tests ---

func TestDeposit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewLedgerHandler(mockLedger)

	mockLedger.EXPECT().Deposit(gomock.Any(), ports.DepositRequest{
		Holder:        "0xalice",
		Asset:         "APT",
		Amount:        100000,
		TailCandidate: "deadbeef",
	}).Return(&domain.DepositReceipt{
		Holder:     "0xalice",
		Asset:      "APT",
		Amount:     100000,
		NewBalance: 100000,
	}, nil)

	w := postJSON(t, h.Deposit, dto.DepositRequest{
		Holder: "0xalice",
		Asset:  "APT",
		Amount: 100000,
		Tail:   "deadbeef",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	assert.Equal(t, float64(100000), data["new_balance"])
}

func TestDeposit_NegativeAmountRejectedByBinding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewLedgerHandler(mocks.NewMockLedgerService(ctrl))

	w := postJSON(t, h.Deposit, dto.DepositRequest{
		Holder: "0xalice",
		Asset:  "APT",
		Amount: -5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWithdraw_InsufficientBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewLedgerHandler(mockLedger)

	mockLedger.EXPECT().Withdraw(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrInsufficientBalance())

	w := postJSON(t, h.Withdraw, dto.WithdrawRequest{
		Holder: "0xalice",
		Asset:  "APT",
		Amount: 999999,
	})
	assert.Equal(t, http.StatusPaymentRequired, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ACCT_002", resp["error_code"])
}

func TestRefreshTail_LimitExceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewLedgerHandler(mockLedger)

	mockLedger.EXPECT().RefreshTail(gomock.Any(), domain.Address("0xalice"), "newtail").
		Return(nil, apperror.ErrTailUpdateLimitExceeded())

	w := postJSON(t, h.RefreshTail, dto.RefreshTailRequest{Holder: "0xalice", NewTail: "newtail"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// --- Settlement Handler Tests ---

func TestPrecommit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSettlement := mocks.NewMockSettlementService(ctrl)
	h := NewSettlementHandler(mockSettlement)

	expires := time.Now().Add(15 * time.Minute)
	mockSettlement.EXPECT().Precommit(gomock.Any(), ports.PrecommitRequest{
		Merchant:  "0xmerchant",
		Payer:     "0xpayer",
		Recipient: "0xshop",
		Amount:    100000,
		Asset:     "APT",
		Secret:    []byte("otp-1"),
	}).Return(&domain.PrecommitReceipt{
		CommitHash: "abc123",
		Merchant:   "0xmerchant",
		ExpiresAt:  expires,
	}, nil)

	w := postJSON(t, h.Precommit, dto.PrecommitRequest{
		Merchant:  "0xmerchant",
		Payer:     "0xpayer",
		Recipient: "0xshop",
		Amount:    100000,
		Asset:     "APT",
		Secret:    "otp-1",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "abc123", data["commit_hash"])
}

func TestComplete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSettlement := mocks.NewMockSettlementService(ctrl)
	h := NewSettlementHandler(mockSettlement)

	mockSettlement.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(&domain.SettlementReceipt{
		Payer:           "0xpayer",
		Recipient:       "0xshop",
		Asset:           "APT",
		Amount:          100000,
		Fee:             1000,
		RecipientAmount: 99000,
	}, nil)

	w := postJSON(t, h.Complete, dto.CompleteRequest{
		Caller:    "0xmerchant",
		Secret:    "otp-1",
		Payer:     "0xpayer",
		Recipient: "0xshop",
		Amount:    100000,
		Asset:     "APT",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	assert.Equal(t, float64(1000), data["fee"])
	assert.Equal(t, float64(99000), data["recipient_amount"])
}

func TestComplete_InvalidPrecommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSettlement := mocks.NewMockSettlementService(ctrl)
	h := NewSettlementHandler(mockSettlement)

	mockSettlement.EXPECT().Complete(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrInvalidPrecommit())

	w := postJSON(t, h.Complete, dto.CompleteRequest{
		Caller:    "0xmerchant",
		Secret:    "otp-1",
		Payer:     "0xpayer",
		Recipient: "0xshop",
		Amount:    100000,
		Asset:     "APT",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SEC_003", resp["error_code"])
}

func TestComplete_MalformedCommitHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewSettlementHandler(mocks.NewMockSettlementService(ctrl))

	w := postJSON(t, h.Complete, dto.CompleteRequest{
		Caller:     "0xmerchant",
		Secret:     "otp-1",
		Payer:      "0xpayer",
		Recipient:  "0xshop",
		Amount:     100000,
		Asset:      "APT",
		CommitHash: "not-hex",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Admin Handler Tests ---

func TestAddAsset_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAsset := mocks.NewMockAssetService(ctrl)
	h := NewAdminHandler(mockAsset, mocks.NewMockFactRepository(ctrl), mocks.NewMockCustodialPool(ctrl), "0xadmin")

	mockAsset.EXPECT().AddAsset(gomock.Any(), domain.Address("0xadmin"), domain.AssetID("USDC")).
		Return(&domain.Asset{ID: "USDC", Supported: true}, nil)

	w := postJSON(t, h.AddAsset, dto.AddAssetRequest{Asset: "USDC"})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAddAsset_AlreadySupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAsset := mocks.NewMockAssetService(ctrl)
	h := NewAdminHandler(mockAsset, mocks.NewMockFactRepository(ctrl), mocks.NewMockCustodialPool(ctrl), "0xadmin")

	mockAsset.EXPECT().AddAsset(gomock.Any(), domain.Address("0xadmin"), domain.AssetID("USDC")).
		Return(nil, apperror.ErrAlreadySupported())

	w := postJSON(t, h.AddAsset, dto.AddAssetRequest{Asset: "USDC"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSetFeeRate_OutOfRangeRejectedByBinding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAdminHandler(mocks.NewMockAssetService(ctrl), mocks.NewMockFactRepository(ctrl), mocks.NewMockCustodialPool(ctrl), "0xadmin")

	w := postJSON(t, h.SetFeeRate, dto.FeeRateRequest{FeeRateBps: 10001})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Router Tests ---

func TestRouter_AdminRequiresJWT(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockToken := mocks.NewMockTokenService(ctrl)
	r := SetupRouter(RouterDeps{
		AuthSvc:       mocks.NewMockAuthService(ctrl),
		LedgerSvc:     mocks.NewMockLedgerService(ctrl),
		SettlementSvc: mocks.NewMockSettlementService(ctrl),
		AssetSvc:      mocks.NewMockAssetService(ctrl),
		TokenSvc:      mockToken,
		FactRepo:      mocks.NewMockFactRepository(ctrl),
		Pool:          mocks.NewMockCustodialPool(ctrl),
		AdminAddress:  "0xadmin",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/assets", bytes.NewReader([]byte(`{"asset_id":"USDC"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_BalanceQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	mockLedger.EXPECT().GetBalance(gomock.Any(), domain.Address("0xalice"), domain.AssetID("APT")).
		Return(int64(42), nil)

	r := SetupRouter(RouterDeps{
		AuthSvc:       mocks.NewMockAuthService(ctrl),
		LedgerSvc:     mockLedger,
		SettlementSvc: mocks.NewMockSettlementService(ctrl),
		AssetSvc:      mocks.NewMockAssetService(ctrl),
		TokenSvc:      mocks.NewMockTokenService(ctrl),
		FactRepo:      mocks.NewMockFactRepository(ctrl),
		Pool:          mocks.NewMockCustodialPool(ctrl),
		AdminAddress:  "0xadmin",
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/accounts/0xalice/balance/APT", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, float64(42), data["balance"])
}
