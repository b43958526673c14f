package integration

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "offpay/internal/adapter/http/handler"
	redisStorage "offpay/internal/adapter/storage/redis"
	"offpay/internal/core/domain"
	"offpay/internal/service"
	"offpay/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds a full application stack: real HTTP layer, middleware,
// services, hash-chain authorizer and Redis stores (miniredis), with
// in-memory postgres repos behind a serializing transactor.

const (
	testAdmin     = "0xadmin"
	testPaymaster = "0xpaymaster"
	testWindow    = 15 * time.Minute

	operatorUser = "admin"
	operatorPass = "Op3rator-Pass!"
)

type testApp struct {
	server *httptest.Server
	redis  *miniredis.Miniredis
	pool   *inMemoryCustodialPool
	clock  *fakeClock
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	precommitStore := redisStorage.NewPrecommitStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Core services with real implementations
	chainSvc := service.NewHashChainService(domain.ChainModeLegacy)
	clock := newFakeClock(time.Now().UTC())
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", 24*time.Hour, "test-issuer")

	operatorHash, err := hashSvc.Hash(operatorPass)
	require.NoError(t, err)

	// In-memory repos
	accountRepo := newInMemoryAccountRepo()
	assetRepo := newInMemoryAssetRepo()
	paramsRepo := newInMemoryParamsRepo()
	factRepo := newInMemoryFactRepo()
	custodialPool := newInMemoryCustodialPool()
	transactor := newInMemoryTransactor()

	_, err = paramsRepo.Ensure(t.Context(), 100)
	require.NoError(t, err)

	// Business services
	log := logger.New("debug", false)
	authSvc := service.NewAuthService(operatorUser, operatorHash, hashSvc, tokenSvc)
	ledgerSvc := service.NewLedgerService(accountRepo, assetRepo, factRepo, custodialPool, transactor, clock, log)
	settlementSvc := service.NewSettlementService(
		accountRepo, assetRepo, paramsRepo, factRepo, precommitStore, custodialPool,
		transactor, chainSvc, clock, testPaymaster, testWindow, log,
	)
	assetSvc := service.NewAssetService(assetRepo, paramsRepo, clock, testAdmin, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		LedgerSvc:      ledgerSvc,
		SettlementSvc:  settlementSvc,
		AssetSvc:       assetSvc,
		TokenSvc:       tokenSvc,
		FactRepo:       factRepo,
		Pool:           custodialPool,
		AdminAddress:   testAdmin,
		RateLimitStore: rateLimitStore,
		Logger:         log,
	})

	server := httptest.NewServer(router)

	return &testApp{
		server: server,
		redis:  mr,
		pool:   custodialPool,
		clock:  clock,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
}

// tailOf derives the authorization tail committing to a secret.
func tailOf(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_OperatorLogin(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"username": operatorUser,
		"password": operatorPass,
	})
	assert.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	status, body = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"username": operatorUser,
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "AUTH_001", body["error_code"])
}

func TestIntegration_AdminAssetRegistry(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	// No token
	status, body := doJSON(t, app, http.MethodPost, "/api/v1/admin/assets", "", map[string]any{"asset_id": "USD"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "AUTH_002", body["error_code"])

	token := adminToken(t, app)

	status, body = doJSON(t, app, http.MethodPost, "/api/v1/admin/assets", token, map[string]any{"asset_id": "USD"})
	assert.Equal(t, http.StatusCreated, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "USD", data["asset_id"])
	assert.Equal(t, true, data["supported"])

	// Duplicate registration
	status, body = doJSON(t, app, http.MethodPost, "/api/v1/admin/assets", token, map[string]any{"asset_id": "USD"})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "ASSET_002", body["error_code"])
}

func TestIntegration_DepositAndWithdraw(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := adminToken(t, app)
	addAsset(t, app, token, "USD")
	app.pool.seed("0xalice", "USD", 1_000_000)

	// Deposit against an unsupported asset
	status, body := doJSON(t, app, http.MethodPost, "/api/v1/ledger/deposit", "", map[string]any{
		"holder": "0xalice", "asset_id": "EUR", "amount": 1000,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "ASSET_001", body["error_code"])

	// Deposit with a tail installation
	status, body = doJSON(t, app, http.MethodPost, "/api/v1/ledger/deposit", "", map[string]any{
		"holder": "0xalice", "asset_id": "USD", "amount": 600_000, "tail": tailOf("voucher-1"),
	})
	require.Equal(t, http.StatusCreated, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(600_000), data["new_balance"])
	assert.Equal(t, true, data["tail_updated"])

	// Ledger balance reflects the credit
	status, body = doJSON(t, app, http.MethodGet, "/api/v1/accounts/0xalice/balance/USD", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(600_000), body["data"].(map[string]interface{})["balance"])

	// Withdraw part of it
	status, body = doJSON(t, app, http.MethodPost, "/api/v1/ledger/withdraw", "", map[string]any{
		"holder": "0xalice", "asset_id": "USD", "amount": 100_000,
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, float64(500_000), body["data"].(map[string]interface{})["new_balance"])

	// Overdraw
	status, body = doJSON(t, app, http.MethodPost, "/api/v1/ledger/withdraw", "", map[string]any{
		"holder": "0xalice", "asset_id": "USD", "amount": 1_000_000,
	})
	assert.Equal(t, http.StatusPaymentRequired, status)
	assert.Equal(t, "ACCT_002", body["error_code"])

	// Asset stats track volume
	status, body = doJSON(t, app, http.MethodGet, "/api/v1/assets/USD", "", nil)
	require.Equal(t, http.StatusOK, status)
	stats := body["data"].(map[string]interface{})
	assert.Equal(t, float64(600_000), stats["total_deposited"])
	assert.Equal(t, float64(100_000), stats["total_withdrawn"])

	// External account got the payout back
	external, err := app.pool.Balance(t.Context(), "0xalice", "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(500_000), external)
}

func TestIntegration_SettlementEndToEnd(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := adminToken(t, app)
	addAsset(t, app, token, "USD")
	app.pool.seed("0xpayer", "USD", 500_000)

	secret := "carol-voucher-7"
	depositWithTail(t, app, "0xpayer", "USD", 500_000, tailOf(secret))

	// Merchant precommit
	status, body := doJSON(t, app, http.MethodPost, "/api/v1/settlement/precommit", "", map[string]any{
		"merchant": "0xmerchant", "payer": "0xpayer", "recipient": "0xshop",
		"amount": 100_000, "asset_id": "USD", "secret": secret,
	})
	require.Equal(t, http.StatusCreated, status)
	commitHash := body["data"].(map[string]interface{})["commit_hash"].(string)
	require.Len(t, commitHash, 64)

	// Complete: 1% fee on 100,000 leaves 99,000 for the recipient
	status, body = doJSON(t, app, http.MethodPost, "/api/v1/settlement/complete", "", map[string]any{
		"caller": "0xmerchant", "secret": secret, "payer": "0xpayer", "recipient": "0xshop",
		"amount": 100_000, "asset_id": "USD", "commit_hash": commitHash,
	})
	require.Equal(t, http.StatusCreated, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1000), data["fee"])
	assert.Equal(t, float64(99_000), data["recipient_amount"])
	assert.Equal(t, commitHash, data["commit_hash"])

	// Payer debited the full amount
	status, body = doJSON(t, app, http.MethodGet, "/api/v1/accounts/0xpayer/balance/USD", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(400_000), body["data"].(map[string]interface{})["balance"])

	// Tail advanced to the revealed secret (legacy chain mode)
	status, body = doJSON(t, app, http.MethodGet, "/api/v1/accounts/0xpayer", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, secret, body["data"].(map[string]interface{})["tail"])

	// Recipient got the net amount externally; the fee stayed in the pool
	external, err := app.pool.Balance(t.Context(), "0xshop", "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(99_000), external)

	status, body = doJSON(t, app, http.MethodGet, "/api/v1/admin/pool/USD", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(401_000), body["data"].(map[string]interface{})["balance"])

	// Withdrawn volume counts the full settled amount, fee included
	status, body = doJSON(t, app, http.MethodGet, "/api/v1/assets/USD", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(100_000), body["data"].(map[string]interface{})["total_withdrawn"])

	// Replaying the same completion finds the precommit spent
	status, body = doJSON(t, app, http.MethodPost, "/api/v1/settlement/complete", "", map[string]any{
		"caller": "0xmerchant", "secret": secret, "payer": "0xpayer", "recipient": "0xshop",
		"amount": 100_000, "asset_id": "USD", "commit_hash": commitHash,
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "SEC_003", body["error_code"])
}

// A completion rejected on a ledger precondition leaves the precommit
// live, so the same unexpired precommit settles once the payer is
// funded. The payer drives both attempts; no merchant call is needed
// to complete.
func TestIntegration_RetryAfterInsufficientBalance(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := adminToken(t, app)
	addAsset(t, app, token, "USD")
	app.pool.seed("0xpayer", "USD", 200_000)

	secret := "retry-voucher"
	depositWithTail(t, app, "0xpayer", "USD", 10_000, tailOf(secret))

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/settlement/precommit", "", map[string]any{
		"merchant": "0xmerchant", "payer": "0xpayer", "recipient": "0xshop",
		"amount": 50_000, "asset_id": "USD", "secret": secret,
	})
	require.Equal(t, http.StatusCreated, status)
	commitHash := body["data"].(map[string]interface{})["commit_hash"].(string)

	// Underfunded: rejected without spending the precommit
	status, body = doJSON(t, app, http.MethodPost, "/api/v1/settlement/complete", "", map[string]any{
		"caller": "0xpayer", "secret": secret, "payer": "0xpayer", "recipient": "0xshop",
		"amount": 50_000, "asset_id": "USD", "commit_hash": commitHash,
	})
	assert.Equal(t, http.StatusPaymentRequired, status)
	assert.Equal(t, "ACCT_002", body["error_code"])

	// Fund the account, then retry the same precommit
	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/ledger/deposit", "", map[string]any{
		"holder": "0xpayer", "asset_id": "USD", "amount": 100_000,
	})
	require.Equal(t, http.StatusCreated, status)

	status, body = doJSON(t, app, http.MethodPost, "/api/v1/settlement/complete", "", map[string]any{
		"caller": "0xpayer", "secret": secret, "payer": "0xpayer", "recipient": "0xshop",
		"amount": 50_000, "asset_id": "USD", "commit_hash": commitHash,
	})
	require.Equal(t, http.StatusCreated, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(500), data["fee"])
	assert.Equal(t, float64(49_500), data["recipient_amount"])
}

func TestIntegration_PrecommitExpiry(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := adminToken(t, app)
	addAsset(t, app, token, "USD")
	app.pool.seed("0xpayer", "USD", 200_000)

	secret := "expiring-voucher"
	depositWithTail(t, app, "0xpayer", "USD", 200_000, tailOf(secret))

	status, _ := doJSON(t, app, http.MethodPost, "/api/v1/settlement/precommit", "", map[string]any{
		"merchant": "0xmerchant", "payer": "0xpayer", "recipient": "0xshop",
		"amount": 50_000, "asset_id": "USD", "secret": secret,
	})
	require.Equal(t, http.StatusCreated, status)

	app.clock.Advance(testWindow + time.Minute)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/settlement/complete", "", map[string]any{
		"caller": "0xmerchant", "secret": secret, "payer": "0xpayer", "recipient": "0xshop",
		"amount": 50_000, "asset_id": "USD",
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "SEC_003", body["error_code"])

	// Balance untouched
	status, body = doJSON(t, app, http.MethodGet, "/api/v1/accounts/0xpayer/balance/USD", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(200_000), body["data"].(map[string]interface{})["balance"])
}

func TestIntegration_WrongSecret(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := adminToken(t, app)
	addAsset(t, app, token, "USD")
	app.pool.seed("0xpayer", "USD", 100_000)

	// Tail commits to a different voucher than the one revealed
	depositWithTail(t, app, "0xpayer", "USD", 100_000, tailOf("other-voucher"))

	revealed := "stolen-voucher"
	status, _ := doJSON(t, app, http.MethodPost, "/api/v1/settlement/precommit", "", map[string]any{
		"merchant": "0xmerchant", "payer": "0xpayer", "recipient": "0xshop",
		"amount": 10_000, "asset_id": "USD", "secret": revealed,
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/settlement/complete", "", map[string]any{
		"caller": "0xmerchant", "secret": revealed, "payer": "0xpayer", "recipient": "0xshop",
		"amount": 10_000, "asset_id": "USD",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "SEC_002", body["error_code"])
}

func TestIntegration_PaymentLimit(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := adminToken(t, app)
	addAsset(t, app, token, "USD")
	app.pool.seed("0xpayer", "USD", 300_000)

	secret := "capped-voucher"
	depositWithTail(t, app, "0xpayer", "USD", 300_000, tailOf(secret))

	status, _ := doJSON(t, app, http.MethodPut, "/api/v1/ledger/limits/payment", "", map[string]any{
		"holder": "0xpayer", "limit": 50_000,
	})
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/settlement/precommit", "", map[string]any{
		"merchant": "0xmerchant", "payer": "0xpayer", "recipient": "0xshop",
		"amount": 100_000, "asset_id": "USD", "secret": secret,
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/settlement/complete", "", map[string]any{
		"caller": "0xmerchant", "secret": secret, "payer": "0xpayer", "recipient": "0xshop",
		"amount": 100_000, "asset_id": "USD",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "POLICY_001", body["error_code"])
}

func TestIntegration_TailRefreshLimit(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := adminToken(t, app)
	addAsset(t, app, token, "USD")
	app.pool.seed("0xbob", "USD", 10_000)

	// Deposit installs the first tail (update count 1)
	depositWithTail(t, app, "0xbob", "USD", 10_000, tailOf("first"))

	status, _ := doJSON(t, app, http.MethodPut, "/api/v1/ledger/limits/tail-updates", "", map[string]any{
		"holder": "0xbob", "limit": 2,
	})
	require.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/ledger/tail/refresh", "", map[string]any{
		"holder": "0xbob", "new_tail": tailOf("second"),
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(2), body["data"].(map[string]interface{})["tail_update_count"])

	status, body = doJSON(t, app, http.MethodPost, "/api/v1/ledger/tail/refresh", "", map[string]any{
		"holder": "0xbob", "new_tail": tailOf("third"),
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "POLICY_002", body["error_code"])
}

func TestIntegration_PaymasterBypass(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := adminToken(t, app)
	addAsset(t, app, token, "USD")
	app.pool.seed("0xpayer", "USD", 100_000)

	secret := "paymaster-voucher"
	depositWithTail(t, app, "0xpayer", "USD", 100_000, tailOf(secret))

	// No precommit exists; the paymaster settles anyway
	status, body := doJSON(t, app, http.MethodPost, "/api/v1/settlement/complete", "", map[string]any{
		"caller": testPaymaster, "secret": secret, "payer": "0xpayer", "recipient": "0xshop",
		"amount": 40_000, "asset_id": "USD",
	})
	require.Equal(t, http.StatusCreated, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(400), data["fee"])
	assert.Equal(t, float64(39_600), data["recipient_amount"])
	_, hasHash := data["commit_hash"]
	assert.False(t, hasHash, "paymaster settlements carry no commit hash")
}

func TestIntegration_AdminFactFeed(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := adminToken(t, app)
	addAsset(t, app, token, "USD")
	app.pool.seed("0xalice", "USD", 50_000)
	depositWithTail(t, app, "0xalice", "USD", 50_000, tailOf("v"))

	status, body := doJSON(t, app, http.MethodGet, "/api/v1/admin/facts?limit=10", token, nil)
	require.Equal(t, http.StatusOK, status)
	facts := body["data"].([]interface{})
	require.NotEmpty(t, facts)
	newest := facts[0].(map[string]interface{})
	assert.Equal(t, "DEPOSIT", newest["kind"])
	assert.Equal(t, "0xalice", newest["actor"])

	status, body = doJSON(t, app, http.MethodGet, "/api/v1/admin/facts?limit=0", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "ACCT_003", body["error_code"])
}

// --- Helpers ---

func doJSON(t *testing.T, app *testApp, method, path, token string, body any) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, app.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func adminToken(t *testing.T, app *testApp) string {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"username": operatorUser,
		"password": operatorPass,
	})
	require.Equal(t, http.StatusOK, status)
	return body["data"].(map[string]interface{})["token"].(string)
}

func addAsset(t *testing.T, app *testApp, token, asset string) {
	t.Helper()
	status, _ := doJSON(t, app, http.MethodPost, "/api/v1/admin/assets", token, map[string]any{"asset_id": asset})
	require.Equal(t, http.StatusCreated, status)
}

func depositWithTail(t *testing.T, app *testApp, holder, asset string, amount int64, tail string) {
	t.Helper()
	status, _ := doJSON(t, app, http.MethodPost, "/api/v1/ledger/deposit", "", map[string]any{
		"holder": holder, "asset_id": asset, "amount": amount, "tail": tail,
	})
	require.Equal(t, http.StatusCreated, status)
}
