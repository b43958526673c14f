package dto

// LoginRequest is the request body for operator login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// DepositRequest is the request body for a ledger deposit.
type DepositRequest struct {
	Holder string `json:"holder" binding:"required,max=128"`
	Asset  string `json:"asset_id" binding:"required,max=64"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
	// Tail optionally installs a new authorization tail with the deposit.
	Tail string `json:"tail,omitempty" binding:"omitempty,max=256"`
}

// WithdrawRequest is the request body for a ledger withdrawal.
type WithdrawRequest struct {
	Holder string `json:"holder" binding:"required,max=128"`
	Asset  string `json:"asset_id" binding:"required,max=64"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

// RefreshTailRequest is the request body for a tail refresh.
type RefreshTailRequest struct {
	Holder  string `json:"holder" binding:"required,max=128"`
	NewTail string `json:"new_tail" binding:"required,max=256"`
}

// PaymentLimitRequest is the request body for setting a per-payment cap.
// Zero disables the cap.
type PaymentLimitRequest struct {
	Holder string `json:"holder" binding:"required,max=128"`
	Limit  int64  `json:"limit" binding:"gte=0"`
}

// TailUpdateLimitRequest is the request body for setting the tail
// refresh cap. Zero disables the cap.
type TailUpdateLimitRequest struct {
	Holder string `json:"holder" binding:"required,max=128"`
	Limit  int64  `json:"limit" binding:"gte=0"`
}

// PrecommitRequest is the request body for a merchant precommit.
type PrecommitRequest struct {
	Merchant  string `json:"merchant" binding:"required,max=128"`
	Payer     string `json:"payer" binding:"required,max=128"`
	Recipient string `json:"recipient" binding:"required,max=128"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
	Asset     string `json:"asset_id" binding:"required,max=64"`
	Secret    string `json:"secret" binding:"required,max=256"`
}

// CompleteRequest is the request body for settling a payment.
type CompleteRequest struct {
	Caller     string `json:"caller" binding:"required,max=128"`
	Secret     string `json:"secret" binding:"required,max=256"`
	Payer      string `json:"payer" binding:"required,max=128"`
	Recipient  string `json:"recipient" binding:"required,max=128"`
	Amount     int64  `json:"amount" binding:"required,gt=0"`
	Asset      string `json:"asset_id" binding:"required,max=64"`
	CommitHash string `json:"commit_hash,omitempty" binding:"omitempty,len=64,hexadecimal"`
}

// AddAssetRequest is the request body for registering an asset.
type AddAssetRequest struct {
	Asset string `json:"asset_id" binding:"required,max=64"`
}

// FeeRateRequest is the request body for updating the fee rate.
type FeeRateRequest struct {
	FeeRateBps int64 `json:"fee_rate_bps" binding:"gte=0,lte=10000"`
}

// AccountResponse is the read model for a holder account.
type AccountResponse struct {
	Address         string `json:"address"`
	Tail            string `json:"tail"`
	PaymentLimit    int64  `json:"payment_limit"`
	TailUpdateCount int64  `json:"tail_update_count"`
	MaxTailUpdates  int64  `json:"max_tail_updates"`
}

// BalanceResponse is the read model for a balance query.
type BalanceResponse struct {
	Address string `json:"address"`
	Asset   string `json:"asset_id"`
	Balance int64  `json:"balance"`
}

// AssetResponse is the read model for an asset query.
type AssetResponse struct {
	Asset          string `json:"asset_id"`
	Supported      bool   `json:"supported"`
	TotalDeposited int64  `json:"total_deposited"`
	TotalWithdrawn int64  `json:"total_withdrawn"`
	FeeRateBps     int64  `json:"fee_rate_bps"`
}

// FactResponse is one entry of the admin activity feed.
type FactResponse struct {
	ID           int64  `json:"id"`
	Kind         string `json:"kind"`
	Actor        string `json:"actor"`
	Counterparty string `json:"counterparty,omitempty"`
	Asset        string `json:"asset_id,omitempty"`
	Amount       int64  `json:"amount,omitempty"`
	Fee          int64  `json:"fee,omitempty"`
	CommitHash   string `json:"commit_hash,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// PoolBalanceResponse is the read model for the custodial pool balance.
type PoolBalanceResponse struct {
	Asset   string `json:"asset_id"`
	Balance int64  `json:"balance"`
}
