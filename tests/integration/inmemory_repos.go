package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"offpay/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Account Repo ---

type inMemoryAccountRepo struct {
	mu       sync.RWMutex
	accounts map[domain.Address]*domain.Account
	balances map[string]int64
}

func newInMemoryAccountRepo() *inMemoryAccountRepo {
	return &inMemoryAccountRepo{
		accounts: make(map[domain.Address]*domain.Account),
		balances: make(map[string]int64),
	}
}

func balanceKey(addr domain.Address, asset domain.AssetID) string {
	return string(addr) + "|" + string(asset)
}

func (r *inMemoryAccountRepo) Create(ctx context.Context, tx pgx.Tx, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[account.Address]; ok {
		return fmt.Errorf("account already exists")
	}
	cp := *account
	r.accounts[account.Address] = &cp
	return nil
}

func (r *inMemoryAccountRepo) GetByAddress(ctx context.Context, addr domain.Address) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[addr]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *inMemoryAccountRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address) (*domain.Account, error) {
	return r.GetByAddress(ctx, addr)
}

func (r *inMemoryAccountRepo) GetBalance(ctx context.Context, addr domain.Address, asset domain.AssetID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.balances[balanceKey(addr, asset)], nil
}

func (r *inMemoryAccountRepo) GetBalanceForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address, asset domain.AssetID) (int64, error) {
	return r.GetBalance(ctx, addr, asset)
}

func (r *inMemoryAccountRepo) SetBalance(ctx context.Context, tx pgx.Tx, addr domain.Address, asset domain.AssetID, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balances[balanceKey(addr, asset)] = amount
	return nil
}

func (r *inMemoryAccountRepo) UpdateTail(ctx context.Context, tx pgx.Tx, addr domain.Address, tail string, tailUpdateCount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[addr]
	if !ok {
		return fmt.Errorf("account not found")
	}
	a.Tail = tail
	a.TailUpdateCount = tailUpdateCount
	return nil
}

func (r *inMemoryAccountRepo) SetPaymentLimit(ctx context.Context, addr domain.Address, limit int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[addr]
	if !ok {
		return fmt.Errorf("account not found")
	}
	a.PaymentLimit = limit
	return nil
}

func (r *inMemoryAccountRepo) SetTailUpdateLimit(ctx context.Context, addr domain.Address, limit int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[addr]
	if !ok {
		return fmt.Errorf("account not found")
	}
	a.MaxTailUpdates = limit
	return nil
}

// --- In-Memory Asset Repo ---

type inMemoryAssetRepo struct {
	mu     sync.RWMutex
	assets map[domain.AssetID]*domain.Asset
}

func newInMemoryAssetRepo() *inMemoryAssetRepo {
	return &inMemoryAssetRepo{assets: make(map[domain.AssetID]*domain.Asset)}
}

func (r *inMemoryAssetRepo) Create(ctx context.Context, asset *domain.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.assets[asset.ID]; ok {
		return fmt.Errorf("asset already exists")
	}
	cp := *asset
	r.assets[asset.ID] = &cp
	return nil
}

func (r *inMemoryAssetRepo) Get(ctx context.Context, id domain.AssetID) (*domain.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.assets[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *inMemoryAssetRepo) AddDeposited(ctx context.Context, tx pgx.Tx, id domain.AssetID, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.assets[id]
	if !ok {
		return fmt.Errorf("asset not found")
	}
	a.TotalDeposited += amount
	return nil
}

func (r *inMemoryAssetRepo) AddWithdrawn(ctx context.Context, tx pgx.Tx, id domain.AssetID, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.assets[id]
	if !ok {
		return fmt.Errorf("asset not found")
	}
	a.TotalWithdrawn += amount
	return nil
}

// --- In-Memory Params Repo ---

type inMemoryParamsRepo struct {
	mu      sync.RWMutex
	feeRate int64
	seeded  bool
}

func newInMemoryParamsRepo() *inMemoryParamsRepo {
	return &inMemoryParamsRepo{}
}

func (r *inMemoryParamsRepo) Ensure(ctx context.Context, defaultBps int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.seeded {
		r.feeRate = defaultBps
		r.seeded = true
	}
	return r.feeRate, nil
}

func (r *inMemoryParamsRepo) GetFeeRate(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.feeRate, nil
}

func (r *inMemoryParamsRepo) SetFeeRate(ctx context.Context, bps int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.feeRate = bps
	return nil
}

// --- In-Memory Fact Repo ---

type inMemoryFactRepo struct {
	mu    sync.RWMutex
	facts []domain.Fact
}

func newInMemoryFactRepo() *inMemoryFactRepo {
	return &inMemoryFactRepo{}
}

func (r *inMemoryFactRepo) Record(ctx context.Context, tx pgx.Tx, fact *domain.Fact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	fact.ID = int64(len(r.facts) + 1)
	r.facts = append(r.facts, *fact)
	return nil
}

func (r *inMemoryFactRepo) ListRecent(ctx context.Context, limit int) ([]domain.Fact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Fact, 0, limit)
	for i := len(r.facts) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.facts[i])
	}
	return out, nil
}

// --- In-Memory Custodial Pool ---

type inMemoryCustodialPool struct {
	mu       sync.RWMutex
	external map[string]int64
}

func newInMemoryCustodialPool() *inMemoryCustodialPool {
	return &inMemoryCustodialPool{external: make(map[string]int64)}
}

// seed funds an external account directly, bypassing the ledger.
func (p *inMemoryCustodialPool) seed(owner domain.Address, asset domain.AssetID, amount int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.external[balanceKey(owner, asset)] += amount
}

func (p *inMemoryCustodialPool) FundPool(ctx context.Context, tx pgx.Tx, holder domain.Address, asset domain.AssetID, amount int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	key := balanceKey(holder, asset)
	if p.external[key] < amount {
		return fmt.Errorf("insufficient external balance")
	}
	p.external[key] -= amount
	p.external[balanceKey(domain.PoolAddress, asset)] += amount
	return nil
}

func (p *inMemoryCustodialPool) Payout(ctx context.Context, tx pgx.Tx, recipient domain.Address, asset domain.AssetID, amount int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	poolKey := balanceKey(domain.PoolAddress, asset)
	if p.external[poolKey] < amount {
		return fmt.Errorf("insufficient pool balance")
	}
	p.external[poolKey] -= amount
	p.external[balanceKey(recipient, asset)] += amount
	return nil
}

func (p *inMemoryCustodialPool) Balance(ctx context.Context, owner domain.Address, asset domain.AssetID) (int64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.external[balanceKey(owner, asset)], nil
}

// --- In-Memory Transactor ---

// inMemoryTransactor serializes all transaction blocks behind one mutex,
// standing in for per-row SELECT FOR UPDATE locking. Mutations inside an
// in-memory "transaction" are not rolled back on failure; tests only
// drive paths where validation precedes mutation.
type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &lockTx{mu: &t.mu}, nil
}

// lockTx holds the transactor mutex until Commit or Rollback, whichever
// comes first. The services defer Rollback after an explicit Commit, so
// release must be idempotent.
type lockTx struct {
	noopTx
	mu   *sync.Mutex
	done bool
}

func (t *lockTx) release() {
	if !t.done {
		t.done = true
		t.mu.Unlock()
	}
}

func (t *lockTx) Commit(ctx context.Context) error {
	t.release()
	return nil
}

func (t *lockTx) Rollback(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.release()
	return nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }

// --- Fake Clock ---

// fakeClock is a settable clock for exercising precommit expiry without
// sleeping through the real validity window.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{now: start}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
