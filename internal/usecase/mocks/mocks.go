package mocks

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopdesk/shopdesk/internal/domain"
	"github.com/shopdesk/shopdesk/internal/usecase"
)

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order

	CreateFunc    func(ctx context.Context, tx usecase.Transaction, order *domain.Order) error
	GetByIDFunc   func(ctx context.Context, id string) (*domain.Order, error)
	GetRecordFunc func(ctx context.Context, id string) (domain.OrderRecord, error)
	ListFunc      func(ctx context.Context, limit, offset int) ([]*domain.Order, int64, error)
}

func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{orders: make(map[string]*domain.Order)}
}

func (m *MockOrderRepository) Create(ctx context.Context, tx usecase.Transaction, order *domain.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, order)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[order.ID] = order
	return nil
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if o, ok := m.orders[id]; ok {
		return o, nil
	}
	return nil, domain.ErrOrderNotFound
}

func (m *MockOrderRepository) GetRecord(ctx context.Context, id string) (domain.OrderRecord, error) {
	if m.GetRecordFunc != nil {
		return m.GetRecordFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.orders[id]
	if !ok {
		return domain.OrderRecord{}, domain.ErrOrderNotFound
	}
	return domain.OrderRecord{
		ID:          o.ID,
		Items:       o.Items,
		Subtotal:    &o.Subtotal,
		TotalAmount: &o.Total,
		PaidAmount:  &o.PaidAmount,
		DueAmount:   &o.DueAmount,
	}, nil
}

func (m *MockOrderRepository) List(ctx context.Context, limit, offset int) ([]*domain.Order, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	orders := make([]*domain.Order, 0, len(m.orders))
	for _, o := range m.orders {
		orders = append(orders, o)
	}
	return orders, int64(len(orders)), nil
}

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product

	CreateFunc  func(ctx context.Context, product *domain.Product) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Product, error)
	ListFunc    func(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error)
}

func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{products: make(map[string]*domain.Product)}
}

func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[product.ID] = product
	return nil
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.products[id]; ok {
		return p, nil
	}
	return nil, domain.ErrProductNotFound
}

func (m *MockProductRepository) List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	products := make([]*domain.Product, 0, len(m.products))
	for _, p := range m.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.BankAccount

	CreateFunc           func(ctx context.Context, account *domain.BankAccount) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.BankAccount, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.BankAccount, error)
	UpdateBalancesFunc   func(ctx context.Context, tx usecase.Transaction, account *domain.BankAccount, updatedAt time.Time) error
	ListFunc             func(ctx context.Context, limit, offset int) ([]*domain.BankAccount, int64, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{accounts: make(map[string]*domain.BankAccount)}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.BankAccount) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.BankAccount, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.accounts[id]; ok {
		return a, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.BankAccount, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockAccountRepository) UpdateBalances(ctx context.Context, tx usecase.Transaction, account *domain.BankAccount, updatedAt time.Time) error {
	if m.UpdateBalancesFunc != nil {
		return m.UpdateBalancesFunc(ctx, tx, account, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.BankAccount, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	accounts := make([]*domain.BankAccount, 0, len(m.accounts))
	for _, a := range m.accounts {
		accounts = append(accounts, a)
	}
	return accounts, int64(len(accounts)), nil
}

// MockTransactionRepository is a mock implementation of
// TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions []domain.Transaction

	CreateFunc        func(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error
	ListByAccountFunc func(ctx context.Context, accountID string, limit, offset int) ([]domain.Transaction, int64, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, txn)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	// Newest first, matching the listing order of the real repo.
	m.transactions = append([]domain.Transaction{*txn}, m.transactions...)
	return nil
}

func (m *MockTransactionRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]domain.Transaction, int64, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var matched []domain.Transaction
	for _, t := range m.transactions {
		if t.AccountID == accountID {
			matched = append(matched, t)
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

// MockIncentiveRepository is a mock implementation of
// IncentiveRepository.
type MockIncentiveRepository struct {
	mu          sync.RWMutex
	incentives  map[string][]domain.Incentive
	withdrawals map[string][]domain.Withdrawal

	lockMu        sync.Mutex
	employeeLocks map[string]*sync.Mutex

	ListByEmployeeFunc          func(ctx context.Context, employeeID string) ([]domain.Incentive, error)
	SumWithdrawnFunc            func(ctx context.Context, employeeID string) (decimal.Decimal, error)
	LockEmployeeWithdrawalsFunc func(ctx context.Context, tx usecase.Transaction, employeeID string) error
	CreateWithdrawalFunc        func(ctx context.Context, tx usecase.Transaction, w *domain.Withdrawal) error
	ListWithdrawalsFunc         func(ctx context.Context, employeeID string, limit, offset int) ([]domain.Withdrawal, error)
}

func NewMockIncentiveRepository() *MockIncentiveRepository {
	return &MockIncentiveRepository{
		incentives:    make(map[string][]domain.Incentive),
		withdrawals:   make(map[string][]domain.Withdrawal),
		employeeLocks: make(map[string]*sync.Mutex),
	}
}

// AddIncentive seeds an incentive record for tests.
func (m *MockIncentiveRepository) AddIncentive(inc domain.Incentive) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.incentives[inc.EmployeeID] = append(m.incentives[inc.EmployeeID], inc)
}

func (m *MockIncentiveRepository) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Incentive, error) {
	if m.ListByEmployeeFunc != nil {
		return m.ListByEmployeeFunc(ctx, employeeID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.incentives[employeeID], nil
}

func (m *MockIncentiveRepository) SumWithdrawn(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	if m.SumWithdrawnFunc != nil {
		return m.SumWithdrawnFunc(ctx, employeeID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := decimal.Zero
	for _, w := range m.withdrawals[employeeID] {
		total = total.Add(w.Amount)
	}
	return total, nil
}

// LockEmployeeWithdrawals takes an in-memory per-employee lock and
// holds it until the transaction commits or rolls back, mirroring a
// transaction-scoped advisory lock.
func (m *MockIncentiveRepository) LockEmployeeWithdrawals(ctx context.Context, tx usecase.Transaction, employeeID string) error {
	if m.LockEmployeeWithdrawalsFunc != nil {
		return m.LockEmployeeWithdrawalsFunc(ctx, tx, employeeID)
	}

	m.lockMu.Lock()
	l, ok := m.employeeLocks[employeeID]
	if !ok {
		l = &sync.Mutex{}
		m.employeeLocks[employeeID] = l
	}
	m.lockMu.Unlock()

	l.Lock()
	if mt, ok := tx.(*MockTx); ok {
		mt.OnEnd(l.Unlock)
	} else {
		l.Unlock()
	}
	return nil
}

func (m *MockIncentiveRepository) ListByEmployeeForUpdate(ctx context.Context, tx usecase.Transaction, employeeID string) ([]domain.Incentive, error) {
	return m.ListByEmployee(ctx, employeeID)
}

func (m *MockIncentiveRepository) SumWithdrawnForUpdate(ctx context.Context, tx usecase.Transaction, employeeID string) (decimal.Decimal, error) {
	return m.SumWithdrawn(ctx, employeeID)
}

func (m *MockIncentiveRepository) CreateWithdrawal(ctx context.Context, tx usecase.Transaction, w *domain.Withdrawal) error {
	if m.CreateWithdrawalFunc != nil {
		return m.CreateWithdrawalFunc(ctx, tx, w)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.withdrawals[w.EmployeeID] = append(m.withdrawals[w.EmployeeID], *w)
	return nil
}

func (m *MockIncentiveRepository) ListWithdrawals(ctx context.Context, employeeID string, limit, offset int) ([]domain.Withdrawal, error) {
	if m.ListWithdrawalsFunc != nil {
		return m.ListWithdrawalsFunc(ctx, employeeID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.withdrawals[employeeID], nil
}

// MockCache is an in-memory mock implementation of Cache.
type MockCache struct {
	mu     sync.RWMutex
	values map[string]string

	GetFunc func(ctx context.Context, key string) (string, error)
}

func NewMockCache() *MockCache {
	return &MockCache{values: make(map[string]string)}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key], nil
}

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return "mock-id-" + strconv.Itoa(m.counter)
}

// MockTx is a no-op transaction.
type MockTx struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool

	mu       sync.Mutex
	onEnd    []func()
	finished bool
}

// OnEnd registers a hook that runs once, when the transaction first
// commits or rolls back. Mocks use it for transaction-scoped cleanup
// such as releasing locks.
func (t *MockTx) OnEnd(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onEnd = append(t.onEnd, fn)
}

func (t *MockTx) finish() {
	t.mu.Lock()
	if t.finished {
		t.mu.Unlock()
		return
	}
	t.finished = true
	hooks := t.onEnd
	t.onEnd = nil
	t.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

func (t *MockTx) Commit(ctx context.Context) error {
	defer t.finish()
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.Committed = true
	return nil
}

func (t *MockTx) Rollback(ctx context.Context) error {
	defer t.finish()
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTxManager hands out MockTx transactions.
type MockTxManager struct {
	mu        sync.Mutex
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	LastTx *MockTx
}

func NewMockTxManager() *MockTxManager {
	return &MockTxManager{}
}

func (m *MockTxManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastTx = &MockTx{}
	return m.LastTx, nil
}

// MockRetrier runs the operation once with no retries.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error

	Calls int
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	m.Calls++
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}
