package handler_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Repository mocks（handler経由のルーティング確認用）
// =====================

type txManagerMock struct {
	repos repo.TxRepos
}

func (m *txManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.repos)
}

type txReposMock struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	products   repo.ProductRepository
	customers  repo.CustomerRepository
	inventory  repo.InventoryRepository
	auditLogs  repo.AuditLogRepository
}

func (r *txReposMock) Orders() repo.OrderRepository         { return r.orders }
func (r *txReposMock) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *txReposMock) Products() repo.ProductRepository     { return r.products }
func (r *txReposMock) Customers() repo.CustomerRepository   { return r.customers }
func (r *txReposMock) Inventory() repo.InventoryRepository  { return r.inventory }
func (r *txReposMock) AuditLogs() repo.AuditLogRepository   { return r.auditLogs }

type orderRepoMock struct{ mock.Mock }

func (m *orderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *orderRepoMock) FindWithCustomer(ctx context.Context, orderID int64) (repo.OrderWithCustomer, error) {
	args := m.Called(ctx, orderID)
	row, _ := args.Get(0).(repo.OrderWithCustomer)
	return row, args.Error(1)
}

func (m *orderRepoMock) ListWithCustomer(ctx context.Context) ([]repo.OrderWithCustomer, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]repo.OrderWithCustomer)
	return rows, args.Error(1)
}

func (m *orderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *orderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

type orderItemRepoMock struct{ mock.Mock }

func (m *orderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *orderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *orderItemRepoMock) ListWithProduct(ctx context.Context, orderID int64) ([]repo.OrderItemWithProduct, error) {
	args := m.Called(ctx, orderID)
	rows, _ := args.Get(0).([]repo.OrderItemWithProduct)
	return rows, args.Error(1)
}

type productRepoMock struct{ mock.Mock }

func (m *productRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *productRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *productRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *productRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *productRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type customerRepoMock struct{ mock.Mock }

func (m *customerRepoMock) List(ctx context.Context) ([]model.Customer, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Customer)
	return items, args.Error(1)
}

func (m *customerRepoMock) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *customerRepoMock) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Customer)
	return created, args.Error(1)
}

func (m *customerRepoMock) Update(ctx context.Context, c model.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type inventoryRepoMock struct{ mock.Mock }

func (m *inventoryRepoMock) SetStock(ctx context.Context, productID int64, newStock int64) error {
	args := m.Called(ctx, productID, newStock)
	return args.Error(0)
}

func (m *inventoryRepoMock) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error) {
	args := m.Called(ctx, productID, qty)
	return args.Bool(0), args.Error(1)
}

func (m *inventoryRepoMock) IncreaseStock(ctx context.Context, productID int64, qty int64) error {
	args := m.Called(ctx, productID, qty)
	return args.Error(0)
}

func (m *inventoryRepoMock) CreateAdjustment(ctx context.Context, adjustment model.InventoryAdjustment) error {
	args := m.Called(ctx, adjustment)
	return args.Error(0)
}

type auditLogRepoMock struct{ mock.Mock }

func (m *auditLogRepoMock) Create(ctx context.Context, log model.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *auditLogRepoMock) ListByResource(ctx context.Context, resourceType string, resourceID int64) ([]model.AuditLog, error) {
	args := m.Called(ctx, resourceType, resourceID)
	logs, _ := args.Get(0).([]model.AuditLog)
	return logs, args.Error(1)
}

// =====================
// Test server
// =====================

type orderServerMocks struct {
	orders     *orderRepoMock
	orderItems *orderItemRepoMock
	products   *productRepoMock
	customers  *customerRepoMock
	inventory  *inventoryRepoMock
	auditLogs  *auditLogRepoMock
}

func staffConfig() config.Config {
	return config.Config{
		BasicUser: "staff",
		BasicPass: "BCLyon2024",
		JWTSecret: "test_secret",
	}
}

func newOrderServer() (*echo.Echo, orderServerMocks) {
	m := orderServerMocks{
		orders:     new(orderRepoMock),
		orderItems: new(orderItemRepoMock),
		products:   new(productRepoMock),
		customers:  new(customerRepoMock),
		inventory:  new(inventoryRepoMock),
		auditLogs:  new(auditLogRepoMock),
	}
	tx := &txManagerMock{repos: &txReposMock{
		orders:     m.orders,
		orderItems: m.orderItems,
		products:   m.products,
		customers:  m.customers,
		inventory:  m.inventory,
		auditLogs:  m.auditLogs,
	}}

	e := echo.New()
	handler.NewOrderHandler(usecase.NewOrderUsecase(tx)).RegisterRoutes(e, staffConfig())
	return e, m
}

func staffRequest(method, path, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	cred := base64.StdEncoding.EncodeToString([]byte("staff:BCLyon2024"))
	req.Header.Set("Authorization", "Basic "+cred)
	return req
}

// =====================
// Tests
// =====================

func TestOrderRoutes_RequireBasicAuth(t *testing.T) {
	e, _ := newOrderServer()

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, `Basic realm="BCL API"`, rec.Header().Get("WWW-Authenticate"))
}

func TestOrderRoutes_Create(t *testing.T) {
	e, m := newOrderServer()

	m.customers.On("FindByID", mock.Anything, int64(1)).Return(model.Customer{ID: 1, Name: "Ann"}, nil)
	m.products.On("FindByID", mock.Anything, int64(7)).Return(model.Product{ID: 7, Price: 3.0, Stock: 5}, nil)
	m.orders.On("Create", mock.Anything, mock.Anything).Return(int64(42), nil)
	m.orderItems.On("CreateBulk", mock.Anything, int64(42), mock.Anything).Return(nil)
	m.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(7), int64(2)).Return(true, nil)

	body := `{"customer_id":1,"items":[{"product_id":7,"quantity":2}]}`
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, staffRequest(http.MethodPost, "/api/orders", body))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"order_id":42`)
	assert.Contains(t, rec.Body.String(), `"status":"Pending"`)
}

func TestOrderRoutes_Create_InsufficientStock(t *testing.T) {
	e, m := newOrderServer()

	m.customers.On("FindByID", mock.Anything, int64(1)).Return(model.Customer{ID: 1}, nil)
	m.products.On("FindByID", mock.Anything, int64(7)).Return(model.Product{ID: 7, Price: 3.0, Stock: 1}, nil)

	body := `{"customer_id":1,"items":[{"product_id":7,"quantity":2}]}`
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, staffRequest(http.MethodPost, "/api/orders", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "not enough stock for product 7")
}

func TestOrderRoutes_Processing(t *testing.T) {
	e, m := newOrderServer()

	m.orders.On("FindByID", mock.Anything, int64(10)).Return(model.Order{ID: 10, Status: model.OrderStatusPending}, nil)
	m.orders.On("UpdateStatus", mock.Anything, int64(10), model.OrderStatusProcessing).Return(nil)
	m.auditLogs.On("Create", mock.Anything, mock.Anything).Return(nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, staffRequest(http.MethodPut, "/api/orders/10/processing", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"Processing"`)
}

func TestOrderRoutes_Cancel_NotFound(t *testing.T) {
	e, m := newOrderServer()

	m.orders.On("FindByID", mock.Anything, int64(404)).Return(model.Order{}, repo.ErrNotFound)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, staffRequest(http.MethodPut, "/api/orders/404/cancel", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order not found")
}

func TestOrderRoutes_Cancel_AlreadyCancelled(t *testing.T) {
	e, m := newOrderServer()

	m.orders.On("FindByID", mock.Anything, int64(10)).Return(model.Order{ID: 10, Status: model.OrderStatusCancelled}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, staffRequest(http.MethodPut, "/api/orders/10/cancel", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"AlreadyCancelled"`)
}

func TestOrderRoutes_Audit(t *testing.T) {
	e, m := newOrderServer()

	m.orders.On("FindByID", mock.Anything, int64(10)).Return(model.Order{ID: 10, Status: model.OrderStatusProcessing}, nil)
	m.auditLogs.On("ListByResource", mock.Anything, model.AuditResourceOrder, int64(10)).Return([]model.AuditLog{
		{
			ID:           1,
			Action:       model.AuditActionUpdateOrderStatus,
			ResourceType: model.AuditResourceOrder,
			ResourceID:   10,
			BeforeJSON:   `{"status":"Pending"}`,
			AfterJSON:    `{"status":"Processing"}`,
		},
	}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, staffRequest(http.MethodGet, "/api/orders/10/audit", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"action":"UPDATE_ORDER_STATUS"`)
	assert.Contains(t, rec.Body.String(), `{\"status\":\"Processing\"}`)
}

func TestOrderRoutes_Audit_NotFound(t *testing.T) {
	e, m := newOrderServer()

	m.orders.On("FindByID", mock.Anything, int64(404)).Return(model.Order{}, repo.ErrNotFound)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, staffRequest(http.MethodGet, "/api/orders/404/audit", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order not found")
}

func TestOrderRoutes_Detail_InvalidID(t *testing.T) {
	e, _ := newOrderServer()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, staffRequest(http.MethodGet, "/api/orders/abc", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid id")
}
